package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"emprius-backend/internal/security"
)

// TokenCmd returns the token command
func TokenCmd() *cobra.Command {
	var (
		userID int32
		email  string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a development access token",
		Long: `Sign an access token with the configured JWT secret. Production tokens are
issued by the identity provider, this is for local testing with grpcurl.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			token, err := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer).GenerateAccessToken(userID, email, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int32Var(&userID, "user", 0, "User ID")
	cmd.Flags().StringVar(&email, "email", "", "User email")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
