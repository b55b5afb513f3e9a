package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	JWT        JWTConfig        `yaml:"jwt"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
	SendGrid   SendGridConfig   `yaml:"sendgrid"`
	Push       PushConfig       `yaml:"push"`
	Booking    BookingConfig    `yaml:"booking"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

// ServerConfig contains gRPC and HTTP listener settings
type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	HTTPPort int    `yaml:"http_port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// JWTConfig holds the secret shared with the identity provider that issues access tokens.
type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
}

// StorageConfig contains rating image storage settings
type StorageConfig struct {
	Type          string `yaml:"type"`       // only "mock" is supported
	UploadDir     string `yaml:"upload_dir"` // For mock storage
	BaseURL       string `yaml:"base_url"`   // Server base URL for mock URLs
	MaxFileSizeMB int64  `yaml:"max_file_size_mb"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SendGridConfig contains email notifier settings. Email is disabled when APIKey is empty.
type SendGridConfig struct {
	APIKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

// PushConfig contains Firebase Cloud Messaging settings. Push is disabled when CredentialsFile is empty.
type PushConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	ProjectID       string `yaml:"project_id"`
}

// BookingConfig tunes booking lifecycle rules
type BookingConfig struct {
	// ReminderGraceHours is how long after the end date a picked booking waits before a return reminder.
	ReminderGraceHours int `yaml:"reminder_grace_hours"`
	// LapseGraceHours is how long after the end date an accepted, never picked
	// booking stays returnable before it lapses.
	LapseGraceHours int `yaml:"lapse_grace_hours"`
}

// SchedulerConfig contains cron schedule settings (seconds precision)
type SchedulerConfig struct {
	MarkLapsedBookings  string `yaml:"mark_lapsed_bookings"`
	SendReturnReminders string `yaml:"send_return_reminders"`
}

// MigrationsConfig points golang-migrate at the schema migrations
type MigrationsConfig struct {
	Path string `yaml:"path"`
}

// Load reads configuration from a YAML file. Variables from a local .env file,
// when present, take part in the environment overrides.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, applies environment overrides and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func envString(key string, dst *string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}

func envInt(key string, dst *int) {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*dst = n
		}
	}
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	envString("DB_HOST", &c.Database.Host)
	envInt("DB_PORT", &c.Database.Port)
	envString("DB_USER", &c.Database.User)
	envString("DB_PASSWORD", &c.Database.Password)
	envString("DB_NAME", &c.Database.Database)
	envString("DB_SSL_MODE", &c.Database.SSLMode)

	envString("JWT_SECRET", &c.JWT.Secret)

	envString("SERVER_HOST", &c.Server.Host)
	envInt("SERVER_PORT", &c.Server.Port)
	envInt("HTTP_PORT", &c.Server.HTTPPort)

	envString("UPLOAD_DIR", &c.Storage.UploadDir)

	envString("SENDGRID_API_KEY", &c.SendGrid.APIKey)
	envString("FIREBASE_CREDENTIALS_FILE", &c.Push.CredentialsFile)

	envString("LOG_LEVEL", &c.Log.Level)
	envString("LOG_FORMAT", &c.Log.Format)

	envString("MIGRATIONS_PATH", &c.Migrations.Path)

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = c.Server.Port + 1
	}
	if c.Server.HTTPPort < 0 || c.Server.HTTPPort > 65535 || c.Server.HTTPPort == c.Server.Port {
		return fmt.Errorf("invalid http port: %d", c.Server.HTTPPort)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}

	if c.Storage.Type == "" {
		c.Storage.Type = "mock"
	}
	if c.Storage.Type != "mock" {
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}
	if c.Storage.UploadDir == "" {
		return fmt.Errorf("upload directory is required")
	}
	if c.Storage.MaxFileSizeMB == 0 {
		c.Storage.MaxFileSizeMB = 5
	}

	if c.SendGrid.APIKey != "" && c.SendGrid.FromEmail == "" {
		return fmt.Errorf("sendgrid from_email is required when an API key is set")
	}
	if c.SendGrid.FromName == "" {
		c.SendGrid.FromName = "Emprius"
	}

	if c.Booking.ReminderGraceHours == 0 {
		c.Booking.ReminderGraceHours = 24
	}
	if c.Booking.LapseGraceHours == 0 {
		c.Booking.LapseGraceHours = 30 * 24
	}
	if c.Booking.LapseGraceHours <= c.Booking.ReminderGraceHours {
		return fmt.Errorf("booking lapse_grace_hours must exceed reminder_grace_hours")
	}

	if c.Scheduler.MarkLapsedBookings == "" {
		c.Scheduler.MarkLapsedBookings = "0 0 * * * *" // hourly
	}
	if c.Scheduler.SendReturnReminders == "" {
		c.Scheduler.SendReturnReminders = "0 0 9 * * *" // 9 AM UTC
	}

	if c.Migrations.Path == "" {
		c.Migrations.Path = "file://migrations"
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the gRPC server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetHTTPAddress returns the HTTP server address
func (c *Config) GetHTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.HTTPPort)
}
