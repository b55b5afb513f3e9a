package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "emprius-backend/api/v1"
	api "emprius-backend/internal/api/grpc"
	"emprius-backend/internal/api/grpc/interceptor"
	httpapi "emprius-backend/internal/api/http"
	"emprius-backend/internal/config"
	"emprius-backend/internal/logger"
	"emprius-backend/internal/repository/postgres"
	"emprius-backend/internal/security"
	"emprius-backend/internal/service"
	"emprius-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	migrateOnStart := flag.Bool("migrate", false, "Apply pending schema migrations before serving")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Emprius booking backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "grpc_address", cfg.GetServerAddress(), "http_address", cfg.GetHTTPAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	if *migrateOnStart {
		if err := postgres.Migrate(cfg.Migrations.Path, cfg.GetDatabaseConnectionString()); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer)
	authInterceptor := interceptor.NewAuthInterceptor(tokenManager)

	logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
	imageStore, err := storage.NewMockStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize mock storage", "error", err)
		log.Fatalf("Failed to initialize mock storage: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dispatcher := service.NewDispatcher(store.NotificationRepository, store.UserRepository, notifiers(ctx, cfg)...)

	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.ToolRepository,
		store.UserRepository,
		store.RatingRepository,
		dispatcher,
	)
	toolSvc := service.NewToolService(store.ToolRepository, store.BookingRepository, store.UserRepository)
	userSvc := service.NewUserService(store.UserRepository, store.RatingRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	imageSvc := service.NewRatingImageService(store.BookingRepository, imageStore)

	lis, err := net.Listen("tcp", cfg.GetServerAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetServerAddress())
		log.Fatalf("Failed to listen: %v", err)
	}

	s := grpc.NewServer(
		grpc.UnaryInterceptor(authInterceptor.Unary()),
	)

	pb.RegisterBookingServiceServer(s, api.NewBookingHandler(bookingSvc, imageSvc))
	pb.RegisterToolServiceServer(s, api.NewToolHandler(toolSvc))
	pb.RegisterUserServiceServer(s, api.NewUserHandler(userSvc))
	pb.RegisterNotificationServiceServer(s, api.NewNotificationHandler(noteSvc))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// No reflection service: the API services are declared without protobuf
	// descriptors, so reflection clients could list them but not describe them.

	httpServer := &http.Server{
		Addr:              cfg.GetHTTPAddress(),
		Handler:           httpapi.NewRouter(imageStore, cfg.Storage.MaxFileSizeMB<<20, db),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "error", err)
		}
		s.GracefulStop()
	}()

	logger.Info("gRPC server listening", "address", cfg.GetServerAddress())
	if err := s.Serve(lis); err != nil {
		logger.Error("Failed to serve gRPC", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
	logger.Info("Server stopped")
}

// notifiers returns the outbound channels enabled in cfg. In-app notifications
// are always stored by the dispatcher.
func notifiers(ctx context.Context, cfg *config.Config) []service.Notifier {
	var out []service.Notifier
	if cfg.SendGrid.APIKey != "" {
		out = append(out, service.NewEmailNotifier(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName))
		logger.Info("Email notifications enabled", "from", cfg.SendGrid.FromEmail)
	}
	if cfg.Push.CredentialsFile != "" {
		push, err := service.NewPushNotifier(ctx, cfg.Push.CredentialsFile, cfg.Push.ProjectID)
		if err != nil {
			logger.Error("Push notifications disabled", "error", err)
		} else {
			out = append(out, push)
			logger.Info("Push notifications enabled", "project_id", cfg.Push.ProjectID)
		}
	}
	return out
}
