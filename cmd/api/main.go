package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harentsoaR/dental-clinic/internal/config"
	"github.com/harentsoaR/dental-clinic/internal/handlers"
	"github.com/harentsoaR/dental-clinic/internal/logging"
	"github.com/harentsoaR/dental-clinic/internal/middleware"
	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/observability"
	"github.com/harentsoaR/dental-clinic/internal/services"
	"github.com/harentsoaR/dental-clinic/internal/sessions"
	"github.com/harentsoaR/dental-clinic/internal/store"
	"github.com/harentsoaR/dental-clinic/internal/utils"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-api",
		Short: "Dental clinic management API",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintln(os.Stderr, "No .env file found, relying on environment variables.")
			}
			return nil
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(createAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func createAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an Admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			return createAdmin(cmd.Context(), username, password)
		},
	}
	cmd.Flags().String("username", "admin", "Username of the new account")
	cmd.Flags().String("password", "", "Password of the new account")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// setup loads the configuration and starts the logger.
func setup() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logging.InitLogger(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}

func createAdmin(ctx context.Context, username, password string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logging.Sync()

	db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoTransactions)
	if err != nil {
		return err
	}
	defer db.Close(context.Background())

	if err := db.EnsureIndexes(ctx); err != nil {
		return err
	}

	users := services.NewUserService(db.Users, cfg.BcryptCost, logging.Logger)
	user, err := users.Create(ctx, models.UserFields{Username: username, Password: password, Role: models.RoleAdmin})
	if err != nil {
		return err
	}
	fmt.Printf("Admin %q created with id %s\n", user.Username, user.ID.Hex())
	return nil
}

func runServer() error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logging.Sync()
	logger := logging.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer := observability.InitTracer(ctx, cfg.TracingEnabled, cfg.TracingEndpoint, logger)
	defer shutdownTracer()

	// --- Database Connection ---
	db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoTransactions)
	if err != nil {
		return err
	}
	defer db.Close(context.Background())

	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Error("failed to ensure indexes", zap.Error(err))
	}

	// --- Token revocation ---
	var revoked sessions.RevocationStore = sessions.NewMemoryStore()
	if cfg.RedisURI != "" {
		client, err := sessions.NewRedisClient(ctx, cfg.RedisURI, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer client.Close()
		revoked = sessions.NewRedisStore(client)
		logger.Info("token revocation backed by Redis")
	} else {
		logger.Warn("REDIS_URI not set, revoked tokens are kept in memory")
	}

	// --- Services ---
	stores := db.Stores()
	var notifier services.Notifier
	if cfg.SMSEnabled {
		notifier = services.NewNotificationService(cfg.TextbeltURL, cfg.TextbeltAPIKey, logger)
	}

	h := &handlers.Handler{
		Auth:         services.NewAuthService(stores.Users, utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL), revoked, logger),
		Users:        services.NewUserService(stores.Users, cfg.BcryptCost, logger),
		Patients:     services.NewPatientService(stores, cfg.DefaultPhoneRegion, logger),
		Procedures:   services.NewProcedureService(stores, logger),
		Appointments: services.NewAppointmentService(stores, notifier, logger),
		Billing:      services.NewBillingService(stores, logger),
		Reports:      services.NewReportService(stores),
		Database:     db,
	}

	// --- Gin Router ---
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestTracker())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.Int("port", cfg.Port), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
