package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-envconfig"

	"github.com/sbilibin2017/job-listings/docs"
	"github.com/sbilibin2017/job-listings/internal/logger"
	"github.com/sbilibin2017/job-listings/internal/middlewares"
	"github.com/sbilibin2017/job-listings/internal/migrations"
	"github.com/sbilibin2017/job-listings/internal/repositories"
	"github.com/sbilibin2017/job-listings/internal/router"
	"github.com/sbilibin2017/job-listings/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config is the application configuration read from the environment.
type config struct {
	AppHost         string        `env:"APP_HOST, default=localhost"`
	AppPort         string        `env:"APP_PORT, default=8080"`
	LogLevel        string        `env:"APP_LOG_LEVEL, default=info"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT, default=10s"`

	PGHost         string `env:"POSTGRES_HOST, default=localhost"`
	PGPort         int    `env:"POSTGRES_PORT, default=5432"`
	PGUser         string `env:"POSTGRES_USER, default=user"`
	PGPassword     string `env:"POSTGRES_PASSWORD, default=password"`
	PGDB           string `env:"POSTGRES_DB, default=database"`
	PGMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS, default=16"`
	PGMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS, default=8"`

	// Change events are published only when brokers are set.
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC, default=job-listings.changes"`
}

func (c *config) addr() string {
	return net.JoinHostPort(c.AppHost, c.AppPort)
}

func (c *config) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// @title job-listings API
// @version 1.0.0
// @description CRUD service for job listings and users
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from the file at path, if present,
// and decodes the environment into a config.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	var cfg config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// run connects to PostgreSQL, applies migrations, wires the services and
// serves HTTP until ctx is cancelled.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.LogLevel, "version", buildVersion); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.dsn())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return err
	}
	log.Info("Database migrations applied")

	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		events = w
		log.Infow("Publishing change events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	jobRepo := repositories.NewJobRepository(db, middlewares.GetTxFromContext)
	userRepo := repositories.NewUserRepository(db, middlewares.GetTxFromContext)

	jobService := services.NewJobService(jobRepo, events)
	userService := services.NewUserService(userRepo, events)

	docs.SwaggerInfo.Host = cfg.addr()

	handler := router.New(router.Config{
		Jobs:       jobService,
		Users:      userService,
		Logger:     log,
		DB:         db,
		Health:     db,
		SwaggerURL: fmt.Sprintf("http://%s/swagger/doc.json", cfg.addr()),
	})

	srv := &http.Server{
		Addr:              cfg.addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Infof("HTTP server listening on %s", cfg.addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
