package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-peakbet-deposit/docs"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/facades"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/handlers"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/jwt"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/middlewares"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/repositories"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const qrImageSize = 256

// config holds everything read by parseConfig.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	GatewayBaseURL string
	GatewayTimeout time.Duration

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	BalanceCacheTTL   time.Duration

	KafkaBrokers      []string // empty disables outcome publishing
	KafkaOutcomeTopic string

	JWTSecretKey string

	PollInterval   time.Duration
	PixResetDelay  time.Duration
	CardResetDelay time.Duration
	SessionTTL     time.Duration
}

// @title gw-peakbet-deposit API
// @version 1.0.0
// @description Deposit orchestration for PeakBET: PIX charges with status polling and credit card payments
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file and returns the
// application, gateway, database, Redis, Kafka, JWT and session configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}

	var n int

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PeakBET API
	cfg.GatewayBaseURL = getEnv("GATEWAY_BASE_URL", "http://localhost:3000")
	if n, err = getInt("GATEWAY_TIMEOUT_SECOND", "15"); err != nil {
		return
	}
	cfg.GatewayTimeout = time.Duration(n) * time.Second

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if n, err = getInt("BALANCE_CACHE_TTL_SECOND", "60"); err != nil {
		return
	}
	cfg.BalanceCacheTTL = time.Duration(n) * time.Second

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}
	cfg.KafkaOutcomeTopic = getEnv("KAFKA_TOPIC_DEPOSIT_OUTCOMES", "deposit-outcomes")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")

	// Deposit session timings
	if n, err = getInt("DEPOSIT_POLL_INTERVAL_MS", "5000"); err != nil {
		return
	}
	cfg.PollInterval = time.Duration(n) * time.Millisecond
	if n, err = getInt("DEPOSIT_PIX_RESET_DELAY_MS", "3000"); err != nil {
		return
	}
	cfg.PixResetDelay = time.Duration(n) * time.Millisecond
	if n, err = getInt("DEPOSIT_CARD_RESET_DELAY_MS", "2000"); err != nil {
		return
	}
	cfg.CardResetDelay = time.Duration(n) * time.Millisecond
	if n, err = getInt("DEPOSIT_SESSION_TTL_SECOND", "1800"); err != nil {
		return
	}
	cfg.SessionTTL = time.Duration(n) * time.Second

	return
}

// run initializes the logger, database, Redis, Kafka writer, deposit service and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}

	attemptRepo := repositories.NewDepositAttemptRepository(db)
	if err := attemptRepo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("deposit attempts schema: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for deposit outcomes
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaOutcomeTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka writer configured", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaOutcomeTopic)
	}

	// JWT validation of tokens issued by the PeakBET API
	tokener := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey))

	// Facades
	gateway := facades.NewPaymentGatewayFacade(cfg.GatewayBaseURL, cfg.GatewayTimeout)
	qr := facades.NewQRCodeFacade(qrImageSize)

	// Services
	balanceCache := repositories.NewBalanceCacheRepository(rdb, cfg.BalanceCacheTTL)
	balanceService := services.NewBalanceService(gateway, balanceCache)
	depositService := services.NewDepositService(gateway, qr, balanceService, attemptRepo, kafkaWriter,
		services.WithSessionTimings(services.SessionTimings{
			PollInterval:   cfg.PollInterval,
			PixResetDelay:  cfg.PixResetDelay,
			CardResetDelay: cfg.CardResetDelay,
		}),
		services.WithSessionTTL(cfg.SessionTTL),
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))

		handlers.RegisterSessionHandlers(r,
			handlers.NewOpenSessionHandler(depositService, tokener),
			handlers.NewGetSessionHandler(depositService, tokener),
			handlers.NewCloseSessionHandler(depositService, tokener),
		)
		handlers.RegisterSelectMethodHandler(r, handlers.NewSelectMethodHandler(depositService, tokener))
		handlers.RegisterSetAmountHandler(r, handlers.NewSetAmountHandler(depositService, tokener))
		handlers.RegisterNavigationHandlers(r,
			handlers.NewBackHandler(depositService, tokener),
			handlers.NewContinueHandler(depositService, tokener),
			handlers.NewResetHandler(depositService, tokener),
		)
		handlers.RegisterGeneratePixHandler(r, handlers.NewGeneratePixHandler(depositService, tokener))
		handlers.RegisterCardHandlers(r,
			handlers.NewUpdateCardHandler(depositService, tokener),
			handlers.NewSubmitCardHandler(depositService, tokener),
		)
		handlers.RegisterHistoryHandler(r, handlers.NewHistoryHandler(depositService, tokener))
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go depositService.Run(ctxShutdown)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		depositService.Shutdown()
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	depositService.Shutdown()

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
