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
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-puzzle-ledger/docs"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/logger"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/metrics"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/puzzle"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/ratelimit"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the env file and the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// Empty RedisHost disables Redis and falls back to an in-process limiter.
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	// Empty KafkaBrokers disables ledger events.
	KafkaBrokers []string
	KafkaTopic   string

	// Empty JWTSecretKey disables bearer tokens.
	JWTSecretKey string
	JWTExpSecond int

	MineRateLimit        int
	MineRateWindowSecond int
	VerifyAnswer         bool
}

// @title Puzzle Ledger API
// @version 1.0.0
// @description Issues arithmetic puzzles, pays mining rewards and keeps a ledger of balances and transfers
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, JWT and mining configuration.
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

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

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
	cfg.RedisHost = getEnv("REDIS_HOST", "")
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

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "ledger-transactions")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	// Mining config
	if cfg.MineRateLimit, err = getInt("MINE_RATE_LIMIT", "5"); err != nil {
		return
	}
	if cfg.MineRateWindowSecond, err = getInt("MINE_RATE_WINDOW_SECOND", "1"); err != nil {
		return
	}
	if cfg.MineRateLimit < 1 {
		err = fmt.Errorf("MINE_RATE_LIMIT must be at least 1, got %d", cfg.MineRateLimit)
		return
	}
	if cfg.MineRateWindowSecond < 1 {
		err = fmt.Errorf("MINE_RATE_WINDOW_SECOND must be at least 1, got %d", cfg.MineRateWindowSecond)
		return
	}
	if cfg.VerifyAnswer, err = strconv.ParseBool(getEnv("PUZZLE_VERIFY_ANSWER", "false")); err != nil {
		err = fmt.Errorf("PUZZLE_VERIFY_ANSWER: %w", err)
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(db.DB); err != nil {
		return err
	}

	// Rate limiter: Redis when configured, in-process otherwise
	var limiter services.RateLimiter
	window := time.Duration(cfg.MineRateWindowSecond) * time.Second
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.MineRateLimit, window)
	} else {
		logger.Log.Warn("REDIS_HOST is empty, using in-process rate limiter")
		limiter = ratelimit.NewLocalLimiter(cfg.MineRateLimit, window)
	}

	// Ledger events
	var events services.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		events = services.NewLedgerEventPublisher(writer)
		logger.Log.Infow("Publishing ledger events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Initialize JWT service
	var (
		tokens    services.TokenGenerator
		tokenizer *jwt.JWT
	)
	if cfg.JWTSecretKey != "" {
		tokenizer = jwt.New(
			jwt.WithSecretKey(cfg.JWTSecretKey),
			jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
		)
		tokens = tokenizer
	}

	// Initialize repositories
	transactor := repositories.NewTransactor(db)
	accountReadRepo := repositories.NewAccountReadRepository(db, repositories.GetTxFromContext)
	accountWriteRepo := repositories.NewAccountWriteRepository(db, repositories.GetTxFromContext)
	puzzleRepo := repositories.NewPuzzleRepository(db, repositories.GetTxFromContext)
	txnWriteRepo := repositories.NewTransactionWriteRepository(db, repositories.GetTxFromContext)
	txnReadRepo := repositories.NewTransactionReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(accountReadRepo, accountWriteRepo, tokens)
	miningService := services.NewMiningService(
		transactor, puzzleRepo, accountWriteRepo, txnWriteRepo,
		limiter, puzzle.NewGenerator(nil), events,
		services.WithAnswerVerification(cfg.VerifyAnswer),
	)
	transferService := services.NewTransferService(transactor, accountReadRepo, accountWriteRepo, txnWriteRepo, events)
	historyService := services.NewHistoryService(txnReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.InstrumentHandler)
	r.Use(middlewares.LoggingMiddleware)
	if tokenizer != nil {
		r.Use(middlewares.BearerMiddleware(tokenizer))
	}

	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Post("/problem", handlers.NewProblemHandler(authService, miningService))
	r.Post("/mine", handlers.NewMineHandler(authService, miningService))
	r.Post("/transfer", handlers.NewTransferHandler(authService, transferService))
	r.Post("/transactions", handlers.NewTransactionsHandler(authService, historyService))

	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

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
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
