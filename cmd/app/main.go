package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"geoshop/cmd"
	httpin "geoshop/internal/adapters/in/http"
	_ "geoshop/internal/adapters/in/http/docs"
	"geoshop/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	echoSwagger "github.com/swaggo/echo-swagger"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := gorm.Open(pgdriver.Open(dsn(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dispatcher := app.Dispatcher()
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		VATRate:             envDecimal("VAT_RATE", "0.077"),
		Currency:            envOr("CURRENCY", "CHF"),
		SRID:                envInt("SRID", 2056),
		SubscriberOrderType: envOr("SUBSCRIBER_ORDER_TYPE", "Utilité publique"),
		FreeOrderTypes:      envList("FREE_ORDER_TYPES", "Communication,Enseignement,Privé"),

		GeometryProvider:       envOr("GEOMETRY_PROVIDER", "postgis"),
		PricingGeometryTimeout: envDuration("PRICING_GEOMETRY_TIMEOUT", "5s"),
		PricingWorkers:         envInt("PRICING_WORKERS", 4),

		NotifyWorkers:   envInt("NOTIFY_WORKERS", 2),
		NotifyQueueSize: envInt("NOTIFY_QUEUE_SIZE", 256),
		NotifyTimeout:   envDuration("NOTIFY_TIMEOUT", "10s"),
		OperatorsEmail:  goDotEnvVariable("OPERATORS_EMAIL"),

		CatalogCacheSize: envInt("CATALOG_CACHE_SIZE", 1024),
		CatalogCacheTTL:  envDuration("CATALOG_CACHE_TTL", "5m"),

		ArchiveSchedule:   envOr("ARCHIVE_SCHEDULE", "0 0 3 * * *"),
		DownloadRetention: envDuration("DOWNLOAD_RETENTION", "720h"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func envOr(key, fallback string) string {
	if v := goDotEnvVariable(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := goDotEnvVariable(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s must be an integer: %v", key, err)
	}
	return n
}

func envDuration(key, fallback string) time.Duration {
	d, err := time.ParseDuration(envOr(key, fallback))
	if err != nil {
		log.Fatalf("%s must be a duration: %v", key, err)
	}
	return d
}

func envDecimal(key, fallback string) decimal.Decimal {
	d, err := decimal.NewFromString(envOr(key, fallback))
	if err != nil {
		log.Fatalf("%s must be a decimal: %v", key, err)
	}
	return d
}

func envList(key, fallback string) []string {
	raw := envOr(key, fallback)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func dsn(c cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.Warn("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	httpin.RegisterHandlersWithBaseURL(e, app.CreateServer(), "/api/v1")

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			e.Logger.Error(err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
