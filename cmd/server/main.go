package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/AY-10/inventryy/internal/activity"
	activityhttp "github.com/AY-10/inventryy/internal/activity/delivery/http"
	activitydomain "github.com/AY-10/inventryy/internal/activity/domain"
	activityrepo "github.com/AY-10/inventryy/internal/activity/repository"
	activityquery "github.com/AY-10/inventryy/internal/activity/usecase/query"
	"github.com/AY-10/inventryy/internal/catalog"
	catalogdomain "github.com/AY-10/inventryy/internal/catalog/domain"
	"github.com/AY-10/inventryy/internal/inventory"
	inventorydomain "github.com/AY-10/inventryy/internal/inventory/domain"
	"github.com/AY-10/inventryy/internal/sales"
	salesdomain "github.com/AY-10/inventryy/internal/sales/domain"
	storehttp "github.com/AY-10/inventryy/internal/store/delivery/http"
	storedomain "github.com/AY-10/inventryy/internal/store/domain"
	storerepo "github.com/AY-10/inventryy/internal/store/repository"
	"github.com/AY-10/inventryy/internal/user"
	userdomain "github.com/AY-10/inventryy/internal/user/domain"
	"github.com/AY-10/inventryy/kafka"
	"github.com/AY-10/inventryy/pkg/database"
	"github.com/AY-10/inventryy/pkg/logger"
	"github.com/AY-10/inventryy/pkg/middleware"
	"github.com/AY-10/inventryy/pkg/tracing"

	_ "github.com/AY-10/inventryy/docs"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "inventryy")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting inventryy server")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "inventryy"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	err = db.AutoMigrate(
		&userdomain.User{},
		&storedomain.Store{},
		&catalogdomain.Category{},
		&catalogdomain.Product{},
		&inventorydomain.StoreInventory{},
		&salesdomain.Sale{},
		&salesdomain.SaleItem{},
		&activitydomain.Activity{},
	)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Logger.Info().Msg("Database initialized successfully")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
	})
	defer redisClient.Close()

	// Kafka is optional: without brokers the publisher stays nil and every
	// publish becomes a no-op.
	var publisher *kafka.Publisher
	var consumer *kafka.Consumer
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		brokerList := strings.Split(brokers, ",")

		publisher, err = kafka.NewPublisher(brokerList)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka publisher disabled")
		} else {
			defer publisher.Close()
		}

		consumer, err = kafka.NewConsumer(brokerList, getEnv("KAFKA_GROUP_ID", "inventryy-alerts"), logReorderAlert)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka consumer disabled")
		} else {
			consumer.Start(context.Background())
			defer consumer.Close()
		}
	}

	activityRepository := activityrepo.NewGormActivityRepository(db)
	recorder := activity.NewRecorder(activityRepository)

	inventoryRepository := inventory.ProvideInventoryRepository(db)
	productRepository := catalog.ProvideProductRepository(db, redisClient)
	priceLookup := sales.NewCatalogPriceLookup(productRepository)

	userHandler, err := user.InitializeHTTPHandler(db, recorder)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}
	catalogHandler, err := catalog.InitializeHTTPHandler(db, redisClient, recorder, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}
	inventoryHandler, err := inventory.InitializeHTTPHandler(db, recorder)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}
	salesHandler, err := sales.InitializeHTTPHandler(db, inventoryRepository, priceLookup, recorder, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize sales handler")
	}
	storeHandler := storehttp.NewStoreHandler(storerepo.NewGormStoreRepository(db), recorder)
	activityHandler := activityhttp.NewActivityHandler(
		activityquery.NewListActivitiesHandler(activityRepository),
	)

	router := mux.NewRouter()
	router.Use(middleware.Recovery)
	router.Use(middleware.Logging)
	router.Use(middleware.Metrics)

	userHandler.RegisterRoutes(router)
	storeHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(router)
	inventoryHandler.RegisterRoutes(router)
	salesHandler.RegisterRoutes(router)
	activityHandler.RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", healthCheck(sqlDB)).Methods("GET")
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: middleware.Tracing(serviceName, c.Handler(router)),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

// logReorderAlert consumes low-stock events and surfaces reorder
// suggestions in the logs.
func logReorderAlert(ctx context.Context, event kafka.LowStockEvent) error {
	logger.Info(ctx).
		Uint("store_id", event.StoreID).
		Uint("product_id", event.ProductID).
		Int("quantity", event.Quantity).
		Int("reorder_level", event.ReorderLevel).
		Int("suggested_order", event.ReorderQuantity).
		Msg("Reorder alert")
	return nil
}

func healthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
