package main

import (
	"fmt"
	"log"

	"tastypoint-cart/configs"
	"tastypoint-cart/internal/handlers"
	"tastypoint-cart/internal/middleware"
	"tastypoint-cart/internal/models"
	"tastypoint-cart/internal/repositories"
	"tastypoint-cart/internal/services"
	"tastypoint-cart/pkg/cache"
	"tastypoint-cart/pkg/database"
	"tastypoint-cart/pkg/logger"
	"tastypoint-cart/pkg/mailer"
	"tastypoint-cart/pkg/messaging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	config := configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	zlog, err := logger.New(config.Log.Level, config.Server.Mode)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	// Cart storage backend
	store, closeStore, err := openStore(config, zlog)
	if err != nil {
		zlog.Fatal("failed to open cart storage", zap.String("driver", config.Storage.Driver), zap.Error(err))
	}
	defer closeStore()

	// Badge notifications and order sinks
	notifiers := services.MultiCartNotifier{services.NewLogCartNotifier(zlog)}
	var sinks []services.OrderSink

	if config.Kafka.Enabled {
		kafkaProducer := messaging.NewKafkaProducer(config.Kafka.Brokers)
		defer kafkaProducer.Close()

		notifiers = append(notifiers, services.NewKafkaCartNotifier(kafkaProducer, config.Kafka.CartTopic, config.Kafka.PublishTimeout, zlog))
		sinks = append(sinks, services.NewKafkaOrderSink(kafkaProducer, config.Kafka.OrderTopic))
	}

	if config.SendGrid.APIKey != "" {
		orderMailer := mailer.NewSendGridMailer(config.SendGrid.APIKey, config.SendGrid.From, config.SendGrid.To)
		sinks = append(sinks, services.NewEmailOrderSink(orderMailer))
	}

	// Initialize services
	pricing := services.NewPricingRules(services.DefaultVariantRules())
	cartManager := services.NewCartManager(store, pricing, notifiers, zlog)
	formatter := services.NewOrderFormatter(config.Order.ShopName, config.Order.Currency, config.Order.DeliveryFee)
	channel := services.NewOrderChannel(config.Order.ChannelBaseURL, config.Order.Phone)
	checkoutService := services.NewCheckoutService(formatter, channel, sinks, zlog)

	// Initialize handlers
	cartHandler := handlers.NewCartHandler(cartManager, checkoutService, config.Storage.CartKey, config.Order.DeliveryFee)

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(zlog))
	router.Use(middleware.RecoveryMiddleware(zlog))
	router.Use(middleware.CORSMiddleware(config.Server.AllowOrigins))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "tastypoint-cart",
			"storage": config.Storage.Driver,
		})
	})

	// API routes
	api := router.Group("/api/v1")
	cartHandler.RegisterRoutes(api)

	zlog.Info("server starting", zap.String("port", config.Server.Port), zap.String("storage", config.Storage.Driver))
	if err := router.Run(":" + config.Server.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

// openStore connects the configured storage backend and returns its closer.
func openStore(config *configs.Config, zlog *zap.Logger) (repositories.CartKVStore, func(), error) {
	switch config.Storage.Driver {
	case "memory":
		return repositories.NewMemoryStore(), func() {}, nil

	case "redis":
		redisCache := cache.NewRedisCache(config.Redis.URL, config.Redis.Password, config.Redis.DB, zlog)
		if redisCache == nil {
			return nil, nil, fmt.Errorf("failed to connect to redis at %s", config.Redis.URL)
		}
		return repositories.NewRedisStore(redisCache), func() { redisCache.Close() }, nil

	case "postgres":
		db, err := database.NewPostgresDatabase(config.Database.PostgresURL, zlog)
		if err != nil {
			return nil, nil, err
		}
		if err := db.AutoMigrate(&models.CartSnapshot{}); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return repositories.NewPostgresStore(db.Postgres), func() { db.Close() }, nil

	case "mongo":
		db, err := database.NewMongoDatabase(config.Database.MongoURL, config.Database.MongoDBName, zlog)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewMongoStore(db.MongoDB), func() { db.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
}
