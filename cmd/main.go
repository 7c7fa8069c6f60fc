package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/graph"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/handler"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/notification"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/repository"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/service"
	"github.com/cloud-wave-best-zizon/storefront-service/pkg/config"
	"github.com/cloud-wave-best-zizon/storefront-service/pkg/middleware"
	pkgtls "github.com/cloud-wave-best-zizon/storefront-service/pkg/tls"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	location, err := time.LoadLocation(cfg.StoreTimezone)
	if err != nil {
		log.Fatal("Failed to load store timezone:", err)
	}

	dynamoClient, err := repository.NewDynamoDBClient(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to create DynamoDB client:", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(dynamoClient, cfg.UsersTableName)
	productRepo := repository.NewProductRepository(dynamoClient, cfg.ProductsTableName)
	cartRepo := repository.NewCartRepository(dynamoClient, cfg.CartTableName)
	orderRepo := repository.NewOrderRepository(dynamoClient, cfg.OrdersTableName, cfg.ProductsTableName, cfg.CartTableName)
	addressRepo := repository.NewAddressRepository(dynamoClient, cfg.AddressesTableName)
	reviewRepo := repository.NewReviewRepository(dynamoClient, cfg.ReviewsTableName, cfg.LikesTableName)
	appointmentRepo := repository.NewAppointmentRepository(dynamoClient, cfg.AppointmentsTableName)

	// Outbound notifications: enqueue in-process, publish to Kafka.
	producer := notification.NewKafkaProducer(cfg.KafkaBrokers, cfg.NotificationTopic, logger)
	dispatcher := notification.NewDispatcher(producer, cfg.AdminEmails, cfg.MailQueueSize, logger)

	// Services
	accountService := service.NewAccountService(userRepo, addressRepo, logger)
	catalogService := service.NewCatalogService(productRepo, logger)
	cartService := service.NewCartService(cartRepo, productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, cartRepo, addressRepo, dispatcher, logger)
	appointmentService := service.NewAppointmentService(appointmentRepo, dispatcher, location, logger)
	reviewService := service.NewReviewService(reviewRepo, productRepo, logger)

	schema, err := graph.NewSchema(&graph.Resolver{
		Catalog:      catalogService,
		Carts:        cartService,
		Orders:       orderService,
		Appointments: appointmentService,
		Reviews:      reviewService,
		Accounts:     accountService,
	})
	if err != nil {
		log.Fatal("Failed to build GraphQL schema:", err)
	}
	graphqlHandler := handler.NewGraphQLHandler(schema, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Auth(accountService, logger))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/graphql", graphqlHandler.Handle)
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "healthy"})
		})
	}

	tlsConfig, err := pkgtls.LoadTLSConfig(&cfg.TLS, logger)
	if err != nil {
		log.Fatal("Failed to load TLS config:", err)
	}
	defer pkgtls.Cleanup()

	srv := &http.Server{
		Addr:      ":" + cfg.Port,
		Handler:   router,
		TLSConfig: tlsConfig,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Port), zap.Bool("tls", tlsConfig != nil))
		var err error
		if tlsConfig != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Drain queued mail before closing the Kafka writer.
	dispatcher.Close()
	if err := producer.Close(); err != nil {
		logger.Error("Failed to close Kafka producer", zap.Error(err))
	}

	logger.Info("Server exited")
}
