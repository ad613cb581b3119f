package routes

import (
	"context"
	"log"
	"os"
	"time"

	_ "smartride/docs" // This will be auto-generated
	"smartride/internal/adapter/http/handlers"
	"smartride/internal/adapter/http/middleware"
	repository2 "smartride/internal/adapter/persistence/repository"
	"smartride/internal/config"
	"smartride/internal/infrastructure/database"
	"smartride/internal/infrastructure/deliveryapi"
	"smartride/internal/infrastructure/events"
	"smartride/internal/infrastructure/geocoding"
	"smartride/internal/infrastructure/payments"
	"smartride/internal/infrastructure/riders"
	"smartride/internal/usecase"
	"smartride/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.HTTP.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ctx := context.Background()

	rdb, err := database.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	ddb := database.ConnectDynamoDB()

	sessionRepo := repository2.NewBookingSessionRedisRepository(rdb)
	recordRepo := repository2.NewBookingRecordDynamoRepository(ddb)

	var publisher interfaces.IEventPublisher
	if cfg.Kafka.Enabled {
		publisher = events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Printf("[events] kafka producer enabled topic=%s", cfg.Kafka.Topic)
	}

	var gateway interfaces.IPaymentGateway
	paystack, err := payments.NewPaystackGateway(os.Getenv("PAYSTACK_SECRET_KEY"))
	if err != nil {
		log.Printf("Paystack gateway not configured: %v", err)
	} else {
		gateway = paystack
	}

	deliveryClient := deliveryapi.NewClient(cfg.Delivery.BaseURL)
	placesClient := geocoding.NewPlacesClient(cfg.Places.BaseURL, cfg.Places.APIKey)
	matcher := riders.NewSimulatedMatcher(time.Duration(cfg.Booking.RiderMatchDelaySeconds) * time.Second)

	pricingUseCase := usecase.NewPricingUseCase()
	wizardUseCase := usecase.NewBookingWizardUseCase(sessionRepo, matcher)
	paymentUseCase := usecase.NewPaymentUseCase(
		sessionRepo,
		recordRepo,
		deliveryClient,
		gateway,
		pricingUseCase,
		publisher,
		cfg.HTTP.PublicBaseURL+"/payments/callback",
		"/payments/success",
	)

	wizardHandler := handlers.NewBookingWizardHandler(wizardUseCase, pricingUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, wizardUseCase)
	pagesHandler := handlers.NewPaymentPagesHandler(paymentUseCase, cfg.Booking.DeliveriesListPath, cfg.Booking.SuccessRedirectCountdown)
	placesHandler := handlers.NewPlacesHandler(placesClient)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, wizardHandler, paymentHandler)
	addPlacesRoutes(v1, placesHandler)
	addPaymentPageRoutes(router, pagesHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
