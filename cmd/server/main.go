package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/repository"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/service"
	transport "github.com/MaryamElkadi/khat-alilan-sub001/internal/transport/http"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/transport/http/handler"
	"github.com/MaryamElkadi/khat-alilan-sub001/pkg/config"
	"github.com/MaryamElkadi/khat-alilan-sub001/pkg/db"
	"github.com/MaryamElkadi/khat-alilan-sub001/pkg/utils"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not found: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	tp, err := utils.InitTracer(ctx, "khat-alilan-api", cfg.Env)
	if err != nil {
		log.Fatalf("Error init tracer: %v", err)
	}

	logger, err := config.NewLogger(config.LoggerConfig{
		Level: cfg.Log.Level,
		Env:   cfg.Env,
	})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	mongoClient, database, err := db.NewMongoDB(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("Error connecting to MongoDB: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})

	logger.Info("khat al-ilan API started!")

	orderRepository := repository.NewOrderRepository(database, logger)
	productRepository := repository.NewProductRepository(database, logger)
	serviceRepository := repository.NewServiceRepository(database, logger)
	portfolioRepository := repository.NewPortfolioRepository(database, logger)
	contactRepository := repository.NewContactRepository(database, logger)
	customerRepository := repository.NewCustomerRepository(database, logger)
	settingsRepository := repository.NewSettingsRepository(database, logger)

	orderService := service.NewOrderService(orderRepository, productRepository, logger, cfg.Order.StrictPricing)
	productService := service.NewCachedProductService(
		service.NewProductService(productRepository, logger),
		rdb,
	)
	contentService := service.NewContentService(serviceRepository, portfolioRepository, logger)
	contactService := service.NewContactService(contactRepository, logger)
	customerService := service.NewCustomerService(customerRepository, logger)
	settingsService := service.NewSettingsService(settingsRepository, logger)

	app := fiber.New(fiber.Config{
		ReadTimeout: cfg.HTTP.Timeout,
	})

	app.Use(otelfiber.Middleware())

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.Limiter.Max,
		Expiration: cfg.Limiter.Expiration,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Try again later.",
			})
		},
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("khat al-ilan API is alive!")
	})

	handlers := &transport.Handlers{
		Order:    handler.NewOrderHandler(orderService, logger),
		Product:  handler.NewProductHandler(productService, logger),
		Content:  handler.NewContentHandler(contentService, logger),
		Contact:  handler.NewContactHandler(contactService, logger),
		Customer: handler.NewCustomerHandler(customerService, logger),
		Settings: handler.NewSettingsHandler(settingsService, logger),
	}

	transport.RegisterRoutes(app, handlers)

	go func() {
		log.Println("HTTP Service listening on: " + cfg.HTTP.Port)
		if err := app.Listen(cfg.HTTP.Port); err != nil {
			log.Fatalf("Error listening on HTTP port %v: %v\n", cfg.HTTP.Port, err)
		}
	}()

	<-ctx.Done()

	log.Println("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP app: %v\n", err)
	} else {
		log.Println("HTTP App stopped gracefully")
	}

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v\n", err)
	}

	if err := rdb.Close(); err != nil {
		log.Printf("Error closing redis client: %v\n", err)
	}

	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down telemetry: %v\n", err)
	} else {
		log.Println("Telemetry stopped correctly")
	}
}
