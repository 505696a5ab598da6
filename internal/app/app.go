// Package app assembles the storefront: stores, event publishers, services
// and the Fiber HTTP surface.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/kafka"
	"storefront/pkg/rabbitmq"
)

// App is a fully wired storefront server.
type App struct {
	Fiber *fiber.App
	Auth  *services.AuthService

	store   *repositories.Store
	closers []func() error
	logger  *zap.Logger
}

// New connects the configured backends and builds the HTTP app.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a := &App{store: store, logger: log}

	orders := store.Orders
	if cfg.Redis.Enabled {
		cache := repositories.NewRedisCache(&cfg.Redis)
		if err := cache.Ping(ctx); err != nil {
			log.Warn("redis unavailable, order cache disabled", zap.Error(err))
			_ = cache.Close()
		} else {
			log.Info("order cache enabled", zap.String("addr", cfg.Redis.Addr))
			orders = repositories.NewCachedOrderRepository(orders, cache, log)
			a.closers = append(a.closers, cache.Close)
		}
	}

	publisher, err := a.openPublisher(cfg.Events)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	hasher := services.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := services.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nil)

	vendorService := services.NewVendorService(store.Vendors, hasher, publisher, log)
	catalogService := services.NewCatalogService(store.Vendors, log)
	orderService := services.NewOrderService(orders, publisher, log)
	contactService := services.NewContactService(store.Contacts, publisher, log)
	authService := services.NewAuthService(vendorService, tokens, log)
	a.Auth = authService

	vendorHandler := handlers.NewVendorHandler(vendorService, catalogService, authService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	contactHandler := handlers.NewContactHandler(contactService, log)

	app := fiber.New(fiber.Config{
		AppName:      "storefront",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())

	app.Get("/health", a.handleHealth)

	contactHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)
	vendorHandler.RegisterRoutes(app, middleware.AuthRequired(authService, log))

	if cfg.Server.StaticDir != "" {
		app.Static("/", cfg.Server.StaticDir)
	}

	a.Fiber = app
	return a, nil
}

func openStore(ctx context.Context, cfg *config.Config) (*repositories.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		return repositories.NewMemoryStore(), nil
	case config.DriverMongo:
		client, err := repositories.NewMongoClient(ctx, &cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		if err := client.EnsureIndexes(ctx); err != nil {
			_ = client.Close(ctx)
			return nil, err
		}
		return repositories.NewMongoStore(client), nil
	default:
		db, err := repositories.OpenGORM(cfg.Database)
		if err != nil {
			return nil, err
		}
		return repositories.NewGORMStore(db), nil
	}
}

// openPublisher returns nil when events are disabled so services skip publishing.
func (a *App) openPublisher(cfg config.EventsConfig) (services.EventPublisher, error) {
	switch cfg.Driver {
	case config.EventsRabbitMQ:
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.Exchange}, a.logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		if err := client.ConsumeOrderEvents(a.auditOrderEvent); err != nil {
			a.logger.Warn("order event consumer not started", zap.Error(err))
		}
		return client, nil
	case config.EventsKafka:
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, a.logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, producer.Close)
		return producer, nil
	default:
		return nil, nil
	}
}

// auditOrderEvent records order events coming back from the broker.
func (a *App) auditOrderEvent(msg amqp.Delivery) error {
	a.logger.Info("order event received",
		zap.String("routing_key", msg.RoutingKey),
		zap.String("message_id", msg.MessageId),
		zap.ByteString("body", msg.Body))
	return nil
}

func (a *App) handleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := a.store.Ping(ctx); err != nil {
		a.logger.Warn("health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// Listen serves HTTP on addr until Shutdown.
func (a *App) Listen(addr string) error {
	return a.Fiber.Listen(addr)
}

// Shutdown stops the HTTP server and releases every backend.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if a.Fiber != nil {
		if err := a.Fiber.ShutdownWithContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("fiber shutdown: %w", err))
		}
	}
	if err := a.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Close releases brokers, caches and the store without touching the server.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	if err := a.store.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
