package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"homeez_booking/internal/adapter/http/handlers"
	"homeez_booking/internal/adapter/http/middleware"
	"homeez_booking/internal/adapter/persistence/catalog"
	"homeez_booking/internal/adapter/persistence/repository"
	"homeez_booking/internal/adapter/persistence/session"
	"homeez_booking/internal/infrastructure/config"
	"homeez_booking/internal/infrastructure/database"
	"homeez_booking/internal/infrastructure/payments"
	"homeez_booking/internal/usecase"
	"homeez_booking/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 20 * time.Second

// Handlers groups everything the router mounts.
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	Wizard   *handlers.WizardHandler
	Bookings *handlers.BookingHandler
}

// NewRouter builds the gin engine with middleware and every /v1 route.
func NewRouter(cfg config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.NewRateLimiter(cfg.MaxRequestsPerMin, logger).Handler())
	router.Use(middleware.Identity())

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addWizardRoutes(v1, h.Wizard)
	addBookingRoutes(v1, h.Bookings)

	return router
}

// Run wires the adapters, serves HTTP and shuts down on SIGINT/SIGTERM,
// waiting for in-flight booking hand-offs.
func Run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalogRepo, err := catalog.NewStaticRepository()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	sessions, closeSessions, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSessions()

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	bookingRepo := repository.NewBookingDynamoRepository(ddb, cfg.BookingsTable)

	wizardUseCase := usecase.NewBookingWizardUseCase(
		catalogRepo,
		sessions,
		bookingRepo,
		newPaymentGateway(cfg, logger),
		logger,
		usecase.WizardConfig{HandoffTimeout: cfg.HandoffTimeout},
	)

	router := NewRouter(cfg, logger, Handlers{
		Catalog:  handlers.NewCatalogHandler(usecase.NewCatalogUseCase(catalogRepo)),
		Wizard:   handlers.NewWizardHandler(wizardUseCase, logger),
		Bookings: handlers.NewBookingHandler(usecase.NewBookingUseCase(bookingRepo, logger)),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http][server] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("[http][server] shutdown failed", zap.Error(err))
	}
	if err := wizardUseCase.Drain(shutdownCtx); err != nil {
		logger.Warn("[http][server] booking hand-offs still running at exit", zap.Error(err))
	}
	return nil
}

func newSessionStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (interfaces.ISessionRepository, func(), error) {
	if cfg.SessionStore != config.SessionStoreRedis {
		logger.Info("[wizard][session] using in-memory store", zap.Duration("ttl", cfg.SessionTTL))
		return session.NewMemoryStore(cfg.SessionTTL), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
	}
	logger.Info("[wizard][session] using redis store", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.SessionTTL))
	return session.NewRedisStore(client, cfg.SessionTTL), func() { _ = client.Close() }, nil
}

// newPaymentGateway returns nil when neither a token nor mock mode is set.
// Card and UPI hand-offs then fail with a retryable notice.
func newPaymentGateway(cfg config.Config, logger *zap.Logger) interfaces.IPaymentGateway {
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		logger.Warn("[payments][gateway] Mercado Pago gateway not configured", zap.Error(err))
		return nil
	}
	return gw
}
