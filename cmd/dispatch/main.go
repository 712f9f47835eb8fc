package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/quickfix-app/quickfix/internal/pkg/config"
	"github.com/quickfix-app/quickfix/internal/pkg/database"
	"github.com/quickfix-app/quickfix/internal/pkg/health"
	"github.com/quickfix-app/quickfix/internal/pkg/logger"
	"github.com/quickfix-app/quickfix/internal/pkg/nats"
	"github.com/quickfix-app/quickfix/internal/pkg/server"
	"github.com/quickfix-app/quickfix/internal/pkg/websocket"
	bookingGateway "github.com/quickfix-app/quickfix/services/booking/gateway"
	bookingHandler "github.com/quickfix-app/quickfix/services/booking/handler"
	bookingRepository "github.com/quickfix-app/quickfix/services/booking/repository"
	bookingUsecase "github.com/quickfix-app/quickfix/services/booking/usecase"
	geoHandler "github.com/quickfix-app/quickfix/services/geo/handler"
	geoRepository "github.com/quickfix-app/quickfix/services/geo/repository"
	geoUsecase "github.com/quickfix-app/quickfix/services/geo/usecase"
	notifyGateway "github.com/quickfix-app/quickfix/services/notify/gateway"
	notifyUsecase "github.com/quickfix-app/quickfix/services/notify/usecase"
	realtimeHandler "github.com/quickfix-app/quickfix/services/realtime/handler"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Infrastructure clients
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Geo service: technician locations, availability, skills, ratings
	geoRepo := geoRepository.NewTechnicianRepository(redisClient)
	geoUC := geoUsecase.NewGeoUC(configs, geoRepo)

	// Booking service: lifecycle, matching, events
	bookingRepo := bookingRepository.NewBookingRepository(configs, postgresClient.GetDB())
	bookingGW := bookingGateway.NewBookingGW(natsClient)
	bookingUC := bookingUsecase.NewBookingUC(configs, bookingRepo, bookingGW, geoUC)

	// Notification dispatcher: optional email/SMS channels
	emailGW, err := notifyGateway.NewEmailGW(configs.Notify)
	if err != nil {
		zapLogger.Fatal("Failed to initialize email gateway", logger.Err(err))
	}
	smsGW := notifyGateway.NewSMSGW(configs.Notify)
	notifyUC := notifyUsecase.NewNotifier(configs, emailGW, smsGW)

	// Real-time fan-out: websocket rooms fed from NATS
	wsManager := websocket.NewManager(configs.JWT)
	eventHandler := realtimeHandler.NewEventHandler(configs, wsManager, notifyUC, natsClient)
	if err := eventHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	geoHandler.NewHTTPHandler(configs, geoUC).RegisterRoutes(e)
	bookingHandler.NewHTTPHandler(configs, bookingUC).RegisterRoutes(e)
	e.GET("/ws", wsManager.HandleConnection)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return eventHandler.Stop()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(ctx)

	logger.Info("Server exiting gracefully")
}
