package main

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/delivery/http/controllers"
	"chanv-service/internal/app/delivery/http/middlewares"
	"chanv-service/internal/app/delivery/http/routers"
	"chanv-service/internal/app/drivers/database"
	"chanv-service/internal/app/drivers/logger"
	"chanv-service/internal/app/drivers/messaging"
	"chanv-service/internal/app/drivers/storage"
	"chanv-service/internal/app/services/core/auth"
	"chanv-service/internal/app/services/core/camps"
	"chanv-service/internal/app/services/core/doctors"
	healthReports "chanv-service/internal/app/services/core/health_reports"
	"chanv-service/internal/app/services/core/relatives"
	"chanv-service/internal/app/services/core/users"
	"chanv-service/internal/app/services/shared/eventqueue"
	"chanv-service/internal/app/services/shared/jwtmanager"
	"chanv-service/internal/app/services/shared/metrics"
	"chanv-service/internal/app/services/shared/redis"
	"chanv-service/internal/app/services/shared/revocation"
	sharedStorage "chanv-service/internal/app/services/shared/storage"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	auditLogger := logger.NewAuditLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig)

	rabbitMQ, err := messaging.NewRabbitMQ(driverConfig)
	if err != nil {
		log.Warn("RabbitMQ unavailable, health report events will not be published", zap.Error(err))
	}

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		AuditLogger:    auditLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server listening", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release dependencies", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := database.EnsureIndexes(ctx, bootstrap.MongoDB.Database(dbName))
	if err != nil {
		return err
	}

	// Shared services
	appMetrics := metrics.NewMetrics(cfg.App.MetricsNamespace, cfg.App.MetricsSubsystem)
	credentialManager, err := jwtmanager.NewJWTManager(cfg, bootstrap.Logger)
	if err != nil {
		return err
	}
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	revocationService := revocation.NewRevocationService(redisRepository, bootstrap.Logger)
	attachmentStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)

	var eventPublisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := eventqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, cfg.RabbitMQ.HealthReportQueue)
		if err != nil {
			bootstrap.Logger.Warn("Health report event publisher disabled", zap.Error(err))
		} else {
			eventPublisher = publisher
			bootstrap.EventQueueStop = publisher.Close
		}
	}

	// Repositories
	accountRepository := users.NewAccountMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	healthReportRepository := healthReports.NewHealthReportMongoRepository(bootstrap.MongoDB, dbName)
	campRepository := camps.NewCampMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(
		accountRepository,
		doctorRepository,
		credentialManager,
		revocationService,
		appMetrics,
		cfg,
		bootstrap.Logger,
	)
	userUsecase := users.NewUserUsecase(accountRepository, bootstrap.Logger)
	relativeUsecase := relatives.NewRelativeUsecase(accountRepository, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, bootstrap.Logger)
	healthReportUsecase := healthReports.NewHealthReportUsecase(
		healthReportRepository,
		accountRepository,
		doctorRepository,
		attachmentStorage,
		eventPublisher,
		appMetrics,
		cfg,
		bootstrap.Logger,
	)
	campUsecase := camps.NewCampUsecase(campRepository, doctorRepository, bootstrap.Logger)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(
		bootstrap.Logger,
		bootstrap.AuditLogger,
		authUsecase,
		credentialManager,
		revocationService,
		appMetrics,
		appMetrics,
		cfg,
	)
	loginLimiter := middlewares.NewRateLimiter(
		bootstrap.Logger,
		cfg.App.LoginMaxAttemptsPerMinute,
		time.Minute,
		time.Duration(cfg.App.LoginBlockTimeInMinutes)*time.Minute,
	)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, cfg)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)
	relativeController := controllers.NewRelativeController(bootstrap.Logger, relativeUsecase)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)
	healthReportController := controllers.NewHealthReportController(bootstrap.Logger, healthReportUsecase, cfg)
	campController := controllers.NewCampController(bootstrap.Logger, campUsecase)
	healthController := controllers.NewHealthController(bootstrap.Logger, cfg.App.Version,
		controllers.DependencyCheck{
			Name:  "mongodb",
			Check: func(ctx context.Context) error { return bootstrap.MongoDB.Ping(ctx, nil) },
		},
		controllers.DependencyCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return bootstrap.Redis.Ping(ctx).Err() },
		},
	)

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		appMiddlewares,
		loginLimiter,
		appMetrics.Handler(),
		authController,
		userController,
		relativeController,
		doctorController,
		healthReportController,
		campController,
		healthController,
	)
	return nil
}
