package config

import (
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "chanv"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AuditFileName:       utils.GetEnvString("LOGGER_AUDIT_FILENAME", "audit.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                          utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                         utils.GetEnvString("APP_PORT", ":8080"),
			Version:                      utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                     utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:               utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CorsAllowedOrigins:           utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			MaxRequests:                  utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeout:              utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:      utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", constvars.DefaultRequestTimeoutSecond),
			VerboseAudit:                 utils.GetEnvBool("APP_VERBOSE_AUDIT", false),
			LoginMaxAttemptsPerMinute:    utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS_PER_MINUTE", 5),
			LoginBlockTimeInMinutes:      utils.GetEnvInt("APP_LOGIN_BLOCK_TIME_IN_MINUTES", 15),
			RequestBodyLimitInMegabyte:   utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 12),
			MetricsNamespace:             utils.GetEnvString("APP_METRICS_NAMESPACE", "chanv"),
			MetricsSubsystem:             utils.GetEnvString("APP_METRICS_SUBSYSTEM", "api"),
			ReportIDGenerationMaxAttempt: utils.GetEnvInt("APP_REPORT_ID_MAX_ATTEMPTS", constvars.HealthReportIDMaxAttempts),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
			CookieName:    utils.GetEnvString("JWT_COOKIE_NAME", "token"),
			CookieSecure:  utils.GetEnvBool("JWT_COOKIE_SECURE", false),
		},
		Minio: AppMinio{
			BucketName:                      utils.GetEnvString("MINIO_BUCKET_NAME", "health-reports"),
			AttachmentMaxUploadSizeInMB:     utils.GetEnvInt("MINIO_ATTACHMENT_MAX_UPLOAD_SIZE_IN_MB", 10),
			PresignedURLExpiryTimeInMinutes: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_IN_MINUTES", 15),
		},
		RabbitMQ: AppRabbitMQ{
			HealthReportQueue: utils.GetEnvString("RABBITMQ_HEALTH_REPORT_QUEUE", "health_report_events"),
		},
		Seed: Seed{
			AdminFirstName:   utils.GetEnvString("SEED_ADMIN_FIRST_NAME", "Camp"),
			AdminLastName:    utils.GetEnvString("SEED_ADMIN_LAST_NAME", "Admin"),
			AdminEmail:       utils.GetEnvString("SEED_ADMIN_EMAIL", ""),
			AdminPhoneNumber: utils.GetEnvString("SEED_ADMIN_PHONE_NUMBER", ""),
			AdminPassword:    utils.GetEnvString("SEED_ADMIN_PASSWORD", ""),
		},
	}
}

func (c *InternalConfig) IsProduction() bool {
	return c.App.Env == constvars.AppEnvProduction
}
