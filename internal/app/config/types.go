package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
		AuditFileName       string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App      App
		JWT      JWT
		Minio    AppMinio
		RabbitMQ AppRabbitMQ
		Seed     Seed
	}

	App struct {
		Env                          string
		Port                         string
		Version                      string
		Timezone                     string
		EndpointPrefix               string
		CorsAllowedOrigins           []string
		MaxRequests                  int
		ShutdownTimeout              int
		RequestTimeoutInSeconds      int
		VerboseAudit                 bool
		LoginMaxAttemptsPerMinute    int
		LoginBlockTimeInMinutes      int
		RequestBodyLimitInMegabyte   int
		MetricsNamespace             string
		MetricsSubsystem             string
		ReportIDGenerationMaxAttempt int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
		CookieName    string
		CookieSecure  bool
	}

	AppMinio struct {
		BucketName                      string
		AttachmentMaxUploadSizeInMB     int
		PresignedURLExpiryTimeInMinutes int
	}

	AppRabbitMQ struct {
		HealthReportQueue string
	}

	Seed struct {
		AdminFirstName   string
		AdminLastName    string
		AdminEmail       string
		AdminPhoneNumber string
		AdminPassword    string
	}
)
