package middlewares

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/contracts"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// HTTPObserver records per route request metrics.
type HTTPObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

type Middlewares struct {
	Log               *zap.Logger
	AuditLogger       *logrus.Logger
	AuthUsecase       contracts.AuthUsecase
	CredentialManager contracts.CredentialManager
	RevocationService contracts.RevocationService
	Metrics           contracts.MetricsRecorder
	HTTPObserver      HTTPObserver
	InternalConfig    *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	auditLogger *logrus.Logger,
	authUsecase contracts.AuthUsecase,
	credentialManager contracts.CredentialManager,
	revocationService contracts.RevocationService,
	metrics contracts.MetricsRecorder,
	httpObserver HTTPObserver,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:               logger,
		AuditLogger:       auditLogger,
		AuthUsecase:       authUsecase,
		CredentialManager: credentialManager,
		RevocationService: revocationService,
		Metrics:           metrics,
		HTTPObserver:      httpObserver,
		InternalConfig:    internalConfig,
	}
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}
