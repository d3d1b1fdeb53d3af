package logger

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/pkg/constvars"
	"os"

	"github.com/sirupsen/logrus"
)

// NewAuditLogger returns the append-only audit trail writer. It is kept apart
// from the application logger so the trail can be shipped and retained separately.
func NewAuditLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: constvars.LoggingAuditTimestampKey,
			logrus.FieldKeyMsg:  "message",
		},
	})
	logger.SetLevel(logrus.InfoLevel)
	logger.SetOutput(os.Stderr)

	if internalConfig.IsProduction() && driverConfig.Logger.AuditFileName != "" {
		file, err := os.OpenFile(driverConfig.Logger.AuditFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.Info("Failed to open audit log file, using default stderr")
		}
	}
	return logger
}
