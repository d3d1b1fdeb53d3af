package utils

import (
	"chanv-service/internal/pkg/constvars"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

// GenerateHealthReportID builds "HR-<yyyymmddhhmmssmmm>-<12 hex>". The suffix
// comes from a random UUID, so two ids minted in the same millisecond still
// differ unless 48 random bits collide; storage rejects those and the caller retries.
func GenerateHealthReportID(now time.Time) string {
	timestamp := strings.Replace(now.UTC().Format(constvars.HealthReportIDTimeLayout), ".", "", 1)
	random := strings.ReplaceAll(uuid.New().String(), "-", "")[:constvars.HealthReportIDRandomLength]
	return fmt.Sprintf("%s-%s-%s", constvars.HealthReportIDPrefix, timestamp, strings.ToUpper(random))
}

func GenerateAttachmentObjectKey(reportID, fileName string) (attachmentID, objectKey string) {
	attachmentID = uuid.New().String()
	extension := strings.ToLower(filepath.Ext(fileName))
	return attachmentID, fmt.Sprintf(constvars.AttachmentObjectKeyFormat, reportID, attachmentID, extension)
}
