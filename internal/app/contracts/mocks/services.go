package mocks

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockCredentialManager struct {
	mock.Mock
}

func (m *MockCredentialManager) CreateToken(ctx context.Context, input *contracts.CreateTokenInput) (*contracts.CreateTokenOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*contracts.CreateTokenOutput)
	return output, args.Error(1)
}

func (m *MockCredentialManager) VerifyToken(ctx context.Context, token string) (*models.Credential, error) {
	args := m.Called(ctx, token)
	credential, _ := args.Get(0).(*models.Credential)
	return credential, args.Error(1)
}

type MockRevocationService struct {
	mock.Mock
}

func (m *MockRevocationService) RevokeCredential(ctx context.Context, credential *models.Credential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *MockRevocationService) RevokeAccountCredentials(ctx context.Context, subject string, issuedBefore time.Time, ttl time.Duration) error {
	args := m.Called(ctx, subject, issuedBefore, ttl)
	return args.Error(0)
}

func (m *MockRevocationService) IsRevoked(ctx context.Context, credential *models.Credential) (bool, error) {
	args := m.Called(ctx, credential)
	return args.Bool(0), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, input *contracts.UploadObjectInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *models.HealthReportEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MetricsRecorder counts calls in memory. Safe for concurrent use.
type MetricsRecorder struct {
	mu           sync.Mutex
	AuthFailures map[string]int
	ReportEvents map[string]int
}

func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{
		AuthFailures: make(map[string]int),
		ReportEvents: make(map[string]int),
	}
}

func (r *MetricsRecorder) RecordAuthFailure(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.AuthFailures[reason]++
}

func (r *MetricsRecorder) RecordHealthReportEvent(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ReportEvents[event]++
}

func (r *MetricsRecorder) AuthFailureCount(reason string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.AuthFailures[reason]
}

func (r *MetricsRecorder) ReportEventCount(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ReportEvents[event]
}
