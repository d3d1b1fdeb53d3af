package revocation

import (
	"chanv-service/internal/app/models"
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func newTestService(redis *MockRedisRepository, now time.Time) *revocationService {
	return &revocationService{
		redis: redis,
		log:   zap.NewNop(),
		now:   func() time.Time { return now },
	}
}

func TestRevokeCredential(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("TTL Equals Remaining Lifetime", func(t *testing.T) {
		redis := new(MockRedisRepository)
		service := newTestService(redis, now)
		credential := &models.Credential{TokenID: "jti-1", Subject: "acc-1", ExpiresAt: now.Add(90 * time.Minute)}

		redis.On("Set", mock.Anything, "revoked:token:jti-1", "acc-1", 90*time.Minute).Return(nil)

		err := service.RevokeCredential(context.Background(), credential)

		require.NoError(t, err)
		redis.AssertExpectations(t)
	})

	t.Run("Already Expired Credential Is Not Stored", func(t *testing.T) {
		redis := new(MockRedisRepository)
		service := newTestService(redis, now)
		credential := &models.Credential{TokenID: "jti-1", ExpiresAt: now.Add(-time.Minute)}

		err := service.RevokeCredential(context.Background(), credential)

		require.NoError(t, err)
		redis.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestIsRevoked(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 500*int(time.Millisecond), time.UTC)
	cutoffAt := func(at time.Time) string { return strconv.FormatInt(at.UnixMilli(), 10) }

	tests := []struct {
		name     string
		issuedAt time.Time
		exists   bool
		cutoff   string
		expected bool
	}{
		{"Token Denylisted", now.Add(-time.Hour), true, "", true},
		{"No Entries", now.Add(-time.Hour), false, "", false},
		{"Issued Before Account Cutoff", now.Add(-time.Hour), false, cutoffAt(now), true},
		{"Issued After Account Cutoff", now.Add(-time.Hour), false, cutoffAt(now.Add(-2 * time.Hour)), false},
		{"Issued Earlier In The Cutoff Second", now.Add(-200 * time.Millisecond), false, cutoffAt(now), true},
		{"Issued Later In The Cutoff Second", now.Add(200 * time.Millisecond), false, cutoffAt(now), false},
		{"Issued At The Cutoff", now, false, cutoffAt(now), false},
		{"Unreadable Cutoff", now.Add(-time.Hour), false, "garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redis := new(MockRedisRepository)
			service := newTestService(redis, now)
			credential := &models.Credential{
				TokenID:   "jti-1",
				Subject:   "acc-1",
				Directory: "accounts",
				IssuedAt:  tt.issuedAt,
				ExpiresAt: now.Add(time.Hour),
			}

			redis.On("Exists", mock.Anything, "revoked:token:jti-1").Return(tt.exists, nil)
			redis.On("Get", mock.Anything, "revoked:account:accounts:acc-1").Return(tt.cutoff, nil).Maybe()

			revoked, err := service.IsRevoked(context.Background(), credential)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, revoked)
		})
	}
}

func TestRevokeAccountCredentials(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	redis := new(MockRedisRepository)
	service := newTestService(redis, now)

	redis.On("Set", mock.Anything, "revoked:account:accounts:acc-1", now.UnixMilli(), 24*time.Hour).Return(nil)

	err := service.RevokeAccountCredentials(context.Background(), "acc-1", now, 24*time.Hour)

	require.NoError(t, err)
	redis.AssertExpectations(t)
}
