package revocation

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// revocationService keeps the credential denylist in Redis. Two kinds of entry
// exist: one per revoked token id, living exactly as long as the token would
// have, and one per account holding a cutoff in Unix milliseconds; tokens
// issued before the cutoff are treated as revoked.
type revocationService struct {
	redis contracts.RedisRepository
	log   *zap.Logger
	now   func() time.Time
}

func NewRevocationService(redis contracts.RedisRepository, log *zap.Logger) contracts.RevocationService {
	return &revocationService{
		redis: redis,
		log:   log,
		now:   time.Now,
	}
}

func tokenKey(tokenID string) string {
	return fmt.Sprintf(constvars.RedisKeyRevokedToken, tokenID)
}

func accountKey(directory, subject string) string {
	return fmt.Sprintf(constvars.RedisKeyRevokedAccount, directory+":"+subject)
}

func (s *revocationService) RevokeCredential(ctx context.Context, credential *models.Credential) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("revocationService.RevokeCredential called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if credential == nil || credential.TokenID == "" {
		return nil
	}
	ttl := credential.RemainingLifetime(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, tokenKey(credential.TokenID), credential.Subject, ttl)
}

// RevokeAccountCredentials records issuedBefore as the cutoff for every
// credential of the account. The key is scoped by directory, so a doctor
// sharing the id is never affected.
func (s *revocationService) RevokeAccountCredentials(ctx context.Context, subject string, issuedBefore time.Time, ttl time.Duration) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("revocationService.RevokeAccountCredentials called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, subject),
	)

	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, accountKey(constvars.DirectoryAccounts, subject), issuedBefore.UnixMilli(), ttl)
}

func (s *revocationService) IsRevoked(ctx context.Context, credential *models.Credential) (bool, error) {
	revoked, err := s.redis.Exists(ctx, tokenKey(credential.TokenID))
	if err != nil {
		return false, err
	}
	if revoked {
		return true, nil
	}

	cutoff, err := s.redis.Get(ctx, accountKey(credential.Directory, credential.Subject))
	if err != nil {
		return false, err
	}
	if cutoff == "" {
		return false, nil
	}

	cutoffMilli, err := strconv.ParseInt(cutoff, 10, 64)
	if err != nil {
		s.log.Warn("revocationService.IsRevoked ignoring unreadable account cutoff",
			zap.String(constvars.LoggingAccountIDKey, credential.Subject),
			zap.Error(err),
		)
		return false, nil
	}
	return credential.IssuedAt.UnixMilli() < cutoffMilli, nil
}
