package jwtmanager

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// iat and exp are encoded with millisecond fractions so revocation cutoffs
// can tell apart tokens issued within the same second.
func init() {
	jwt.TimePrecision = time.Millisecond
}

// JWTManager issues HS256 session credentials. The payload carries the subject
// id, the directory it belongs to and a token id for revocation. Role and
// personal data are never embedded.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	if cfg.JWT.ExpTimeInHour <= 0 {
		return nil, fmt.Errorf("JWT_EXP_TIME_IN_HOUR must be positive")
	}

	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		ttl:    time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour,
		now:    time.Now,
	}, nil
}

func (j *JWTManager) CreateToken(ctx context.Context, in *contracts.CreateTokenInput) (*contracts.CreateTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Subject) == "" {
		return nil, exceptions.ErrTokenGenerate(fmt.Errorf("subject is required"))
	}
	if !isKnownDirectory(in.Directory) {
		return nil, exceptions.ErrTokenGenerate(fmt.Errorf("unknown directory %q", in.Directory))
	}

	now := j.now().UTC()
	expiresAt := now.Add(j.ttl)
	tokenID := uuid.New().String()
	claims := jwt.RegisteredClaims{
		ID:        tokenID,
		Subject:   in.Subject,
		Audience:  jwt.ClaimStrings{in.Directory},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &contracts.CreateTokenOutput{
		Token:     signed,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// VerifyToken reports an expired credential with a properly verified signature
// as ErrTokenExpired; every other failure is ErrTokenInvalid.
func (j *JWTManager) VerifyToken(ctx context.Context, token string) (*models.Credential, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Debug("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if strings.TrimSpace(token) == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors == jwt.ValidationErrorExpired {
			return nil, exceptions.ErrTokenExpired(err)
		}
		return nil, exceptions.ErrTokenInvalid(err)
	}

	if claims.Subject == "" || claims.ID == "" || claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return nil, exceptions.ErrTokenInvalid(fmt.Errorf("token is missing required claims"))
	}
	if len(claims.Audience) != 1 || !isKnownDirectory(claims.Audience[0]) {
		return nil, exceptions.ErrTokenInvalid(fmt.Errorf(constvars.ErrDevAuthUnknownDirectory, claims.Audience))
	}

	return &models.Credential{
		Token:     token,
		TokenID:   claims.ID,
		Subject:   claims.Subject,
		Directory: claims.Audience[0],
		IssuedAt:  claims.IssuedAt.Time.Round(time.Millisecond),
		ExpiresAt: claims.ExpiresAt.Time.Round(time.Millisecond),
	}, nil
}

func (j *JWTManager) TTL() time.Duration {
	return j.ttl
}

func isKnownDirectory(directory string) bool {
	return directory == constvars.DirectoryAccounts || directory == constvars.DirectoryDoctors
}
