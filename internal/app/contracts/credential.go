package contracts

import (
	"chanv-service/internal/app/models"
	"context"
	"time"
)

type CreateTokenInput struct {
	Subject   string
	Directory string
}

type CreateTokenOutput struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// CredentialManager issues and verifies signed session credentials.
type CredentialManager interface {
	CreateToken(ctx context.Context, input *CreateTokenInput) (*CreateTokenOutput, error)
	VerifyToken(ctx context.Context, token string) (*models.Credential, error)
}

// RevocationService is the denylist consulted after a credential verifies.
type RevocationService interface {
	RevokeCredential(ctx context.Context, credential *models.Credential) error
	RevokeAccountCredentials(ctx context.Context, subject string, issuedBefore time.Time, ttl time.Duration) error
	IsRevoked(ctx context.Context, credential *models.Credential) (bool, error)
}
