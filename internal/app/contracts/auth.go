package contracts

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Login, error)
	LoginAdmin(ctx context.Context, request *requests.LoginWithEmail) (*responses.Login, error)
	LoginDoctor(ctx context.Context, request *requests.LoginWithEmail) (*responses.Login, error)
	Logout(ctx context.Context, credential *models.Credential) error
	ChangePassword(ctx context.Context, identity *models.Identity, credential *models.Credential, request *requests.ChangePassword) error
	ResolveIdentity(ctx context.Context, credential *models.Credential) (*models.Identity, error)
}
