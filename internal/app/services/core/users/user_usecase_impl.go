package users

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	AccountRepository contracts.AccountRepository
	Log               *zap.Logger
	now               func() time.Time
}

func NewUserUsecase(accountRepository contracts.AccountRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		AccountRepository: accountRepository,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *userUsecase) findAccount(ctx context.Context, identity *models.Identity) (*models.Account, error) {
	if identity.Directory != constvars.DirectoryAccounts {
		return nil, exceptions.ErrForbidden(nil, "access account profile", identity.Role.String())
	}
	account, err := uc.AccountRepository.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrAccountNotExist(nil)
	}
	return account, nil
}

func (uc *userUsecase) GetProfile(ctx context.Context, identity *models.Identity) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, identity.ID.Hex()),
	)

	account, err := uc.findAccount(ctx, identity)
	if err != nil {
		return nil, err
	}
	return utils.MapAccountToUserProfile(account, uc.now()), nil
}

// UpdateProfile never touches role or password; those have no patch field.
func (uc *userUsecase) UpdateProfile(ctx context.Context, identity *models.Identity, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, identity.ID.Hex()),
	)

	account, err := uc.findAccount(ctx, identity)
	if err != nil {
		return nil, err
	}

	update := &models.AccountProfileUpdate{
		FirstName:  request.FirstName,
		LastName:   request.LastName,
		Gender:     request.Gender,
		BloodGroup: request.BloodGroup,
	}

	if request.Email != nil && *request.Email != account.Email {
		existing, err := uc.AccountRepository.FindByEmail(ctx, *request.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		update.Email = request.Email
	}

	if request.PhoneNumber != nil && *request.PhoneNumber != account.PhoneNumber {
		existing, err := uc.AccountRepository.FindByPhoneNumber(ctx, *request.PhoneNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrPhoneNumberAlreadyExist(nil)
		}
		update.PhoneNumber = request.PhoneNumber
	}

	if request.DateOfBirth != nil {
		dateOfBirth, err := utils.ParseDate(*request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		update.DateOfBirth = &dateOfBirth
	}

	err = uc.AccountRepository.UpdateProfile(ctx, account.ID, update)
	if err != nil {
		if errors.Is(err, exceptions.ErrDuplicatePhoneNumber) {
			return nil, exceptions.ErrPhoneNumberAlreadyExist(err)
		}
		if errors.Is(err, exceptions.ErrDuplicateDocument) {
			return nil, exceptions.ErrEmailAlreadyExist(err)
		}
		return nil, err
	}

	updated, err := uc.AccountRepository.FindByID(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrAccountNotExist(nil)
	}

	uc.Log.Info("userUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, account.ID.Hex()),
	)
	return utils.MapAccountToUserProfile(updated, uc.now()), nil
}
