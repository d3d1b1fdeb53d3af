package auth

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	authFailureInvalidCredentials = "invalid_credentials"
)

type authUsecase struct {
	AccountRepository contracts.AccountRepository
	DoctorRepository  contracts.DoctorRepository
	CredentialManager contracts.CredentialManager
	RevocationService contracts.RevocationService
	Metrics           contracts.MetricsRecorder
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	now               func() time.Time
}

func NewAuthUsecase(
	accountRepository contracts.AccountRepository,
	doctorRepository contracts.DoctorRepository,
	credentialManager contracts.CredentialManager,
	revocationService contracts.RevocationService,
	metrics contracts.MetricsRecorder,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AccountRepository: accountRepository,
		DoctorRepository:  doctorRepository,
		CredentialManager: credentialManager,
		RevocationService: revocationService,
		Metrics:           metrics,
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.AccountRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	existing, err = uc.AccountRepository.FindByPhoneNumber(ctx, request.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPhoneNumberAlreadyExist(nil)
	}

	dateOfBirth, err := utils.ParseDate(request.DateOfBirth)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	account := &models.Account{
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		Email:         request.Email,
		PhoneNumber:   request.PhoneNumber,
		Password:      hashedPassword,
		DateOfBirth:   dateOfBirth,
		Gender:        request.Gender,
		Role:          models.RoleUser,
		BloodGroup:    request.BloodGroup,
		Relatives:     []models.Relative{},
		HealthReports: []string{},
	}
	account.SetCreatedAtUpdatedAt()

	accountID, err := uc.AccountRepository.CreateAccount(ctx, account)
	if err != nil {
		if errors.Is(err, exceptions.ErrDuplicatePhoneNumber) {
			return nil, exceptions.ErrPhoneNumberAlreadyExist(err)
		}
		if errors.Is(err, exceptions.ErrDuplicateDocument) {
			return nil, exceptions.ErrEmailAlreadyExist(err)
		}
		return nil, err
	}

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID.Hex()),
	)

	return &responses.RegisterUser{
		ID:    accountID.Hex(),
		Email: account.Email,
		Role:  account.Role.String(),
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	account, err := uc.AccountRepository.FindByPhoneNumber(ctx, request.PhoneNumber)
	if err != nil {
		return nil, err
	}
	return uc.loginAccount(ctx, account, models.RoleUser, request.Password)
}

func (uc *authUsecase) LoginAdmin(ctx context.Context, request *requests.LoginWithEmail) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	account, err := uc.AccountRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	return uc.loginAccount(ctx, account, models.RoleAdmin, request.Password)
}

// loginAccount answers every mismatch with the same error, so a caller cannot
// tell an unknown account from a wrong password or a wrong login route.
func (uc *authUsecase) loginAccount(ctx context.Context, account *models.Account, role models.Role, password string) (*responses.Login, error) {
	if account == nil || account.Role != role || !utils.CheckPasswordHash(password, account.Password) {
		uc.Metrics.RecordAuthFailure(authFailureInvalidCredentials)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := uc.CredentialManager.CreateToken(ctx, &contracts.CreateTokenInput{
		Subject:   account.ID.Hex(),
		Directory: constvars.DirectoryAccounts,
	})
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		Account:   utils.MapAccountToLoginSummary(account),
	}, nil
}

func (uc *authUsecase) LoginDoctor(ctx context.Context, request *requests.LoginWithEmail) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !utils.CheckPasswordHash(request.Password, doctor.Password) {
		uc.Metrics.RecordAuthFailure(authFailureInvalidCredentials)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := uc.CredentialManager.CreateToken(ctx, &contracts.CreateTokenInput{
		Subject:   doctor.ID.Hex(),
		Directory: constvars.DirectoryDoctors,
	})
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		Account:   utils.MapDoctorToLoginSummary(doctor),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, credential *models.Credential) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.RevocationService.RevokeCredential(ctx, credential)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error revoking credential",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *authUsecase) ChangePassword(ctx context.Context, identity *models.Identity, credential *models.Credential, request *requests.ChangePassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ChangePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, identity.ID.Hex()),
	)

	if identity.Directory != constvars.DirectoryAccounts {
		return exceptions.ErrForbidden(nil, "change password", identity.Role.String())
	}

	account, err := uc.AccountRepository.FindByID(ctx, identity.ID)
	if err != nil {
		return err
	}
	if account == nil {
		return exceptions.ErrAccountNotFound(nil, identity.ID.Hex())
	}

	if !utils.CheckPasswordHash(request.CurrentPassword, account.Password) {
		uc.Metrics.RecordAuthFailure(authFailureInvalidCredentials)
		return exceptions.ErrInvalidCredentials(nil)
	}
	if request.CurrentPassword == request.NewPassword {
		return exceptions.ErrSamePassword(nil)
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	err = uc.AccountRepository.UpdatePassword(ctx, account.ID, hashedPassword)
	if err != nil {
		return err
	}

	err = uc.RevocationService.RevokeCredential(ctx, credential)
	if err != nil {
		return err
	}

	lifetime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	err = uc.RevocationService.RevokeAccountCredentials(ctx, account.ID.Hex(), uc.now(), lifetime)
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.ChangePassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, account.ID.Hex()),
	)
	return nil
}

// ResolveIdentity re-reads the subject on every request, so role changes and
// deletions take effect without waiting for the credential to expire.
func (uc *authUsecase) ResolveIdentity(ctx context.Context, credential *models.Credential) (*models.Identity, error) {
	subjectID, err := primitive.ObjectIDFromHex(credential.Subject)
	if err != nil {
		return nil, exceptions.ErrTokenInvalid(err)
	}

	switch credential.Directory {
	case constvars.DirectoryAccounts:
		account, err := uc.AccountRepository.FindByID(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		if account == nil || account.IsDeleted() {
			return nil, exceptions.ErrAccountNotFound(nil, credential.Subject)
		}
		return account.ToIdentity(constvars.DirectoryAccounts), nil
	case constvars.DirectoryDoctors:
		doctor, err := uc.DoctorRepository.FindByID(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		if doctor == nil || doctor.IsDeleted() {
			return nil, exceptions.ErrAccountNotFound(nil, credential.Subject)
		}
		return doctor.ToIdentity(constvars.DirectoryDoctors), nil
	default:
		return nil, exceptions.ErrTokenInvalid(fmt.Errorf("unknown directory %q", credential.Directory))
	}
}
