package relatives

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type relativeUsecase struct {
	AccountRepository contracts.AccountRepository
	Log               *zap.Logger
	now               func() time.Time
}

func NewRelativeUsecase(accountRepository contracts.AccountRepository, logger *zap.Logger) contracts.RelativeUsecase {
	return &relativeUsecase{
		AccountRepository: accountRepository,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *relativeUsecase) findOwner(ctx context.Context, owner *models.Identity) (*models.Account, error) {
	if owner.Directory != constvars.DirectoryAccounts {
		return nil, exceptions.ErrForbidden(nil, "manage relatives", owner.Role.String())
	}
	account, err := uc.AccountRepository.FindByID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrAccountNotExist(nil)
	}
	return account, nil
}

func (uc *relativeUsecase) AddRelative(ctx context.Context, owner *models.Identity, request *requests.CreateRelative) (*responses.Relative, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("relativeUsecase.AddRelative called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, owner.ID.Hex()),
	)

	ownerAccount, err := uc.findOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	relationship := models.Relationship(request.Relationship)
	if !relationship.IsValid() {
		return nil, exceptions.ErrInputValidation(nil)
	}

	now := uc.now().UTC()
	relative := &models.Relative{
		ID:             primitive.NewObjectID(),
		IsExistingUser: request.IsExistingUser,
		Relationship:   relationship,
		BloodGroup:     request.BloodGroup,
		HealthReports:  []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if request.IsExistingUser {
		linked, err := uc.resolveLinkedAccount(ctx, ownerAccount, request)
		if err != nil {
			return nil, err
		}
		// Only what the owner typed is kept next to the reference.
		relative.AccountID = &linked.ID
		relative.Name = request.Name
		relative.PhoneNumber = request.PhoneNumber
	} else {
		if request.Name == "" || request.DateOfBirth == "" || request.Gender == "" || request.PhoneNumber == "" {
			return nil, exceptions.ErrRelativeIdentityRequired(nil)
		}
		dateOfBirth, err := utils.ParseDate(request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		relative.Name = request.Name
		relative.PhoneNumber = request.PhoneNumber
		relative.Gender = request.Gender
		relative.DateOfBirth = &dateOfBirth
	}

	matched, err := uc.AccountRepository.AddRelative(ctx, owner.ID, relative)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrAccountNotExist(nil)
	}

	uc.Log.Info("relativeUsecase.AddRelative succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, owner.ID.Hex()),
		zap.String(constvars.LoggingRelativeIDKey, relative.ID.Hex()),
	)

	response := utils.MapRelativeToResponse(relative)
	return &response, nil
}

// resolveLinkedAccount accepts a link only to another patient account whose
// phone number the owner already knows. Every refusal returns the same error.
func (uc *relativeUsecase) resolveLinkedAccount(ctx context.Context, owner *models.Account, request *requests.CreateRelative) (*models.Account, error) {
	if request.AccountID == "" || request.PhoneNumber == "" {
		return nil, exceptions.ErrRelativeAccountNotFound(nil)
	}
	objectID, err := primitive.ObjectIDFromHex(request.AccountID)
	if err != nil {
		return nil, exceptions.ErrRelativeAccountNotFound(err)
	}
	if objectID == owner.ID {
		return nil, exceptions.ErrRelativeAccountNotFound(nil)
	}
	linked, err := uc.AccountRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if linked == nil || linked.IsDeleted() || linked.Role != models.RoleUser {
		return nil, exceptions.ErrRelativeAccountNotFound(nil)
	}
	if utils.NormalizePhoneNumber(linked.PhoneNumber) != request.PhoneNumber {
		return nil, exceptions.ErrRelativeAccountNotFound(nil)
	}
	return linked, nil
}

func (uc *relativeUsecase) ListRelatives(ctx context.Context, owner *models.Identity) ([]responses.Relative, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("relativeUsecase.ListRelatives called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, owner.ID.Hex()),
	)

	account, err := uc.findOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return utils.MapRelativesToResponse(account.Relatives), nil
}

func (uc *relativeUsecase) GetRelative(ctx context.Context, owner *models.Identity, relativeID primitive.ObjectID) (*responses.Relative, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("relativeUsecase.GetRelative called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRelativeIDKey, relativeID.Hex()),
	)

	account, err := uc.findOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	relative := account.FindRelative(relativeID)
	if relative == nil {
		return nil, exceptions.ErrRelativeNotFound(nil)
	}
	response := utils.MapRelativeToResponse(relative)
	return &response, nil
}

func (uc *relativeUsecase) UpdateRelative(ctx context.Context, owner *models.Identity, relativeID primitive.ObjectID, request *requests.UpdateRelative) (*responses.Relative, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("relativeUsecase.UpdateRelative called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRelativeIDKey, relativeID.Hex()),
	)

	account, err := uc.findOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !account.OwnsRelative(relativeID) {
		return nil, exceptions.ErrRelativeNotFound(nil)
	}

	update := &models.RelativeUpdate{
		Name:        request.Name,
		PhoneNumber: request.PhoneNumber,
		Gender:      request.Gender,
		BloodGroup:  request.BloodGroup,
	}
	if request.Relationship != nil {
		relationship := models.Relationship(*request.Relationship)
		if !relationship.IsValid() {
			return nil, exceptions.ErrInputValidation(nil)
		}
		update.Relationship = &relationship
	}
	if request.DateOfBirth != nil {
		dateOfBirth, err := utils.ParseDate(*request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		update.DateOfBirth = &dateOfBirth
	}

	if !update.IsEmpty() {
		matched, err := uc.AccountRepository.UpdateRelative(ctx, owner.ID, relativeID, update)
		if err != nil {
			return nil, err
		}
		if !matched {
			return nil, exceptions.ErrRelativeNotFound(nil)
		}
		account, err = uc.findOwner(ctx, owner)
		if err != nil {
			return nil, err
		}
	}

	relative := account.FindRelative(relativeID)
	if relative == nil {
		return nil, exceptions.ErrRelativeNotFound(nil)
	}
	response := utils.MapRelativeToResponse(relative)
	return &response, nil
}

// RemoveRelative detaches the relative only. Its reports are retained and stay
// reachable by their author and by admins.
func (uc *relativeUsecase) RemoveRelative(ctx context.Context, owner *models.Identity, relativeID primitive.ObjectID) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("relativeUsecase.RemoveRelative called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRelativeIDKey, relativeID.Hex()),
	)

	if _, err := uc.findOwner(ctx, owner); err != nil {
		return err
	}

	matched, err := uc.AccountRepository.RemoveRelative(ctx, owner.ID, relativeID)
	if err != nil {
		return err
	}
	if !matched {
		return exceptions.ErrRelativeNotFound(nil)
	}

	uc.Log.Info("relativeUsecase.RemoveRelative succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, owner.ID.Hex()),
		zap.String(constvars.LoggingRelativeIDKey, relativeID.Hex()),
	)
	return nil
}
