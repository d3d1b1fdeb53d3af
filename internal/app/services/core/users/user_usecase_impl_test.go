package users

import (
	"chanv-service/internal/app/contracts/mocks"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestUsecase(now time.Time) (*userUsecase, *mocks.MockAccountRepository) {
	accounts := new(mocks.MockAccountRepository)
	uc := NewUserUsecase(accounts, zap.NewNop()).(*userUsecase)
	uc.now = func() time.Time { return now }
	return uc, accounts
}

func assertClientMessage(t *testing.T, err error, expected string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	assert.Equal(t, expected, customErr.ClientMessage)
}

func stringPtr(value string) *string {
	return &value
}

func ashaAccount() *models.Account {
	return &models.Account{
		ID:          primitive.NewObjectID(),
		FirstName:   "Asha",
		LastName:    "Kumari",
		Email:       "asha@example.com",
		PhoneNumber: "9000000001",
		DateOfBirth: time.Date(1994, 3, 12, 0, 0, 0, 0, time.UTC),
		Gender:      "female",
		Role:        models.RoleUser,
		Relatives: []models.Relative{
			{ID: primitive.NewObjectID(), Name: "Ravi", Relationship: models.RelationshipParent},
		},
		HealthReports: []string{"HR-1", "HR-2"},
	}
}

func TestGetProfile(t *testing.T) {
	t.Run("Derives Age And Counts", func(t *testing.T) {
		uc, accounts := newTestUsecase(time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC))
		account := ashaAccount()
		accounts.On("FindByID", mock.Anything, account.ID).Return(account, nil)

		profile, err := uc.GetProfile(context.Background(), account.ToIdentity(constvars.DirectoryAccounts))

		require.NoError(t, err)
		assert.Equal(t, "Asha Kumari", profile.FullName)
		assert.Equal(t, 29, profile.Age)
		assert.Equal(t, "1994-03-12", profile.DateOfBirth)
		assert.Equal(t, 1, profile.RelativeCount)
		assert.Equal(t, 2, profile.HealthReportCount)
	})

	t.Run("Doctor Identity Is Forbidden", func(t *testing.T) {
		uc, accounts := newTestUsecase(time.Now())
		identity := &models.Identity{ID: primitive.NewObjectID(), Role: models.RoleDoctor, Directory: constvars.DirectoryDoctors}

		_, err := uc.GetProfile(context.Background(), identity)

		assertClientMessage(t, err, constvars.ErrClientForbidden)
		accounts.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Account Gone", func(t *testing.T) {
		uc, accounts := newTestUsecase(time.Now())
		identity := &models.Identity{ID: primitive.NewObjectID(), Role: models.RoleUser, Directory: constvars.DirectoryAccounts}
		accounts.On("FindByID", mock.Anything, identity.ID).Return(nil, nil)

		_, err := uc.GetProfile(context.Background(), identity)

		assertClientMessage(t, err, constvars.ErrClientAccountNotFoundResource)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("Only Supplied Fields Change", func(t *testing.T) {
		uc, accounts := newTestUsecase(time.Now())
		account := ashaAccount()
		updated := *account
		updated.LastName = "Rao"

		accounts.On("FindByID", mock.Anything, account.ID).Return(account, nil).Once()
		accounts.On("UpdateProfile", mock.Anything, account.ID, mock.MatchedBy(func(update *models.AccountProfileUpdate) bool {
			return update.LastName != nil && *update.LastName == "Rao" &&
				update.FirstName == nil && update.Email == nil && update.PhoneNumber == nil
		})).Return(nil)
		accounts.On("FindByID", mock.Anything, account.ID).Return(&updated, nil).Once()

		profile, err := uc.UpdateProfile(context.Background(), account.ToIdentity(constvars.DirectoryAccounts), &requests.UpdateProfile{
			LastName: stringPtr("Rao"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", profile.FullName)
		accounts.AssertExpectations(t)
	})

	t.Run("Unchanged Email Skips Uniqueness Check", func(t *testing.T) {
		uc, accounts := newTestUsecase(time.Now())
		account := ashaAccount()

		accounts.On("FindByID", mock.Anything, account.ID).Return(account, nil)
		accounts.On("UpdateProfile", mock.Anything, account.ID, mock.MatchedBy(func(update *models.AccountProfileUpdate) bool {
			return update.Email == nil
		})).Return(nil)

		_, err := uc.UpdateProfile(context.Background(), account.ToIdentity(constvars.DirectoryAccounts), &requests.UpdateProfile{
			Email: stringPtr(account.Email),
		})

		require.NoError(t, err)
		accounts.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Email Taken By Another Account", func(t *testing.T) {
		uc, accounts := newTestUsecase(time.Now())
		account := ashaAccount()

		accounts.On("FindByID", mock.Anything, account.ID).Return(account, nil)
		accounts.On("FindByEmail", mock.Anything, "ravi@example.com").Return(&models.Account{ID: primitive.NewObjectID()}, nil)

		_, err := uc.UpdateProfile(context.Background(), account.ToIdentity(constvars.DirectoryAccounts), &requests.UpdateProfile{
			Email: stringPtr("ravi@example.com"),
		})

		assertClientMessage(t, err, constvars.ErrClientEmailAlreadyExists)
		accounts.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Phone Taken By Another Account", func(t *testing.T) {
		uc, accounts := newTestUsecase(time.Now())
		account := ashaAccount()

		accounts.On("FindByID", mock.Anything, account.ID).Return(account, nil)
		accounts.On("FindByPhoneNumber", mock.Anything, "9000000002").Return(&models.Account{ID: primitive.NewObjectID()}, nil)

		_, err := uc.UpdateProfile(context.Background(), account.ToIdentity(constvars.DirectoryAccounts), &requests.UpdateProfile{
			PhoneNumber: stringPtr("9000000002"),
		})

		assertClientMessage(t, err, constvars.ErrClientPhoneNumberAlreadyExists)
	})

	t.Run("Concurrent Duplicate Is Reported As Conflict", func(t *testing.T) {
		uc, accounts := newTestUsecase(time.Now())
		account := ashaAccount()

		accounts.On("FindByID", mock.Anything, account.ID).Return(account, nil)
		accounts.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		accounts.On("UpdateProfile", mock.Anything, account.ID, mock.Anything).Return(exceptions.ErrDuplicateDocument)

		_, err := uc.UpdateProfile(context.Background(), account.ToIdentity(constvars.DirectoryAccounts), &requests.UpdateProfile{
			Email: stringPtr("new@example.com"),
		})

		assertClientMessage(t, err, constvars.ErrClientEmailAlreadyExists)
	})

	t.Run("Concurrent Phone Duplicate Is Reported As Phone Conflict", func(t *testing.T) {
		uc, accounts := newTestUsecase(time.Now())
		account := ashaAccount()

		accounts.On("FindByID", mock.Anything, account.ID).Return(account, nil)
		accounts.On("FindByPhoneNumber", mock.Anything, "9000000002").Return(nil, nil)
		accounts.On("UpdateProfile", mock.Anything, account.ID, mock.Anything).
			Return(fmt.Errorf("%w: E11000", exceptions.ErrDuplicatePhoneNumber))

		_, err := uc.UpdateProfile(context.Background(), account.ToIdentity(constvars.DirectoryAccounts), &requests.UpdateProfile{
			PhoneNumber: stringPtr("9000000002"),
		})

		assertClientMessage(t, err, constvars.ErrClientPhoneNumberAlreadyExists)
	})
}
