package auth

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/contracts/mocks"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
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

type testDeps struct {
	accounts    *mocks.MockAccountRepository
	doctors     *mocks.MockDoctorRepository
	credentials *mocks.MockCredentialManager
	revocation  *mocks.MockRevocationService
	metrics     *mocks.MetricsRecorder
}

func newTestUsecase(now time.Time) (*authUsecase, *testDeps) {
	deps := &testDeps{
		accounts:    new(mocks.MockAccountRepository),
		doctors:     new(mocks.MockDoctorRepository),
		credentials: new(mocks.MockCredentialManager),
		revocation:  new(mocks.MockRevocationService),
		metrics:     mocks.NewMetricsRecorder(),
	}
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.ExpTimeInHour = 24

	uc := NewAuthUsecase(
		deps.accounts,
		deps.doctors,
		deps.credentials,
		deps.revocation,
		deps.metrics,
		internalConfig,
		zap.NewNop(),
	).(*authUsecase)
	uc.now = func() time.Time { return now }
	return uc, deps
}

func assertClientMessage(t *testing.T, err error, expected string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	assert.Equal(t, expected, customErr.ClientMessage)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func ashaRegistration() *requests.RegisterUser {
	return &requests.RegisterUser{
		FirstName:   "Asha",
		LastName:    "Kumari",
		Email:       "asha@example.com",
		PhoneNumber: "9000000001",
		Password:    "secret123",
		DateOfBirth: "1994-03-12",
		Gender:      "female",
	}
}

func TestRegisterUser(t *testing.T) {
	t.Run("Stores Hash And Fixes Role", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		request := ashaRegistration()
		accountID := primitive.NewObjectID()
		var stored *models.Account

		deps.accounts.On("FindByEmail", mock.Anything, request.Email).Return(nil, nil)
		deps.accounts.On("FindByPhoneNumber", mock.Anything, request.PhoneNumber).Return(nil, nil)
		deps.accounts.On("CreateAccount", mock.Anything, mock.AnythingOfType("*models.Account")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*models.Account) }).
			Return(accountID, nil)

		response, err := uc.RegisterUser(context.Background(), request)

		require.NoError(t, err)
		assert.Equal(t, accountID.Hex(), response.ID)
		assert.Equal(t, "user", response.Role)
		require.NotNil(t, stored)
		assert.NotEqual(t, request.Password, stored.Password)
		assert.True(t, utils.CheckPasswordHash(request.Password, stored.Password))
		assert.False(t, utils.CheckPasswordHash("secret124", stored.Password))
		assert.Equal(t, models.RoleUser, stored.Role)
		assert.Empty(t, stored.Relatives)
		deps.accounts.AssertExpectations(t)
	})

	t.Run("Email Already Bound", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		request := ashaRegistration()

		deps.accounts.On("FindByEmail", mock.Anything, request.Email).Return(&models.Account{}, nil)

		_, err := uc.RegisterUser(context.Background(), request)

		assertClientMessage(t, err, constvars.ErrClientEmailAlreadyExists)
		deps.accounts.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	})

	t.Run("Phone Already Bound", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		request := ashaRegistration()

		deps.accounts.On("FindByEmail", mock.Anything, request.Email).Return(nil, nil)
		deps.accounts.On("FindByPhoneNumber", mock.Anything, request.PhoneNumber).Return(&models.Account{}, nil)

		_, err := uc.RegisterUser(context.Background(), request)

		assertClientMessage(t, err, constvars.ErrClientPhoneNumberAlreadyExists)
		deps.accounts.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	})

	t.Run("Unique Index Race", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		request := ashaRegistration()

		deps.accounts.On("FindByEmail", mock.Anything, request.Email).Return(nil, nil)
		deps.accounts.On("FindByPhoneNumber", mock.Anything, request.PhoneNumber).Return(nil, nil)
		deps.accounts.On("CreateAccount", mock.Anything, mock.Anything).
			Return(primitive.NilObjectID, exceptions.ErrDuplicateDocument)

		_, err := uc.RegisterUser(context.Background(), request)

		assertClientMessage(t, err, constvars.ErrClientEmailAlreadyExists)
	})

	t.Run("Unique Index Race On Phone Number", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		request := ashaRegistration()

		deps.accounts.On("FindByEmail", mock.Anything, request.Email).Return(nil, nil)
		deps.accounts.On("FindByPhoneNumber", mock.Anything, request.PhoneNumber).Return(nil, nil)
		deps.accounts.On("CreateAccount", mock.Anything, mock.Anything).
			Return(primitive.NilObjectID, fmt.Errorf("%w: E11000", exceptions.ErrDuplicatePhoneNumber))

		_, err := uc.RegisterUser(context.Background(), request)

		assertClientMessage(t, err, constvars.ErrClientPhoneNumberAlreadyExists)
	})
}

func TestRegisterThenLogin_Asha(t *testing.T) {
	uc, deps := newTestUsecase(time.Now())
	request := ashaRegistration()
	accountID := primitive.NewObjectID()
	var stored *models.Account

	deps.accounts.On("FindByEmail", mock.Anything, request.Email).Return(nil, nil)
	deps.accounts.On("FindByPhoneNumber", mock.Anything, request.PhoneNumber).Return(nil, nil).Once()
	deps.accounts.On("CreateAccount", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Account)
			stored.ID = accountID
		}).
		Return(accountID, nil)

	_, err := uc.RegisterUser(context.Background(), request)
	require.NoError(t, err)

	deps.accounts.On("FindByPhoneNumber", mock.Anything, "9000000001").Return(stored, nil)
	deps.credentials.On("CreateToken", mock.Anything, &contracts.CreateTokenInput{
		Subject:   accountID.Hex(),
		Directory: constvars.DirectoryAccounts,
	}).Return(&contracts.CreateTokenOutput{Token: "signed", TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	login, err := uc.LoginUser(context.Background(), &requests.LoginUser{PhoneNumber: "9000000001", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "signed", login.Token)
	assert.Equal(t, "user", login.Account.Role)
	assert.Equal(t, "Asha Kumari", login.Account.Name)
}

func TestLoginUser_Failures(t *testing.T) {
	user := &models.Account{ID: primitive.NewObjectID(), Role: models.RoleUser, Password: hashed(t, "secret123")}
	admin := &models.Account{ID: primitive.NewObjectID(), Role: models.RoleAdmin, Password: hashed(t, "secret123")}

	tests := []struct {
		name     string
		account  *models.Account
		password string
	}{
		{"Unknown Phone", nil, "secret123"},
		{"Wrong Password", user, "wrong-password"},
		{"Admin On User Route", admin, "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUsecase(time.Now())
			deps.accounts.On("FindByPhoneNumber", mock.Anything, "9000000001").Return(tt.account, nil)

			_, err := uc.LoginUser(context.Background(), &requests.LoginUser{PhoneNumber: "9000000001", Password: tt.password})

			assertClientMessage(t, err, constvars.ErrClientInvalidCredentials)
			deps.credentials.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything)
			assert.Equal(t, 1, deps.metrics.AuthFailureCount(authFailureInvalidCredentials))
		})
	}
}

// A relative lives inside its owner's document; the phone lookup only matches
// top level accounts, so a relative's phone never yields a credential.
func TestLoginUser_RelativeCannotLogin(t *testing.T) {
	uc, deps := newTestUsecase(time.Now())
	relativePhone := "9000000009"
	deps.accounts.On("FindByPhoneNumber", mock.Anything, relativePhone).Return(nil, nil)

	for _, password := range []string{"", "secret123", "anything"} {
		_, err := uc.LoginUser(context.Background(), &requests.LoginUser{PhoneNumber: relativePhone, Password: password})
		assertClientMessage(t, err, constvars.ErrClientInvalidCredentials)
	}
	deps.credentials.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything)
}

func TestLoginAdmin(t *testing.T) {
	admin := &models.Account{ID: primitive.NewObjectID(), Email: "admin@chanv.org", Role: models.RoleAdmin, Password: hashed(t, "adminpass")}
	user := &models.Account{ID: primitive.NewObjectID(), Email: "asha@example.com", Role: models.RoleUser, Password: hashed(t, "secret123")}

	t.Run("Success", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		deps.accounts.On("FindByEmail", mock.Anything, admin.Email).Return(admin, nil)
		deps.credentials.On("CreateToken", mock.Anything, mock.Anything).
			Return(&contracts.CreateTokenOutput{Token: "signed"}, nil)

		login, err := uc.LoginAdmin(context.Background(), &requests.LoginWithEmail{Email: admin.Email, Password: "adminpass"})

		require.NoError(t, err)
		assert.Equal(t, "admin", login.Account.Role)
	})

	t.Run("User On Admin Route", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		deps.accounts.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		_, err := uc.LoginAdmin(context.Background(), &requests.LoginWithEmail{Email: user.Email, Password: "secret123"})

		assertClientMessage(t, err, constvars.ErrClientInvalidCredentials)
	})
}

func TestLoginDoctor(t *testing.T) {
	doctor := &models.Doctor{ID: primitive.NewObjectID(), FirstName: "Dr.", LastName: "Rao", Email: "rao@chanv.org", Password: hashed(t, "doctorpass")}

	t.Run("Success Uses Doctor Directory", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		deps.doctors.On("FindByEmail", mock.Anything, doctor.Email).Return(doctor, nil)
		deps.credentials.On("CreateToken", mock.Anything, &contracts.CreateTokenInput{
			Subject:   doctor.ID.Hex(),
			Directory: constvars.DirectoryDoctors,
		}).Return(&contracts.CreateTokenOutput{Token: "signed"}, nil)

		login, err := uc.LoginDoctor(context.Background(), &requests.LoginWithEmail{Email: doctor.Email, Password: "doctorpass"})

		require.NoError(t, err)
		assert.Equal(t, "doctor", login.Account.Role)
		deps.credentials.AssertExpectations(t)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		deps.doctors.On("FindByEmail", mock.Anything, doctor.Email).Return(doctor, nil)

		_, err := uc.LoginDoctor(context.Background(), &requests.LoginWithEmail{Email: doctor.Email, Password: "nope"})

		assertClientMessage(t, err, constvars.ErrClientInvalidCredentials)
	})
}

func TestLogout(t *testing.T) {
	uc, deps := newTestUsecase(time.Now())
	credential := &models.Credential{TokenID: "jti"}
	deps.revocation.On("RevokeCredential", mock.Anything, credential).Return(nil)

	err := uc.Logout(context.Background(), credential)

	require.NoError(t, err)
	deps.revocation.AssertExpectations(t)
}

func TestChangePassword(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	accountID := primitive.NewObjectID()
	identity := &models.Identity{ID: accountID, Role: models.RoleUser, Directory: constvars.DirectoryAccounts}
	credential := &models.Credential{TokenID: "jti", Subject: accountID.Hex()}

	newAccount := func() *models.Account {
		return &models.Account{ID: accountID, Role: models.RoleUser, Password: hashed(t, "secret123")}
	}

	t.Run("Success Revokes Outstanding Credentials", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.accounts.On("FindByID", mock.Anything, accountID).Return(newAccount(), nil)
		deps.accounts.On("UpdatePassword", mock.Anything, accountID, mock.MatchedBy(func(hash string) bool {
			return utils.CheckPasswordHash("newsecret1", hash)
		})).Return(nil)
		deps.revocation.On("RevokeCredential", mock.Anything, credential).Return(nil)
		deps.revocation.On("RevokeAccountCredentials", mock.Anything, accountID.Hex(), now, 24*time.Hour).Return(nil)

		err := uc.ChangePassword(context.Background(), identity, credential, &requests.ChangePassword{
			CurrentPassword: "secret123",
			NewPassword:     "newsecret1",
		})

		require.NoError(t, err)
		deps.accounts.AssertExpectations(t)
		deps.revocation.AssertExpectations(t)
	})

	t.Run("Wrong Current Password", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.accounts.On("FindByID", mock.Anything, accountID).Return(newAccount(), nil)

		err := uc.ChangePassword(context.Background(), identity, credential, &requests.ChangePassword{
			CurrentPassword: "wrong",
			NewPassword:     "newsecret1",
		})

		assertClientMessage(t, err, constvars.ErrClientInvalidCredentials)
		deps.accounts.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Same Password", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.accounts.On("FindByID", mock.Anything, accountID).Return(newAccount(), nil)

		err := uc.ChangePassword(context.Background(), identity, credential, &requests.ChangePassword{
			CurrentPassword: "secret123",
			NewPassword:     "secret123",
		})

		assertClientMessage(t, err, constvars.ErrClientSamePassword)
	})

	t.Run("Doctor Directory Is Rejected", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		doctorIdentity := &models.Identity{ID: accountID, Role: models.RoleDoctor, Directory: constvars.DirectoryDoctors}

		err := uc.ChangePassword(context.Background(), doctorIdentity, credential, &requests.ChangePassword{
			CurrentPassword: "secret123",
			NewPassword:     "newsecret1",
		})

		assertClientMessage(t, err, constvars.ErrClientForbidden)
		deps.accounts.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestResolveIdentity(t *testing.T) {
	accountID := primitive.NewObjectID()

	t.Run("Account Resolves With Stored Role", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		deps.accounts.On("FindByID", mock.Anything, accountID).
			Return(&models.Account{ID: accountID, Email: "admin@chanv.org", Role: models.RoleAdmin}, nil)

		identity, err := uc.ResolveIdentity(context.Background(), &models.Credential{Subject: accountID.Hex(), Directory: constvars.DirectoryAccounts})

		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, identity.Role)
		assert.Equal(t, "admin@chanv.org", identity.Email)
	})

	t.Run("Doctor Resolves As Doctor", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		deps.doctors.On("FindByID", mock.Anything, accountID).Return(&models.Doctor{ID: accountID}, nil)

		identity, err := uc.ResolveIdentity(context.Background(), &models.Credential{Subject: accountID.Hex(), Directory: constvars.DirectoryDoctors})

		require.NoError(t, err)
		assert.Equal(t, models.RoleDoctor, identity.Role)
		assert.Equal(t, constvars.DirectoryDoctors, identity.Directory)
	})

	t.Run("Deleted Account", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		deps.accounts.On("FindByID", mock.Anything, accountID).Return(nil, nil)

		_, err := uc.ResolveIdentity(context.Background(), &models.Credential{Subject: accountID.Hex(), Directory: constvars.DirectoryAccounts})

		assertClientMessage(t, err, constvars.ErrClientAccountNotFound)
	})

	t.Run("Subject Is Not An ObjectID", func(t *testing.T) {
		uc, _ := newTestUsecase(time.Now())

		_, err := uc.ResolveIdentity(context.Background(), &models.Credential{Subject: "nope", Directory: constvars.DirectoryAccounts})

		assertClientMessage(t, err, constvars.ErrClientTokenInvalid)
	})
}
