package main

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/contracts/mocks"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var adminSeed = config.Seed{
	AdminFirstName: "Camp",
	AdminLastName:  "Admin",
	AdminEmail:     " Admin@Camp.org ",
	AdminPassword:  "s3cret-pass",
}

func TestSeedAdmin_CreatesMissingAdmin(t *testing.T) {
	repo := new(mocks.MockAccountRepository)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	var stored *models.Account
	repo.On("FindByEmail", mock.Anything, "admin@camp.org").Return(nil, nil)
	repo.On("CreateAccount", mock.Anything, mock.AnythingOfType("*models.Account")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*models.Account) }).
		Return(primitive.NewObjectID(), nil)

	created, err := seedAdmin(context.Background(), repo, adminSeed, now)

	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, stored)
	assert.Equal(t, models.RoleAdmin, stored.Role)
	assert.Equal(t, "admin@camp.org", stored.Email)
	assert.NotEqual(t, adminSeed.AdminPassword, stored.Password)
	assert.True(t, utils.CheckPasswordHash(adminSeed.AdminPassword, stored.Password))
	assert.Equal(t, now, stored.CreatedAt)
	repo.AssertExpectations(t)
}

func TestSeedAdmin_SkipsExistingAccount(t *testing.T) {
	repo := new(mocks.MockAccountRepository)
	repo.On("FindByEmail", mock.Anything, "admin@camp.org").Return(&models.Account{Role: models.RoleAdmin}, nil)

	created, err := seedAdmin(context.Background(), repo, adminSeed, time.Now())

	require.NoError(t, err)
	assert.False(t, created)
	repo.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestSeedAdmin_RequiresEmailAndPassword(t *testing.T) {
	repo := new(mocks.MockAccountRepository)
	seed := adminSeed
	seed.AdminPassword = ""

	_, err := seedAdmin(context.Background(), repo, seed, time.Now())

	assert.ErrorIs(t, err, errSeedAdminIncomplete)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestSeedAdmin_PropagatesLookupError(t *testing.T) {
	repo := new(mocks.MockAccountRepository)
	lookupErr := errors.New("connection reset")
	repo.On("FindByEmail", mock.Anything, "admin@camp.org").Return(nil, lookupErr)

	_, err := seedAdmin(context.Background(), repo, adminSeed, time.Now())

	assert.ErrorIs(t, err, lookupErr)
}
