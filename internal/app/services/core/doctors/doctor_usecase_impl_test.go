package doctors

import (
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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func assertClientMessage(t *testing.T, err error, expected string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	assert.Equal(t, expected, customErr.ClientMessage)
}

func raoRequest() *requests.CreateDoctor {
	return &requests.CreateDoctor{
		FirstName:       "Meera",
		LastName:        "Rao",
		Email:           "rao@example.com",
		PhoneNumber:     "9100000001",
		Password:        "doctor123",
		Specialization:  "Haematology",
		Qualification:   "MD",
		ExperienceYears: 12,
	}
}

func TestCreateDoctor(t *testing.T) {
	t.Run("Hashes Password", func(t *testing.T) {
		doctors := new(mocks.MockDoctorRepository)
		uc := NewDoctorUsecase(doctors, zap.NewNop())
		doctorID := primitive.NewObjectID()
		var stored *models.Doctor

		doctors.On("FindByEmail", mock.Anything, "rao@example.com").Return(nil, nil)
		doctors.On("CreateDoctor", mock.Anything, mock.AnythingOfType("*models.Doctor")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*models.Doctor) }).
			Return(doctorID, nil)

		response, err := uc.CreateDoctor(context.Background(), raoRequest())

		require.NoError(t, err)
		assert.Equal(t, doctorID.Hex(), response.ID)
		assert.Equal(t, "doctor", response.Role)
		assert.Equal(t, "Meera Rao", response.FullName)
		assert.True(t, utils.CheckPasswordHash("doctor123", stored.Password))
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("Email Already Bound", func(t *testing.T) {
		doctors := new(mocks.MockDoctorRepository)
		uc := NewDoctorUsecase(doctors, zap.NewNop())

		doctors.On("FindByEmail", mock.Anything, "rao@example.com").Return(&models.Doctor{}, nil)

		_, err := uc.CreateDoctor(context.Background(), raoRequest())

		assertClientMessage(t, err, constvars.ErrClientEmailAlreadyExists)
		doctors.AssertNotCalled(t, "CreateDoctor", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Key On Insert", func(t *testing.T) {
		doctors := new(mocks.MockDoctorRepository)
		uc := NewDoctorUsecase(doctors, zap.NewNop())

		doctors.On("FindByEmail", mock.Anything, "rao@example.com").Return(nil, nil)
		doctors.On("CreateDoctor", mock.Anything, mock.Anything).
			Return(primitive.NilObjectID, fmt.Errorf("%w: E11000", exceptions.ErrDuplicateDocument))

		_, err := uc.CreateDoctor(context.Background(), raoRequest())

		assertClientMessage(t, err, constvars.ErrClientEmailAlreadyExists)
	})
}

func TestListDoctors(t *testing.T) {
	doctors := new(mocks.MockDoctorRepository)
	uc := NewDoctorUsecase(doctors, zap.NewNop())
	pagination := models.Pagination{Page: 1, PageSize: 20}

	doctors.On("ListDoctors", mock.Anything, pagination).Return([]models.Doctor{
		{ID: primitive.NewObjectID(), FirstName: "Meera", LastName: "Rao"},
		{ID: primitive.NewObjectID(), FirstName: "Vikram", LastName: "Shah"},
	}, int64(2), nil)

	result, total, err := uc.ListDoctors(context.Background(), pagination)

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, result, 2)
	assert.Equal(t, "Meera Rao", result[0].FullName)
}

func TestGetDoctorProfile(t *testing.T) {
	t.Run("Doctor Reads Own Profile", func(t *testing.T) {
		doctors := new(mocks.MockDoctorRepository)
		uc := NewDoctorUsecase(doctors, zap.NewNop())
		doctor := &models.Doctor{ID: primitive.NewObjectID(), FirstName: "Meera", LastName: "Rao", Email: "rao@example.com"}

		doctors.On("FindByID", mock.Anything, doctor.ID).Return(doctor, nil)

		response, err := uc.GetProfile(context.Background(), doctor.ToIdentity(constvars.DirectoryDoctors))

		require.NoError(t, err)
		assert.Equal(t, "rao@example.com", response.Email)
	})

	t.Run("Account Identity Is Forbidden", func(t *testing.T) {
		doctors := new(mocks.MockDoctorRepository)
		uc := NewDoctorUsecase(doctors, zap.NewNop())
		identity := &models.Identity{ID: primitive.NewObjectID(), Role: models.RoleAdmin, Directory: constvars.DirectoryAccounts}

		_, err := uc.GetProfile(context.Background(), identity)

		assertClientMessage(t, err, constvars.ErrClientForbidden)
	})
}
