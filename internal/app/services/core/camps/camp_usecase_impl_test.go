package camps

import (
	"chanv-service/internal/app/contracts/mocks"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

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

func intPtr(value int) *int {
	return &value
}

func TestCreateCamp(t *testing.T) {
	admin := &models.Identity{ID: primitive.NewObjectID(), Role: models.RoleAdmin, Directory: constvars.DirectoryAccounts}
	doctorID := primitive.NewObjectID()

	t.Run("Resolves Doctors", func(t *testing.T) {
		campsRepo := new(mocks.MockCampRepository)
		doctors := new(mocks.MockDoctorRepository)
		uc := NewCampUsecase(campsRepo, doctors, zap.NewNop())
		campID := primitive.NewObjectID()

		doctors.On("CountByIDs", mock.Anything, []primitive.ObjectID{doctorID}).Return(int64(1), nil)
		campsRepo.On("CreateCamp", mock.Anything, mock.MatchedBy(func(camp *models.Camp) bool {
			return camp.CreatedBy == admin.ID && camp.Capacity == 150 && len(camp.DoctorIDs) == 1
		})).Return(campID, nil)

		response, err := uc.CreateCamp(context.Background(), admin, &requests.CreateCamp{
			Name:      "Village Camp",
			Location:  "Hosur",
			Date:      "2024-07-14",
			DoctorIDs: []string{doctorID.Hex(), doctorID.Hex()},
			Capacity:  150,
		})

		require.NoError(t, err)
		assert.Equal(t, campID.Hex(), response.ID)
		assert.Equal(t, "2024-07-14", response.Date)
		assert.Equal(t, []string{doctorID.Hex()}, response.DoctorIDs)
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		campsRepo := new(mocks.MockCampRepository)
		doctors := new(mocks.MockDoctorRepository)
		uc := NewCampUsecase(campsRepo, doctors, zap.NewNop())

		doctors.On("CountByIDs", mock.Anything, mock.Anything).Return(int64(0), nil)

		_, err := uc.CreateCamp(context.Background(), admin, &requests.CreateCamp{
			Name:      "Village Camp",
			Location:  "Hosur",
			Date:      "2024-07-14",
			DoctorIDs: []string{doctorID.Hex()},
			Capacity:  150,
		})

		assertClientMessage(t, err, constvars.ErrClientDoctorNotFound)
		campsRepo.AssertNotCalled(t, "CreateCamp", mock.Anything, mock.Anything)
	})

	t.Run("Capacity Must Be Positive", func(t *testing.T) {
		uc := NewCampUsecase(new(mocks.MockCampRepository), new(mocks.MockDoctorRepository), zap.NewNop())

		_, err := uc.CreateCamp(context.Background(), admin, &requests.CreateCamp{
			Name:     "Village Camp",
			Location: "Hosur",
			Date:     "2024-07-14",
		})

		assertClientMessage(t, err, constvars.ErrClientCannotProcessRequest)
	})
}

func TestUpdateCamp(t *testing.T) {
	camp := &models.Camp{
		ID:       primitive.NewObjectID(),
		Name:     "Village Camp",
		Date:     time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC),
		Capacity: 150,
	}

	t.Run("Zero Capacity Rejected", func(t *testing.T) {
		campsRepo := new(mocks.MockCampRepository)
		uc := NewCampUsecase(campsRepo, new(mocks.MockDoctorRepository), zap.NewNop())
		campsRepo.On("FindByID", mock.Anything, camp.ID).Return(camp, nil)

		_, err := uc.UpdateCamp(context.Background(), camp.ID, &requests.UpdateCamp{Capacity: intPtr(0)})

		assertClientMessage(t, err, constvars.ErrClientCannotProcessRequest)
		campsRepo.AssertNotCalled(t, "UpdateCamp", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Camp", func(t *testing.T) {
		campsRepo := new(mocks.MockCampRepository)
		uc := NewCampUsecase(campsRepo, new(mocks.MockDoctorRepository), zap.NewNop())
		campsRepo.On("FindByID", mock.Anything, camp.ID).Return(nil, nil)

		_, err := uc.UpdateCamp(context.Background(), camp.ID, &requests.UpdateCamp{Capacity: intPtr(10)})

		assertClientMessage(t, err, constvars.ErrClientCampNotFound)
	})

	t.Run("Patch Capacity", func(t *testing.T) {
		campsRepo := new(mocks.MockCampRepository)
		uc := NewCampUsecase(campsRepo, new(mocks.MockDoctorRepository), zap.NewNop())
		updated := *camp
		updated.Capacity = 200

		campsRepo.On("FindByID", mock.Anything, camp.ID).Return(camp, nil).Once()
		campsRepo.On("UpdateCamp", mock.Anything, camp.ID, mock.MatchedBy(func(update *models.CampUpdate) bool {
			return update.Capacity != nil && *update.Capacity == 200 && update.DoctorIDs == nil
		})).Return(nil)
		campsRepo.On("FindByID", mock.Anything, camp.ID).Return(&updated, nil).Once()

		response, err := uc.UpdateCamp(context.Background(), camp.ID, &requests.UpdateCamp{Capacity: intPtr(200)})

		require.NoError(t, err)
		assert.Equal(t, 200, response.Capacity)
	})
}

func TestDeleteCamp(t *testing.T) {
	campsRepo := new(mocks.MockCampRepository)
	uc := NewCampUsecase(campsRepo, new(mocks.MockDoctorRepository), zap.NewNop())
	campID := primitive.NewObjectID()
	campsRepo.On("FindByID", mock.Anything, campID).Return(&models.Camp{ID: campID}, nil)
	campsRepo.On("DeleteCamp", mock.Anything, campID).Return(nil)

	err := uc.DeleteCamp(context.Background(), campID)

	require.NoError(t, err)
	campsRepo.AssertExpectations(t)
}
