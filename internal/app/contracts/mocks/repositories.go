package mocks

import (
	"chanv-service/internal/app/models"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account *models.Account) (primitive.ObjectID, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, accountID primitive.ObjectID) (*models.Account, error) {
	args := m.Called(ctx, accountID)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := m.Called(ctx, email)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Account, error) {
	args := m.Called(ctx, phoneNumber)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *MockAccountRepository) UpdateProfile(ctx context.Context, accountID primitive.ObjectID, update *models.AccountProfileUpdate) error {
	args := m.Called(ctx, accountID, update)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdatePassword(ctx context.Context, accountID primitive.ObjectID, passwordHash string) error {
	args := m.Called(ctx, accountID, passwordHash)
	return args.Error(0)
}

func (m *MockAccountRepository) AddRelative(ctx context.Context, ownerID primitive.ObjectID, relative *models.Relative) (bool, error) {
	args := m.Called(ctx, ownerID, relative)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) UpdateRelative(ctx context.Context, ownerID, relativeID primitive.ObjectID, update *models.RelativeUpdate) (bool, error) {
	args := m.Called(ctx, ownerID, relativeID, update)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) RemoveRelative(ctx context.Context, ownerID, relativeID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, ownerID, relativeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) AddHealthReportRef(ctx context.Context, accountID primitive.ObjectID, reportID string) error {
	args := m.Called(ctx, accountID, reportID)
	return args.Error(0)
}

func (m *MockAccountRepository) AddRelativeHealthReportRef(ctx context.Context, ownerID, relativeID primitive.ObjectID, reportID string) error {
	args := m.Called(ctx, ownerID, relativeID, reportID)
	return args.Error(0)
}

func (m *MockAccountRepository) RemoveHealthReportRef(ctx context.Context, accountID primitive.ObjectID, reportID string) error {
	args := m.Called(ctx, accountID, reportID)
	return args.Error(0)
}

func (m *MockAccountRepository) RemoveRelativeHealthReportRef(ctx context.Context, ownerID, relativeID primitive.ObjectID, reportID string) error {
	args := m.Called(ctx, ownerID, relativeID, reportID)
	return args.Error(0)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error) {
	args := m.Called(ctx, doctor)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID primitive.ObjectID) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	args := m.Called(ctx, email)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) CountByIDs(ctx context.Context, doctorIDs []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, doctorIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) ListDoctors(ctx context.Context, pagination models.Pagination) ([]models.Doctor, int64, error) {
	args := m.Called(ctx, pagination)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Get(1).(int64), args.Error(2)
}

type MockHealthReportRepository struct {
	mock.Mock
}

func (m *MockHealthReportRepository) CreateHealthReport(ctx context.Context, report *models.HealthReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockHealthReportRepository) FindByReportID(ctx context.Context, reportID string) (*models.HealthReport, error) {
	args := m.Called(ctx, reportID)
	report, _ := args.Get(0).(*models.HealthReport)
	return report, args.Error(1)
}

func (m *MockHealthReportRepository) ListHealthReports(ctx context.Context, filter models.HealthReportFilter, pagination models.Pagination) ([]models.HealthReport, int64, error) {
	args := m.Called(ctx, filter, pagination)
	reports, _ := args.Get(0).([]models.HealthReport)
	return reports, args.Get(1).(int64), args.Error(2)
}

func (m *MockHealthReportRepository) UpdateHealthReport(ctx context.Context, reportID string, update *models.HealthReportUpdate) error {
	args := m.Called(ctx, reportID, update)
	return args.Error(0)
}

func (m *MockHealthReportRepository) AddAttachment(ctx context.Context, reportID string, attachment *models.Attachment) error {
	args := m.Called(ctx, reportID, attachment)
	return args.Error(0)
}

func (m *MockHealthReportRepository) SoftDeleteHealthReport(ctx context.Context, reportID string, deletedAt time.Time) error {
	args := m.Called(ctx, reportID, deletedAt)
	return args.Error(0)
}

type MockCampRepository struct {
	mock.Mock
}

func (m *MockCampRepository) CreateCamp(ctx context.Context, camp *models.Camp) (primitive.ObjectID, error) {
	args := m.Called(ctx, camp)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockCampRepository) FindByID(ctx context.Context, campID primitive.ObjectID) (*models.Camp, error) {
	args := m.Called(ctx, campID)
	camp, _ := args.Get(0).(*models.Camp)
	return camp, args.Error(1)
}

func (m *MockCampRepository) ListCamps(ctx context.Context, pagination models.Pagination) ([]models.Camp, int64, error) {
	args := m.Called(ctx, pagination)
	camps, _ := args.Get(0).([]models.Camp)
	return camps, args.Get(1).(int64), args.Error(2)
}

func (m *MockCampRepository) UpdateCamp(ctx context.Context, campID primitive.ObjectID, update *models.CampUpdate) error {
	args := m.Called(ctx, campID, update)
	return args.Error(0)
}

func (m *MockCampRepository) DeleteCamp(ctx context.Context, campID primitive.ObjectID) error {
	args := m.Called(ctx, campID)
	return args.Error(0)
}
