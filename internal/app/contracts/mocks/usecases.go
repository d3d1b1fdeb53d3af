package mocks

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.RegisterUser)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Login, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Login)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) LoginAdmin(ctx context.Context, request *requests.LoginWithEmail) (*responses.Login, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Login)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) LoginDoctor(ctx context.Context, request *requests.LoginWithEmail) (*responses.Login, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Login)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, credential *models.Credential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *MockAuthUsecase) ChangePassword(ctx context.Context, identity *models.Identity, credential *models.Credential, request *requests.ChangePassword) error {
	args := m.Called(ctx, identity, credential, request)
	return args.Error(0)
}

func (m *MockAuthUsecase) ResolveIdentity(ctx context.Context, credential *models.Credential) (*models.Identity, error) {
	args := m.Called(ctx, credential)
	identity, _ := args.Get(0).(*models.Identity)
	return identity, args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, identity *models.Identity) (*responses.UserProfile, error) {
	args := m.Called(ctx, identity)
	profile, _ := args.Get(0).(*responses.UserProfile)
	return profile, args.Error(1)
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, identity *models.Identity, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	args := m.Called(ctx, identity, request)
	profile, _ := args.Get(0).(*responses.UserProfile)
	return profile, args.Error(1)
}

type MockRelativeUsecase struct {
	mock.Mock
}

func (m *MockRelativeUsecase) AddRelative(ctx context.Context, owner *models.Identity, request *requests.CreateRelative) (*responses.Relative, error) {
	args := m.Called(ctx, owner, request)
	relative, _ := args.Get(0).(*responses.Relative)
	return relative, args.Error(1)
}

func (m *MockRelativeUsecase) ListRelatives(ctx context.Context, owner *models.Identity) ([]responses.Relative, error) {
	args := m.Called(ctx, owner)
	relatives, _ := args.Get(0).([]responses.Relative)
	return relatives, args.Error(1)
}

func (m *MockRelativeUsecase) GetRelative(ctx context.Context, owner *models.Identity, relativeID primitive.ObjectID) (*responses.Relative, error) {
	args := m.Called(ctx, owner, relativeID)
	relative, _ := args.Get(0).(*responses.Relative)
	return relative, args.Error(1)
}

func (m *MockRelativeUsecase) UpdateRelative(ctx context.Context, owner *models.Identity, relativeID primitive.ObjectID, request *requests.UpdateRelative) (*responses.Relative, error) {
	args := m.Called(ctx, owner, relativeID, request)
	relative, _ := args.Get(0).(*responses.Relative)
	return relative, args.Error(1)
}

func (m *MockRelativeUsecase) RemoveRelative(ctx context.Context, owner *models.Identity, relativeID primitive.ObjectID) error {
	args := m.Called(ctx, owner, relativeID)
	return args.Error(0)
}

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	args := m.Called(ctx, request)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorUsecase) ListDoctors(ctx context.Context, pagination models.Pagination) ([]responses.Doctor, int64, error) {
	args := m.Called(ctx, pagination)
	doctors, _ := args.Get(0).([]responses.Doctor)
	return doctors, args.Get(1).(int64), args.Error(2)
}

func (m *MockDoctorUsecase) GetProfile(ctx context.Context, identity *models.Identity) (*responses.Doctor, error) {
	args := m.Called(ctx, identity)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

type MockHealthReportUsecase struct {
	mock.Mock
}

func (m *MockHealthReportUsecase) CreateHealthReport(ctx context.Context, actor *models.Identity, request *requests.CreateHealthReport) (*responses.HealthReport, error) {
	args := m.Called(ctx, actor, request)
	report, _ := args.Get(0).(*responses.HealthReport)
	return report, args.Error(1)
}

func (m *MockHealthReportUsecase) GetHealthReport(ctx context.Context, actor *models.Identity, reportID string) (*responses.HealthReport, error) {
	args := m.Called(ctx, actor, reportID)
	report, _ := args.Get(0).(*responses.HealthReport)
	return report, args.Error(1)
}

func (m *MockHealthReportUsecase) UpdateHealthReport(ctx context.Context, actor *models.Identity, reportID string, request *requests.UpdateHealthReport) (*responses.HealthReport, error) {
	args := m.Called(ctx, actor, reportID, request)
	report, _ := args.Get(0).(*responses.HealthReport)
	return report, args.Error(1)
}

func (m *MockHealthReportUsecase) DeleteHealthReport(ctx context.Context, actor *models.Identity, reportID string) error {
	args := m.Called(ctx, actor, reportID)
	return args.Error(0)
}

func (m *MockHealthReportUsecase) UploadAttachment(ctx context.Context, actor *models.Identity, reportID string, request *requests.UploadAttachment, body io.Reader) (*responses.HealthReport, error) {
	args := m.Called(ctx, actor, reportID, request, body)
	report, _ := args.Get(0).(*responses.HealthReport)
	return report, args.Error(1)
}

func (m *MockHealthReportUsecase) ListAllHealthReports(ctx context.Context, actor *models.Identity, reportType models.ReportType, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
	args := m.Called(ctx, actor, reportType, pagination)
	reports, _ := args.Get(0).([]responses.HealthReport)
	return reports, args.Get(1).(int64), args.Error(2)
}

func (m *MockHealthReportUsecase) ListByDoctor(ctx context.Context, actor *models.Identity, doctorID primitive.ObjectID, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
	args := m.Called(ctx, actor, doctorID, pagination)
	reports, _ := args.Get(0).([]responses.HealthReport)
	return reports, args.Get(1).(int64), args.Error(2)
}

func (m *MockHealthReportUsecase) ListByPatient(ctx context.Context, actor *models.Identity, patientID primitive.ObjectID, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
	args := m.Called(ctx, actor, patientID, pagination)
	reports, _ := args.Get(0).([]responses.HealthReport)
	return reports, args.Get(1).(int64), args.Error(2)
}

func (m *MockHealthReportUsecase) ListByRelative(ctx context.Context, actor *models.Identity, ownerID, relativeID primitive.ObjectID, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
	args := m.Called(ctx, actor, ownerID, relativeID, pagination)
	reports, _ := args.Get(0).([]responses.HealthReport)
	return reports, args.Get(1).(int64), args.Error(2)
}

type MockCampUsecase struct {
	mock.Mock
}

func (m *MockCampUsecase) CreateCamp(ctx context.Context, actor *models.Identity, request *requests.CreateCamp) (*responses.Camp, error) {
	args := m.Called(ctx, actor, request)
	camp, _ := args.Get(0).(*responses.Camp)
	return camp, args.Error(1)
}

func (m *MockCampUsecase) ListCamps(ctx context.Context, pagination models.Pagination) ([]responses.Camp, int64, error) {
	args := m.Called(ctx, pagination)
	camps, _ := args.Get(0).([]responses.Camp)
	return camps, args.Get(1).(int64), args.Error(2)
}

func (m *MockCampUsecase) GetCamp(ctx context.Context, campID primitive.ObjectID) (*responses.Camp, error) {
	args := m.Called(ctx, campID)
	camp, _ := args.Get(0).(*responses.Camp)
	return camp, args.Error(1)
}

func (m *MockCampUsecase) UpdateCamp(ctx context.Context, campID primitive.ObjectID, request *requests.UpdateCamp) (*responses.Camp, error) {
	args := m.Called(ctx, campID, request)
	camp, _ := args.Get(0).(*responses.Camp)
	return camp, args.Error(1)
}

func (m *MockCampUsecase) DeleteCamp(ctx context.Context, campID primitive.ObjectID) error {
	args := m.Called(ctx, campID)
	return args.Error(0)
}
