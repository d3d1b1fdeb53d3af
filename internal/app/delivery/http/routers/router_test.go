package routers

import (
	"bytes"
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/contracts/mocks"
	"chanv-service/internal/app/delivery/http/controllers"
	"chanv-service/internal/app/delivery/http/middlewares"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"chanv-service/internal/pkg/exceptions"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type routeFixture struct {
	router      *chi.Mux
	auth        *mocks.MockAuthUsecase
	users       *mocks.MockUserUsecase
	relatives   *mocks.MockRelativeUsecase
	doctors     *mocks.MockDoctorUsecase
	reports     *mocks.MockHealthReportUsecase
	camps       *mocks.MockCampUsecase
	credentials *mocks.MockCredentialManager
	revocations *mocks.MockRevocationService
}

func newRouteFixture() *routeFixture {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT:   config.JWT{CookieName: "token"},
		Minio: config.AppMinio{AttachmentMaxUploadSizeInMB: 1},
	}

	f := &routeFixture{
		auth:        new(mocks.MockAuthUsecase),
		users:       new(mocks.MockUserUsecase),
		relatives:   new(mocks.MockRelativeUsecase),
		doctors:     new(mocks.MockDoctorUsecase),
		reports:     new(mocks.MockHealthReportUsecase),
		camps:       new(mocks.MockCampUsecase),
		credentials: new(mocks.MockCredentialManager),
		revocations: new(mocks.MockRevocationService),
	}

	middlewareInstance := middlewares.NewMiddlewares(logger, nil, f.auth, f.credentials, f.revocations, nil, nil, internalConfig)
	loginLimiter := middlewares.NewRateLimiter(logger, 100, time.Minute, time.Minute)

	authController := controllers.NewAuthController(logger, f.auth, internalConfig)
	userController := controllers.NewUserController(logger, f.users)
	relativeController := controllers.NewRelativeController(logger, f.relatives)
	doctorController := controllers.NewDoctorController(logger, f.doctors)
	healthReportController := controllers.NewHealthReportController(logger, f.reports, internalConfig)
	campController := controllers.NewCampController(logger, f.camps)

	f.router = chi.NewRouter()
	f.router.Route("/user", func(r chi.Router) {
		attachUserRoutes(r, middlewareInstance, loginLimiter, authController, userController, relativeController, healthReportController)
	})
	f.router.Route("/admin", func(r chi.Router) {
		attachAdminRoutes(r, middlewareInstance, loginLimiter, authController, doctorController, campController)
	})
	f.router.Route("/doctor", func(r chi.Router) {
		attachDoctorRoutes(r, middlewareInstance, loginLimiter, authController, doctorController, healthReportController)
	})
	return f
}

// signIn makes the given token resolve to identity through the whole
// credential pipeline.
func (f *routeFixture) signIn(token string, identity *models.Identity) {
	credential := &models.Credential{Token: token, Subject: identity.ID.Hex(), Directory: identity.Directory}
	f.credentials.On("VerifyToken", mock.Anything, token).Return(credential, nil)
	f.revocations.On("IsRevoked", mock.Anything, credential).Return(false, nil)
	f.auth.On("ResolveIdentity", mock.Anything, credential).Return(identity, nil)
}

func (f *routeFixture) serve(method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

var (
	patientIdentity = &models.Identity{ID: primitive.NewObjectID(), Email: "asha@example.com", Role: models.RoleUser, Directory: constvars.DirectoryAccounts}
	doctorIdentity  = &models.Identity{ID: primitive.NewObjectID(), Email: "rao@example.com", Role: models.RoleDoctor, Directory: constvars.DirectoryDoctors}
	adminIdentity   = &models.Identity{ID: primitive.NewObjectID(), Email: "admin@example.com", Role: models.RoleAdmin, Directory: constvars.DirectoryAccounts}
)

func TestUserRouter_Register(t *testing.T) {
	f := newRouteFixture()

	t.Run("Valid registration", func(t *testing.T) {
		f.auth.On("RegisterUser", mock.Anything, mock.AnythingOfType("*requests.RegisterUser")).
			Return(&responses.RegisterUser{ID: primitive.NewObjectID().Hex(), Email: "asha@example.com", Role: "user"}, nil).Once()

		body, _ := json.Marshal(requests.RegisterUser{
			FirstName:   "Asha",
			LastName:    "Kumar",
			Email:       "Asha@Example.com",
			PhoneNumber: "9000000001",
			Password:    "secret123",
			DateOfBirth: "1994-03-12",
			Gender:      "female",
		})
		rr := f.serve(http.MethodPost, "/user/register", "", body)

		assert.Equal(t, http.StatusCreated, rr.Code)
		f.auth.AssertExpectations(t)
	})

	t.Run("Invalid JSON body", func(t *testing.T) {
		rr := f.serve(http.MethodPost, "/user/register", "", []byte("invalid json"))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{"email": "asha@example.com"})
		rr := f.serve(http.MethodPost, "/user/register", "", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.auth.AssertNumberOfCalls(t, "RegisterUser", 1)
	})
}

func TestUserRouter_LoginSetsCredentialCookie(t *testing.T) {
	f := newRouteFixture()
	f.auth.On("LoginUser", mock.Anything, mock.AnythingOfType("*requests.LoginUser")).Return(&responses.Login{
		Token:     "signed-token",
		ExpiresAt: time.Now().Add(time.Hour),
		Account:   responses.AccountSummary{Role: "user"},
	}, nil)

	body, _ := json.Marshal(requests.LoginUser{PhoneNumber: "9000000001", Password: "secret123"})
	rr := f.serve(http.MethodPost, "/user/login", "", body)

	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestUserRouter_ProfileRequiresCredential(t *testing.T) {
	f := newRouteFixture()

	rr := f.serve(http.MethodGet, "/user/profile", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	f.users.AssertNotCalled(t, "GetProfile")
}

func TestUserRouter_LogoutClearsCookie(t *testing.T) {
	f := newRouteFixture()
	f.signIn("patient-token", patientIdentity)
	f.auth.On("Logout", mock.Anything, mock.MatchedBy(func(c *models.Credential) bool {
		return c.Token == "patient-token"
	})).Return(nil)

	rr := f.serve(http.MethodPost, "/user/logout", "patient-token", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestUserRouter_RelativesAreForPatientsOnly(t *testing.T) {
	f := newRouteFixture()
	f.signIn("doctor-token", doctorIdentity)
	f.signIn("patient-token", patientIdentity)
	f.relatives.On("ListRelatives", mock.Anything, patientIdentity).Return([]responses.Relative{}, nil)

	rr := f.serve(http.MethodGet, "/user/relatives", "doctor-token", nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = f.serve(http.MethodGet, "/user/relatives", "patient-token", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	f.relatives.AssertNumberOfCalls(t, "ListRelatives", 1)
}

func TestUserRouter_RelativeIDMustBeObjectID(t *testing.T) {
	f := newRouteFixture()
	f.signIn("patient-token", patientIdentity)

	rr := f.serve(http.MethodDelete, "/user/relatives/not-an-id", "patient-token", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	f.relatives.AssertNotCalled(t, "RemoveRelative")
}

func TestUserRouter_OwnHealthReports(t *testing.T) {
	f := newRouteFixture()
	f.signIn("patient-token", patientIdentity)
	f.reports.On("ListByPatient", mock.Anything, patientIdentity, patientIdentity.ID, models.Pagination{Page: 2, PageSize: 5}).
		Return([]responses.HealthReport{{ReportID: "HR-1"}}, int64(6), nil)

	rr := f.serve(http.MethodGet, "/user/health-reports?page=2&page_size=5", "patient-token", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope responses.ResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Pagination)
	assert.Equal(t, int64(6), envelope.Pagination.Total)
	assert.Empty(t, envelope.Pagination.NextURL)
	assert.NotEmpty(t, envelope.Pagination.PrevURL)
}

func TestDoctorRouter_CreateHealthReport(t *testing.T) {
	f := newRouteFixture()
	f.signIn("doctor-token", doctorIdentity)
	f.signIn("patient-token", patientIdentity)

	f.reports.On("CreateHealthReport", mock.Anything, doctorIdentity, mock.MatchedBy(func(r *requests.CreateHealthReport) bool {
		return r.ReportType == "blood_test" && r.Diagnosis == "Anemia"
	})).Return(&responses.HealthReport{ReportID: "HR-20240601093000000-abc"}, nil)

	body := []byte(`{"patientId":"` + patientIdentity.ID.Hex() + `","reportType":"Blood_Test","diagnosis":"Anemia","vitals":{"height":160,"weight":50}}`)

	rr := f.serve(http.MethodPost, "/doctor/health-reports/create", "doctor-token", body)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = f.serve(http.MethodPost, "/doctor/health-reports/create", "patient-token", body)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	f.reports.AssertNumberOfCalls(t, "CreateHealthReport", 1)
}

func TestDoctorRouter_ListAllRequiresAdmin(t *testing.T) {
	f := newRouteFixture()
	f.signIn("doctor-token", doctorIdentity)
	f.signIn("admin-token", adminIdentity)
	f.reports.On("ListAllHealthReports", mock.Anything, adminIdentity, models.ReportTypeBloodTest, models.Pagination{Page: 1, PageSize: 20}).
		Return([]responses.HealthReport{}, int64(0), nil)

	rr := f.serve(http.MethodGet, "/doctor/health-reports/all", "doctor-token", nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = f.serve(http.MethodGet, "/doctor/health-reports/all?reportType=blood_test", "admin-token", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	f.reports.AssertExpectations(t)
}

func TestDoctorRouter_StaticRoutesWinOverReportID(t *testing.T) {
	f := newRouteFixture()
	f.signIn("doctor-token", doctorIdentity)
	f.reports.On("ListByDoctor", mock.Anything, doctorIdentity, doctorIdentity.ID, mock.Anything).
		Return([]responses.HealthReport{}, int64(0), nil)

	rr := f.serve(http.MethodGet, "/doctor/health-reports/mine", "doctor-token", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	f.reports.AssertNotCalled(t, "GetHealthReport")
}

func TestDoctorRouter_UsecaseErrorsMapToStatus(t *testing.T) {
	f := newRouteFixture()
	f.signIn("doctor-token", doctorIdentity)
	f.reports.On("GetHealthReport", mock.Anything, doctorIdentity, "HR-other").
		Return(nil, exceptions.ErrForbidden(nil, "read health report", "doctor"))
	f.reports.On("GetHealthReport", mock.Anything, doctorIdentity, "HR-missing").
		Return(nil, exceptions.ErrHealthReportNotFound(nil))

	assert.Equal(t, http.StatusForbidden, f.serve(http.MethodGet, "/doctor/health-reports/HR-other", "doctor-token", nil).Code)
	assert.Equal(t, http.StatusNotFound, f.serve(http.MethodGet, "/doctor/health-reports/HR-missing", "doctor-token", nil).Code)
}

func TestDoctorRouter_PatientIDMustBeObjectID(t *testing.T) {
	f := newRouteFixture()
	f.signIn("doctor-token", doctorIdentity)

	rr := f.serve(http.MethodGet, "/doctor/patients/not-an-id/health-reports", "doctor-token", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	f.reports.AssertNotCalled(t, "ListByPatient")
}

func TestDoctorRouter_UploadAttachment(t *testing.T) {
	f := newRouteFixture()
	f.signIn("doctor-token", doctorIdentity)
	f.reports.On("UploadAttachment", mock.Anything, doctorIdentity, "HR-1", mock.MatchedBy(func(r *requests.UploadAttachment) bool {
		return r.FileName == "scan.pdf" && r.Size == 8 && r.Extension == ".pdf"
	}), mock.Anything).Return(&responses.HealthReport{ReportID: "HR-1"}, nil)

	upload := func(field string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile(field, "scan.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/doctor/health-reports/HR-1/attachments", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set("Authorization", "Bearer doctor-token")
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusCreated, upload(constvars.FormFieldAttachmentFile).Code)
	assert.Equal(t, http.StatusBadRequest, upload("something-else").Code)
	f.reports.AssertNumberOfCalls(t, "UploadAttachment", 1)
}

func TestAdminRouter_CampsRequireAdmin(t *testing.T) {
	f := newRouteFixture()
	f.signIn("admin-token", adminIdentity)
	f.signIn("doctor-token", doctorIdentity)
	f.camps.On("CreateCamp", mock.Anything, adminIdentity, mock.AnythingOfType("*requests.CreateCamp")).
		Return(&responses.Camp{Name: "Eye camp", Capacity: 50}, nil)

	body, _ := json.Marshal(requests.CreateCamp{Name: "Eye camp", Location: "Pune", Date: "2024-06-01", Capacity: 50})

	rr := f.serve(http.MethodPost, "/admin/camps", "doctor-token", body)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = f.serve(http.MethodPost, "/admin/camps", "admin-token", body)
	assert.Equal(t, http.StatusCreated, rr.Code)
	f.camps.AssertNumberOfCalls(t, "CreateCamp", 1)
}
