package middlewares

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/contracts/mocks"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type authFixture struct {
	middlewares *Middlewares
	credentials *mocks.MockCredentialManager
	revocations *mocks.MockRevocationService
	auth        *mocks.MockAuthUsecase
	metrics     *mocks.MetricsRecorder
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		credentials: new(mocks.MockCredentialManager),
		revocations: new(mocks.MockRevocationService),
		auth:        new(mocks.MockAuthUsecase),
		metrics:     mocks.NewMetricsRecorder(),
	}
	f.middlewares = NewMiddlewares(
		zap.NewNop(),
		nil,
		f.auth,
		f.credentials,
		f.revocations,
		f.metrics,
		nil,
		&config.InternalConfig{JWT: config.JWT{CookieName: "token"}},
	)
	return f
}

func identityEcho(t *testing.T, expected *models.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, expected.ID, identity.ID)
		_, ok = utils.GetCredentialFromContext(r.Context())
		assert.True(t, ok)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_RejectsMissingCredential(t *testing.T) {
	f := newAuthFixture()
	handler := f.middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/user/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.ErrClientTokenMissing)
	assert.Equal(t, 1, f.metrics.AuthFailureCount(authFailureMissing))
	f.credentials.AssertNotCalled(t, "VerifyToken")
}

func TestAuthenticate_AcceptsBearerHeader(t *testing.T) {
	f := newAuthFixture()
	credential := &models.Credential{Token: "bearer-token", Subject: primitive.NewObjectID().Hex(), Directory: constvars.DirectoryAccounts}
	identity := &models.Identity{ID: primitive.NewObjectID(), Email: "asha@example.com", Role: models.RoleUser}

	f.credentials.On("VerifyToken", mock.Anything, "bearer-token").Return(credential, nil)
	f.revocations.On("IsRevoked", mock.Anything, credential).Return(false, nil)
	f.auth.On("ResolveIdentity", mock.Anything, credential).Return(identity, nil)

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer bearer-token")
	rr := httptest.NewRecorder()
	f.middlewares.Authenticate(identityEcho(t, identity)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	f.credentials.AssertExpectations(t)
	f.revocations.AssertExpectations(t)
	f.auth.AssertExpectations(t)
}

func TestAuthenticate_PrefersCookieOverHeader(t *testing.T) {
	f := newAuthFixture()
	credential := &models.Credential{Token: "cookie-token"}
	identity := &models.Identity{ID: primitive.NewObjectID(), Role: models.RoleDoctor}

	f.credentials.On("VerifyToken", mock.Anything, "cookie-token").Return(credential, nil)
	f.revocations.On("IsRevoked", mock.Anything, credential).Return(false, nil)
	f.auth.On("ResolveIdentity", mock.Anything, credential).Return(identity, nil)

	req := httptest.NewRequest(http.MethodGet, "/doctor/profile", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	req.Header.Set(constvars.HeaderAuthorization, "Bearer header-token")
	rr := httptest.NewRecorder()
	f.middlewares.Authenticate(identityEcho(t, identity)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	f.credentials.AssertNotCalled(t, "VerifyToken", mock.Anything, "header-token")
}

func TestAuthenticate_Failures(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(f *authFixture, credential *models.Credential)
		expectedCode  int
		expectedCause string
	}{
		{
			name: "expired credential",
			setup: func(f *authFixture, credential *models.Credential) {
				f.credentials.On("VerifyToken", mock.Anything, "token-value").Return(nil, exceptions.ErrTokenExpired(nil))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedCause: authFailureExpired,
		},
		{
			name: "tampered credential",
			setup: func(f *authFixture, credential *models.Credential) {
				f.credentials.On("VerifyToken", mock.Anything, "token-value").Return(nil, exceptions.ErrTokenInvalid(nil))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedCause: authFailureInvalid,
		},
		{
			name: "revoked credential",
			setup: func(f *authFixture, credential *models.Credential) {
				f.credentials.On("VerifyToken", mock.Anything, "token-value").Return(credential, nil)
				f.revocations.On("IsRevoked", mock.Anything, credential).Return(true, nil)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedCause: authFailureRevoked,
		},
		{
			name: "subject no longer exists",
			setup: func(f *authFixture, credential *models.Credential) {
				f.credentials.On("VerifyToken", mock.Anything, "token-value").Return(credential, nil)
				f.revocations.On("IsRevoked", mock.Anything, credential).Return(false, nil)
				f.auth.On("ResolveIdentity", mock.Anything, credential).Return(nil, exceptions.ErrAccountNotFound(nil, "gone"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedCause: authFailureAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			credential := &models.Credential{Token: "token-value", ExpiresAt: time.Now().Add(time.Hour)}
			tt.setup(f, credential)

			req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
			req.Header.Set(constvars.HeaderAuthorization, "Bearer token-value")
			rr := httptest.NewRecorder()
			f.middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not run")
			})).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, 1, f.metrics.AuthFailureCount(tt.expectedCause))
		})
	}
}

func TestAuthenticate_RevocationStoreDown(t *testing.T) {
	f := newAuthFixture()
	credential := &models.Credential{Token: "token-value"}
	f.credentials.On("VerifyToken", mock.Anything, "token-value").Return(credential, nil)
	f.revocations.On("IsRevoked", mock.Anything, credential).Return(false, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer token-value")
	rr := httptest.NewRecorder()
	f.middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	f.auth.AssertNotCalled(t, "ResolveIdentity")
}

func withIdentity(identity *models.Identity, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if identity != nil {
			ctx = context.WithValue(ctx, constvars.CONTEXT_IDENTITY_KEY, identity)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name         string
		identity     *models.Identity
		expectedCode int
	}{
		{name: "admin passes", identity: &models.Identity{Role: models.RoleAdmin}, expectedCode: http.StatusOK},
		{name: "user is forbidden", identity: &models.Identity{Role: models.RoleUser}, expectedCode: http.StatusForbidden},
		{name: "no identity", identity: nil, expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			rr := httptest.NewRecorder()
			withIdentity(tt.identity, f.middlewares.RequireRole(models.RoleAdmin)(ok)).
				ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/doctors", nil))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	f := newAuthFixture()
	rr := httptest.NewRecorder()
	withIdentity(&models.Identity{Role: models.RoleDoctor}, f.middlewares.RequirePermission(models.PermissionListAllHealthReports)(ok)).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/health-reports", nil))
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, 1, f.metrics.AuthFailureCount(authFailureForbidden))

	rr = httptest.NewRecorder()
	withIdentity(&models.Identity{Role: models.RoleAdmin}, f.middlewares.RequirePermission(models.PermissionListAllHealthReports)(ok)).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/health-reports", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
