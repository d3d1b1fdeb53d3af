package middlewares

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	authFailureMissing         = "missing"
	authFailureExpired         = "expired"
	authFailureInvalid         = "invalid"
	authFailureRevoked         = "revoked"
	authFailureAccountNotFound = "account_not_found"
	authFailureForbidden       = "forbidden"
)

// extractToken prefers the credential cookie and falls back to a bearer header.
func (m *Middlewares) extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(m.InternalConfig.JWT.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authHeader, constvars.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.BearerPrefix))
	}
	return ""
}

func (m *Middlewares) rejectAuthentication(w http.ResponseWriter, r *http.Request, reason string, err error) {
	if m.Metrics != nil {
		m.Metrics.RecordAuthFailure(reason)
	}
	utils.LogSecurityEvent(m.Log, "authentication_rejected", utils.GetRequestID(r.Context()),
		zap.String("reason", reason),
		zap.String(constvars.LoggingEndpointKey, r.URL.Path),
	)
	utils.BuildErrorResponse(m.Log, w, err)
}

func failureReason(err error) string {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		return authFailureInvalid
	}
	switch customErr.ClientMessage {
	case constvars.ErrClientTokenMissing:
		return authFailureMissing
	case constvars.ErrClientTokenExpired:
		return authFailureExpired
	case constvars.ErrClientTokenRevoked:
		return authFailureRevoked
	case constvars.ErrClientAccountNotFound:
		return authFailureAccountNotFound
	default:
		return authFailureInvalid
	}
}

// Authenticate runs the credential state machine: extract, verify, check
// revocation, resolve the identity. Each stage short-circuits on failure, and
// the identity is attached to the context only when every stage passed.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.extractToken(r)
		if token == "" {
			m.rejectAuthentication(w, r, authFailureMissing, exceptions.ErrTokenMissing(nil))
			return
		}

		ctx := r.Context()
		credential, err := m.CredentialManager.VerifyToken(ctx, token)
		if err != nil {
			m.rejectAuthentication(w, r, failureReason(err), err)
			return
		}

		revoked, err := m.RevocationService.IsRevoked(ctx, credential)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if revoked {
			m.rejectAuthentication(w, r, authFailureRevoked, exceptions.ErrTokenRevoked(nil))
			return
		}

		identity, err := m.AuthUsecase.ResolveIdentity(ctx, credential)
		if err != nil {
			var customErr *exceptions.CustomError
			if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
				m.rejectAuthentication(w, r, failureReason(err), err)
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		recordAuditIdentity(ctx, identity)
		ctx = context.WithValue(ctx, constvars.CONTEXT_CREDENTIAL_KEY, credential)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IDENTITY_KEY, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole must run after Authenticate.
func (m *Middlewares) RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrIdentityMissing(nil))
				return
			}
			if !identity.HasRole(roles...) {
				if m.Metrics != nil {
					m.Metrics.RecordAuthFailure(authFailureForbidden)
				}
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil, identity.Role.String()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission evaluates the role permission matrix. Unknown pairs deny.
func (m *Middlewares) RequirePermission(permission models.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrIdentityMissing(nil))
				return
			}
			if !models.HasPermission(identity.Role, permission) {
				if m.Metrics != nil {
					m.Metrics.RecordAuthFailure(authFailureForbidden)
				}
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(nil, identity.Role.String(), string(permission)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
