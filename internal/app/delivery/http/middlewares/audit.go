package middlewares

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

type auditContextKey struct{}

// auditSubject is filled in by inner middlewares (Authenticate, BodyBuffer)
// so the audit line written by the outer AuditLog sees what they resolved.
type auditSubject struct {
	identity *models.Identity
	body     []byte
}

func recordAuditIdentity(ctx context.Context, identity *models.Identity) {
	if subject, ok := ctx.Value(auditContextKey{}).(*auditSubject); ok {
		subject.identity = identity
	}
}

func recordAuditBody(ctx context.Context, body []byte) {
	if subject, ok := ctx.Value(auditContextKey{}).(*auditSubject); ok {
		subject.body = body
	}
}

var maskedBodyKeys = map[string]struct{}{
	"password":        {},
	"currentpassword": {},
	"newpassword":     {},
	"token":           {},
}

// AuditLog writes one append-only line per request, including requests that
// panic or are rejected before reaching a handler. It is mounted above
// ErrorHandler and the rate limiters. Verbose mode adds the request body with
// secrets masked.
func (m *Middlewares) AuditLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject := &auditSubject{}
		r = r.WithContext(context.WithValue(r.Context(), auditContextKey{}, subject))
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		defer func() {
			recovered := recover()
			status := rec.statusCode
			if recovered != nil {
				status = http.StatusInternalServerError
			}
			m.writeAuditEntry(r, subject, status)
			if recovered != nil {
				panic(recovered)
			}
		}()

		next.ServeHTTP(rec, r)
	})
}

func (m *Middlewares) writeAuditEntry(r *http.Request, subject *auditSubject, status int) {
	if m.AuditLogger == nil {
		return
	}

	actor := constvars.AnonymousActor
	role := constvars.AnonymousActor
	if subject.identity != nil {
		actor = subject.identity.Email
		role = subject.identity.Role.String()
	}

	fields := logrus.Fields{
		constvars.LoggingRequestIDKey:  utils.GetRequestID(r.Context()),
		constvars.LoggingMethodKey:     r.Method,
		constvars.LoggingEndpointKey:   r.URL.Path,
		constvars.LoggingStatusCodeKey: status,
		constvars.LoggingAuditActorKey: actor,
		constvars.LoggingRoleKey:       role,
	}

	if m.InternalConfig != nil && m.InternalConfig.App.VerboseAudit && len(subject.body) > 0 {
		fields[constvars.LoggingAuditBodyKey] = maskBody(subject.body)
	}

	m.AuditLogger.WithTime(time.Now().UTC()).WithFields(fields).Info("audit")
}

// maskBody replaces secret values in a JSON object body. Bodies that are not
// a JSON object are dropped rather than logged raw.
func maskBody(raw []byte) interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return constvars.MaskedValue
	}
	for key := range body {
		if _, secret := maskedBodyKeys[strings.ToLower(key)]; secret {
			body[key] = constvars.MaskedValue
		}
	}
	return body
}
