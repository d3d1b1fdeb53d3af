package middlewares

import (
	"bytes"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"context"
	"io"
	"net/http"
	"strings"
)

// BodyBuffer reads the request body, stores the raw bytes in the context and
// replaces the request body with a new reader so it can be consumed again by
// subsequent middlewares or handlers. Multipart uploads are streamed untouched.
func (m *Middlewares) BodyBuffer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
			next.ServeHTTP(w, r)
			return
		}

		limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) * 1024 * 1024
		if limit > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrReadBody(err))
			return
		}

		recordAuditBody(r.Context(), bodyBytes)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_RAW_BODY, bodyBytes)
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
