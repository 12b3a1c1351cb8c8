package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

const maxAuditBodySize = 4 << 10

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp:   time.Now(),
			Method:      r.Method,
			Path:        r.URL.Path,
			Handler:     routeName(r),
			OrderNumber: mux.Vars(r)["orderNumber"],
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.UserID = username
		}

		skipRequestBody := strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data")
		if !skipRequestBody && r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = truncate(string(requestBody))
		}

		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		if entry.OrderNumber == "" {
			entry.OrderNumber = r.PostForm.Get("order_number")
		}
		entry.StatusCode = rec.status
		entry.Response = truncate(rec.body.String())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
		return route.GetName()
	}
	return "unknown"
}

func truncate(s string) string {
	if len(s) <= maxAuditBodySize {
		return s
	}
	return s[:maxAuditBodySize] + "..."
}
