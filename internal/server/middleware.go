package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"sitebase/internal/app"
)

/*
responseWriter records the status code so we can inspect it after the
handler runs.
*/
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

/*
LogRequest tags each request with a generated ID and logs the method and
path on the way in, then the status and duration on the way out. 5xx
responses are logged at error level.
*/
func LogRequest(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLog := log.With("request_id", uuid.NewString())
		reqLog.Info("request started", "method", r.Method, "path", r.URL.Path)

		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		if rw.statusCode >= 500 {
			reqLog.Error("request failed", "status", rw.statusCode, "duration", time.Since(start))
		} else {
			reqLog.Info("request completed", "status", rw.statusCode, "duration", time.Since(start))
		}
	})
}

/*
WithRecovery traps panics and renders the friendly 500 page instead of
letting the connection die. Nothing unwinds past here.
*/
func WithRecovery(a *app.App, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				a.Log.Error("panic in handler", "error", err, "path", r.URL.Path)
				a.HandleServerError(w, r)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
