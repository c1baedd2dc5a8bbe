package log

import (
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestMiddleware logs one record per request: method, path, status
// and duration. Client errors log at warn, server errors at error.
func RequestMiddleware(logger *Logger) func(http.Handler) http.Handler {
	httpLogger := logger.WithComponent(ComponentHTTP)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status_code", recorder.status,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			switch {
			case recorder.status >= 500:
				httpLogger.Error("HTTP request completed", args...)
			case recorder.status >= 400:
				httpLogger.Warn("HTTP request completed", args...)
			default:
				httpLogger.Info("HTTP request completed", args...)
			}
		})
	}
}
