package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Logging пишет строку на каждый запрос; 5xx уровнем Warn
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			if rec.status >= http.StatusInternalServerError {
				logger.Warn("%s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, time.Since(start))
				return
			}
			logger.Debug("%s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
