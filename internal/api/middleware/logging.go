package middleware

import (
	"net/http"
	"time"

	"github.com/naseer617/ta-member-service/pkg/logger"
	"go.uber.org/zap"
)

// Logging logs one line per request with the resolved status. Failed
// requests (>= 500) are logged at error level so persistence failures
// are visible without changing what the client sees.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		fields := []zap.Field{
			zap.String("id", GetRequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rw.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		}
		if rw.status >= http.StatusInternalServerError {
			logger.L().Error("request failed", fields...)
			return
		}
		logger.L().Info("request", fields...)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
