package router

import (
	"net/http"

	"cleanup-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// responseWriter 響應記錄器
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

// WriteHeader 實現 http.ResponseWriter 介面
func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// ErrorHandler 包在 gin 外層的最後防線：攔截 panic 並記錄 5xx 回應
func ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		defer func() {
			if err := recover(); err != nil {
				common.LogError("Server panic recovered",
					zap.Any("error", err),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				)
				if !rw.wroteHeader {
					common.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error")
				}
				return
			}
			if rw.statusCode >= http.StatusInternalServerError {
				common.LogDebug("Server error response",
					zap.Int("status", rw.statusCode),
					zap.String("path", r.URL.Path),
				)
			}
		}()

		next.ServeHTTP(rw, r)
	})
}
