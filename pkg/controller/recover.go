package controller

import (
	"net/http"
	"signup/pkg/logger"

	"go.uber.org/zap"
)

// WithRecover converts a panic in next into a 500 response. http.ErrAbortHandler
// is re-raised so net/http can abort the connection as intended.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler { //nolint: errorlint
				panic(p)
			}

			logger.Error(r.Context(), "recovered panic in http handler",
				zap.Any("panic", p), zap.Stack("stack"))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"INTERNAL","message":"internal error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
