package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-RepairBooking/internal/api/handlers"
)

// Recover перехватывает панику в обработчике и отвечает 500
func Recover(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					requestID, _ := GetRequestID(r.Context())
					logger.Error("PANIC recovered: %v, method=%s, path=%s, request_id=%s\n%s",
						rec, r.Method, r.URL.Path, requestID, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
