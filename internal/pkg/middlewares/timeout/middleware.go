package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает весь запрос вместе с вызовами перевозчика.
// Сервис видит context.DeadlineExceeded и отвечает как на транспортный сбой.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
