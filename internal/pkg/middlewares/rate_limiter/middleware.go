package rate_limiter

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"shipment/internal/generated/dto"
	"shipment/internal/handlers/rest/response"
	"shipment/pkg/logger"
)

const rateLimitMessage = "rate limit exceeded, try again later"

// Middleware общий лимит на процесс: вызовы перевозчика дорогие, админка не должна
// выедать его квоту пачкой запросов.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rlimiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := r.URL.Path
			route := mux.CurrentRoute(r)
			if route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					handlerPath = template
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", handlerPath),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			retryAfter := retryAfterSeconds(rlimiter.RetryAfter())
			RateLimitRetryAfter.Observe(float64(retryAfter))

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

			err := response.WriteJSON(w, dto.ErrorResponse{
				Success: false,
				Error:   rateLimitMessage,
			}, http.StatusTooManyRequests)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}

// retryAfterSeconds Retry-After в целых секундах, не меньше одной и не больше минуты.
func retryAfterSeconds(d time.Duration) int {
	const maxRetryAfter = 60

	seconds := int(math.Ceil(d.Seconds()))
	switch {
	case seconds < 1:
		return 1
	case seconds > maxRetryAfter:
		return maxRetryAfter
	default:
		return seconds
	}
}
