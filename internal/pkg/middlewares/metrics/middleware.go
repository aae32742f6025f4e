package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"shipment/pkg/logger"
)

// ActorHeader кто из админки выполнил запрос, попадает в лог запроса.
const ActorHeader = "X-Admin-User"

// пробы оркестратора и скрейп метрик пишем в debug, чтобы не забивать лог
var quietRoutes = map[string]struct{}{
	"/healthcheck": {},
	"/metrics":     {},
	"/ping":        {},
}

func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)
			handlerPath := routeTemplate(r)

			HTTPRequestDuration.WithLabelValues(r.Method, handlerPath, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, handlerPath, statusCode).Inc()

			requestLog := log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", handlerPath),
				logger.NewField("status", statusCode),
				logger.NewField("duration", duration.String()),
			)
			if actor := r.Header.Get(ActorHeader); actor != "" {
				requestLog = requestLog.With(logger.NewField("actor", actor))
			}

			if _, quiet := quietRoutes[handlerPath]; quiet {
				requestLog.Debug("HTTP request")
				return
			}
			requestLog.Info("HTTP request")
		})
	}
}

// routeTemplate шаблон mux-роута, чтобы не плодить метки по query и id.
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
