package graceful_shutdown

import (
	"net/http"
	"sync/atomic"

	"shipment/internal/generated/dto"
	"shipment/internal/handlers/rest/response"
)

const shuttingDownMessage = "service is shutting down"

// Gate закрывается перед server.Shutdown: запросы, пришедшие по keep-alive
// соединениям после закрытия, получают 503 и Connection: close.
type Gate struct {
	closed   atomic.Bool
	inFlight atomic.Int64
}

func NewGate() *Gate {
	return &Gate{}
}

func (g *Gate) Close() {
	g.closed.Store(true)
}

func (g *Gate) InFlight() int64 {
	return g.inFlight.Load()
}

func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.closed.Load() {
			RejectedOnShutdownTotal.Inc()
			w.Header().Set("Connection", "close")
			_ = response.WriteJSON(w, dto.ErrorResponse{
				Success: false,
				Error:   shuttingDownMessage,
			}, http.StatusServiceUnavailable)
			return
		}

		g.inFlight.Add(1)
		InFlightRequests.Inc()
		defer func() {
			g.inFlight.Add(-1)
			InFlightRequests.Dec()
		}()

		next.ServeHTTP(w, r)
	})
}
