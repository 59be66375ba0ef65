package httptransport

import (
	"context"
	"net/http"

	"neon-slots/internal/app/slot"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Pinger reports backend reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

func NewRouter(svc *slot.Service, backend Pinger) *chi.Mux {
	slotHandlers := NewSlotHandlers(svc)
	walletHandlers := NewWalletHandlers(svc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", HealthHandler(backend))

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Post("/slot/play", slotHandlers.Play())
		r.Post("/slot/sim", slotHandlers.Sim())
		r.Get("/slot/rtp", slotHandlers.RTP())

		r.Post("/wallet/deposit", walletHandlers.Deposit())
		r.Post("/wallet/withdraw", walletHandlers.Withdraw())
		r.Get("/wallet/balance", walletHandlers.Balance())
	})

	return r
}

func HealthHandler(backend Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := backend.Ping(r.Context()); err != nil {
			WriteHTTPError(w, http.StatusServiceUnavailable, "backend_unavailable")
			return
		}
		WriteJSON(w, map[string]string{"status": "ok"})
	}
}
