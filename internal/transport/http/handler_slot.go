package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"neon-slots/internal/app/slot"
	"neon-slots/internal/wallet"
)

type SlotHandlers struct {
	svc *slot.Service
}

func NewSlotHandlers(svc *slot.Service) *SlotHandlers {
	return &SlotHandlers{svc: svc}
}

func (h *SlotHandlers) Play() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Bet int64 `json:"bet"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Bet <= 0 {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		res, err := h.svc.Play(r.Context(), req.Bet)
		if err != nil {
			if errors.Is(err, wallet.ErrInsufficientFunds) {
				WriteHTTPError(w, http.StatusForbidden, "insufficient_balance")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, res)
	}
}

func (h *SlotHandlers) Sim() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Count int   `json:"count"`
			Bet   int64 `json:"bet"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Count < 1 || req.Bet <= 0 {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		res, err := h.svc.Simulate(r.Context(), req.Count, req.Bet)
		if err != nil {
			if errors.Is(err, wallet.ErrInsufficientFunds) {
				WriteHTTPError(w, http.StatusForbidden, "insufficient_balance")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, res)
	}
}

func (h *SlotHandlers) RTP() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, map[string]float64{"rtp": h.svc.RTP()})
	}
}
