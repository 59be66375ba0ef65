package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"neon-slots/internal/app/slot"
	"neon-slots/internal/wallet"
)

type WalletHandlers struct {
	svc *slot.Service
}

func NewWalletHandlers(svc *slot.Service) *WalletHandlers {
	return &WalletHandlers{svc: svc}
}

func (h *WalletHandlers) Deposit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amount, ok := decodeAmount(w, r)
		if !ok {
			return
		}
		bal, err := h.svc.Deposit(r.Context(), amount)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, map[string]int64{"balance": bal})
	}
}

func (h *WalletHandlers) Withdraw() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amount, ok := decodeAmount(w, r)
		if !ok {
			return
		}
		bal, err := h.svc.Withdraw(r.Context(), amount)
		if err != nil {
			if errors.Is(err, wallet.ErrInsufficientFunds) {
				WriteHTTPError(w, http.StatusForbidden, "insufficient_balance")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, map[string]int64{"balance": bal})
	}
}

func (h *WalletHandlers) Balance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bal, err := h.svc.Balance(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		WriteJSON(w, map[string]int64{"balance": bal})
	}
}

func decodeAmount(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount <= 0 {
		WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
		return 0, false
	}
	return req.Amount, true
}
