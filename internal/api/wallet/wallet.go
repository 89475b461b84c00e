package wallet

import (
	dto "casino_sim/internal/api/dto/wallet"
	"casino_sim/internal/converter"
	"casino_sim/internal/model"
	"casino_sim/internal/service"
	"casino_sim/pkg/req"
	"casino_sim/pkg/resp"
	"errors"
	"net/http"
)

type HandlerDeps struct {
	Serv service.PaymentService
}

type Handler struct {
	serv service.PaymentService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	balance, err := h.serv.Deposit(r.Context(), converter.ToDeposit(payload))
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WithdrawRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	balance, err := h.serv.Withdraw(r.Context(), converter.ToWithdraw(payload))
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.serv.Balance(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// statusForError переводит ошибки бизнес-логики в HTTP статусы
func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, model.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrPersistence):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
