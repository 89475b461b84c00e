package game

import (
	dto "casino_sim/internal/api/dto/game"
	"casino_sim/internal/converter"
	"casino_sim/internal/model"
	"casino_sim/internal/service"
	"casino_sim/pkg/req"
	"casino_sim/pkg/resp"
	"errors"
	"net/http"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Select выбор игры в лобби: classic или diamond_rush
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SelectGameRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.serv.SelectGame(r.Context(), model.GameVariant(payload.Variant))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSpin(payload))
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

// statusForError переводит ошибки бизнес-логики в HTTP статусы
func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidBet), errors.Is(err, model.ErrNoGameSelected):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, model.ErrSpinInProgress):
		return http.StatusConflict
	case errors.Is(err, model.ErrSessionNotFound), errors.Is(err, model.ErrUserNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrPersistence):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
