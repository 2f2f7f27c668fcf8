package machine

import (
	"errors"
	"net/http"

	dto "fruit_machine/internal/api/dto/machine"
	"fruit_machine/internal/converter"
	fm "fruit_machine/internal/machine"
	"fruit_machine/internal/service"
	machineServ "fruit_machine/internal/service/machine"
	"fruit_machine/pkg/req"
	"fruit_machine/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.MachineService
	Log  *zap.Logger
}

type Handler struct {
	serv service.MachineService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Deposit Закинуть деньги в автомат
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	deposit, err := converter.ToDeposit(payload)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.serv.Deposit(r.Context(), deposit)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

// Pull Дёрнуть рычаг
func (h *Handler) Pull(w http.ResponseWriter, r *http.Request) {
	result, data, err := h.serv.Pull(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPullResponse(*result, *data))
}

// CheckData Баланс, банк, оставшиеся игры и последние символы
func (h *Handler) CheckData(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.CheckData(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fm.ErrInsufficientCredit):
		resp.WriteError(w, http.StatusPaymentRequired, fm.ErrInsufficientCredit.Error())
	case errors.Is(err, machineServ.ErrInvalidAmount):
		resp.WriteError(w, http.StatusBadRequest, machineServ.ErrInvalidAmount.Error())
	default:
		h.log.Error("machine handler", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
