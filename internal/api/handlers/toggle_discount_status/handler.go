package toggle_discount_status

import (
	"net/http"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEnabledRequired    = "поле enabled обязательно"
)

type Handler struct {
	service DiscountsService
	logger  Logger
}

func NewHandler(service DiscountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/discounts/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /discounts/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Enabled == nil {
		h.logger.Warn("PATCH /discounts/status - Missing enabled field")
		handlers.RespondBadRequest(w, msgEnabledRequired)
		return
	}

	result, err := h.service.Toggle(r.Context(), *req.Enabled)
	if err != nil {
		h.logger.Error("PATCH /discounts/status - Failed to toggle: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /discounts/status - Global discount switch set to %v", *req.Enabled)
	handlers.RespondJSON(w, http.StatusOK, result)
}
