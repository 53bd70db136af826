package get_discount_status

import (
	"net/http"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers"
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

// Handle GET /api/v1/discounts/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetStatus(r.Context())
	if err != nil {
		h.logger.Error("GET /discounts/status - Failed to get status: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
