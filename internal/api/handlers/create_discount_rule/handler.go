package create_discount_rule

import (
	"errors"
	"net/http"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers"
	discountsService "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/discounts"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/discounts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRange       = "нижняя граница диапазона не может превышать верхнюю"
	msgInvalidPercent     = "процент скидки должен быть больше 0 и не больше 100"
	msgInvalidInput       = "некорректные данные правила"
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

// Handle POST /api/v1/discounts/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /discounts/rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateRule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, discountsService.ErrInvalidRange):
			h.logger.Warn("POST /discounts/rules - Invalid range: from=%d, to=%d",
				req.BookingCountFrom, req.BookingCountTo)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, discountsService.ErrInvalidPercent):
			h.logger.Warn("POST /discounts/rules - Invalid percent: %.2f", req.DiscountPercent)
			handlers.RespondBadRequest(w, msgInvalidPercent)

		case errors.Is(err, discountsService.ErrInvalidInput):
			h.logger.Warn("POST /discounts/rules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /discounts/rules - Failed to create rule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /discounts/rules - Rule created successfully: rule_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
