package delete_discount_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers"
	discountsService "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/discounts"
)

const (
	msgInvalidRuleID = "некорректный ID правила"
	msgRuleNotFound  = "правило скидки не найдено"
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

// Handle DELETE /api/v1/discounts/rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ruleID, err := strconv.ParseInt(vars["ruleId"], 10, 64)
	if err != nil || ruleID <= 0 {
		h.logger.Warn("DELETE /discounts/rules/{ruleId} - Invalid rule id: %s", vars["ruleId"])
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.service.DeleteRule(r.Context(), ruleID); err != nil {
		if errors.Is(err, discountsService.ErrRuleNotFound) {
			h.logger.Warn("DELETE /discounts/rules/{ruleId} - Rule not found: rule_id=%d", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)
			return
		}
		h.logger.Error("DELETE /discounts/rules/{ruleId} - Failed to delete rule: rule_id=%d, error=%v", ruleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /discounts/rules/{ruleId} - Rule deleted successfully: rule_id=%d", ruleID)
	handlers.RespondNoContent(w)
}
