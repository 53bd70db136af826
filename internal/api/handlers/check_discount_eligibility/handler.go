package check_discount_eligibility

import (
	"net/http"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/middleware"
	checkDiscount "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/usecase/check_discount"
)

const msgUnauthenticated = "требуется аутентификация"

type Handler struct {
	useCase CheckDiscountUseCase
	logger  Logger
}

func NewHandler(useCase CheckDiscountUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/discounts/eligibility
// Личность клиента берется из контекста аутентификации, не из запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /discounts/eligibility - Missing authenticated user")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkDiscount.Request{UserID: userID})
	if err != nil {
		h.logger.Error("GET /discounts/eligibility - Failed to check discounts: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /discounts/eligibility - Resolved %d matches for user_id=%d", len(result.Matches), userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
