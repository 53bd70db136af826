package create_slot

import (
	"errors"
	"net/http"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers"
	createSlot "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/usecase/create_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и RFC 3339"
	msgInvalidRange       = "время начала должно быть раньше времени окончания"
	msgInvalidInput       = "некорректные данные слота"
	msgSlotConflict       = "слот пересекается с существующим слотом"
)

type Handler struct {
	useCase CreateSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSlot.ErrInvalidRange):
			h.logger.Warn("POST /slots - Invalid range: start=%s, end=%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createSlot.ErrSlotConflict):
			h.logger.Warn("POST /slots - Slot conflict: start=%s, end=%s", req.StartTime, req.EndTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		default:
			h.logger.Error("POST /slots - Failed to create slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created successfully: slot_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
