package book_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/api/handlers"
	slotsService "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/slots"
)

const (
	msgInvalidSlotID     = "некорректный ID слота"
	msgSlotNotFound      = "слот не найден"
	msgSlotAlreadyBooked = "слот уже забронирован"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/slots/{slotId}/book
// Вызывается booking flow после подтверждения сессии клиентом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("PATCH /slots/{slotId}/book - Invalid slot id: %s", vars["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.service.MarkBooked(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("PATCH /slots/{slotId}/book - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrSlotAlreadyBooked):
			h.logger.Warn("PATCH /slots/{slotId}/book - Slot already booked: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyBooked)

		default:
			h.logger.Error("PATCH /slots/{slotId}/book - Failed to book slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/{slotId}/book - Slot booked successfully: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
