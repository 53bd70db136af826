package book_slot

import (
	"context"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/slots/models"
)

type SlotsService interface {
	MarkBooked(ctx context.Context, id int64) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
