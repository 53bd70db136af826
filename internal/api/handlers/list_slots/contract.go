package list_slots

import (
	"context"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/slots/models"
)

type SlotsService interface {
	List(ctx context.Context) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
