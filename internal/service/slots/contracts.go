package slots

import (
	"context"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	List(ctx context.Context) ([]*domain.Slot, error)
	Delete(ctx context.Context, id int64) error
	MarkBooked(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
