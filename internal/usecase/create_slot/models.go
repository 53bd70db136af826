package create_slot

import (
	"time"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
)

// Request модель запроса на публикацию слота
type Request struct {
	Date      time.Time       // Календарная дата слота (для группировки)
	StartTime time.Time       // Абсолютное время начала
	EndTime   time.Time       // Абсолютное время окончания
	Mode      domain.SlotMode // Формат сессии: online или offline
}

// Response модель ответа с созданным слотом
type Response struct {
	ID        int64
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
	Mode      domain.SlotMode
	IsBooked  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
