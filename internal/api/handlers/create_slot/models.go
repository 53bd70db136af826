package create_slot

import (
	"time"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
	createSlot "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/usecase/create_slot"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	Date      string `json:"date"`      // "2026-01-15"
	StartTime string `json:"startTime"` // RFC 3339
	EndTime   string `json:"endTime"`   // RFC 3339
	Mode      string `json:"mode"`      // "online" | "offline"
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Mode      string    `json:"mode"`
	IsBooked  bool      `json:"isBooked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSlotRequest) ToUseCaseRequest() (*createSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createSlot.Request{
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Mode:      domain.SlotMode(r.Mode),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createSlot.Response) *SlotResponse {
	return &SlotResponse{
		ID:        resp.ID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
		Mode:      string(resp.Mode),
		IsBooked:  resp.IsBooked,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}
}
