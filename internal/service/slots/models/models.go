package models

import (
	"time"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
)

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`      // "2026-01-15"
	StartTime time.Time `json:"startTime"` // RFC 3339
	EndTime   time.Time `json:"endTime"`   // RFC 3339
	Mode      string    `json:"mode"`
	IsBooked  bool      `json:"isBooked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:        s.ID,
		Date:      s.Date.Format(domain.DateFormat),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Mode:      string(s.Mode),
		IsBooked:  s.IsBooked,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, s := range slots {
		if slotResp := FromDomainSlot(s); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}
