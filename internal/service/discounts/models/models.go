package models

import (
	"time"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
)

// Request модели

// CreateRuleRequest запрос на создание правила скидки
type CreateRuleRequest struct {
	BookingCountFrom int     `json:"bookingCountFrom"`
	BookingCountTo   int     `json:"bookingCountTo"`
	DiscountPercent  float64 `json:"discountPercent"`
	Label            *string `json:"label,omitempty"` // Опционально, только для отображения
}

// ToDomainRule конвертирует request в domain модель
// Новые правила создаются активными; label по умолчанию пустой
func (r *CreateRuleRequest) ToDomainRule() *domain.DiscountRule {
	label := ""
	if r.Label != nil {
		label = *r.Label
	}

	return &domain.DiscountRule{
		BookingCountFrom: r.BookingCountFrom,
		BookingCountTo:   r.BookingCountTo,
		DiscountPercent:  r.DiscountPercent,
		Label:            label,
		IsActive:         true,
	}
}

// Response модели

// RuleResponse ответ с данными правила скидки
type RuleResponse struct {
	ID               int64     `json:"id"`
	BookingCountFrom int       `json:"bookingCountFrom"`
	BookingCountTo   int       `json:"bookingCountTo"`
	DiscountPercent  float64   `json:"discountPercent"`
	Label            string    `json:"label"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// StatusResponse ответ с состоянием глобального переключателя скидок
type StatusResponse struct {
	Enabled bool `json:"enabled"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.DiscountRule) *RuleResponse {
	if r == nil {
		return nil
	}

	return &RuleResponse{
		ID:               r.ID,
		BookingCountFrom: r.BookingCountFrom,
		BookingCountTo:   r.BookingCountTo,
		DiscountPercent:  r.DiscountPercent,
		Label:            r.Label,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.DiscountRule) *RuleListResponse {
	resp := &RuleListResponse{
		Rules: make([]RuleResponse, 0, len(rules)),
	}

	for _, r := range rules {
		if ruleResp := FromDomainRule(r); ruleResp != nil {
			resp.Rules = append(resp.Rules, *ruleResp)
		}
	}

	return resp
}
