package check_discount_eligibility

import (
	checkDiscount "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/usecase/check_discount"
)

// MatchedRuleResponse совпавший тир скидки
type MatchedRuleResponse struct {
	ID               int64   `json:"id"`
	BookingCountFrom int     `json:"bookingCountFrom"`
	BookingCountTo   int     `json:"bookingCountTo"`
	DiscountPercent  float64 `json:"discountPercent"`
	Label            string  `json:"label"`
}

// EligibilityResponse HTTP response model
type EligibilityResponse struct {
	Enabled        bool                  `json:"enabled"`
	ConfirmedCount int                   `json:"confirmedCount"`
	Matches        []MatchedRuleResponse `json:"matches"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *checkDiscount.Response) *EligibilityResponse {
	matches := make([]MatchedRuleResponse, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		matches = append(matches, MatchedRuleResponse{
			ID:               m.ID,
			BookingCountFrom: m.BookingCountFrom,
			BookingCountTo:   m.BookingCountTo,
			DiscountPercent:  m.DiscountPercent,
			Label:            m.Label,
		})
	}

	return &EligibilityResponse{
		Enabled:        resp.Enabled,
		ConfirmedCount: resp.ConfirmedCount,
		Matches:        matches,
	}
}
