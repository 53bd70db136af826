package check_discount

import "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"

// Request модель запроса проверки скидок
type Request struct {
	UserID int64 // ID аутентифицированного клиента
}

// MatchedRule совпавший тир скидки
type MatchedRule struct {
	ID               int64
	BookingCountFrom int
	BookingCountTo   int
	DiscountPercent  float64
	Label            string
}

// Response модель ответа со всеми совпавшими тирами
// Победитель не выбирается: политика комбинирования тиров остается за вызывающей стороной
type Response struct {
	Enabled        bool
	ConfirmedCount int
	Matches        []MatchedRule
}

// fromDomainRules конвертирует domain правила в ответ usecase
func fromDomainRules(rules []*domain.DiscountRule) []MatchedRule {
	matches := make([]MatchedRule, 0, len(rules))
	for _, r := range rules {
		matches = append(matches, MatchedRule{
			ID:               r.ID,
			BookingCountFrom: r.BookingCountFrom,
			BookingCountTo:   r.BookingCountTo,
			DiscountPercent:  r.DiscountPercent,
			Label:            r.Label,
		})
	}
	return matches
}
