package domain

import "time"

// DiscountRule represents a loyalty tier: an inclusive range of confirmed
// booking counts mapped to a percentage discount
type DiscountRule struct {
	ID               int64
	BookingCountFrom int
	BookingCountTo   int
	DiscountPercent  float64
	Label            string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Matches reports whether the confirmed booking count falls inside the
// rule's range. Both bounds are inclusive: a rule with equal bounds
// matches exactly one count value
func (r *DiscountRule) Matches(confirmedCount int) bool {
	return r.BookingCountFrom <= confirmedCount && confirmedCount <= r.BookingCountTo
}

// ResolveDiscounts returns every active rule matching the confirmed count.
//
// Tiers may overlap (a count of 7 can hit both a "Lucky 7" tier and a
// broad loyalty tier); all matches are returned and no winner is picked.
// Combining or prioritizing tiers is the caller's policy
func ResolveDiscounts(confirmedCount int, rules []*DiscountRule) []*DiscountRule {
	matched := make([]*DiscountRule, 0)
	for _, r := range rules {
		if !r.IsActive {
			continue
		}
		if r.Matches(confirmedCount) {
			matched = append(matched, r)
		}
	}
	return matched
}
