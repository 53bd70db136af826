package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountRule_Matches(t *testing.T) {
	rule := &DiscountRule{BookingCountFrom: 2, BookingCountTo: 5}

	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{"below range", 1, false},
		{"lower bound inclusive", 2, true},
		{"inside range", 3, true},
		{"upper bound inclusive", 5, true},
		{"above range", 6, false},
		{"zero count", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Matches(tt.count))
		})
	}
}

func TestDiscountRule_Matches_SinglePointRange(t *testing.T) {
	rule := &DiscountRule{BookingCountFrom: 7, BookingCountTo: 7}

	assert.False(t, rule.Matches(6))
	assert.True(t, rule.Matches(7))
	assert.False(t, rule.Matches(8))
}

func TestResolveDiscounts(t *testing.T) {
	rules := []*DiscountRule{
		{ID: 1, BookingCountFrom: 2, BookingCountTo: 2, DiscountPercent: 10, IsActive: true},
		{ID: 2, BookingCountFrom: 7, BookingCountTo: 7, DiscountPercent: 50, IsActive: true},
		{ID: 3, BookingCountFrom: 1, BookingCountTo: 10, DiscountPercent: 5, IsActive: true},
	}

	t.Run("count hits overlapping tiers", func(t *testing.T) {
		matched := ResolveDiscounts(7, rules)

		require.Len(t, matched, 2)
		assert.Equal(t, int64(2), matched[0].ID)
		assert.Equal(t, int64(3), matched[1].ID)
	})

	t.Run("count hits single point and broad tier", func(t *testing.T) {
		matched := ResolveDiscounts(2, rules)

		require.Len(t, matched, 2)
		assert.Equal(t, int64(1), matched[0].ID)
		assert.Equal(t, int64(3), matched[1].ID)
	})

	t.Run("count outside all tiers", func(t *testing.T) {
		matched := ResolveDiscounts(11, rules)

		assert.Empty(t, matched)
		assert.NotNil(t, matched)
	})

	t.Run("inactive rules are skipped", func(t *testing.T) {
		inactive := []*DiscountRule{
			{ID: 1, BookingCountFrom: 1, BookingCountTo: 10, DiscountPercent: 5, IsActive: false},
			{ID: 2, BookingCountFrom: 1, BookingCountTo: 10, DiscountPercent: 15, IsActive: true},
		}

		matched := ResolveDiscounts(3, inactive)

		require.Len(t, matched, 1)
		assert.Equal(t, int64(2), matched[0].ID)
	})

	t.Run("empty rule set", func(t *testing.T) {
		assert.Empty(t, ResolveDiscounts(3, nil))
	})

	t.Run("deterministic for same input", func(t *testing.T) {
		first := ResolveDiscounts(7, rules)
		second := ResolveDiscounts(7, rules)

		assert.Equal(t, first, second)
	})
}

func TestDefaultDiscountRules(t *testing.T) {
	require.Len(t, DefaultDiscountRules, 3)

	for _, r := range DefaultDiscountRules {
		assert.True(t, r.IsActive)
		assert.LessOrEqual(t, r.BookingCountFrom, r.BookingCountTo)
		assert.Greater(t, r.DiscountPercent, 0.0)
		assert.LessOrEqual(t, r.DiscountPercent, float64(MaxDiscountPercent))
	}

	// Пятая сессия попадает сразу в два дефолтных тира
	matched := ResolveDiscounts(5, DefaultDiscountRules)
	assert.Len(t, matched, 2)
}
