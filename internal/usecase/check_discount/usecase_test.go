package check_discount

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRuleRepo struct {
	enabled bool
	rules   []*domain.DiscountRule
}

func (r *fakeRuleRepo) GetGlobalEnabled(_ context.Context) (bool, error) {
	return r.enabled, nil
}

func (r *fakeRuleRepo) ListActive(_ context.Context) ([]*domain.DiscountRule, error) {
	active := make([]*domain.DiscountRule, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.IsActive {
			active = append(active, rule)
		}
	}
	return active, nil
}

type fakeLedgerRepo struct {
	confirmed map[int64]int
	calls     int
}

func (r *fakeLedgerRepo) CountConfirmed(_ context.Context, userID int64) (int, error) {
	r.calls++
	return r.confirmed[userID], nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func defaultRules() []*domain.DiscountRule {
	return []*domain.DiscountRule{
		{ID: 1, BookingCountFrom: 2, BookingCountTo: 2, DiscountPercent: 10, Label: "Returning client", IsActive: true},
		{ID: 2, BookingCountFrom: 7, BookingCountTo: 7, DiscountPercent: 50, Label: "Lucky 7", IsActive: true},
		{ID: 3, BookingCountFrom: 1, BookingCountTo: 10, DiscountPercent: 5, Label: "Loyalty", IsActive: true},
	}
}

func TestUseCase_Execute_GloballyDisabled(t *testing.T) {
	ruleRepo := &fakeRuleRepo{enabled: false, rules: defaultRules()}
	ledger := &fakeLedgerRepo{confirmed: map[int64]int{42: 7}}
	uc := NewUseCase(ruleRepo, ledger, fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42})

	require.NoError(t, err)
	assert.False(t, resp.Enabled)
	assert.Empty(t, resp.Matches)

	// При выключенном переключателе журнал бронирований не опрашивается
	assert.Zero(t, ledger.calls)
}

func TestUseCase_Execute_ResolvesAllMatchingTiers(t *testing.T) {
	ruleRepo := &fakeRuleRepo{enabled: true, rules: defaultRules()}
	ledger := &fakeLedgerRepo{confirmed: map[int64]int{42: 7}}
	uc := NewUseCase(ruleRepo, ledger, fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42})

	require.NoError(t, err)
	assert.True(t, resp.Enabled)
	assert.Equal(t, 7, resp.ConfirmedCount)

	require.Len(t, resp.Matches, 2)
	assert.Equal(t, "Lucky 7", resp.Matches[0].Label)
	assert.Equal(t, "Loyalty", resp.Matches[1].Label)
}

func TestUseCase_Execute_NoMatches(t *testing.T) {
	ruleRepo := &fakeRuleRepo{enabled: true, rules: defaultRules()}
	ledger := &fakeLedgerRepo{confirmed: map[int64]int{42: 11}}
	uc := NewUseCase(ruleRepo, ledger, fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42})

	require.NoError(t, err)
	assert.True(t, resp.Enabled)
	assert.Equal(t, 11, resp.ConfirmedCount)
	assert.Empty(t, resp.Matches)
	assert.NotNil(t, resp.Matches)
}

func TestUseCase_Execute_UserWithoutBookings(t *testing.T) {
	ruleRepo := &fakeRuleRepo{enabled: true, rules: defaultRules()}
	ledger := &fakeLedgerRepo{confirmed: map[int64]int{}}
	uc := NewUseCase(ruleRepo, ledger, fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.ConfirmedCount)
	assert.Empty(t, resp.Matches)
}

func TestUseCase_Execute_InvalidUserID(t *testing.T) {
	uc := NewUseCase(&fakeRuleRepo{}, &fakeLedgerRepo{}, fakeTxManager{}, noopLogger{})

	for _, userID := range []int64{0, -1} {
		_, err := uc.Execute(context.Background(), &Request{UserID: userID})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
