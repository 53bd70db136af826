package discounts

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
	ruleRepo "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/infra/storage/discountrule"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/discounts/models"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakeRuleRepo in-memory репозиторий правил с глобальным переключателем
type fakeRuleRepo struct {
	nextID  int64
	rules   map[int64]*domain.DiscountRule
	enabled bool
}

func newFakeRuleRepo() *fakeRuleRepo {
	return &fakeRuleRepo{
		nextID:  1,
		rules:   make(map[int64]*domain.DiscountRule),
		enabled: true,
	}
}

func (r *fakeRuleRepo) Create(_ context.Context, rule *domain.DiscountRule) (*domain.DiscountRule, error) {
	created := *rule
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.nextID++
	r.rules[created.ID] = &created
	return &created, nil
}

func (r *fakeRuleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rules[id]; !ok {
		return ruleRepo.ErrRuleNotFound
	}
	delete(r.rules, id)
	return nil
}

func (r *fakeRuleRepo) ListAll(_ context.Context) ([]*domain.DiscountRule, error) {
	out := make([]*domain.DiscountRule, 0, len(r.rules))
	for id := int64(1); id < r.nextID; id++ {
		if rule, ok := r.rules[id]; ok {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r *fakeRuleRepo) DeleteAll(_ context.Context) error {
	r.rules = make(map[int64]*domain.DiscountRule)
	return nil
}

func (r *fakeRuleRepo) CreateMany(ctx context.Context, rules []*domain.DiscountRule) error {
	for _, rule := range rules {
		if _, err := r.Create(ctx, rule); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeRuleRepo) GetGlobalEnabled(_ context.Context) (bool, error) {
	return r.enabled, nil
}

func (r *fakeRuleRepo) SetGlobalEnabled(_ context.Context, enabled bool) error {
	r.enabled = enabled
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(repo *fakeRuleRepo) *Service {
	return NewService(repo, fakeTxManager{}, noopLogger{})
}

func TestService_CreateRule(t *testing.T) {
	t.Run("creates an active rule", func(t *testing.T) {
		svc := newService(newFakeRuleRepo())

		resp, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
			BookingCountFrom: 3,
			BookingCountTo:   5,
			DiscountPercent:  15,
			Label:            ptr.Ptr("Spring promo"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Spring promo", resp.Label)
		assert.True(t, resp.IsActive)
	})

	t.Run("label defaults to empty", func(t *testing.T) {
		svc := newService(newFakeRuleRepo())

		resp, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
			BookingCountFrom: 1,
			BookingCountTo:   1,
			DiscountPercent:  5,
		})

		require.NoError(t, err)
		assert.Equal(t, "", resp.Label)
	})

	t.Run("single point range is valid", func(t *testing.T) {
		svc := newService(newFakeRuleRepo())

		_, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
			BookingCountFrom: 7,
			BookingCountTo:   7,
			DiscountPercent:  50,
		})

		assert.NoError(t, err)
	})
}

func TestService_CreateRule_Validation(t *testing.T) {
	svc := newService(newFakeRuleRepo())

	tests := []struct {
		name    string
		req     *models.CreateRuleRequest
		wantErr error
	}{
		{
			name:    "inverted range",
			req:     &models.CreateRuleRequest{BookingCountFrom: 5, BookingCountTo: 3, DiscountPercent: 10},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "negative lower bound",
			req:     &models.CreateRuleRequest{BookingCountFrom: -1, BookingCountTo: 3, DiscountPercent: 10},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero percent",
			req:     &models.CreateRuleRequest{BookingCountFrom: 1, BookingCountTo: 3, DiscountPercent: 0},
			wantErr: ErrInvalidPercent,
		},
		{
			name:    "negative percent",
			req:     &models.CreateRuleRequest{BookingCountFrom: 1, BookingCountTo: 3, DiscountPercent: -5},
			wantErr: ErrInvalidPercent,
		},
		{
			name:    "percent above 100",
			req:     &models.CreateRuleRequest{BookingCountFrom: 1, BookingCountTo: 3, DiscountPercent: 100.5},
			wantErr: ErrInvalidPercent,
		},
		{
			name: "label too long",
			req: &models.CreateRuleRequest{
				BookingCountFrom: 1,
				BookingCountTo:   3,
				DiscountPercent:  10,
				Label:            ptr.Ptr(strings.Repeat("x", domain.MaxLabelLength+1)),
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRule(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("exactly 100 percent is valid", func(t *testing.T) {
		_, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
			BookingCountFrom: 1,
			BookingCountTo:   1,
			DiscountPercent:  100,
		})
		assert.NoError(t, err)
	})
}

func TestService_DeleteRule(t *testing.T) {
	repo := newFakeRuleRepo()
	svc := newService(repo)

	created, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		BookingCountFrom: 1,
		BookingCountTo:   3,
		DiscountPercent:  10,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRule(context.Background(), created.ID))
	assert.Empty(t, repo.rules)

	err = svc.DeleteRule(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestService_Toggle(t *testing.T) {
	repo := newFakeRuleRepo()
	svc := newService(repo)

	resp, err := svc.Toggle(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, resp.Enabled)

	status, err := svc.GetStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Enabled)

	resp, err = svc.Toggle(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, resp.Enabled)
}

func TestService_ResetToDefaults(t *testing.T) {
	repo := newFakeRuleRepo()
	svc := newService(repo)

	// Засеиваем кастомные правила, которые сброс должен стереть
	for i := 0; i < 2; i++ {
		_, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
			BookingCountFrom: 20 + i,
			BookingCountTo:   30 + i,
			DiscountPercent:  1,
		})
		require.NoError(t, err)
	}

	resp, err := svc.ResetToDefaults(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Rules, len(domain.DefaultDiscountRules))
	for i, rule := range resp.Rules {
		want := domain.DefaultDiscountRules[i]
		assert.Equal(t, want.BookingCountFrom, rule.BookingCountFrom)
		assert.Equal(t, want.BookingCountTo, rule.BookingCountTo)
		assert.Equal(t, want.DiscountPercent, rule.DiscountPercent)
		assert.Equal(t, want.Label, rule.Label)
		assert.True(t, rule.IsActive)
	}

	// От старых правил не осталось следов
	all, err := svc.ListRules(context.Background())
	require.NoError(t, err)
	assert.Len(t, all.Rules, len(domain.DefaultDiscountRules))
}
