package create_slot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakeSlotRepo in-memory репозиторий слотов
type fakeSlotRepo struct {
	mu     sync.Mutex
	nextID int64
	slots  []*domain.Slot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{nextID: 1}
}

func (r *fakeSlotRepo) Create(_ context.Context, s *domain.Slot) (*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *s
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.nextID++
	r.slots = append(r.slots, &created)

	return &created, nil
}

func (r *fakeSlotRepo) List(_ context.Context) ([]*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Slot, len(r.slots))
	copy(out, r.slots)
	return out, nil
}

// fakeTxManager сериализует транзакции мьютексом, имитируя SERIALIZABLE
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, "2026-09-01")
	require.NoError(t, err)

	return &Request{
		Date:      date,
		StartTime: date.Add(10 * time.Hour),
		EndTime:   date.Add(11 * time.Hour),
		Mode:      domain.ModeOnline,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := NewUseCase(repo, &fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, domain.ModeOnline, resp.Mode)
	assert.False(t, resp.IsBooked)
}

func TestUseCase_Execute_InvalidRange(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := NewUseCase(repo, &fakeTxManager{}, noopLogger{})

	t.Run("start equals end", func(t *testing.T) {
		req := validRequest(t)
		req.EndTime = req.StartTime

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("start after end", func(t *testing.T) {
		req := validRequest(t)
		req.StartTime, req.EndTime = req.EndTime, req.StartTime

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	// Невалидный диапазон не должен доходить до репозитория
	slots, listErr := repo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, slots)
}

func TestUseCase_Execute_InvalidMode(t *testing.T) {
	uc := NewUseCase(newFakeSlotRepo(), &fakeTxManager{}, noopLogger{})

	req := validRequest(t)
	req.Mode = "hybrid"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_Conflict(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := NewUseCase(repo, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	t.Run("overlapping interval is rejected", func(t *testing.T) {
		req := validRequest(t)
		req.StartTime = req.StartTime.Add(30 * time.Minute)
		req.EndTime = req.EndTime.Add(30 * time.Minute)
		req.Mode = domain.ModeOffline // режим не спасает от конфликта

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("adjacent interval is accepted", func(t *testing.T) {
		req := validRequest(t)
		req.StartTime = req.EndTime
		req.EndTime = req.EndTime.Add(time.Hour)

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.NotZero(t, resp.ID)
	})
}

func TestUseCase_Execute_ConcurrentOverlap(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := NewUseCase(repo, &fakeTxManager{}, noopLogger{})

	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)
	req := validRequest(t)

	// Все воркеры публикуют один и тот же интервал
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrSlotConflict)
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicted)

	slots, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}
