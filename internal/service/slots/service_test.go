package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
	slotRepo "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/infra/storage/slot"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakeSlotRepo in-memory репозиторий с семантикой репо-ошибок
type fakeSlotRepo struct {
	slots map[int64]*domain.Slot
}

func newFakeSlotRepo(slots ...*domain.Slot) *fakeSlotRepo {
	r := &fakeSlotRepo{slots: make(map[int64]*domain.Slot)}
	for _, s := range slots {
		r.slots[s.ID] = s
	}
	return r
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

func (r *fakeSlotRepo) List(_ context.Context) ([]*domain.Slot, error) {
	out := make([]*domain.Slot, 0, len(r.slots))
	for _, s := range r.slots {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSlotRepo) Delete(_ context.Context, id int64) error {
	s, ok := r.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if s.IsBooked {
		return slotRepo.ErrSlotBooked
	}
	delete(r.slots, id)
	return nil
}

func (r *fakeSlotRepo) MarkBooked(_ context.Context, id int64) error {
	s, ok := r.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if s.IsBooked {
		return slotRepo.ErrSlotAlreadyBooked
	}
	s.IsBooked = true
	s.UpdatedAt = time.Now()
	return nil
}

func freeSlot(id int64) *domain.Slot {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Slot{
		ID:        id,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Mode:      domain.ModeOnline,
	}
}

func TestService_List(t *testing.T) {
	svc := NewService(newFakeSlotRepo(freeSlot(1), freeSlot(2)), noopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
}

func TestService_Delete(t *testing.T) {
	t.Run("deletes a free slot", func(t *testing.T) {
		repo := newFakeSlotRepo(freeSlot(1))
		svc := NewService(repo, noopLogger{})

		require.NoError(t, svc.Delete(context.Background(), 1))
		assert.Empty(t, repo.slots)
	})

	t.Run("unknown slot", func(t *testing.T) {
		svc := NewService(newFakeSlotRepo(), noopLogger{})

		err := svc.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("booked slot is immutable", func(t *testing.T) {
		booked := freeSlot(1)
		booked.IsBooked = true
		repo := newFakeSlotRepo(booked)
		svc := NewService(repo, noopLogger{})

		err := svc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, ErrSlotBooked)
		assert.Contains(t, repo.slots, int64(1))
	})
}

func TestService_MarkBooked(t *testing.T) {
	t.Run("books a free slot", func(t *testing.T) {
		svc := NewService(newFakeSlotRepo(freeSlot(1)), noopLogger{})

		resp, err := svc.MarkBooked(context.Background(), 1)

		require.NoError(t, err)
		assert.True(t, resp.IsBooked)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("unknown slot", func(t *testing.T) {
		svc := NewService(newFakeSlotRepo(), noopLogger{})

		_, err := svc.MarkBooked(context.Background(), 99)
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("second booking fails", func(t *testing.T) {
		svc := NewService(newFakeSlotRepo(freeSlot(1)), noopLogger{})

		_, err := svc.MarkBooked(context.Background(), 1)
		require.NoError(t, err)

		// Переход one-shot: повторный вызов - ошибка, не идемпотентный успех
		_, err = svc.MarkBooked(context.Background(), 1)
		assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	})
}
