package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestSlot_Overlaps(t *testing.T) {
	slot := &Slot{
		StartTime: mustTime(t, "2026-09-01T10:00:00Z"),
		EndTime:   mustTime(t, "2026-09-01T11:00:00Z"),
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{
			name:  "identical interval",
			start: "2026-09-01T10:00:00Z",
			end:   "2026-09-01T11:00:00Z",
			want:  true,
		},
		{
			name:  "partial overlap from the left",
			start: "2026-09-01T09:30:00Z",
			end:   "2026-09-01T10:30:00Z",
			want:  true,
		},
		{
			name:  "partial overlap from the right",
			start: "2026-09-01T10:30:00Z",
			end:   "2026-09-01T11:30:00Z",
			want:  true,
		},
		{
			name:  "candidate contains slot",
			start: "2026-09-01T09:00:00Z",
			end:   "2026-09-01T12:00:00Z",
			want:  true,
		},
		{
			name:  "candidate inside slot",
			start: "2026-09-01T10:15:00Z",
			end:   "2026-09-01T10:45:00Z",
			want:  true,
		},
		{
			name:  "adjacent before is allowed",
			start: "2026-09-01T09:00:00Z",
			end:   "2026-09-01T10:00:00Z",
			want:  false,
		},
		{
			name:  "adjacent after is allowed",
			start: "2026-09-01T11:00:00Z",
			end:   "2026-09-01T12:00:00Z",
			want:  false,
		},
		{
			name:  "fully before",
			start: "2026-09-01T08:00:00Z",
			end:   "2026-09-01T09:00:00Z",
			want:  false,
		},
		{
			name:  "fully after",
			start: "2026-09-01T12:00:00Z",
			end:   "2026-09-01T13:00:00Z",
			want:  false,
		},
		{
			name:  "one minute overlap at the edge",
			start: "2026-09-01T10:59:00Z",
			end:   "2026-09-01T11:59:00Z",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slot.Overlaps(mustTime(t, tt.start), mustTime(t, tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlot_Overlaps_Symmetry(t *testing.T) {
	a := &Slot{
		StartTime: mustTime(t, "2026-09-01T10:00:00Z"),
		EndTime:   mustTime(t, "2026-09-01T11:00:00Z"),
	}
	b := &Slot{
		StartTime: mustTime(t, "2026-09-01T10:30:00Z"),
		EndTime:   mustTime(t, "2026-09-01T11:30:00Z"),
	}

	assert.Equal(t,
		a.Overlaps(b.StartTime, b.EndTime),
		b.Overlaps(a.StartTime, a.EndTime),
	)
}

func TestHasConflict(t *testing.T) {
	slots := []*Slot{
		{
			StartTime: mustTime(t, "2026-09-01T09:00:00Z"),
			EndTime:   mustTime(t, "2026-09-01T10:00:00Z"),
			Mode:      ModeOnline,
		},
		{
			StartTime: mustTime(t, "2026-09-01T12:00:00Z"),
			EndTime:   mustTime(t, "2026-09-01T13:00:00Z"),
			Mode:      ModeOffline,
		},
	}

	t.Run("no conflict in a free gap", func(t *testing.T) {
		assert.False(t, HasConflict(
			mustTime(t, "2026-09-01T10:30:00Z"),
			mustTime(t, "2026-09-01T11:30:00Z"),
			slots,
		))
	})

	t.Run("conflict with second slot", func(t *testing.T) {
		assert.True(t, HasConflict(
			mustTime(t, "2026-09-01T12:30:00Z"),
			mustTime(t, "2026-09-01T13:30:00Z"),
			slots,
		))
	})

	t.Run("adjacency between two slots is allowed", func(t *testing.T) {
		assert.False(t, HasConflict(
			mustTime(t, "2026-09-01T10:00:00Z"),
			mustTime(t, "2026-09-01T12:00:00Z"),
			slots,
		))
	})

	t.Run("mode does not matter", func(t *testing.T) {
		// Кандидат online против offline слота - конфликт все равно есть
		assert.True(t, HasConflict(
			mustTime(t, "2026-09-01T12:00:00Z"),
			mustTime(t, "2026-09-01T12:30:00Z"),
			slots,
		))
	})

	t.Run("empty calendar", func(t *testing.T) {
		assert.False(t, HasConflict(
			mustTime(t, "2026-09-01T09:00:00Z"),
			mustTime(t, "2026-09-01T10:00:00Z"),
			nil,
		))
	})
}
