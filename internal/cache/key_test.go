package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

func TestBuildKey(t *testing.T) {
	start := domain.CalendarDate{Year: 2026, Month: time.September, Day: 1}

	t.Run("deterministic include order", func(t *testing.T) {
		a := BuildKey(start, 14, "lemo", []string{"slots", "appointments"})
		b := BuildKey(start, 14, "lemo", []string{"appointments", "slots"})
		assert.Equal(t, a, b)
	})

	t.Run("includes are deduplicated and trimmed", func(t *testing.T) {
		a := BuildKey(start, 14, "lemo", []string{"slots", " SLOTS ", "slots"})
		b := BuildKey(start, 14, "lemo", []string{"slots"})
		assert.Equal(t, a, b)
	})

	t.Run("resource is normalized", func(t *testing.T) {
		a := BuildKey(start, 14, "ΛΕΜΟ", nil)
		b := BuildKey(start, 14, "lemo", nil)
		assert.Equal(t, a, b)
	})

	t.Run("different includes cache separately", func(t *testing.T) {
		a := BuildKey(start, 14, "lemo", nil)
		b := BuildKey(start, 14, "lemo", []string{"slots"})
		assert.NotEqual(t, a, b)
	})

	t.Run("format", func(t *testing.T) {
		key := BuildKey(start, 14, "lemo", []string{"slots"})
		assert.Equal(t, "2026-09-01|14|lemo|slots", key)
	})
}

func TestBuildDayKey(t *testing.T) {
	date := domain.CalendarDate{Year: 2026, Month: time.September, Day: 1}
	assert.Equal(t, BuildKey(date, 1, "lemo", nil), BuildDayKey(date, "lemo"))
}
