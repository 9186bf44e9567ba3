package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayNumber(t *testing.T) {
	cases := map[string]int{
		"Lundi":    1,
		"Mardi":    2,
		"Mercredi": 3,
		"Jeudi":    4,
		"Vendredi": 5,
		"Samedi":   6,
		"Dimanche": 7,
	}
	for name, want := range cases {
		got, err := DayNumber(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestDayNumberInvalid(t *testing.T) {
	for _, name := range []string{"", "Wednesday", "lundi", "Lundi "} {
		_, err := DayNumber(name)
		assert.ErrorIs(t, err, ErrInvalidWeekday, name)
	}
}

func TestDaysUntilNextRange(t *testing.T) {
	// Any target weekday from any current date stays in 1..7.
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC) // a Monday
	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		now := start.AddDate(0, 0, dayOffset)
		for target := 1; target <= 7; target++ {
			got := DaysUntilNext(target, now)
			assert.GreaterOrEqual(t, got, 1)
			assert.LessOrEqual(t, got, 7)
		}
	}
}

func TestDaysUntilNextSameDayIsNextWeek(t *testing.T) {
	monday := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, DaysUntilNext(1, monday))

	sunday := time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, DaysUntilNext(7, sunday))
}

func TestDaysUntilNext(t *testing.T) {
	monday := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, DaysUntilNext(3, monday)) // Mercredi from Lundi
	assert.Equal(t, 6, DaysUntilNext(7, monday)) // Dimanche from Lundi

	saturday := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysUntilNext(1, saturday)) // Lundi from Samedi
}

func TestWeekStart(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		d := monday.AddDate(0, 0, dayOffset).Add(13 * time.Hour)
		assert.Equal(t, monday, WeekStart(d), d.Weekday().String())
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC)
	b := time.Date(2026, 1, 8, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, 0, DaysBetween(a, a))
}
