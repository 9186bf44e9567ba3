// utils/dates.go
package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWeekday is returned when a day name is not one of the
// 7 recognized French weekday names.
var ErrInvalidWeekday = errors.New("invalid weekday name")

// dayNumbers maps French weekday names to 1=Lundi .. 7=Dimanche.
var dayNumbers = map[string]int{
	"Lundi":    1,
	"Mardi":    2,
	"Mercredi": 3,
	"Jeudi":    4,
	"Vendredi": 5,
	"Samedi":   6,
	"Dimanche": 7,
}

// DayNumber converts a French weekday name to its 1..7 number.
func DayNumber(dayName string) (int, error) {
	n, ok := dayNumbers[dayName]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, dayName)
	}
	return n, nil
}

// IsValidWeekday reports whether dayName is a recognized weekday.
func IsValidWeekday(dayName string) bool {
	_, ok := dayNumbers[dayName]
	return ok
}

// DaysUntilNext returns the number of days from now until the next
// occurrence of the target weekday (1=Lundi .. 7=Dimanche). The result
// is always in 1..7: when today is the target day the next occurrence
// is a full week away.
func DaysUntilNext(targetDayNumber int, now time.Time) int {
	currentDay := int(now.Weekday()) // 0=Sunday .. 6=Saturday
	if currentDay == 0 {
		currentDay = 7
	}

	diff := targetDayNumber - currentDay
	if diff <= 0 {
		diff += 7
	}
	return diff
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday of t's week, at midnight.
func WeekStart(t time.Time) time.Time {
	day := BeginningOfDay(t)
	offset := int(day.Weekday()) - 1 // Monday-based
	if offset < 0 {
		offset = 6 // Sunday
	}
	return day.AddDate(0, 0, -offset)
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
