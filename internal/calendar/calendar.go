package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownMonth is returned when a month name or number cannot be resolved
	ErrUnknownMonth = errors.New("unknown month")
	// ErrInvalidDay is returned when a day is outside 1..DaysInMonth
	ErrInvalidDay = errors.New("invalid day")
)

// MonthsInYear is the number of months in the calendar
const MonthsInYear = 12

var monthNames = [MonthsInYear]string{
	"January", "February", "March", "April",
	"May", "June", "July", "August",
	"September", "October", "November", "December",
}

// Spanish labels are accepted as input aliases
var spanishNames = [MonthsInYear]string{
	"enero", "febrero", "marzo", "abril",
	"mayo", "junio", "julio", "agosto",
	"septiembre", "octubre", "noviembre", "diciembre",
}

// MonthInfo represents one month of the calendar
type MonthInfo struct {
	Index int // 0-based, January = 0
	Name  string
	Days  int
}

// DaysInMonth returns the number of days for a 0-based month index.
// February always has 28 days, leap years are not considered.
func DaysInMonth(index int) int {
	switch index {
	case 1:
		return 28
	case 3, 5, 8, 10:
		return 30
	default:
		return 31
	}
}

// MonthName returns the display name for a 0-based month index
func MonthName(index int) string {
	if index < 0 || index >= MonthsInYear {
		return fmt.Sprintf("Month(%d)", index)
	}
	return monthNames[index]
}

// Months returns all months in calendar order
func Months() []MonthInfo {
	months := make([]MonthInfo, MonthsInYear)
	for i := range months {
		months[i] = MonthInfo{
			Index: i,
			Name:  monthNames[i],
			Days:  DaysInMonth(i),
		}
	}
	return months
}

// ParseMonth resolves a month from user input and returns its 0-based index.
// Accepted forms: 1-based number ("3"), English name or 3-letter
// abbreviation ("March", "mar") and Spanish name ("Marzo"), case-insensitive.
func ParseMonth(s string) (int, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return 0, fmt.Errorf("%w: empty input", ErrUnknownMonth)
	}

	if n, err := strconv.Atoi(in); err == nil {
		if n < 1 || n > MonthsInYear {
			return 0, fmt.Errorf("%w: %q (expected 1-12)", ErrUnknownMonth, s)
		}
		return n - 1, nil
	}

	for i := 0; i < MonthsInYear; i++ {
		name := strings.ToLower(monthNames[i])
		if in == name || in == name[:3] || in == spanishNames[i] {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMonth, s)
}

// ValidateDay checks that day exists in the given month
func ValidateDay(index, day int) error {
	if index < 0 || index >= MonthsInYear {
		return fmt.Errorf("%w: index %d", ErrUnknownMonth, index)
	}
	if day < 1 || day > DaysInMonth(index) {
		return fmt.Errorf("%w: %s has days 1-%d, got %d",
			ErrInvalidDay, MonthName(index), DaysInMonth(index), day)
	}
	return nil
}
