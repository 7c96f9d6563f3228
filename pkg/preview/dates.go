package preview

import (
	"strconv"

	"github.com/goliatone/go-certform/pkg/certification"
)

// LongDate formats "Saturday, 1 February 2025".
func LongDate(d certification.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format("Monday, 2 January 2006")
}

// OrdinalDate formats "1st of February, 2025".
func OrdinalDate(d certification.Date) string {
	if d.IsZero() {
		return ""
	}
	return OrdinalDay(d) + " of " + MonthYear(d)
}

// OrdinalDay formats the day of month with its English suffix, e.g. "21st".
func OrdinalDay(d certification.Date) string {
	if d.IsZero() {
		return ""
	}
	return Ordinal(d.Time().Day())
}

// MonthYear formats "February, 2025".
func MonthYear(d certification.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format("January, 2006")
}

// NumericDate formats "02/01/2025" (month first).
func NumericDate(d certification.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format("01/02/2006")
}

// Ordinal renders n with its English ordinal suffix.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
