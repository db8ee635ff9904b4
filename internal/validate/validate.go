// Package validate holds the field-level predicates shared by every layer of
// the planner, plus the typed Error they raise. All checks work on the raw
// strings the user (or the data file) supplied; values are trimmed before
// inspection.
package validate

import (
	"strconv"
	"strings"
)

// NonBlank reports whether s contains at least one non-whitespace character.
func NonBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// RequireNonBlank fails with INVALID_STRING when s is empty or whitespace.
func RequireNonBlank(s, field string) error {
	if !NonBlank(s) {
		return NewError(field, CodeInvalidString)
	}
	return nil
}

// ValidDouble reports whether s is a decimal literal under the restricted
// grammar: at most one period, at most one minus sign which must be the first
// character, and nothing but digits otherwise. Exponent notation is not
// accepted. A string that strips down to no digits at all (such as "-" or
// ".") is rejected.
func ValidDouble(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	if strings.Index(s, ".") != strings.LastIndex(s, ".") {
		return false
	}
	if i := strings.LastIndex(s, "-"); i > 0 {
		return false
	}

	residue := strings.ReplaceAll(s, ".", "")
	residue = strings.ReplaceAll(residue, "-", "")
	if residue == "" {
		return false
	}
	for _, r := range residue {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// RequireDouble fails with INVALID_DOUBLE when s is not a valid double.
func RequireDouble(s, field string) error {
	if !ValidDouble(s) {
		return NewError(field, CodeInvalidDouble)
	}
	return nil
}

// ParseDouble validates s under the restricted grammar and parses it.
func ParseDouble(s, field string) (float64, error) {
	if err := RequireDouble(s, field); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, NewError(field, CodeInvalidDouble)
	}
	return v, nil
}

// ValidDate reports whether s is a calendar date of the form YYYY-MM-DD.
// The year, month, and day must all be positive, the month must be in
// [1, 12], and the day must fit the civil month length with the Gregorian
// leap rule for February.
func ValidDate(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}

	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])

	if year <= 0 || month < 1 || month > 12 || day <= 0 {
		return false
	}
	return day <= daysInMonth(year, month)
}

// RequireDate fails with INVALID_DATE when s is not a valid date.
func RequireDate(s, field string) error {
	if !ValidDate(s) {
		return NewError(field, CodeInvalidDate)
	}
	return nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default: // February
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
}
