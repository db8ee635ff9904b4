package plan

import (
	"fmt"
	"strconv"
	"strings"

	"mealplanner/internal/validate"
)

// DaysPerWeek is the fixed number of days a week always holds.
const DaysPerWeek = 7

var weekdayNames = [DaysPerWeek]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Tokens accepted by DayIndex beyond the full names and "0".."6".
var weekdayAbbreviations = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "tues": 2, "wed": 3,
	"thu": 4, "thurs": 4, "fri": 5, "sat": 6,
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Week is an anchor date (its Sunday, in YYYY-MM-DD form) plus exactly
// seven days, Sunday-indexed. Days are pre-allocated empty and are never
// added or removed independently.
type Week struct {
	anchorDate string
	days       [DaysPerWeek]*Day
}

// NewWeek builds a week for the given anchor date with seven empty days.
func NewWeek(anchorDate string) (*Week, error) {
	if err := validate.RequireDate(anchorDate, "Week anchor date"); err != nil {
		return nil, err
	}
	w := &Week{anchorDate: strings.TrimSpace(anchorDate)}
	for i := range w.days {
		w.days[i] = NewDay()
	}
	return w, nil
}

// AnchorDate returns the week's anchor date in YYYY-MM-DD form.
func (w *Week) AnchorDate() string { return w.anchorDate }

// Day returns the day at a positional index (0 = Sunday), or nil when the
// index is out of range.
func (w *Week) Day(index int) *Day {
	if index < 0 || index >= DaysPerWeek {
		return nil
	}
	return w.days[index]
}

// DayByName resolves a weekday token and returns the matching day, failing
// with INVALID_WEEKDAY when the token is unresolvable.
func (w *Week) DayByName(token string) (*Day, error) {
	index := DayIndex(token)
	if index == -1 {
		return nil, validate.NewError("Day of week", validate.CodeInvalidWeekday)
	}
	return w.days[index], nil
}

// AllIngredients walks every day and meal of the week and merges the
// ingredients by case-insensitive name, summing quantities. The profile and
// list position of the first occurrence are retained. Every returned
// ingredient is an independent clone.
func (w *Week) AllIngredients() []*Ingredient {
	var merged []*Ingredient
	for _, day := range w.days {
		for _, meal := range day.Meals() {
			for _, ing := range meal.Ingredients() {
				found := false
				for _, existing := range merged {
					if existing.Equal(ing) {
						// Both quantities are positive, so this cannot fail.
						existing.SetQuantity(existing.Quantity() + ing.Quantity())
						found = true
						break
					}
				}
				if !found {
					merged = append(merged, ing.Clone())
				}
			}
		}
	}
	return merged
}

// AvgCarbsPerDay returns the week's carbohydrate total divided by seven.
// The divisor is always seven; days without meals pull the average down.
func (w *Week) AvgCarbsPerDay() float64 {
	var total float64
	for _, day := range w.days {
		total += day.CarbsTotal()
	}
	return total / DaysPerWeek
}

// AvgFatPerDay returns the week's fat total divided by seven.
func (w *Week) AvgFatPerDay() float64 {
	var total float64
	for _, day := range w.days {
		total += day.FatTotal()
	}
	return total / DaysPerWeek
}

// AvgProteinPerDay returns the week's protein total divided by seven.
func (w *Week) AvgProteinPerDay() float64 {
	var total float64
	for _, day := range w.days {
		total += day.ProteinTotal()
	}
	return total / DaysPerWeek
}

// AvgCaloriesPerDay returns the week's calorie total divided by seven.
func (w *Week) AvgCaloriesPerDay() float64 {
	var total float64
	for _, day := range w.days {
		total += day.Calories()
	}
	return total / DaysPerWeek
}

// Equal reports whether other has the same anchor date.
func (w *Week) Equal(other *Week) bool {
	return other != nil && w.anchorDate == other.anchorDate
}

// Compare orders weeks by anchor date string.
func (w *Week) Compare(other *Week) int {
	return strings.Compare(w.anchorDate, other.anchorDate)
}

func (w *Week) String() string {
	var b strings.Builder
	year := w.anchorDate[0:4]
	month, _ := strconv.Atoi(w.anchorDate[5:7])
	day, _ := strconv.Atoi(w.anchorDate[8:10])
	fmt.Fprintf(&b, "--- Week of %s %d, %s ---", monthNames[month-1], day, year)
	for i, d := range w.days {
		fmt.Fprintf(&b, "\n%s: ", weekdayNames[i])
		if s := d.String(); s != "" {
			b.WriteString(s)
		} else {
			b.WriteString("No meals")
		}
	}
	return b.String()
}

// DayIndex resolves a weekday token to its Sunday-based index. Full names,
// three-letter abbreviations (plus "tues" and "thurs"), and the digits
// "0".."6" are accepted, case-insensitively. It returns -1 when the token
// does not resolve.
func DayIndex(token string) int {
	token = strings.ToLower(strings.TrimSpace(token))
	for i, name := range weekdayNames {
		if token == strings.ToLower(name) {
			return i
		}
	}
	if i, ok := weekdayAbbreviations[token]; ok {
		return i
	}
	if len(token) == 1 && token[0] >= '0' && token[0] <= '6' {
		return int(token[0] - '0')
	}
	return -1
}

// WeekdayName returns the canonical name for a Sunday-based index.
func WeekdayName(index int) string {
	if index < 0 || index >= DaysPerWeek {
		return ""
	}
	return weekdayNames[index]
}
