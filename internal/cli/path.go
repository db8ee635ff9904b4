// Package cli implements the interactive menu shell over the planner store.
// Navigation state is an explicit Path value handed to and returned from
// every handler; there is no shared session state.
package cli

import (
	"strings"

	"mealplanner/internal/plan"
)

// Path is the current selection inside the planner tree. Deeper fields are
// only meaningful when every field above them is set.
type Path struct {
	Week       string // anchor date, "" when nothing is selected
	Day        int    // 0..6, or -1 when no weekday is selected
	Meal       string
	Ingredient string
}

// Root returns the empty selection.
func Root() Path { return Path{Day: -1} }

// HasWeek reports whether a week is selected.
func (p Path) HasWeek() bool { return p.Week != "" }

// HasDay reports whether a weekday is selected.
func (p Path) HasDay() bool { return p.Day >= 0 && p.Day < plan.DaysPerWeek }

// HasMeal reports whether a meal is selected.
func (p Path) HasMeal() bool { return p.Meal != "" }

// HasIngredient reports whether an ingredient is selected.
func (p Path) HasIngredient() bool { return p.Ingredient != "" }

// Weekday returns the canonical name of the selected weekday.
func (p Path) Weekday() string { return plan.WeekdayName(p.Day) }

// Back clears the deepest selected level.
func (p Path) Back() Path {
	switch {
	case p.HasIngredient():
		p.Ingredient = ""
	case p.HasMeal():
		p.Meal = ""
	case p.HasDay():
		p.Day = -1
	case p.HasWeek():
		p.Week = ""
	}
	return p
}

// String renders the selection as a breadcrumb, with a trailing space:
// "mealplanner>2025-09-14>Monday>Hamburgers> ".
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("mealplanner>")
	if p.HasWeek() {
		b.WriteString(p.Week)
		b.WriteString(">")
		if p.HasDay() {
			b.WriteString(p.Weekday())
			b.WriteString(">")
			if p.HasMeal() {
				b.WriteString(p.Meal)
				b.WriteString(">")
				if p.HasIngredient() {
					b.WriteString(p.Ingredient)
					b.WriteString(">")
				}
			}
		}
	}
	b.WriteString(" ")
	return b.String()
}
