package plan

import (
	"strings"

	"mealplanner/internal/validate"
)

// Day is an ordered list of meals. Duplicate meal names are allowed at this
// level; lookups and removals match the first meal with the given name.
type Day struct {
	meals []*Meal
}

// NewDay builds a day with no meals.
func NewDay() *Day { return &Day{} }

// AddMeal appends meal unconditionally.
func (d *Day) AddMeal(meal *Meal) error {
	if meal == nil {
		return validate.NewError("Meal", validate.CodeNullArgument)
	}
	d.meals = append(d.meals, meal)
	return nil
}

// RemoveMeal removes the first meal with the given case-insensitive name,
// failing with DOESNT_EXIST when no meal matches.
func (d *Day) RemoveMeal(name string) error {
	name = strings.TrimSpace(name)
	for i, meal := range d.meals {
		if strings.EqualFold(meal.Name(), name) {
			d.meals = append(d.meals[:i], d.meals[i+1:]...)
			return nil
		}
	}
	return validate.NewError("Meal", validate.CodeDoesntExist)
}

// Meal returns the first stored meal with the given case-insensitive name.
func (d *Day) Meal(name string) (*Meal, bool) {
	name = strings.TrimSpace(name)
	for _, meal := range d.meals {
		if strings.EqualFold(meal.Name(), name) {
			return meal, true
		}
	}
	return nil, false
}

// Meals returns a copy of the meal list in insertion order.
func (d *Day) Meals() []*Meal {
	out := make([]*Meal, len(d.meals))
	copy(out, d.meals)
	return out
}

// CarbsTotal sums carbohydrate grams over the day's meals.
func (d *Day) CarbsTotal() float64 {
	var total float64
	for _, meal := range d.meals {
		total += meal.CarbsTotal()
	}
	return total
}

// FatTotal sums fat grams over the day's meals.
func (d *Day) FatTotal() float64 {
	var total float64
	for _, meal := range d.meals {
		total += meal.FatTotal()
	}
	return total
}

// ProteinTotal sums protein grams over the day's meals.
func (d *Day) ProteinTotal() float64 {
	var total float64
	for _, meal := range d.meals {
		total += meal.ProteinTotal()
	}
	return total
}

// Calories sums kilocalories over the day's meals.
func (d *Day) Calories() float64 {
	var total float64
	for _, meal := range d.meals {
		total += meal.Calories()
	}
	return total
}

func (d *Day) String() string {
	names := make([]string, len(d.meals))
	for i, meal := range d.meals {
		names[i] = meal.Name()
	}
	return strings.Join(names, ", ")
}
