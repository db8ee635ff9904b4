package plan

import (
	"fmt"
	"strings"

	"mealplanner/internal/validate"
)

// Meal is a named collection of ingredients, unique by case-insensitive
// name, in insertion order.
type Meal struct {
	name        string
	ingredients []*Ingredient
}

// NewMeal builds an empty meal with a trimmed, non-blank name.
func NewMeal(name string) (*Meal, error) {
	if err := validate.RequireNonBlank(name, "Meal name"); err != nil {
		return nil, err
	}
	return &Meal{name: strings.TrimSpace(name)}, nil
}

// Name returns the trimmed meal name.
func (m *Meal) Name() string { return m.name }

// Ingredient returns the ingredient with the given case-insensitive name.
func (m *Meal) Ingredient(name string) (*Ingredient, bool) {
	name = strings.TrimSpace(name)
	for _, ing := range m.ingredients {
		if strings.EqualFold(ing.Name(), name) {
			return ing, true
		}
	}
	return nil, false
}

// Ingredients returns a copy of the ingredient list in insertion order.
func (m *Meal) Ingredients() []*Ingredient {
	out := make([]*Ingredient, len(m.ingredients))
	copy(out, m.ingredients)
	return out
}

// AddIngredient appends ing to the meal. It fails with ALREADY_EXISTS when
// an ingredient with the same case-insensitive name is present.
func (m *Meal) AddIngredient(ing *Ingredient) error {
	if ing == nil {
		return validate.NewError("Ingredient", validate.CodeNullArgument)
	}
	if _, ok := m.Ingredient(ing.Name()); ok {
		return validate.NewError("Ingredient", validate.CodeAlreadyExists)
	}
	m.ingredients = append(m.ingredients, ing)
	return nil
}

// RemoveIngredient removes the ingredient with the given case-insensitive
// name, failing with DOESNT_EXIST when it is absent.
func (m *Meal) RemoveIngredient(name string) error {
	name = strings.TrimSpace(name)
	for i, ing := range m.ingredients {
		if strings.EqualFold(ing.Name(), name) {
			m.ingredients = append(m.ingredients[:i], m.ingredients[i+1:]...)
			return nil
		}
	}
	return validate.NewError("Ingredient", validate.CodeDoesntExist)
}

// CarbsTotal sums carbohydrate grams over the ingredients that carry a
// nutrition profile; profile-less ingredients are skipped.
func (m *Meal) CarbsTotal() float64 {
	var total float64
	for _, ing := range m.ingredients {
		if v, err := ing.CarbsTotal(); err == nil {
			total += v
		}
	}
	return total
}

// FatTotal sums fat grams over the profiled ingredients.
func (m *Meal) FatTotal() float64 {
	var total float64
	for _, ing := range m.ingredients {
		if v, err := ing.FatTotal(); err == nil {
			total += v
		}
	}
	return total
}

// ProteinTotal sums protein grams over the profiled ingredients.
func (m *Meal) ProteinTotal() float64 {
	var total float64
	for _, ing := range m.ingredients {
		if v, err := ing.ProteinTotal(); err == nil {
			total += v
		}
	}
	return total
}

// Calories sums kilocalories over the profiled ingredients.
func (m *Meal) Calories() float64 {
	var total float64
	for _, ing := range m.ingredients {
		if v, err := ing.Calories(); err == nil {
			total += v
		}
	}
	return total
}

// Equal reports whether other names the same meal (case-insensitive).
func (m *Meal) Equal(other *Meal) bool {
	return other != nil && strings.EqualFold(m.name, other.name)
}

func (m *Meal) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%.2f Calories)", m.name, m.Calories())
	if len(m.ingredients) == 0 {
		b.WriteString("\n\tNo ingredients.")
		return b.String()
	}
	b.WriteString("\n\tIngredients:")
	for _, ing := range m.ingredients {
		fmt.Fprintf(&b, "\n\t- %s (%.2f g)", ing.Name(), ing.Quantity())
	}
	return b.String()
}
