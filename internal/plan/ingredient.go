// Package plan holds the meal-planning domain tree: a Week of seven Days,
// each Day an ordered list of Meals, each Meal a list of unique Ingredients.
// Identity at every level is a case-insensitive name (or the anchor date for
// a Week); the tree is strictly owned top-down with no back-references.
package plan

import (
	"errors"
	"fmt"
	"strings"

	"mealplanner/internal/validate"
)

// Atwater factors: kcal per gram of each macronutrient.
const (
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
	kcalPerGramProtein = 4
)

// ErrNoNutrition is returned by total and calorie accessors when the
// ingredient was created without a nutrition profile.
var ErrNoNutrition = errors.New("no nutrition profile available")

// Nutrition is the nutrient density of an ingredient: grams of each
// macronutrient per 100 grams of the ingredient.
type Nutrition struct {
	CarbsPer100g   float64
	FatPer100g     float64
	ProteinPer100g float64
}

// Ingredient is the leaf of the planning tree: a named quantity in grams
// with an optional nutrition profile.
type Ingredient struct {
	name      string
	quantity  float64 // grams
	nutrition *Nutrition
}

// NewIngredient builds an ingredient without a nutrition profile.
func NewIngredient(name string, quantity float64) (*Ingredient, error) {
	if err := validate.RequireNonBlank(name, "Ingredient name"); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, validate.NewError("Ingredient quantity", validate.CodeNonPositiveValue)
	}
	return &Ingredient{name: strings.TrimSpace(name), quantity: quantity}, nil
}

// NewIngredientWithNutrition builds an ingredient carrying a nutrition
// profile. The per-100g values must not be negative.
func NewIngredientWithNutrition(name string, quantity, carbs, fat, protein float64) (*Ingredient, error) {
	ing, err := NewIngredient(name, quantity)
	if err != nil {
		return nil, err
	}
	if carbs < 0 || fat < 0 || protein < 0 {
		return nil, validate.NewError("Nutritional values per 100 grams", validate.CodeNegativeValue)
	}
	ing.nutrition = &Nutrition{CarbsPer100g: carbs, FatPer100g: fat, ProteinPer100g: protein}
	return ing, nil
}

// Name returns the trimmed ingredient name.
func (i *Ingredient) Name() string { return i.name }

// Quantity returns the stored amount in grams.
func (i *Ingredient) Quantity() float64 { return i.quantity }

// HasNutrition reports whether a nutrition profile was supplied.
func (i *Ingredient) HasNutrition() bool { return i.nutrition != nil }

// NutritionProfile returns the profile and whether one exists.
func (i *Ingredient) NutritionProfile() (Nutrition, bool) {
	if i.nutrition == nil {
		return Nutrition{}, false
	}
	return *i.nutrition, true
}

// SetQuantity replaces the stored quantity. The new value must be positive.
func (i *Ingredient) SetQuantity(quantity float64) error {
	if quantity <= 0 {
		return validate.NewError("Ingredient quantity", validate.CodeNonPositiveValue)
	}
	i.quantity = quantity
	return nil
}

// CarbsTotal returns the grams of carbohydrates in the stored quantity.
func (i *Ingredient) CarbsTotal() (float64, error) {
	if i.nutrition == nil {
		return 0, i.noNutrition()
	}
	return i.nutrition.CarbsPer100g / 100 * i.quantity, nil
}

// FatTotal returns the grams of fat in the stored quantity.
func (i *Ingredient) FatTotal() (float64, error) {
	if i.nutrition == nil {
		return 0, i.noNutrition()
	}
	return i.nutrition.FatPer100g / 100 * i.quantity, nil
}

// ProteinTotal returns the grams of protein in the stored quantity.
func (i *Ingredient) ProteinTotal() (float64, error) {
	if i.nutrition == nil {
		return 0, i.noNutrition()
	}
	return i.nutrition.ProteinPer100g / 100 * i.quantity, nil
}

// Calories returns the kilocalories in the stored quantity, using the
// Atwater factors 4/9/4 for carbohydrates, fat, and protein.
func (i *Ingredient) Calories() (float64, error) {
	if i.nutrition == nil {
		return 0, i.noNutrition()
	}
	carbs, _ := i.CarbsTotal()
	fat, _ := i.FatTotal()
	protein, _ := i.ProteinTotal()
	return carbs*kcalPerGramCarb + fat*kcalPerGramFat + protein*kcalPerGramProtein, nil
}

// Clone returns an independent copy with the same name, quantity, and
// profile. Mutating the clone never affects the original.
func (i *Ingredient) Clone() *Ingredient {
	clone := &Ingredient{name: i.name, quantity: i.quantity}
	if i.nutrition != nil {
		n := *i.nutrition
		clone.nutrition = &n
	}
	return clone
}

// Equal reports whether other names the same ingredient. Identity is the
// case-insensitive trimmed name only; quantity and profile do not matter.
func (i *Ingredient) Equal(other *Ingredient) bool {
	return other != nil && strings.EqualFold(i.name, other.name)
}

func (i *Ingredient) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%.2f g)", i.name, i.quantity)
	if i.nutrition == nil {
		b.WriteString("\n\tNo nutritional profile")
		return b.String()
	}
	carbs, _ := i.CarbsTotal()
	fat, _ := i.FatTotal()
	protein, _ := i.ProteinTotal()
	calories, _ := i.Calories()
	fmt.Fprintf(&b, "\n\t%.2f g carbohydrates", carbs)
	fmt.Fprintf(&b, "\n\t%.2f g fat", fat)
	fmt.Fprintf(&b, "\n\t%.2f g protein", protein)
	fmt.Fprintf(&b, "\n\t%.2f Calories", calories)
	return b.String()
}

func (i *Ingredient) noNutrition() error {
	return fmt.Errorf("ingredient %s: %w", i.name, ErrNoNutrition)
}
