// Package store owns the collection of planned weeks. It dispatches CRUD
// operations by path (anchor date, weekday, meal name, ingredient name) to
// the matching entity and implements the flat-file persistence contract.
//
// Numeric and date inputs arrive as the raw strings the user typed; every
// operation validates them fully before touching the tree, so a failed call
// never leaves a partial mutation behind.
package store

import (
	"sort"
	"strings"

	"mealplanner/internal/plan"
	"mealplanner/internal/validate"
)

// Store holds at most one week per distinct anchor date, ordered by date.
type Store struct {
	weeks []*plan.Week
}

// New builds an empty store.
func New() *Store { return &Store{} }

// Weeks returns a copy of the week list in anchor-date order.
func (s *Store) Weeks() []*plan.Week {
	out := make([]*plan.Week, len(s.weeks))
	copy(out, s.weeks)
	return out
}

// Week returns the week with the given anchor date, failing with
// DOESNT_EXIST when absent.
func (s *Store) Week(anchorDate string) (*plan.Week, error) {
	anchorDate = strings.TrimSpace(anchorDate)
	for _, w := range s.weeks {
		if w.AnchorDate() == anchorDate {
			return w, nil
		}
	}
	return nil, validate.NewError("Week", validate.CodeDoesntExist)
}

// AddWeek creates a week for the given anchor date with seven empty days.
// It fails with ALREADY_EXISTS when a week with that date is present.
func (s *Store) AddWeek(anchorDate string) (*plan.Week, error) {
	week, err := plan.NewWeek(anchorDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.Week(week.AnchorDate()); err == nil {
		return nil, validate.NewError("Week", validate.CodeAlreadyExists)
	}
	s.insert(week)
	return week, nil
}

// RemoveWeek deletes the week with the given anchor date and, by ownership,
// everything beneath it.
func (s *Store) RemoveWeek(anchorDate string) error {
	anchorDate = strings.TrimSpace(anchorDate)
	for i, w := range s.weeks {
		if w.AnchorDate() == anchorDate {
			s.weeks = append(s.weeks[:i], s.weeks[i+1:]...)
			return nil
		}
	}
	return validate.NewError("Week", validate.CodeDoesntExist)
}

// DayOf resolves the day addressed by anchor date and weekday token.
func (s *Store) DayOf(anchorDate, weekday string) (*plan.Day, error) {
	week, err := s.Week(anchorDate)
	if err != nil {
		return nil, err
	}
	return week.DayByName(weekday)
}

// AddMeal creates an empty meal with the given name on the addressed day.
func (s *Store) AddMeal(anchorDate, weekday, mealName string) (*plan.Meal, error) {
	day, err := s.DayOf(anchorDate, weekday)
	if err != nil {
		return nil, err
	}
	meal, err := plan.NewMeal(mealName)
	if err != nil {
		return nil, err
	}
	if err := day.AddMeal(meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// RemoveMeal removes the first meal with the given name from the addressed
// day.
func (s *Store) RemoveMeal(anchorDate, weekday, mealName string) error {
	day, err := s.DayOf(anchorDate, weekday)
	if err != nil {
		return err
	}
	return day.RemoveMeal(mealName)
}

// Meal resolves the meal addressed by anchor date, weekday, and meal name.
func (s *Store) Meal(anchorDate, weekday, mealName string) (*plan.Meal, error) {
	day, err := s.DayOf(anchorDate, weekday)
	if err != nil {
		return nil, err
	}
	meal, ok := day.Meal(mealName)
	if !ok {
		return nil, validate.NewError("Meal", validate.CodeDoesntExist)
	}
	return meal, nil
}

// AddIngredient creates an ingredient without a nutrition profile inside the
// addressed meal. The quantity arrives as a raw string and is validated
// under the restricted double grammar before anything is created.
func (s *Store) AddIngredient(anchorDate, weekday, mealName, ingredientName, quantity string) error {
	meal, err := s.Meal(anchorDate, weekday, mealName)
	if err != nil {
		return err
	}
	qty, err := validate.ParseDouble(quantity, "Ingredient quantity")
	if err != nil {
		return err
	}
	ing, err := plan.NewIngredient(ingredientName, qty)
	if err != nil {
		return err
	}
	return meal.AddIngredient(ing)
}

// AddIngredientWithNutrition creates an ingredient carrying a nutrition
// profile inside the addressed meal. All four numeric inputs are validated
// before anything is created.
func (s *Store) AddIngredientWithNutrition(anchorDate, weekday, mealName, ingredientName, quantity, carbs, fat, protein string) error {
	meal, err := s.Meal(anchorDate, weekday, mealName)
	if err != nil {
		return err
	}
	qty, err := validate.ParseDouble(quantity, "Ingredient quantity")
	if err != nil {
		return err
	}
	carbsVal, err := validate.ParseDouble(carbs, "Carbohydrates per 100 grams")
	if err != nil {
		return err
	}
	fatVal, err := validate.ParseDouble(fat, "Fat per 100 grams")
	if err != nil {
		return err
	}
	proteinVal, err := validate.ParseDouble(protein, "Protein per 100 grams")
	if err != nil {
		return err
	}
	ing, err := plan.NewIngredientWithNutrition(ingredientName, qty, carbsVal, fatVal, proteinVal)
	if err != nil {
		return err
	}
	return meal.AddIngredient(ing)
}

// RemoveIngredient removes the named ingredient from the addressed meal.
func (s *Store) RemoveIngredient(anchorDate, weekday, mealName, ingredientName string) error {
	meal, err := s.Meal(anchorDate, weekday, mealName)
	if err != nil {
		return err
	}
	return meal.RemoveIngredient(ingredientName)
}

// Ingredient resolves the ingredient addressed by the full path.
func (s *Store) Ingredient(anchorDate, weekday, mealName, ingredientName string) (*plan.Ingredient, error) {
	meal, err := s.Meal(anchorDate, weekday, mealName)
	if err != nil {
		return nil, err
	}
	ing, ok := meal.Ingredient(ingredientName)
	if !ok {
		return nil, validate.NewError("Ingredient", validate.CodeDoesntExist)
	}
	return ing, nil
}

// ChangeIngredientQuantity replaces the quantity of the addressed
// ingredient. The new value is validated before the ingredient is touched.
func (s *Store) ChangeIngredientQuantity(anchorDate, weekday, mealName, ingredientName, quantity string) error {
	ing, err := s.Ingredient(anchorDate, weekday, mealName, ingredientName)
	if err != nil {
		return err
	}
	qty, err := validate.ParseDouble(quantity, "Ingredient quantity")
	if err != nil {
		return err
	}
	return ing.SetQuantity(qty)
}

// ShoppingList merges every ingredient used across the addressed week,
// summing quantities of same-named ingredients, and returns the clones
// sorted ascending by case-insensitive name.
func (s *Store) ShoppingList(anchorDate string) ([]*plan.Ingredient, error) {
	week, err := s.Week(anchorDate)
	if err != nil {
		return nil, err
	}
	list := week.AllIngredients()
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name()) < strings.ToLower(list[j].Name())
	})
	return list, nil
}

// insert places week at its anchor-date position.
func (s *Store) insert(week *plan.Week) {
	i := sort.Search(len(s.weeks), func(i int) bool {
		return s.weeks[i].AnchorDate() >= week.AnchorDate()
	})
	s.weeks = append(s.weeks, nil)
	copy(s.weeks[i+1:], s.weeks[i:])
	s.weeks[i] = week
}

// ensureWeek returns the week for anchorDate, creating it when absent.
// Used by the decoder, which receives dates already screened by the row
// classifier.
func (s *Store) ensureWeek(anchorDate string) (*plan.Week, error) {
	if week, err := s.Week(anchorDate); err == nil {
		return week, nil
	}
	return s.AddWeek(anchorDate)
}
