package plan

import (
	"errors"
	"math"
	"testing"

	"mealplanner/internal/validate"
)

func TestNewIngredient(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ing, err := NewIngredient("  Buns  ", 150)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if ing.Name() != "Buns" {
			t.Errorf("Expected trimmed name 'Buns', got %q", ing.Name())
		}
		if ing.Quantity() != 150 {
			t.Errorf("Expected quantity 150, got %v", ing.Quantity())
		}
		if ing.HasNutrition() {
			t.Error("Expected no nutrition profile")
		}
	})

	t.Run("BlankName", func(t *testing.T) {
		_, err := NewIngredient("   ", 100)
		assertCode(t, err, "Ingredient name", validate.CodeInvalidString)
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		ing, err := NewIngredient("Buns", 0)
		assertCode(t, err, "Ingredient quantity", validate.CodeNonPositiveValue)
		if ing != nil {
			t.Error("Expected no ingredient to be created")
		}
	})

	t.Run("NegativeNutrition", func(t *testing.T) {
		_, err := NewIngredientWithNutrition("Buns", 150, 50, -4.5, 9)
		assertCode(t, err, "Nutritional values per 100 grams", validate.CodeNegativeValue)
	})
}

func TestIngredientTotals(t *testing.T) {
	ing, err := NewIngredientWithNutrition("Buns", 150, 50, 4.5, 9)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assertApprox := func(name string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}

	carbs, _ := ing.CarbsTotal()
	assertApprox("CarbsTotal", carbs, 75)
	fat, _ := ing.FatTotal()
	assertApprox("FatTotal", fat, 6.75)
	protein, _ := ing.ProteinTotal()
	assertApprox("ProteinTotal", protein, 13.5)

	// 75 g carbs -> 300 kcal, 6.75 g fat -> 60.75 kcal, 13.5 g protein -> 54 kcal.
	calories, err := ing.Calories()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assertApprox("Calories", calories, 414.75)
}

func TestIngredientWithoutNutrition(t *testing.T) {
	ing, err := NewIngredient("Water", 500)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ing.CarbsTotal(); !errors.Is(err, ErrNoNutrition) {
		t.Errorf("Expected ErrNoNutrition from CarbsTotal, got %v", err)
	}
	if _, err := ing.Calories(); !errors.Is(err, ErrNoNutrition) {
		t.Errorf("Expected ErrNoNutrition from Calories, got %v", err)
	}
}

func TestIngredientSetQuantity(t *testing.T) {
	ing, _ := NewIngredient("Buns", 150)

	if err := ing.SetQuantity(200); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ing.Quantity() != 200 {
		t.Errorf("Expected quantity 200, got %v", ing.Quantity())
	}

	err := ing.SetQuantity(0)
	assertCode(t, err, "Ingredient quantity", validate.CodeNonPositiveValue)
	if ing.Quantity() != 200 {
		t.Errorf("Failed SetQuantity mutated the ingredient: %v", ing.Quantity())
	}
}

func TestIngredientClone(t *testing.T) {
	original, _ := NewIngredientWithNutrition("Buns", 150, 50, 4.5, 9)
	clone := original.Clone()

	if !clone.Equal(original) {
		t.Error("Expected clone to equal the original")
	}
	if clone.Quantity() != original.Quantity() {
		t.Errorf("Expected clone quantity %v, got %v", original.Quantity(), clone.Quantity())
	}
	cn, _ := clone.NutritionProfile()
	on, _ := original.NutritionProfile()
	if cn != on {
		t.Errorf("Expected clone profile %+v, got %+v", on, cn)
	}

	if err := clone.SetQuantity(999); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if original.Quantity() != 150 {
		t.Errorf("Mutating the clone changed the original: %v", original.Quantity())
	}
}

func TestIngredientEqual(t *testing.T) {
	a, _ := NewIngredient("Egg", 50)
	b, _ := NewIngredient("egg", 100)
	c, _ := NewIngredient("Flour", 50)

	if !a.Equal(b) {
		t.Error("Expected case-insensitive name equality")
	}
	if a.Equal(c) {
		t.Error("Expected differently named ingredients to differ")
	}
	if a.Equal(nil) {
		t.Error("Expected nil to never be equal")
	}
}

// assertCode fails the test unless err is a validate.Error carrying the
// given field and code.
func assertCode(t *testing.T, err error, field string, code validate.Code) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Fatalf("Expected a validate.Error, got %T: %v", err, err)
	}
	if verr.Field != field || verr.Code != code {
		t.Errorf("Expected %s/%s, got %s/%s", field, code, verr.Field, verr.Code)
	}
}
