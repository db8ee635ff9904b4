package cli

import (
	"bytes"
	"strings"
	"testing"

	"mealplanner/internal/store"
)

// runScript feeds newline-separated inputs to a shell over the given store
// and returns everything it printed. The shell also stops cleanly when the
// input runs out.
func runScript(st *store.Store, inputs ...string) string {
	var out bytes.Buffer
	sh := New(st, strings.NewReader(strings.Join(inputs, "\n")+"\n"), &out)
	sh.Run()
	return out.String()
}

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New()
	if _, err := st.AddWeek("2025-09-14"); err != nil {
		t.Fatalf("Failed to seed week: %v", err)
	}
	if _, err := st.AddMeal("2025-09-14", "Monday", "Hamburgers"); err != nil {
		t.Fatalf("Failed to seed meal: %v", err)
	}
	err := st.AddIngredientWithNutrition("2025-09-14", "Monday", "Hamburgers", "Buns", "150", "50", "4.5", "9")
	if err != nil {
		t.Fatalf("Failed to seed ingredient: %v", err)
	}
	return st
}

func TestShellAddWeek(t *testing.T) {
	st := store.New()
	out := runScript(st, "3", "2025-09-14", "0")

	if !strings.Contains(out, "[SUCCESS] Added new week.") {
		t.Errorf("Expected a success line, got:\n%s", out)
	}
	if !strings.Contains(out, "Current selection: mealplanner>2025-09-14> ") {
		t.Errorf("Expected the new week to be selected, got:\n%s", out)
	}
	if _, err := st.Week("2025-09-14"); err != nil {
		t.Errorf("Expected the week to be stored, got %v", err)
	}

	t.Run("InvalidDate", func(t *testing.T) {
		out := runScript(store.New(), "3", "09/14/2025", "0")
		if !strings.Contains(out, "[ERROR] Week anchor date is not a valid date.") {
			t.Errorf("Expected a validation error, got:\n%s", out)
		}
	})
}

func TestShellUnrecognizedChoice(t *testing.T) {
	out := runScript(store.New(), "9", "0")
	if !strings.Contains(out, "[ERROR] Unrecognized input.") {
		t.Errorf("Expected an error for choice 9, got:\n%s", out)
	}
}

func TestShellNavigation(t *testing.T) {
	st := seededStore(t)

	t.Run("DescendAndView", func(t *testing.T) {
		out := runScript(st, "1", "2025-09-14", "monday", "main", "2", "0")
		if !strings.Contains(out, "--- Monday ---") {
			t.Errorf("Expected the day view header, got:\n%s", out)
		}
		if !strings.Contains(out, "Total:") {
			t.Errorf("Expected the day totals line, got:\n%s", out)
		}
	})

	t.Run("UnknownWeek", func(t *testing.T) {
		out := runScript(st, "1", "2024-01-07", "main", "0")
		if !strings.Contains(out, "[ERROR] Week does not exist.") {
			t.Errorf("Expected a missing-week error, got:\n%s", out)
		}
	})

	t.Run("BackAndClear", func(t *testing.T) {
		out := runScript(st, "1", "2025-09-14", "mon", "back", "clear", "main", "0")
		if !strings.Contains(out, "mealplanner>2025-09-14>Monday> ") {
			t.Errorf("Expected the descended prompt, got:\n%s", out)
		}
		if !strings.Contains(out, "Current selection: mealplanner> ") {
			t.Errorf("Expected clear to reset the selection, got:\n%s", out)
		}
	})

	t.Run("Help", func(t *testing.T) {
		out := runScript(st, "1", "help", "main", "0")
		if !strings.Contains(out, "clear: Clears the current selection") {
			t.Errorf("Expected the command list, got:\n%s", out)
		}
	})
}

func TestShellAddIngredient(t *testing.T) {
	st := seededStore(t)

	out := runScript(st,
		"1", "2025-09-14", "mon", "Hamburgers", "main", // select the meal
		"3", "Patty", "120", "y", "0", "17", "26", // add with nutrition
		"0")
	if !strings.Contains(out, "[SUCCESS] Added new ingredient.") {
		t.Errorf("Expected a success line, got:\n%s", out)
	}
	if !strings.Contains(out, "Current selection: mealplanner>2025-09-14>Monday>Hamburgers>Patty> ") {
		t.Errorf("Expected the new ingredient to be selected, got:\n%s", out)
	}

	ing, err := st.Ingredient("2025-09-14", "Monday", "Hamburgers", "Patty")
	if err != nil {
		t.Fatalf("Expected the ingredient to be stored, got %v", err)
	}
	if !ing.HasNutrition() {
		t.Error("Expected a nutrition profile to be attached")
	}

	t.Run("WithoutNutrition", func(t *testing.T) {
		out := runScript(st,
			"1", "2025-09-14", "mon", "Hamburgers", "main",
			"3", "Water", "250", "n",
			"0")
		if !strings.Contains(out, "[SUCCESS] Added new ingredient.") {
			t.Errorf("Expected a success line, got:\n%s", out)
		}
		ing, err := st.Ingredient("2025-09-14", "Monday", "Hamburgers", "Water")
		if err != nil {
			t.Fatalf("Expected the ingredient to be stored, got %v", err)
		}
		if ing.HasNutrition() {
			t.Error("Expected no nutrition profile")
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		out := runScript(st,
			"1", "2025-09-14", "mon", "Hamburgers", "main",
			"3", "buns", "80", "n",
			"0")
		if !strings.Contains(out, "[ERROR] Ingredient already exists.") {
			t.Errorf("Expected a duplicate error, got:\n%s", out)
		}
	})
}

func TestShellChangeQuantity(t *testing.T) {
	st := seededStore(t)

	out := runScript(st,
		"1", "2025-09-14", "mon", "Hamburgers", "Buns", "main",
		"3", "200",
		"0")
	if !strings.Contains(out, "[SUCCESS] Changed ingredient quantity.") {
		t.Errorf("Expected a success line, got:\n%s", out)
	}
	ing, _ := st.Ingredient("2025-09-14", "Monday", "Hamburgers", "Buns")
	if ing.Quantity() != 200 {
		t.Errorf("Expected quantity 200, got %v", ing.Quantity())
	}
}

func TestShellRemove(t *testing.T) {
	t.Run("Meal", func(t *testing.T) {
		st := seededStore(t)
		out := runScript(st,
			"1", "2025-09-14", "mon", "main",
			"4", "Hamburgers",
			"0")
		if !strings.Contains(out, "[SUCCESS] Removed meal.") {
			t.Errorf("Expected a success line, got:\n%s", out)
		}
		if _, err := st.Meal("2025-09-14", "Monday", "Hamburgers"); err == nil {
			t.Error("Expected the meal to be gone")
		}
	})

	t.Run("Week", func(t *testing.T) {
		st := seededStore(t)
		out := runScript(st, "4", "2025-09-14", "0")
		if !strings.Contains(out, "[SUCCESS] Removed week.") {
			t.Errorf("Expected a success line, got:\n%s", out)
		}
		if len(st.Weeks()) != 0 {
			t.Errorf("Expected no weeks, got %d", len(st.Weeks()))
		}
	})

	t.Run("NotAvailableAtWeekLevel", func(t *testing.T) {
		st := seededStore(t)
		out := runScript(st, "1", "2025-09-14", "main", "4", "0")
		if !strings.Contains(out, "[ERROR] Unrecognized input.") {
			t.Errorf("Expected option 4 to be rejected at the week level, got:\n%s", out)
		}
	})
}

func TestShellShoppingList(t *testing.T) {
	st := seededStore(t)
	if _, err := st.AddMeal("2025-09-14", "Friday", "Dinner"); err != nil {
		t.Fatalf("Failed to seed meal: %v", err)
	}
	if err := st.AddIngredient("2025-09-14", "Friday", "Dinner", "buns", "50"); err != nil {
		t.Fatalf("Failed to seed ingredient: %v", err)
	}

	out := runScript(st, "1", "2025-09-14", "main", "3", "0")
	if !strings.Contains(out, "--- SHOPPING LIST (week of 2025-09-14) ---") {
		t.Errorf("Expected the shopping list header, got:\n%s", out)
	}
	if !strings.Contains(out, "- Buns (200.00 g)") {
		t.Errorf("Expected the merged buns entry, got:\n%s", out)
	}
}

func TestShellListWeeks(t *testing.T) {
	st := seededStore(t)
	if _, err := st.AddWeek("2025-08-31"); err != nil {
		t.Fatalf("Failed to seed week: %v", err)
	}

	out := runScript(st, "2", "0")
	first := strings.Index(out, "2025-08-31")
	second := strings.Index(out, "2025-09-14")
	if first == -1 || second == -1 || first > second {
		t.Errorf("Expected both weeks listed in anchor order, got:\n%s", out)
	}

	t.Run("Empty", func(t *testing.T) {
		out := runScript(store.New(), "2", "0")
		if !strings.Contains(out, "No weeks.") {
			t.Errorf("Expected the empty listing, got:\n%s", out)
		}
	})
}
