package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// view handles menu option 2: describe the deepest selected level.
func (s *Shell) view(path Path) {
	switch {
	case path.HasIngredient():
		ing, err := s.store.Ingredient(path.Week, path.Weekday(), path.Meal, path.Ingredient)
		if err != nil {
			s.errorf("%v", err)
			return
		}
		s.println(ing.String())

	case path.HasMeal():
		meal, err := s.store.Meal(path.Week, path.Weekday(), path.Meal)
		if err != nil {
			s.errorf("%v", err)
			return
		}
		s.println(meal.String())

	case path.HasDay():
		day, err := s.store.DayOf(path.Week, path.Weekday())
		if err != nil {
			s.errorf("%v", err)
			return
		}
		s.header(fmt.Sprintf("--- %s ---", path.Weekday()))
		meals := day.Meals()
		if len(meals) == 0 {
			s.println("No meals.")
		}
		for _, meal := range meals {
			s.println(meal.String())
		}
		fmt.Fprintf(s.out, "Total: %.2f g carbohydrates, %.2f g fat, %.2f g protein, %.2f Calories\n",
			day.CarbsTotal(), day.FatTotal(), day.ProteinTotal(), day.Calories())

	case path.HasWeek():
		week, err := s.store.Week(path.Week)
		if err != nil {
			s.errorf("%v", err)
			return
		}
		s.println(week.String())
		fmt.Fprintf(s.out, "Daily averages: %.2f g carbohydrates, %.2f g fat, %.2f g protein, %.2f Calories\n",
			week.AvgCarbsPerDay(), week.AvgFatPerDay(), week.AvgProteinPerDay(), week.AvgCaloriesPerDay())

	default:
		weeks := s.store.Weeks()
		if len(weeks) == 0 {
			s.println("No weeks.")
			return
		}
		s.header("--- ALL WEEKS ---")
		for _, week := range weeks {
			s.println(week.AnchorDate())
		}
	}
}

// printShoppingList prints the merged, alphabetized ingredient list for the
// selected week.
func (s *Shell) printShoppingList(anchorDate string) {
	list, err := s.store.ShoppingList(anchorDate)
	if err != nil {
		s.errorf("%v", err)
		return
	}
	s.header(fmt.Sprintf("--- SHOPPING LIST (week of %s) ---", anchorDate))
	if len(list) == 0 {
		s.println("No ingredients needed.")
		return
	}
	for _, ing := range list {
		fmt.Fprintf(s.out, "- %s (%.2f g)\n", ing.Name(), ing.Quantity())
	}
}

func (s *Shell) header(text string) {
	fmt.Fprintln(s.out, headerStyle.Render(text))
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Shell) prompt(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Shell) errorf(format string, args ...any) {
	fmt.Fprintln(s.out, errorStyle.Render("[ERROR] "+fmt.Sprintf(format, args...)))
}

func (s *Shell) successf(format string, args ...any) {
	fmt.Fprintln(s.out, successStyle.Render("[SUCCESS] "+fmt.Sprintf(format, args...)))
}
