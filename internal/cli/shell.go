package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"mealplanner/internal/plan"
	"mealplanner/internal/store"
)

// Shell runs the interactive menu loop over a planner store. Every user
// action either completes with a [SUCCESS] line or reports a one-line
// [ERROR]; validation failures never end the session.
type Shell struct {
	store *store.Store
	in    *bufio.Scanner
	out   io.Writer
}

// New builds a shell reading commands from in and printing to out.
func New(st *store.Store, in io.Reader, out io.Writer) *Shell {
	return &Shell{store: st, in: bufio.NewScanner(in), out: out}
}

// Run drives the main menu until the user exits or input ends.
func (s *Shell) Run() {
	path := Root()
	for {
		s.printMainMenu(path)
		line, ok := s.readLine()
		if !ok {
			return
		}
		switch strings.TrimSpace(line) {
		case "1":
			path = s.changeSelection(path)
		case "2":
			s.view(path)
		case "3":
			path = s.optionAdd(path)
		case "4":
			path = s.optionRemove(path)
		case "0":
			return
		default:
			s.errorf("Unrecognized input.")
		}
	}
}

// printMainMenu lists the actions available at the deepest selected level.
func (s *Shell) printMainMenu(path Path) {
	s.header("\n------------ MAIN MENU ------------")
	fmt.Fprintf(s.out, "Current selection: %s\n", path)
	s.println("1. Change selection")
	switch {
	case path.HasIngredient():
		s.println("2. View current ingredient")
		s.println("3. Change ingredient quantity")
	case path.HasMeal():
		s.println("2. View current meal")
		s.println("3. Add ingredient")
		s.println("4. Remove ingredient")
	case path.HasDay():
		s.println("2. View current day")
		s.println("3. Add meal")
		s.println("4. Remove meal")
	case path.HasWeek():
		s.println("2. View current week")
		s.println("3. Get shopping list for the current week")
	default:
		s.println("2. List all weeks")
		s.println("3. Add week")
		s.println("4. Remove week")
	}
	s.println("0. Exit")
	s.prompt("Enter choice: ")
}

// changeSelection runs the navigation sub-mode: descend by name, or use the
// help/clear/back/main commands. It returns the resulting selection.
func (s *Shell) changeSelection(path Path) Path {
	s.header("\n------------ CHANGE SELECTION ------------")
	s.println("Enter 'help' to view a list of commands")

	for {
		s.prompt(path.String())
		line, ok := s.readLine()
		if !ok {
			return path
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "help", "h", "commands", "command list", "list commands":
			s.printCommandList()
		case "clear", "c", "clr":
			path = Root()
		case "back", "b":
			path = path.Back()
		case "main", "quit", "0", "exit":
			return path
		default:
			path = s.descend(path, strings.TrimSpace(line))
		}
	}
}

// descend selects the named child one level below the current selection.
func (s *Shell) descend(path Path, name string) Path {
	switch {
	case path.HasIngredient():
		s.errorf("Unrecognized input.")
	case path.HasMeal():
		meal, err := s.store.Meal(path.Week, path.Weekday(), path.Meal)
		if err != nil {
			s.errorf("%v", err)
			return path
		}
		ing, ok := meal.Ingredient(name)
		if !ok {
			s.errorf("Ingredient does not exist.")
			return path
		}
		path.Ingredient = ing.Name()
	case path.HasDay():
		day, err := s.store.DayOf(path.Week, path.Weekday())
		if err != nil {
			s.errorf("%v", err)
			return path
		}
		meal, ok := day.Meal(name)
		if !ok {
			s.errorf("Meal does not exist.")
			return path
		}
		path.Meal = meal.Name()
	case path.HasWeek():
		index := plan.DayIndex(name)
		if index == -1 {
			s.errorf("Invalid day of the week.")
			return path
		}
		path.Day = index
	default:
		week, err := s.store.Week(name)
		if err != nil {
			s.errorf("%v", err)
			return path
		}
		path.Week = week.AnchorDate()
	}
	return path
}

// optionAdd handles menu option 3 for the current level: change quantity,
// add ingredient, add meal, print the shopping list, or add a week.
func (s *Shell) optionAdd(path Path) Path {
	switch {
	case path.HasIngredient():
		s.prompt("Enter new quantity: ")
		quantity, _ := s.readLine()
		err := s.store.ChangeIngredientQuantity(path.Week, path.Weekday(), path.Meal, path.Ingredient, strings.TrimSpace(quantity))
		if err != nil {
			s.errorf("%v", err)
			return path
		}
		s.successf("Changed ingredient quantity.")

	case path.HasMeal():
		return s.addIngredient(path)

	case path.HasDay():
		s.prompt("Enter the name of the meal: ")
		name, _ := s.readLine()
		meal, err := s.store.AddMeal(path.Week, path.Weekday(), strings.TrimSpace(name))
		if err != nil {
			s.errorf("%v", err)
			return path
		}
		path.Meal = meal.Name()
		s.successf("Added new meal.")

	case path.HasWeek():
		s.printShoppingList(path.Week)

	default:
		s.prompt("Enter the anchor date of the week (Sunday) in the form YYYY-MM-DD: ")
		anchor, _ := s.readLine()
		week, err := s.store.AddWeek(strings.TrimSpace(anchor))
		if err != nil {
			s.errorf("%v", err)
			return path
		}
		path.Week = week.AnchorDate()
		s.successf("Added new week.")
	}
	return path
}

// addIngredient prompts for an ingredient, optionally with a nutrition
// profile, and attaches it to the selected meal.
func (s *Shell) addIngredient(path Path) Path {
	s.prompt("Enter the name of the ingredient: ")
	name, _ := s.readLine()
	name = strings.TrimSpace(name)

	s.prompt("Enter the quantity (in grams): ")
	quantity, _ := s.readLine()
	quantity = strings.TrimSpace(quantity)

	s.prompt("Do you want to include a nutritional profile (Y/N)? ")
	withNutrition, _ := s.readLine()

	var err error
	if answer := strings.ToLower(strings.TrimSpace(withNutrition)); answer == "y" || answer == "yes" {
		s.prompt("Enter the amount of carbohydrates per 100 grams (in grams): ")
		carbs, _ := s.readLine()
		s.prompt("Enter the amount of fat per 100 grams (in grams): ")
		fat, _ := s.readLine()
		s.prompt("Enter the amount of protein per 100 grams (in grams): ")
		protein, _ := s.readLine()

		err = s.store.AddIngredientWithNutrition(path.Week, path.Weekday(), path.Meal, name,
			quantity, strings.TrimSpace(carbs), strings.TrimSpace(fat), strings.TrimSpace(protein))
	} else {
		err = s.store.AddIngredient(path.Week, path.Weekday(), path.Meal, name, quantity)
	}
	if err != nil {
		s.errorf("%v", err)
		return path
	}

	if ing, lookupErr := s.store.Ingredient(path.Week, path.Weekday(), path.Meal, name); lookupErr == nil {
		path.Ingredient = ing.Name()
	}
	s.successf("Added new ingredient.")
	return path
}

// optionRemove handles menu option 4 for the current level.
func (s *Shell) optionRemove(path Path) Path {
	switch {
	case path.HasIngredient(), path.HasWeek() && !path.HasDay():
		s.errorf("Unrecognized input.")

	case path.HasMeal():
		s.prompt("Enter the name of the ingredient: ")
		name, _ := s.readLine()
		if err := s.store.RemoveIngredient(path.Week, path.Weekday(), path.Meal, strings.TrimSpace(name)); err != nil {
			s.errorf("%v", err)
			return path
		}
		s.successf("Removed ingredient.")

	case path.HasDay():
		s.prompt("Enter the name of the meal: ")
		name, _ := s.readLine()
		if err := s.store.RemoveMeal(path.Week, path.Weekday(), strings.TrimSpace(name)); err != nil {
			s.errorf("%v", err)
			return path
		}
		s.successf("Removed meal.")

	default:
		s.prompt("Enter the anchor date of the week (Sunday) in the form YYYY-MM-DD: ")
		anchor, _ := s.readLine()
		if err := s.store.RemoveWeek(strings.TrimSpace(anchor)); err != nil {
			s.errorf("%v", err)
			return path
		}
		path = Root()
		s.successf("Removed week.")
	}
	return path
}

func (s *Shell) printCommandList() {
	s.header("\n------------ COMMANDS ------------")
	s.println("clear: Clears the current selection")
	s.println("back: Goes back one level")
	s.println("main: Returns to the main menu")
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
