package store

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"mealplanner/internal/plan"
	"mealplanner/internal/validate"
)

// Placeholder is the sentinel written in place of an intentionally absent
// weekday, meal, ingredient, or quantity field. It is what lets a week with
// no meals, or a meal with no ingredients, survive the flat encoding.
const Placeholder = "EMPTY"

// Header is the fixed first line of the data file.
const Header = "WeekAnchorDate,DayOfWeek,MealName,IngredientName,Quantity,CarbsPer100g,FatPer100g,ProteinPer100g"

// rowKind tags the three shapes a decoded row can take.
type rowKind int

const (
	rowWeekOnly rowKind = iota // asserts the week exists, nothing beneath it
	rowMealOnly                // asserts a meal with zero ingredients
	rowFull                    // a complete ingredient entry
)

// row is the decoded form of one accepted data line.
type row struct {
	kind           rowKind
	anchorDate     string
	dayIndex       int
	mealName       string
	ingredientName string
	quantity       float64
	nutrition      *plan.Nutrition
}

var errBadRow = errors.New("incoherent placeholder combination")

// classifyLine reports whether a raw line is structurally acceptable: it
// must split into exactly 5 or 8 comma-separated tokens, the anchor date
// must be a valid date, the weekday must resolve against the canonical
// table, and the name and numeric tokens must each satisfy their rule — or
// be the placeholder, which is exempt from every rule.
func classifyLine(line string) bool {
	if !validate.NonBlank(line) {
		return false
	}
	tokens := strings.Split(line, ",")
	if len(tokens) != 5 && len(tokens) != 8 {
		return false
	}

	if !validate.ValidDate(tokens[0]) {
		return false
	}
	if plan.DayIndex(tokens[1]) == -1 && tokens[1] != Placeholder {
		return false
	}
	if !validate.NonBlank(tokens[2]) && tokens[2] != Placeholder {
		return false
	}
	if !validate.NonBlank(tokens[3]) && tokens[3] != Placeholder {
		return false
	}
	if !validate.ValidDouble(tokens[4]) && tokens[4] != Placeholder {
		return false
	}
	if len(tokens) == 5 {
		return true
	}
	for _, tok := range tokens[5:8] {
		if !validate.ValidDouble(tok) && tok != Placeholder {
			return false
		}
	}
	return true
}

// parseRow turns the tokens of a classified line into a tagged row. The
// per-token checks have already passed; what remains is placeholder
// coherence: a placeholder quantity is only legal under a placeholder
// ingredient, and nutrient tokens must be all-numeric or all-placeholder.
func parseRow(tokens []string) (row, error) {
	r := row{anchorDate: strings.TrimSpace(tokens[0])}

	if tokens[1] == Placeholder || tokens[2] == Placeholder {
		r.kind = rowWeekOnly
		return r, nil
	}
	r.dayIndex = plan.DayIndex(tokens[1])
	r.mealName = strings.TrimSpace(tokens[2])

	if tokens[3] == Placeholder {
		if tokens[4] != Placeholder {
			return row{}, errBadRow
		}
		for _, tok := range tokens[5:] {
			if tok != Placeholder {
				return row{}, errBadRow
			}
		}
		r.kind = rowMealOnly
		return r, nil
	}
	if tokens[4] == Placeholder {
		return row{}, errBadRow
	}

	r.kind = rowFull
	r.ingredientName = strings.TrimSpace(tokens[3])
	qty, err := validate.ParseDouble(tokens[4], "Quantity")
	if err != nil {
		return row{}, err
	}
	r.quantity = qty

	if len(tokens) == 5 {
		return r, nil
	}

	placeholders := 0
	for _, tok := range tokens[5:8] {
		if tok == Placeholder {
			placeholders++
		}
	}
	switch placeholders {
	case 3:
		// All three nutrient fields absent: same as a 5-token row.
		return r, nil
	case 0:
	default:
		return row{}, errBadRow
	}

	carbs, err := validate.ParseDouble(tokens[5], "CarbsPer100g")
	if err != nil {
		return row{}, err
	}
	fat, err := validate.ParseDouble(tokens[6], "FatPer100g")
	if err != nil {
		return row{}, err
	}
	protein, err := validate.ParseDouble(tokens[7], "ProteinPer100g")
	if err != nil {
		return row{}, err
	}
	r.nutrition = &plan.Nutrition{CarbsPer100g: carbs, FatPer100g: fat, ProteinPer100g: protein}
	return r, nil
}

// apply builds or locates the entities a row describes. Failures (such as a
// duplicate ingredient name inside one meal, or a non-positive quantity) are
// returned so the caller can skip the line.
func (s *Store) apply(r row) error {
	week, err := s.ensureWeek(r.anchorDate)
	if err != nil {
		return err
	}
	if r.kind == rowWeekOnly {
		return nil
	}

	day := week.Day(r.dayIndex)
	meal, ok := day.Meal(r.mealName)
	if !ok {
		meal, err = plan.NewMeal(r.mealName)
		if err != nil {
			return err
		}
		if err := day.AddMeal(meal); err != nil {
			return err
		}
	}
	if r.kind == rowMealOnly {
		return nil
	}

	var ing *plan.Ingredient
	if r.nutrition != nil {
		ing, err = plan.NewIngredientWithNutrition(r.ingredientName, r.quantity,
			r.nutrition.CarbsPer100g, r.nutrition.FatPer100g, r.nutrition.ProteinPer100g)
	} else {
		ing, err = plan.NewIngredient(r.ingredientName, r.quantity)
	}
	if err != nil {
		return err
	}
	return meal.AddIngredient(ing)
}

// decode reads the flat encoding into the store. The first line is the
// header and is discarded. Lines that fail classification, placeholder
// coherence, or entity construction are skipped, never fatal: one corrupt
// line must not abort loading the rest of the file. The skipped-line count
// is returned.
func (s *Store) decode(data []byte) int {
	lines := strings.Split(string(data), "\n")
	skipped := 0
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if i == 0 {
			continue // header
		}
		if line == "" {
			continue
		}
		if !classifyLine(line) {
			skipped++
			continue
		}
		r, err := parseRow(strings.Split(line, ","))
		if err != nil {
			skipped++
			continue
		}
		if err := s.apply(r); err != nil {
			skipped++
		}
	}
	return skipped
}

// encode flattens the tree into the inverse of decode: the header, then one
// row per ingredient, walking weeks in anchor order, days Sunday through
// Saturday, and meals and ingredients in insertion order. A meal with no
// ingredients becomes a placeholder-filled meal row, and a week with no
// meals at all becomes a placeholder-filled week row, so structurally empty
// entities round-trip.
func (s *Store) encode() []byte {
	var b bytes.Buffer
	b.WriteString(Header)
	b.WriteByte('\n')

	for _, week := range s.weeks {
		empty := true
		for i := 0; i < plan.DaysPerWeek; i++ {
			day := week.Day(i)
			for _, meal := range day.Meals() {
				empty = false
				writeMealRows(&b, week.AnchorDate(), plan.WeekdayName(i), meal)
			}
		}
		if empty {
			writeLine(&b, week.AnchorDate(), Placeholder, Placeholder, Placeholder, Placeholder)
		}
	}
	return b.Bytes()
}

func writeMealRows(b *bytes.Buffer, anchor, weekday string, meal *plan.Meal) {
	ingredients := meal.Ingredients()
	if len(ingredients) == 0 {
		writeLine(b, anchor, weekday, meal.Name(), Placeholder, Placeholder)
		return
	}
	for _, ing := range ingredients {
		if nutrition, ok := ing.NutritionProfile(); ok {
			writeLine(b, anchor, weekday, meal.Name(), ing.Name(),
				formatQuantity(ing.Quantity()),
				formatQuantity(nutrition.CarbsPer100g),
				formatQuantity(nutrition.FatPer100g),
				formatQuantity(nutrition.ProteinPer100g))
		} else {
			writeLine(b, anchor, weekday, meal.Name(), ing.Name(), formatQuantity(ing.Quantity()))
		}
	}
}

func writeLine(b *bytes.Buffer, tokens ...string) {
	b.WriteString(strings.Join(tokens, ","))
	b.WriteByte('\n')
}

// formatQuantity renders a double in plain decimal notation. The 'f' format
// never produces an exponent, which the row grammar would reject, and the -1
// precision keeps the shortest representation that parses back exactly.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Load reads the whole data file into the store. A missing file is not an
// error: the first run starts from an empty planner.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading data file %s: %w", path, err)
	}
	if skipped := s.decode(data); skipped > 0 {
		log.Printf("Skipped %d invalid line(s) in %s", skipped, path)
	}
	return nil
}

// Save overwrites the data file with the current tree.
func (s *Store) Save(path string) error {
	if err := os.WriteFile(path, s.encode(), 0644); err != nil {
		return fmt.Errorf("writing data file %s: %w", path, err)
	}
	return nil
}
