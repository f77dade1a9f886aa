package recipe

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is a measurement unit accepted on an ingredient line. The empty
// string means the line carries a bare count ("2 eggs").
type Unit string

const (
	UnitNone   Unit = ""
	UnitCan    Unit = "can"
	UnitCup    Unit = "cup"
	UnitGallon Unit = "gallon"
	UnitGram   Unit = "gram"
	UnitItem   Unit = "item"
	UnitKg     Unit = "kg"
	UnitLb     Unit = "lb"
	UnitOz     Unit = "oz"
	UnitTsp    Unit = "tsp"
	UnitTbsp   Unit = "tbsp"
)

// ValidUnits is the set of recognized unit values, excluding UnitNone.
var ValidUnits = map[Unit]bool{
	UnitCan:    true,
	UnitCup:    true,
	UnitGallon: true,
	UnitGram:   true,
	UnitItem:   true,
	UnitKg:     true,
	UnitLb:     true,
	UnitOz:     true,
	UnitTsp:    true,
	UnitTbsp:   true,
}

// Class groups units by what kind of quantity they measure. Quantities of
// the same class can be summed; quantities of different classes cannot.
type Class string

const (
	ClassMass   Class = "mass"
	ClassVolume Class = "volume"
	ClassCount  Class = "count"
	ClassNone   Class = "none"
)

// Class returns the unit class governing whether two quantities may be
// summed directly.
func (u Unit) Class() Class {
	switch u {
	case UnitGram, UnitKg, UnitLb, UnitOz:
		return ClassMass
	case UnitCup, UnitGallon, UnitTsp, UnitTbsp:
		return ClassVolume
	case UnitCan, UnitItem:
		return ClassCount
	default:
		return ClassNone
	}
}

// Canonical returns the multiplier that converts an amount in this unit to
// the class's canonical unit (grams for mass, teaspoons for volume, raw
// count otherwise), and the canonical unit itself.
func (u Unit) Canonical() (float64, Unit) {
	switch u {
	case UnitGram:
		return 1, UnitGram
	case UnitKg:
		return 1000, UnitGram
	case UnitLb:
		return 453.592, UnitGram
	case UnitOz:
		return 28.3495, UnitGram
	case UnitTsp:
		return 1, UnitTsp
	case UnitTbsp:
		return 3, UnitTsp
	case UnitCup:
		return 48, UnitTsp
	case UnitGallon:
		return 768, UnitTsp
	default:
		return 1, u
	}
}

// IngredientLine is one "<amount> [unit] <name>" entry of a recipe.
type IngredientLine struct {
	Name   string
	Amount float64
	Unit   Unit
}

// String renders the line back into the form ParseIngredient accepts.
func (l IngredientLine) String() string {
	amount := strconv.FormatFloat(l.Amount, 'f', -1, 64)
	if l.Unit == UnitNone {
		return amount + " " + l.Name
	}
	return amount + " " + string(l.Unit) + " " + l.Name
}

// ParseIngredient parses an ingredient line of the form
// "<amount> <unit> <name>" or "<amount> <name>" for unitless counts.
func ParseIngredient(s string) (IngredientLine, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return IngredientLine{}, &IngredientError{Line: s, Err: ErrBadIngredient}
	}

	amount, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return IngredientLine{}, &IngredientError{Line: s, Err: fmt.Errorf("%w: %q is not a number", ErrBadAmount, fields[0])}
	}
	if amount <= 0 {
		return IngredientLine{}, &IngredientError{Line: s, Err: fmt.Errorf("%w: amount must be positive", ErrBadAmount)}
	}

	unit := Unit(strings.ToLower(fields[1]))
	nameFields := fields[2:]
	if !ValidUnits[unit] {
		// No recognized unit: the whole remainder is the name and the
		// line is a bare count.
		unit = UnitNone
		nameFields = fields[1:]
	}
	if len(nameFields) == 0 {
		return IngredientLine{}, &IngredientError{Line: s, Err: ErrBadIngredient}
	}

	return IngredientLine{
		Name:   strings.Join(nameFields, " "),
		Amount: amount,
		Unit:   unit,
	}, nil
}

// NormalizeName lowercases and trims an ingredient or recipe name for
// identity comparison. Two names are the same ingredient iff their
// normalized forms match exactly.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Recipe is a named, immutable set of ingredient lines, tags, and steps.
type Recipe struct {
	Name        string
	Tags        []string
	Ingredients []IngredientLine
	Steps       []string
}

// HasTags reports whether the recipe carries every tag in want.
// An empty want matches all recipes.
func (r Recipe) HasTags(want []string) bool {
	for _, w := range want {
		found := false
		for _, t := range r.Tags {
			if NormalizeName(t) == NormalizeName(w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
