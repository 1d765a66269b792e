package teamfood

import "strings"

// FoodType is a set of dietary categories for a meal. The zero value is
// FoodOther, meaning no category was recognized.
type FoodType uint8

// FoodType flags. Flags combine with bitwise OR.
const (
	FoodOther      FoodType = 0
	FoodPork       FoodType = 1 << (iota - 1)
	FoodBeef
	FoodVegetarian
	FoodPoultry
	FoodFish
)

// foodTypeFlags lists every named flag with the keyword that identifies it
// in the menu's free-text type column.
var foodTypeFlags = []struct {
	flag    FoodType
	keyword string
}{
	{FoodPork, "Schwein"},
	{FoodBeef, "Rind"},
	{FoodVegetarian, "Vegetarisch"},
	{FoodPoultry, "Geflügel"},
	{FoodFish, "Fisch"},
}

// foodOtherLabel is the rendering of the empty set.
const foodOtherLabel = "Andere"

// DeriveFoodType returns the union of every flag whose keyword occurs in
// text, compared case-insensitively. Text without any keyword yields
// FoodOther.
func DeriveFoodType(text string) FoodType {
	lower := strings.ToLower(text)

	var t FoodType
	for _, f := range foodTypeFlags {
		if strings.Contains(lower, strings.ToLower(f.keyword)) {
			t |= f.flag
		}
	}
	return t
}

// ParseFoodType parses the output of FoodType.String.
func ParseFoodType(s string) FoodType {
	return DeriveFoodType(s)
}

// Has reports whether every flag in flag is set on t.
// Has(FoodOther) is true only for the empty set.
func (t FoodType) Has(flag FoodType) bool {
	if flag == FoodOther {
		return t == FoodOther
	}
	return t&flag == flag
}

// Flags returns the individual flags set on t in declaration order.
func (t FoodType) Flags() []FoodType {
	var flags []FoodType
	for _, f := range foodTypeFlags {
		if t&f.flag != 0 {
			flags = append(flags, f.flag)
		}
	}
	return flags
}

// String renders the set as its flag keywords joined by ", ",
// e.g. "Schwein, Fisch". The empty set renders as "Andere".
func (t FoodType) String() string {
	var names []string
	for _, f := range foodTypeFlags {
		if t&f.flag != 0 {
			names = append(names, f.keyword)
		}
	}
	if len(names) == 0 {
		return foodOtherLabel
	}
	return strings.Join(names, ", ")
}
