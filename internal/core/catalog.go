package core

import "sort"

// catalog is the fixed selector-to-name mapping shown in the record menu.
// It is never mutated at runtime.
var catalog = map[int]string{
	1: "Groceries",
	2: "Rent/Mortgage",
	3: "Utilities",
	4: "Transportation",
	5: "Entertainment",
	6: "Income",
	7: "Other",
}

// CategoryName resolves a menu selector to its category name.
func CategoryName(selector int) (string, bool) {
	name, ok := catalog[selector]
	return name, ok
}

// Selectors returns the catalog keys in ascending order for display.
func Selectors() []int {
	out := make([]int, 0, len(catalog))
	for n := range catalog {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
