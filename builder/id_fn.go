package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a constructor-local position to a node label.
type IDFn func(i int) string

// SymbolIDFn labels 0..25 as "A".."Z". It panics outside that range.
func SymbolIDFn(i int) string {
	if i < 0 || i > 25 {
		panic(fmt.Sprintf("SymbolIDFn: i must be in [0,25], got %d", i))
	}

	return string('A' + rune(i))
}

// ExcelColumnIDFn labels 0, 1, ..., 25, 26 as "A", "B", ..., "Z", "AA".
func ExcelColumnIDFn(i int) string {
	if i < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: i must be ≥ 0, got %d", i))
	}
	var runes []rune
	for ; i >= 0; i = i/26 - 1 {
		runes = append(runes, 'A'+rune(i%26))
	}
	for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
		runes[l], runes[r] = runes[r], runes[l]
	}

	return string(runes)
}

// PrefixIDFn labels i as prefix followed by its decimal form.
func PrefixIDFn(prefix string) IDFn {
	return func(i int) string { return prefix + strconv.Itoa(i) }
}
