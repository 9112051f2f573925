// Package builder provides ID schemes for generated vertices.
package builder

import (
	"fmt"
	"strconv"
)

// NodeIDPrefix is the prefix of the default vertex IDs, matching the
// robot-map data files ("N_0", "N_1", ...).
const NodeIDPrefix = "N_"

// IDFn generates a vertex identifier from its zero‐based index.
// It must be pure: given the same idx, it always returns the same string.
type IDFn func(idx int) string

// NodeIDFn returns "N_<idx>", e.g. 0→"N_0", 42→"N_42".
// Never panics.
func NodeIDFn(idx int) string {
	return NodeIDPrefix + strconv.Itoa(idx)
}

// DecimalIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the “Excel‐style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDecimalIDs sets the ID scheme to DecimalIDFn.
func WithDecimalIDs() BuilderOption {
	return WithIDScheme(DecimalIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
