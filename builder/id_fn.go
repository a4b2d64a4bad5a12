package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to a node label.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index: 0→"0", 12→"12".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns a single capital letter: 0→"A", 25→"Z".
// Panics outside [0,25]; use ExcelColumnIDFn for larger graphs.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn returns spreadsheet column names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append([]byte{byte('A' + i%26)}, buf...)
	}

	return string(buf)
}

// SymbolNumberIDFn returns prefix followed by the decimal index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs labels vertices "A".."Z".
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs labels vertices "A","B",…,"AA",….
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs labels vertices prefix+"0", prefix+"1", ….
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
