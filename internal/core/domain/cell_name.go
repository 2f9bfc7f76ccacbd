package domain

import "unique"

// CellName is a value object that wraps a unique.Handle[string].
// Layout hierarchies repeat the same cell names across thousands of
// placement edges, so interning keeps the model compact.
type CellName struct {
	h unique.Handle[string]
}

// NewCellName creates a new CellName from a string.
// It uses the unique package to intern the string.
func NewCellName(s string) CellName {
	return CellName{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (c CellName) String() string {
	var zero unique.Handle[string]
	if c.h == zero {
		return ""
	}
	return c.h.Value()
}

// Value returns the underlying unique.Handle[string].
func (c CellName) Value() unique.Handle[string] {
	return c.h
}

// MarshalText implements encoding.TextMarshaler.
// It returns the bytes of the underlying string value.
func (c CellName) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It creates a new handle from the provided text.
func (c *CellName) UnmarshalText(text []byte) error {
	c.h = unique.Make(string(text))
	return nil
}
