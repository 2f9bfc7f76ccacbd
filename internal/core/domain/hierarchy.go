// Package domain contains the core domain models for the layout cell hierarchy.
package domain

import (
	"iter"
	"slices"
)

// Hierarchy is the cell-containment model extracted from a layout file:
// the set of all discovered cell names, the parent-to-children adjacency,
// and the derived top-level cells.
//
// Child lists are ordered and keep duplicates; a cell placed three times
// appears three times. Top cells are computed once by Finalize and the
// model is treated as read-only afterward.
type Hierarchy struct {
	cells    map[CellName]struct{}
	children map[CellName][]CellName
	tops     []CellName
}

// NewHierarchy creates a new empty Hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		cells:    make(map[CellName]struct{}),
		children: make(map[CellName][]CellName),
	}
}

// AddCell registers a cell name. Adding the same name twice is a no-op.
// Every registered cell owns a children entry, so Children never has to
// distinguish "unknown cell" from "leaf cell".
func (h *Hierarchy) AddCell(name CellName) {
	if _, exists := h.cells[name]; exists {
		return
	}
	h.cells[name] = struct{}{}
	if _, exists := h.children[name]; !exists {
		h.children[name] = []CellName{}
	}
}

// AddChild appends child to parent's placement list. Both names are
// registered as cells, which keeps the closure invariant (every name in
// the adjacency is a known cell) true at the only mutation point.
func (h *Hierarchy) AddChild(parent, child CellName) {
	h.AddCell(parent)
	h.AddCell(child)
	h.children[parent] = append(h.children[parent], child)
}

// Contains reports whether the given cell name was discovered.
func (h *Hierarchy) Contains(name CellName) bool {
	_, ok := h.cells[name]
	return ok
}

// Children returns the ordered placement list of the given cell.
// The returned slice is owned by the model and must not be mutated.
func (h *Hierarchy) Children(name CellName) []CellName {
	return h.children[name]
}

// Len returns the number of distinct cells.
func (h *Hierarchy) Len() int {
	return len(h.cells)
}

// EdgeCount returns the total number of placement edges, counting
// duplicate placements individually.
func (h *Hierarchy) EdgeCount() int {
	n := 0
	for _, kids := range h.children {
		n += len(kids)
	}
	return n
}

// Cells returns an iterator over all cell names in lexicographic order.
func (h *Hierarchy) Cells() iter.Seq[CellName] {
	names := h.sortedCells()
	return func(yield func(CellName) bool) {
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// Finalize computes the top-level cells: every cell that never appears
// as a child of another cell, sorted lexicographically. Decoders call it
// exactly once after a successful parse; the model is frozen afterward.
func (h *Hierarchy) Finalize() {
	referenced := make(map[CellName]struct{})
	for _, kids := range h.children {
		for _, kid := range kids {
			referenced[kid] = struct{}{}
		}
	}

	h.tops = h.tops[:0]
	for name := range h.cells {
		if _, ok := referenced[name]; !ok {
			h.tops = append(h.tops, name)
		}
	}
	slices.SortFunc(h.tops, compareCellNames)
}

// TopCells returns the cells computed by Finalize. The returned slice is
// owned by the model and must not be mutated.
func (h *Hierarchy) TopCells() []CellName {
	return h.tops
}

// Equal reports whether two hierarchies have identical content: the same
// cell set, the same ordered child lists, and the same top cells.
func (h *Hierarchy) Equal(other *Hierarchy) bool {
	if other == nil {
		return false
	}
	if len(h.cells) != len(other.cells) {
		return false
	}
	for name := range h.cells {
		if _, ok := other.cells[name]; !ok {
			return false
		}
	}
	for name, kids := range h.children {
		if !slices.Equal(kids, other.children[name]) {
			return false
		}
	}
	return slices.Equal(h.tops, other.tops)
}

func (h *Hierarchy) sortedCells() []CellName {
	names := make([]CellName, 0, len(h.cells))
	for name := range h.cells {
		names = append(names, name)
	}
	slices.SortFunc(names, compareCellNames)
	return names
}

func compareCellNames(a, b CellName) int {
	switch {
	case a.String() < b.String():
		return -1
	case a.String() > b.String():
		return 1
	default:
		return 0
	}
}
