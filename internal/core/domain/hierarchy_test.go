package domain_test

import (
	"testing"

	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
)

func TestHierarchy_AddCell(t *testing.T) {
	h := domain.NewHierarchy()
	top := domain.NewCellName("TOP")

	h.AddCell(top)
	h.AddCell(top)

	if h.Len() != 1 {
		t.Fatalf("expected 1 cell after duplicate AddCell, got %d", h.Len())
	}
	if !h.Contains(top) {
		t.Error("expected Contains to report the added cell")
	}
	if kids := h.Children(top); kids == nil || len(kids) != 0 {
		t.Errorf("expected empty (non-nil) children for fresh cell, got %v", kids)
	}
}

func TestHierarchy_AddChild_ClosureInvariant(t *testing.T) {
	h := domain.NewHierarchy()
	top := domain.NewCellName("TOP")
	leaf := domain.NewCellName("LEAF")

	// AddChild alone must register both endpoints as cells.
	h.AddChild(top, leaf)

	if !h.Contains(top) || !h.Contains(leaf) {
		t.Fatal("expected AddChild to register both parent and child")
	}
	for name := range h.Cells() {
		for _, kid := range h.Children(name) {
			if !h.Contains(kid) {
				t.Errorf("child %q of %q is not a known cell", kid.String(), name.String())
			}
		}
	}
}

func TestHierarchy_DuplicatePlacements(t *testing.T) {
	h := domain.NewHierarchy()
	top := domain.NewCellName("TOP")
	leaf := domain.NewCellName("LEAF")

	h.AddChild(top, leaf)
	h.AddChild(top, leaf)
	h.AddChild(top, leaf)

	kids := h.Children(top)
	if len(kids) != 3 {
		t.Fatalf("expected 3 placements preserved, got %d", len(kids))
	}
	if h.EdgeCount() != 3 {
		t.Errorf("expected edge count 3, got %d", h.EdgeCount())
	}
}

func TestHierarchy_Finalize_TopCells(t *testing.T) {
	h := domain.NewHierarchy()
	// Two roots, one shared leaf, one chain: ZROOT -> MID -> LEAF, AROOT -> LEAF.
	h.AddChild(domain.NewCellName("ZROOT"), domain.NewCellName("MID"))
	h.AddChild(domain.NewCellName("MID"), domain.NewCellName("LEAF"))
	h.AddChild(domain.NewCellName("AROOT"), domain.NewCellName("LEAF"))
	h.Finalize()

	tops := h.TopCells()
	if len(tops) != 2 {
		t.Fatalf("expected 2 top cells, got %d: %v", len(tops), tops)
	}
	// Sorted lexicographically.
	if tops[0].String() != "AROOT" || tops[1].String() != "ZROOT" {
		t.Errorf("expected tops [AROOT ZROOT], got [%s %s]", tops[0].String(), tops[1].String())
	}
}

func TestHierarchy_Finalize_IsolatedCellIsTop(t *testing.T) {
	h := domain.NewHierarchy()
	h.AddCell(domain.NewCellName("ONLY"))
	h.Finalize()

	tops := h.TopCells()
	if len(tops) != 1 || tops[0].String() != "ONLY" {
		t.Fatalf("expected single top cell ONLY, got %v", tops)
	}
}

func TestHierarchy_Cells_Sorted(t *testing.T) {
	h := domain.NewHierarchy()
	for _, name := range []string{"b", "a", "c"} {
		h.AddCell(domain.NewCellName(name))
	}

	var got []string
	for name := range h.Cells() {
		got = append(got, name.String())
	}

	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected sorted cells %v, got %v", want, got)
		}
	}
}

func TestHierarchy_Equal(t *testing.T) {
	build := func() *domain.Hierarchy {
		h := domain.NewHierarchy()
		h.AddChild(domain.NewCellName("TOP"), domain.NewCellName("A"))
		h.AddChild(domain.NewCellName("TOP"), domain.NewCellName("A"))
		h.AddChild(domain.NewCellName("TOP"), domain.NewCellName("B"))
		h.Finalize()
		return h
	}

	h1 := build()
	h2 := build()
	if !h1.Equal(h2) {
		t.Error("expected identically built hierarchies to be equal")
	}

	h2.AddChild(domain.NewCellName("TOP"), domain.NewCellName("B"))
	if h1.Equal(h2) {
		t.Error("expected hierarchies with different edge counts to differ")
	}

	if h1.Equal(nil) {
		t.Error("expected Equal(nil) to be false")
	}
}
