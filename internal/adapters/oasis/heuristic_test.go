package oasis_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/oasis"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
)

// Unknown record IDs are skipped when they match one of the two vendor
// extension shapes. The records that follow must stay parseable, which
// proves the heuristic advanced the cursor by exactly the right amount.

func TestDecoder_UnknownRecordGeometryShape(t *testing.T) {
	vendor := cat(uv(40),
		[]byte{0x00},        // info byte
		uv(1), uv(2), uv(3), // three small varints
		bstr("xy"),     // bounded byte string
		sv(1), sv(-2), // two bounded coordinates
	)

	path := oasisFile(t, vendor, cellNameImplicit("TOP"), endRecord())

	h, err := oasis.NewDecoder().ReadHierarchy(path)
	if err != nil {
		t.Fatalf("ReadHierarchy failed: %v", err)
	}
	if !h.Contains(domain.NewCellName("TOP")) {
		t.Error("expected the record after the vendor extension to parse")
	}
}

func TestDecoder_UnknownRecordNameShape(t *testing.T) {
	// The byte string length (99) reaches past the end of the stream,
	// so the geometry-shaped attempt fails and the name-shaped one
	// must take over.
	vendor := cat(uv(40), uv(5), bstr("abc"))

	path := oasisFile(t, vendor, cellNameImplicit("TOP"), endRecord())

	h, err := oasis.NewDecoder().ReadHierarchy(path)
	if err != nil {
		t.Fatalf("ReadHierarchy failed: %v", err)
	}
	if !h.Contains(domain.NewCellName("TOP")) {
		t.Error("expected the record after the vendor extension to parse")
	}
	if h.Len() != 1 {
		t.Errorf("expected 1 cell, got %d", h.Len())
	}
}

func TestDecoder_UnknownRecordMatchingNoShapeFails(t *testing.T) {
	// 0xff runs overflow every varint read, so neither shape fits.
	path := oasisFile(t, cat(uv(200), bytes.Repeat([]byte{0xff}, 20)))

	h, err := oasis.NewDecoder().ReadHierarchy(path)
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
	if h != nil {
		t.Error("expected nil hierarchy on failure")
	}
}

func TestDecoder_VendorVarintBoundRejected(t *testing.T) {
	// First varint of both shapes lands at 1<<20, which is exactly out
	// of bounds, and nothing afterwards rescues either shape.
	oversized := uv(1 << 20)

	path := oasisFile(t, cat(uv(40), []byte{0x00}, oversized))

	_, err := oasis.NewDecoder().ReadHierarchy(path)
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestDecoder_VendorStringBoundAccepted(t *testing.T) {
	// A name-shaped extension carrying exactly the maximum string size.
	// The 0xff filler overflows the geometry shape's varint reads, so
	// only the name shape can accept it.
	filler := bytes.Repeat([]byte{0xff}, 4096)
	vendor := cat(uv(40), uv(0), uv(4096), filler)

	path := oasisFile(t, vendor, cellNameImplicit("TOP"), endRecord())

	h, err := oasis.NewDecoder().ReadHierarchy(path)
	if err != nil {
		t.Fatalf("ReadHierarchy failed: %v", err)
	}
	if h.Len() != 1 {
		t.Errorf("expected 1 cell, got %d", h.Len())
	}
}

func TestDecoder_VendorStringBoundRejected(t *testing.T) {
	// One byte past the maximum string size; the geometry shape cannot
	// consume the record either, so the parse fails.
	filler := bytes.Repeat([]byte{0xff}, 4097)
	vendor := cat(uv(40), uv(0), uv(4097), filler)

	path := oasisFile(t, vendor, cellNameImplicit("TOP"), endRecord())

	_, err := oasis.NewDecoder().ReadHierarchy(path)
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}
