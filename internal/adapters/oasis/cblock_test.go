package oasis_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/flate"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/oasis"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
)

func deflate(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		t.Fatalf("failed to create flate writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("failed to compress: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to flush compressed stream: %v", err)
	}
	return buf.Bytes()
}

func cblock(t *testing.T, records []byte) []byte {
	t.Helper()
	compressed := deflate(t, records)
	return cat(uv(34), uv(0), uv(uint64(len(records))), uv(uint64(len(compressed))), compressed)
}

func TestDecoder_CBlockRoundTrip(t *testing.T) {
	records := cat(
		cellNameImplicit("TOP"),
		cellNameImplicit("LEAF"),
		cellByRef(0),
		placementByRef(1),
	)

	plain := oasisFile(t, records, endRecord())
	compressed := oasisFile(t, cblock(t, records), endRecord())

	want, err := oasis.NewDecoder().ReadHierarchy(plain)
	if err != nil {
		t.Fatalf("decoding the plain stream failed: %v", err)
	}
	got, err := oasis.NewDecoder().ReadHierarchy(compressed)
	if err != nil {
		t.Fatalf("decoding the compressed stream failed: %v", err)
	}

	if !want.Equal(got) {
		t.Error("expected identical hierarchies from plain and cblock streams")
	}
	if got.Len() != 2 {
		t.Errorf("expected 2 cells, got %d", got.Len())
	}
}

func TestDecoder_CBlockSharesModalState(t *testing.T) {
	// The reference table is built outside the block, the current cell
	// and modal placement inside it, and the final modal placement
	// reuse happens outside again. All of it must see one shared state.
	path := oasisFile(t,
		cellNameImplicit("TOP"),
		cblock(t, cat(
			cellByRef(0),
			placementByName("LEAF"),
		)),
		placementModal(),
		endRecord(),
	)

	h, err := oasis.NewDecoder().ReadHierarchy(path)
	if err != nil {
		t.Fatalf("ReadHierarchy failed: %v", err)
	}

	kids := childNames(h, "TOP")
	if len(kids) != 2 || kids[0] != "LEAF" || kids[1] != "LEAF" {
		t.Errorf("expected placements across the block boundary, got %v", kids)
	}
}

func TestDecoder_CBlockSizeMismatchFails(t *testing.T) {
	records := cat(cellNameImplicit("TOP"))
	compressed := deflate(t, records)
	// Declared uncompressed size is off by three.
	bad := cat(uv(34), uv(0), uv(uint64(len(records)+3)), uv(uint64(len(compressed))), compressed)

	path := oasisFile(t, bad, endRecord())

	h, err := oasis.NewDecoder().ReadHierarchy(path)
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
	if h != nil {
		t.Error("expected nil hierarchy on failure")
	}
}

func TestDecoder_CBlockUnknownCompressionFails(t *testing.T) {
	path := oasisFile(t,
		cat(uv(34), uv(1), uv(4), uv(4), []byte{1, 2, 3, 4}),
		endRecord(),
	)

	_, err := oasis.NewDecoder().ReadHierarchy(path)
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestDecoder_CBlockCorruptStreamFails(t *testing.T) {
	garbage := []byte{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa}
	path := oasisFile(t,
		cat(uv(34), uv(0), uv(64), uv(uint64(len(garbage))), garbage),
		endRecord(),
	)

	h, err := oasis.NewDecoder().ReadHierarchy(path)
	if err == nil {
		t.Fatal("expected error for corrupt deflate stream, got nil")
	}
	if h != nil {
		t.Error("expected nil hierarchy on failure")
	}
}

func TestDecoder_CBlockTruncatedPayloadFails(t *testing.T) {
	// Compressed byte count larger than what remains in the file.
	path := oasisFile(t, cat(uv(34), uv(0), uv(10), uv(100), []byte{1, 2, 3}))

	_, err := oasis.NewDecoder().ReadHierarchy(path)
	if !errors.Is(err, domain.ErrTruncatedRecord) {
		t.Errorf("expected ErrTruncatedRecord, got %v", err)
	}
}

func TestDecoder_CBlockFailureInsideBlockPropagates(t *testing.T) {
	// An unresolved reference inside the block is a failure of the
	// whole parse, not just of the block.
	path := oasisFile(t,
		cellNameImplicit("TOP"),
		cblock(t, cellByRef(42)),
		endRecord(),
	)

	h, err := oasis.NewDecoder().ReadHierarchy(path)
	if !errors.Is(err, domain.ErrUnresolvedReference) {
		t.Errorf("expected ErrUnresolvedReference, got %v", err)
	}
	if h != nil {
		t.Error("expected nil hierarchy on failure")
	}
}
