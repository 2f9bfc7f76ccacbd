package gds_test

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/gds"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
)

// Record codes spelled out independently of the implementation.
const (
	codeBgnLib  = 0x0102
	codeEndLib  = 0x0400
	codeBgnStr  = 0x0502
	codeStrName = 0x0606
	codeEndStr  = 0x0700
	codeBoundary = 0x0800
	codeSRef    = 0x0A00
	codeARef    = 0x0B00
	codeLayer   = 0x0D02
	codeXY      = 0x1003
	codeEndEl   = 0x1100
	codeSName   = 0x1206
)

func record(code uint16, payload []byte) []byte {
	buf := binary.BigEndian.AppendUint16(nil, uint16(4+len(payload)))
	buf = binary.BigEndian.AppendUint16(buf, code)
	return append(buf, payload...)
}

func name(s string) []byte {
	b := []byte(s)
	if len(b)%2 != 0 {
		b = append(b, 0)
	}
	return b
}

func writeStream(t *testing.T, records ...[]byte) string {
	t.Helper()
	var buf []byte
	for _, r := range records {
		buf = append(buf, r...)
	}
	path := filepath.Join(t.TempDir(), "lib.gds")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("failed to write stream: %v", err)
	}
	return path
}

func structure(cell string, elements ...[]byte) [][]byte {
	records := [][]byte{
		record(codeBgnStr, make([]byte, 24)),
		record(codeStrName, name(cell)),
	}
	records = append(records, elements...)
	return append(records, record(codeEndStr, nil))
}

func sref(target string) []byte {
	var buf []byte
	buf = append(buf, record(codeSRef, nil)...)
	buf = append(buf, record(codeSName, name(target))...)
	return append(buf, record(codeEndEl, nil)...)
}

func TestDecoder_Hierarchy(t *testing.T) {
	var records [][]byte
	records = append(records, record(codeBgnLib, make([]byte, 24)))
	records = append(records, structure("TOP", sref("MID"), sref("LEAF"))...)
	records = append(records, structure("MID", sref("LEAF"))...)
	records = append(records, structure("LEAF")...)
	records = append(records, record(codeEndLib, nil))
	path := writeStream(t, records...)

	h, err := gds.NewDecoder().ReadHierarchy(path)
	if err != nil {
		t.Fatalf("ReadHierarchy failed: %v", err)
	}

	if h.Len() != 3 {
		t.Errorf("expected 3 cells, got %d", h.Len())
	}

	kids := h.Children(domain.NewCellName("TOP"))
	if len(kids) != 2 || kids[0].String() != "MID" || kids[1].String() != "LEAF" {
		t.Errorf("unexpected TOP children: %v", kids)
	}

	tops := h.TopCells()
	if len(tops) != 1 || tops[0].String() != "TOP" {
		t.Errorf("expected tops [TOP], got %v", tops)
	}
}

func TestDecoder_ARefProducesEdge(t *testing.T) {
	aref := func(target string) []byte {
		var buf []byte
		buf = append(buf, record(codeARef, nil)...)
		buf = append(buf, record(codeSName, name(target))...)
		return append(buf, record(codeEndEl, nil)...)
	}

	var records [][]byte
	records = append(records, structure("GRID", aref("UNIT"))...)
	records = append(records, record(codeEndLib, nil))
	path := writeStream(t, records...)

	h, err := gds.NewDecoder().ReadHierarchy(path)
	if err != nil {
		t.Fatalf("ReadHierarchy failed: %v", err)
	}

	kids := h.Children(domain.NewCellName("GRID"))
	if len(kids) != 1 || kids[0].String() != "UNIT" {
		t.Errorf("expected AREF edge GRID -> UNIT, got %v", kids)
	}
}

func TestDecoder_DuplicatePlacements(t *testing.T) {
	var records [][]byte
	records = append(records, structure("TOP", sref("LEAF"), sref("LEAF"))...)
	records = append(records, record(codeEndLib, nil))
	path := writeStream(t, records...)

	h, err := gds.NewDecoder().ReadHierarchy(path)
	if err != nil {
		t.Fatalf("ReadHierarchy failed: %v", err)
	}

	if kids := h.Children(domain.NewCellName("TOP")); len(kids) != 2 {
		t.Errorf("expected both placements preserved, got %v", kids)
	}
}

func TestDecoder_UnknownRecordsSkipped(t *testing.T) {
	boundary := [][]byte{
		record(codeBoundary, nil),
		record(codeLayer, []byte{0x00, 0x01}),
		record(codeXY, make([]byte, 16)),
		record(codeEndEl, nil),
	}
	var elements []byte
	for _, r := range boundary {
		elements = append(elements, r...)
	}

	var records [][]byte
	records = append(records, structure("CELL1", elements)...)
	records = append(records, record(codeEndLib, nil))
	path := writeStream(t, records...)

	h, err := gds.NewDecoder().ReadHierarchy(path)
	if err != nil {
		t.Fatalf("ReadHierarchy failed: %v", err)
	}
	if h.Len() != 1 || !h.Contains(domain.NewCellName("CELL1")) {
		t.Errorf("expected only CELL1 with geometry skipped, got %d cells", h.Len())
	}
}

func TestDecoder_OddLengthNameTrimmed(t *testing.T) {
	var records [][]byte
	records = append(records, structure("ABC")...) // padded to 4 bytes on the wire
	records = append(records, record(codeEndLib, nil))
	path := writeStream(t, records...)

	h, err := gds.NewDecoder().ReadHierarchy(path)
	if err != nil {
		t.Fatalf("ReadHierarchy failed: %v", err)
	}
	if !h.Contains(domain.NewCellName("ABC")) {
		t.Error("expected padded name to decode as ABC")
	}
	if h.Contains(domain.NewCellName("ABC\x00")) {
		t.Error("pad byte leaked into the cell name")
	}
}

func TestDecoder_StraySNameIgnored(t *testing.T) {
	var records [][]byte
	records = append(records,
		record(codeBgnStr, make([]byte, 24)),
		record(codeStrName, name("TOP")),
		// SNAME without a preceding SREF/AREF element.
		record(codeSName, name("GHOST")),
		record(codeEndStr, nil),
		record(codeEndLib, nil),
	)
	path := writeStream(t, records...)

	h, err := gds.NewDecoder().ReadHierarchy(path)
	if err != nil {
		t.Fatalf("ReadHierarchy failed: %v", err)
	}
	if len(h.Children(domain.NewCellName("TOP"))) != 0 {
		t.Error("stray SNAME must not produce an edge")
	}
	if h.Contains(domain.NewCellName("GHOST")) {
		t.Error("stray SNAME must not register a cell")
	}
}

func TestDecoder_TruncatedRecord(t *testing.T) {
	// Declared length says 100 bytes but only the header follows.
	var buf []byte
	buf = binary.BigEndian.AppendUint16(buf, 100)
	buf = binary.BigEndian.AppendUint16(buf, codeStrName)
	path := filepath.Join(t.TempDir(), "trunc.gds")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("failed to write stream: %v", err)
	}

	h, err := gds.NewDecoder().ReadHierarchy(path)
	if err == nil {
		t.Fatal("expected error for truncated record, got nil")
	}
	if !errors.Is(err, domain.ErrTruncatedRecord) {
		t.Errorf("expected ErrTruncatedRecord, got %v", err)
	}
	if h != nil {
		t.Error("expected nil hierarchy on failure")
	}
}

func TestDecoder_BogusRecordLength(t *testing.T) {
	// Declared length below the 4-byte header minimum.
	var buf []byte
	buf = binary.BigEndian.AppendUint16(buf, 2)
	buf = binary.BigEndian.AppendUint16(buf, codeStrName)
	path := filepath.Join(t.TempDir(), "bogus.gds")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("failed to write stream: %v", err)
	}

	_, err := gds.NewDecoder().ReadHierarchy(path)
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestDecoder_FileTooSmall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.gds")
	if err := os.WriteFile(path, []byte{0x00, 0x06}, 0o644); err != nil {
		t.Fatalf("failed to write stream: %v", err)
	}

	_, err := gds.NewDecoder().ReadHierarchy(path)
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord for tiny file, got %v", err)
	}
}

func TestDecoder_MissingFile(t *testing.T) {
	_, err := gds.NewDecoder().ReadHierarchy(filepath.Join(t.TempDir(), "absent.gds"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestDecoder_Idempotent(t *testing.T) {
	var records [][]byte
	records = append(records, structure("TOP", sref("LEAF"))...)
	records = append(records, structure("LEAF")...)
	records = append(records, record(codeEndLib, nil))
	path := writeStream(t, records...)

	d := gds.NewDecoder()
	h1, err := d.ReadHierarchy(path)
	if err != nil {
		t.Fatalf("first decode failed: %v", err)
	}
	h2, err := d.ReadHierarchy(path)
	if err != nil {
		t.Fatalf("second decode failed: %v", err)
	}
	if !h1.Equal(h2) {
		t.Error("expected independent decodes of the same file to be equal")
	}
}
