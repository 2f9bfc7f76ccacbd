// Package oasis decodes the cell hierarchy from OASIS layout files.
//
// Only the records that name cells (CELLNAME, CELL) or instance them
// (PLACEMENT) contribute to the result; every other record type is
// structurally skipped, including the contents of DEFLATE-compressed
// CBLOCK records, which are inflated and parsed against the same modal
// state as the surrounding stream.
package oasis

import (
	"bytes"
	"os"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/layout"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

var magicBytes = []byte("%SEMI-OASIS")

// Decoder reads an OASIS record stream and extracts the cell hierarchy.
// It implements ports.HierarchyReader.
type Decoder struct{}

// NewDecoder creates a new OASIS decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// ReadHierarchy parses the OASIS file at path. A failed parse returns a
// nil hierarchy; partially decoded content is never exposed.
func (d *Decoder) ReadHierarchy(path string) (*domain.Hierarchy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open library"), "path", path)
	}

	h, err := d.decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return h, nil
}

func (d *Decoder) decode(data []byte) (*domain.Hierarchy, error) {
	c := layout.NewCursor(data)
	if err := checkMagic(c); err != nil {
		return nil, err
	}

	st := newParseState()
	if err := parseRecords(c, st); err != nil {
		return nil, err
	}

	st.model.Finalize()
	return st.model, nil
}

// checkMagic validates the %SEMI-OASIS header and consumes any CR/LF
// bytes that follow it.
func checkMagic(c *layout.Cursor) error {
	head, err := c.ReadBytes(len(magicBytes))
	if err != nil || !bytes.Equal(head, magicBytes) {
		return zerr.With(domain.ErrBadMagic, "want", string(magicBytes))
	}
	for !c.EOF() {
		b, err := c.ReadByte()
		if err != nil {
			return err
		}
		if b != '\r' && b != '\n' {
			return c.Seek(c.Pos() - 1)
		}
	}
	return nil
}

// parseState is the modal state one parse pass threads through the
// top-level record loop and every recursive CBLOCK sub-parse. The
// reference table, current cell, modal placement target and the guard
// counters are all shared across that recursion.
type parseState struct {
	model *domain.Hierarchy
	names map[uint64]domain.CellName

	nextImplicitRef uint64

	current    domain.CellName
	hasCurrent bool

	modalPlaced    domain.CellName
	hasModalPlaced bool

	records uint64
	stall   int
	done    bool
}

func newParseState() *parseState {
	return &parseState{
		model: domain.NewHierarchy(),
		names: map[uint64]domain.CellName{},
	}
}

// registerName binds a reference number to a cell name and records the
// cell itself.
func (st *parseState) registerName(ref uint64, name domain.CellName) {
	st.names[ref] = name
	st.model.AddCell(name)
}

// enterCell makes name the current cell. Starting a new cell definition
// clears the modal placement target.
func (st *parseState) enterCell(name domain.CellName) {
	st.model.AddCell(name)
	st.current = name
	st.hasCurrent = true
	st.hasModalPlaced = false
}

// parseRecords consumes records from c until an END record, the end of
// the buffer, or a failure. It recurses for CBLOCK sub-streams with the
// same state, so the record and stall guards span the whole file.
func parseRecords(c *layout.Cursor, st *parseState) error {
	for !st.done && !c.EOF() {
		start := c.Pos()

		st.records++
		if st.records > maxRecordCount {
			return failUnlessPadding(c, start, zerr.With(zerr.With(domain.ErrRecordLimit,
				"limit", maxRecordCount), "offset", start))
		}

		if err := parseRecord(c, st, start); err != nil {
			return failUnlessPadding(c, start, err)
		}

		switch advance := c.Pos() - start; {
		case advance == 0:
			return failUnlessPadding(c, start, zerr.With(zerr.With(domain.ErrParserStalled,
				"reason", "record consumed no bytes"), "offset", start))
		case advance <= smallAdvanceBytes:
			st.stall++
			if st.stall >= stallLimit {
				return failUnlessPadding(c, start, zerr.With(zerr.With(domain.ErrParserStalled,
					"consecutive_small_records", st.stall), "offset", start))
			}
		default:
			st.stall = 0
		}
	}
	return nil
}

// failUnlessPadding turns an abort into a benign end of parse when
// everything from the failing record's start to the end of the buffer
// is padding bytes. Files in the wild are padded out with NULs or
// whitespace past their last real record.
func failUnlessPadding(c *layout.Cursor, start int, err error) error {
	if seekErr := c.Seek(start); seekErr != nil {
		return err
	}
	if isPadding(c.Tail()) {
		return nil
	}
	return err
}

func isPadding(tail []byte) bool {
	for _, b := range tail {
		switch b {
		case 0x00, ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}

// parseRecord dispatches one record by ID. start is the record's first
// byte, used for error metadata; the cursor has moved past it already.
func parseRecord(c *layout.Cursor, st *parseState, start int) error {
	id, err := readUint(c)
	if err != nil {
		return err
	}

	switch id {
	case recPad:
		return nil
	case recStart:
		return skipStart(c)
	case recEnd:
		st.done = true
		return nil
	case recCellNameImplicit:
		return parseCellNameImplicit(c, st)
	case recCellNameExplicit:
		return parseCellNameExplicit(c, st)
	case recTextString, recPropName, recPropString:
		_, err := readBytes(c)
		return err
	case recTextStringRef, recPropNameRef, recPropStringRef:
		if _, err := readBytes(c); err != nil {
			return err
		}
		return skipUint(c)
	case recLayerName, recLayerNameText:
		return skipLayerName(c)
	case recCellRef:
		return parseCellByRef(c, st, start)
	case recCellName:
		return parseCellByName(c, st)
	case recXYAbsolute, recXYRelative:
		return nil
	case recPlacement:
		return parsePlacement(c, st, false, start)
	case recPlacementTransform:
		return parsePlacement(c, st, true, start)
	case recText:
		return skipText(c)
	case recRectangle:
		return skipRectangle(c)
	case recPolygon:
		return skipPolygon(c)
	case recPath:
		return skipPath(c)
	case recTrapezoidAB, recTrapezoidA, recTrapezoidB:
		return skipTrapezoid(c, id)
	case recCTrapezoid:
		return skipCTrapezoid(c)
	case recCircle:
		return skipCircle(c)
	case recProperty:
		return skipProperty(c)
	case recPropertyRepeat:
		return nil
	case recXName:
		return skipXName(c, false)
	case recXNameRef:
		return skipXName(c, true)
	case recXElement:
		return skipXElement(c)
	case recXGeometry:
		return skipXGeometry(c)
	case recCBlock:
		return parseCBlock(c, st)
	default:
		return skipUnknownRecord(c, id)
	}
}

func parseCellNameImplicit(c *layout.Cursor, st *parseState) error {
	name, err := readName(c)
	if err != nil {
		return err
	}
	st.registerName(st.nextImplicitRef, domain.NewCellName(name))
	st.nextImplicitRef++
	return nil
}

func parseCellNameExplicit(c *layout.Cursor, st *parseState) error {
	name, err := readName(c)
	if err != nil {
		return err
	}
	ref, err := readUint(c)
	if err != nil {
		return err
	}
	st.registerName(ref, domain.NewCellName(name))
	// Implicit numbering continues past any explicitly used number so
	// the two modes can be mixed without collisions.
	if ref >= st.nextImplicitRef {
		st.nextImplicitRef = ref + 1
	}
	return nil
}

func parseCellByRef(c *layout.Cursor, st *parseState, start int) error {
	ref, err := readUint(c)
	if err != nil {
		return err
	}
	name, ok := st.names[ref]
	if !ok {
		return zerr.With(zerr.With(domain.ErrUnresolvedReference,
			"reference", ref), "offset", start)
	}
	st.enterCell(name)
	return nil
}

func parseCellByName(c *layout.Cursor, st *parseState) error {
	name, err := readName(c)
	if err != nil {
		return err
	}
	st.enterCell(domain.NewCellName(name))
	return nil
}

// parsePlacement handles records 17 and 18, the only records that
// produce hierarchy edges. The target cell comes from an explicit
// reference number, an inline name, or the modal placement target left
// by the previous placement.
func parsePlacement(c *layout.Cursor, st *parseState, transform bool, start int) error {
	info, err := c.ReadByte()
	if err != nil {
		return err
	}

	var target domain.CellName
	switch {
	case info&placementHasCell == 0:
		if !st.hasModalPlaced {
			return zerr.With(zerr.With(domain.ErrMalformedRecord,
				"reason", "placement reuses modal cell before any was set"), "offset", start)
		}
		target = st.modalPlaced
	case info&placementByRef != 0:
		ref, err := readUint(c)
		if err != nil {
			return err
		}
		name, ok := st.names[ref]
		if !ok {
			return zerr.With(zerr.With(domain.ErrUnresolvedReference,
				"reference", ref), "offset", start)
		}
		target = name
	default:
		name, err := readName(c)
		if err != nil {
			return err
		}
		target = domain.NewCellName(name)
	}

	if transform {
		if info&placementHasMag != 0 {
			if err := skipReal(c); err != nil {
				return err
			}
		}
		if info&placementHasAngle != 0 {
			if err := skipReal(c); err != nil {
				return err
			}
		}
	}
	if err := skipTrailer(c, info&placementHasX != 0, info&placementHasY != 0, info&placementHasRep != 0); err != nil {
		return err
	}

	if !st.hasCurrent {
		return zerr.With(domain.ErrNoCurrentCell, "offset", start)
	}
	st.model.AddChild(st.current, target)
	st.modalPlaced = target
	st.hasModalPlaced = true
	return nil
}

// skipStart skips the START record: version, unit and the offset flag,
// plus the twelve name-table offsets when the flag stores them here
// rather than in END.
func skipStart(c *layout.Cursor) error {
	if _, err := readBytes(c); err != nil {
		return err
	}
	if err := skipReal(c); err != nil {
		return err
	}
	flag, err := readUint(c)
	if err != nil {
		return err
	}
	if flag == 0 {
		return skipCounted(c, 12, skipUint)
	}
	return nil
}

func skipLayerName(c *layout.Cursor) error {
	if _, err := readBytes(c); err != nil {
		return err
	}
	if err := skipInterval(c); err != nil {
		return err
	}
	return skipInterval(c)
}

// skipText skips record 19. Info byte 0CNXYRTL.
func skipText(c *layout.Cursor) error {
	info, err := c.ReadByte()
	if err != nil {
		return err
	}
	if info&0x40 != 0 {
		if info&0x20 != 0 {
			if err := skipUint(c); err != nil {
				return err
			}
		} else if _, err := readBytes(c); err != nil {
			return err
		}
	}
	if info&0x01 != 0 {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	if info&0x02 != 0 {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	return skipTrailer(c, info&0x10 != 0, info&0x08 != 0, info&0x04 != 0)
}

// skipRectangle skips record 20. Info byte SWHXYRDL.
func skipRectangle(c *layout.Cursor) error {
	info, err := c.ReadByte()
	if err != nil {
		return err
	}
	if err := skipLayerDatatype(c, info); err != nil {
		return err
	}
	if info&0x40 != 0 {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	if info&0x20 != 0 {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	return skipTrailer(c, info&0x10 != 0, info&0x08 != 0, info&0x04 != 0)
}

// skipPolygon skips record 21. Info byte 00PXYRDL.
func skipPolygon(c *layout.Cursor) error {
	info, err := c.ReadByte()
	if err != nil {
		return err
	}
	if err := skipLayerDatatype(c, info); err != nil {
		return err
	}
	if info&0x20 != 0 {
		if err := skipPointList(c); err != nil {
			return err
		}
	}
	return skipTrailer(c, info&0x10 != 0, info&0x08 != 0, info&0x04 != 0)
}

// skipPath skips record 22. Info byte EWPXYRDL.
func skipPath(c *layout.Cursor) error {
	info, err := c.ReadByte()
	if err != nil {
		return err
	}
	if err := skipLayerDatatype(c, info); err != nil {
		return err
	}
	if info&0x40 != 0 {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	if info&0x80 != 0 {
		if err := skipExtensionScheme(c); err != nil {
			return err
		}
	}
	if info&0x20 != 0 {
		if err := skipPointList(c); err != nil {
			return err
		}
	}
	return skipTrailer(c, info&0x10 != 0, info&0x08 != 0, info&0x04 != 0)
}

// skipTrapezoid skips records 23-25. Info byte 0WHXYRDL; which deltas
// follow depends on the record ID.
func skipTrapezoid(c *layout.Cursor, id uint64) error {
	info, err := c.ReadByte()
	if err != nil {
		return err
	}
	if err := skipLayerDatatype(c, info); err != nil {
		return err
	}
	if info&0x40 != 0 {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	if info&0x20 != 0 {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	if id == recTrapezoidAB || id == recTrapezoidA {
		if err := skipSint(c); err != nil {
			return err
		}
	}
	if id == recTrapezoidAB || id == recTrapezoidB {
		if err := skipSint(c); err != nil {
			return err
		}
	}
	return skipTrailer(c, info&0x10 != 0, info&0x08 != 0, info&0x04 != 0)
}

// skipCTrapezoid skips record 26. Info byte TWHXYRDL.
func skipCTrapezoid(c *layout.Cursor) error {
	info, err := c.ReadByte()
	if err != nil {
		return err
	}
	if err := skipLayerDatatype(c, info); err != nil {
		return err
	}
	if info&0x80 != 0 {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	if info&0x40 != 0 {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	if info&0x20 != 0 {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	return skipTrailer(c, info&0x10 != 0, info&0x08 != 0, info&0x04 != 0)
}

// skipCircle skips record 27. Info byte 00rXYRDL.
func skipCircle(c *layout.Cursor) error {
	info, err := c.ReadByte()
	if err != nil {
		return err
	}
	if err := skipLayerDatatype(c, info); err != nil {
		return err
	}
	if info&0x20 != 0 {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	return skipTrailer(c, info&0x10 != 0, info&0x08 != 0, info&0x04 != 0)
}

// skipLayerDatatype skips the layer and datatype numbers selected by the
// low two info bits shared by all element records.
func skipLayerDatatype(c *layout.Cursor, info byte) error {
	if info&0x01 != 0 {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	if info&0x02 != 0 {
		return skipUint(c)
	}
	return nil
}

// skipProperty skips record 28. Info byte UUUUVCNS: the high nibble
// counts values, 15 meaning an explicit count follows; V reuses the
// modal value list.
func skipProperty(c *layout.Cursor) error {
	info, err := c.ReadByte()
	if err != nil {
		return err
	}
	if info&0x04 != 0 {
		if info&0x02 != 0 {
			if err := skipUint(c); err != nil {
				return err
			}
		} else if _, err := readBytes(c); err != nil {
			return err
		}
	}
	if info&0x08 != 0 {
		return nil
	}
	count := uint64(info >> 4)
	if count == 15 {
		if count, err = readUint(c); err != nil {
			return err
		}
	}
	return skipCounted(c, count, skipPropertyValue)
}

func skipXName(c *layout.Cursor, explicit bool) error {
	if err := skipUint(c); err != nil {
		return err
	}
	if _, err := readBytes(c); err != nil {
		return err
	}
	if explicit {
		return skipUint(c)
	}
	return nil
}

func skipXElement(c *layout.Cursor) error {
	if err := skipUint(c); err != nil {
		return err
	}
	_, err := readBytes(c)
	return err
}

// skipXGeometry skips record 33. Info byte 000XYRDL; the attribute and
// the geometry byte string are always present.
func skipXGeometry(c *layout.Cursor) error {
	info, err := c.ReadByte()
	if err != nil {
		return err
	}
	if err := skipUint(c); err != nil {
		return err
	}
	if err := skipLayerDatatype(c, info); err != nil {
		return err
	}
	if _, err := readBytes(c); err != nil {
		return err
	}
	return skipTrailer(c, info&0x10 != 0, info&0x08 != 0, info&0x04 != 0)
}
