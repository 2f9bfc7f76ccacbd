package oasis

import (
	"math"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/layout"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

// Structural skippers for the OASIS field encodings the hierarchy does
// not care about. They consume exactly one well-formed field each and
// fail on anything else, so the record loop stays in sync.

func skipUint(c *layout.Cursor) error {
	_, err := readUint(c)
	return err
}

func skipSint(c *layout.Cursor) error {
	_, err := readSint(c)
	return err
}

// skipCounted runs skip count times. Every field is at least one byte,
// so a count beyond the remaining bytes is malformed and rejected before
// looping.
func skipCounted(c *layout.Cursor, count uint64, skip func(*layout.Cursor) error) error {
	if count > uint64(c.Remaining()) {
		return zerr.With(domain.ErrMalformedRecord,
			"reason", "field count exceeds remaining bytes",
			"count", count,
			"offset", c.Pos(),
		)
	}
	for range count {
		if err := skip(c); err != nil {
			return err
		}
	}
	return nil
}

// skipReal skips a real number: a representation code followed by the
// body that code implies.
func skipReal(c *layout.Cursor) error {
	kind, err := readUint(c)
	if err != nil {
		return err
	}
	return skipRealBody(c, kind)
}

func skipRealBody(c *layout.Cursor, kind uint64) error {
	switch kind {
	case 0, 1, 2, 3: // whole or reciprocal magnitude
		return skipUint(c)
	case 4, 5: // ratio
		if err := skipUint(c); err != nil {
			return err
		}
		return skipUint(c)
	case 6: // float32
		return c.Skip(4)
	case 7: // float64
		return c.Skip(8)
	default:
		return zerr.With(domain.ErrMalformedRecord,
			"reason", "unknown real representation",
			"kind", kind,
			"offset", c.Pos(),
		)
	}
}

// skipGDelta skips a general delta: one varint, plus a second magnitude
// when the low bit marks the two-coordinate form.
func skipGDelta(c *layout.Cursor) error {
	u, err := readUint(c)
	if err != nil {
		return err
	}
	if u&1 == 1 {
		return skipUint(c)
	}
	return nil
}

// skipPointList skips a point list: a list type, a vertex count, and
// count deltas encoded per type.
func skipPointList(c *layout.Cursor) error {
	kind, err := readUint(c)
	if err != nil {
		return err
	}
	count, err := readUint(c)
	if err != nil {
		return err
	}
	switch kind {
	case 0, 1: // 1-delta, axis alternating
		return skipCounted(c, count, skipSint)
	case 2, 3: // 2-delta and 3-delta, direction packed into the low bits
		return skipCounted(c, count, skipUint)
	case 4:
		return skipCounted(c, count, skipGDelta)
	case 5: // double g-delta per vertex
		return skipCounted(c, count, func(c *layout.Cursor) error {
			if err := skipGDelta(c); err != nil {
				return err
			}
			return skipGDelta(c)
		})
	default:
		return zerr.With(domain.ErrMalformedRecord,
			"reason", "unknown point list type",
			"kind", kind,
			"offset", c.Pos(),
		)
	}
}

// skipRepetition skips a repetition field. Types 4-7 and 10-11 carry a
// dimension followed by dimension+1 spacings.
func skipRepetition(c *layout.Cursor) error {
	kind, err := readUint(c)
	if err != nil {
		return err
	}
	switch kind {
	case 0: // reuse of the modal repetition
		return nil
	case 1: // matrix: two dimensions, two spacings
		return skipCounted(c, 4, skipUint)
	case 2, 3: // single row or column
		return skipCounted(c, 2, skipUint)
	case 4, 6: // arbitrary spacings
		return skipDimensioned(c, false, skipUint)
	case 5, 7: // arbitrary spacings on a grid
		return skipDimensioned(c, true, skipUint)
	case 8: // oblique matrix: two dimensions, two displacement g-deltas
		if err := skipCounted(c, 2, skipUint); err != nil {
			return err
		}
		return skipCounted(c, 2, skipGDelta)
	case 9: // oblique row: dimension plus one displacement
		if err := skipUint(c); err != nil {
			return err
		}
		return skipGDelta(c)
	case 10:
		return skipDimensioned(c, false, skipGDelta)
	case 11:
		return skipDimensioned(c, true, skipGDelta)
	default:
		return zerr.With(domain.ErrMalformedRecord,
			"reason", "unknown repetition type",
			"kind", kind,
			"offset", c.Pos(),
		)
	}
}

func skipDimensioned(c *layout.Cursor, grid bool, skip func(*layout.Cursor) error) error {
	dim, err := readUint(c)
	if err != nil {
		return err
	}
	if grid {
		if err := skipUint(c); err != nil {
			return err
		}
	}
	if dim == math.MaxUint64 {
		return zerr.With(domain.ErrMalformedRecord, "reason", "repetition dimension overflows", "offset", c.Pos())
	}
	return skipCounted(c, dim+1, skip)
}

// skipInterval skips a layer interval: a bound type and zero, one or two
// bound values.
func skipInterval(c *layout.Cursor) error {
	kind, err := readUint(c)
	if err != nil {
		return err
	}
	switch kind {
	case 0: // unbounded
		return nil
	case 1, 2, 3: // single bound or exact value
		return skipUint(c)
	case 4: // both bounds
		return skipCounted(c, 2, skipUint)
	default:
		return zerr.With(domain.ErrMalformedRecord,
			"reason", "unknown interval type",
			"kind", kind,
			"offset", c.Pos(),
		)
	}
}

// skipPropertyValue skips one property value: a kind code, then a real
// body (0-7), an integer (8-9), an inline string (10-12) or a string
// reference (13-15).
func skipPropertyValue(c *layout.Cursor) error {
	kind, err := readUint(c)
	if err != nil {
		return err
	}
	switch {
	case kind <= 7:
		return skipRealBody(c, kind)
	case kind == 8:
		return skipUint(c)
	case kind == 9:
		return skipSint(c)
	case kind <= 12:
		_, err := readBytes(c)
		return err
	case kind <= 15:
		return skipUint(c)
	default:
		return zerr.With(domain.ErrMalformedRecord,
			"reason", "unknown property value kind",
			"kind", kind,
			"offset", c.Pos(),
		)
	}
}

// skipExtensionScheme skips a path extension scheme: a packed SS/EE
// field where either end stores an explicit length only when its two
// bits are 3.
func skipExtensionScheme(c *layout.Cursor) error {
	scheme, err := readUint(c)
	if err != nil {
		return err
	}
	if scheme>>2&3 == 3 {
		if err := skipSint(c); err != nil {
			return err
		}
	}
	if scheme&3 == 3 {
		return skipSint(c)
	}
	return nil
}

// skipTrailer skips the shared x, y, repetition tail of the element
// records.
func skipTrailer(c *layout.Cursor, hasX, hasY, hasRep bool) error {
	if hasX {
		if err := skipSint(c); err != nil {
			return err
		}
	}
	if hasY {
		if err := skipSint(c); err != nil {
			return err
		}
	}
	if hasRep {
		return skipRepetition(c)
	}
	return nil
}
