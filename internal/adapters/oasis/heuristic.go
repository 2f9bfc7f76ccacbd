package oasis

import (
	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/layout"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

// skipUnknownRecord handles record IDs beyond the standard table. Two
// vendor-extension shapes are tried in order against the bytes that
// follow; the first one whose reads all land within the sanity bounds
// decides how far the record reaches. A record matching neither shape
// is a hard failure, since there is no way to find the next record
// boundary.
func skipUnknownRecord(c *layout.Cursor, id uint64) error {
	start := c.Pos()

	if skipAsVendorGeometry(c) == nil {
		return nil
	}
	if err := c.Seek(start); err != nil {
		return err
	}

	if skipAsVendorName(c) == nil {
		return nil
	}
	if err := c.Seek(start); err != nil {
		return err
	}

	err := zerr.With(domain.ErrMalformedRecord, "reason", "unrecognized record matches no vendor shape")
	err = zerr.With(err, "record_id", id)
	return zerr.With(err, "offset", start)
}

// skipAsVendorGeometry models an XGEOMETRY-like extension: an info
// byte, three small varints, a bounded byte string and two bounded
// signed coordinates.
func skipAsVendorGeometry(c *layout.Cursor) error {
	if _, err := c.ReadByte(); err != nil {
		return err
	}
	for range 3 {
		if err := skipBoundedUint(c); err != nil {
			return err
		}
	}
	if err := skipBoundedBytes(c); err != nil {
		return err
	}
	for range 2 {
		if err := skipBoundedSint(c); err != nil {
			return err
		}
	}
	return nil
}

// skipAsVendorName models an XNAME-like extension: one varint and a
// bounded byte string.
func skipAsVendorName(c *layout.Cursor) error {
	if err := skipBoundedUint(c); err != nil {
		return err
	}
	return skipBoundedBytes(c)
}

func skipBoundedUint(c *layout.Cursor) error {
	v, err := readUint(c)
	if err != nil {
		return err
	}
	if v >= maxVendorVarint {
		return zerr.With(domain.ErrMalformedRecord,
			"reason", "varint above vendor bound",
			"value", v,
		)
	}
	return nil
}

func skipBoundedSint(c *layout.Cursor) error {
	v, err := readSint(c)
	if err != nil {
		return err
	}
	if v >= maxVendorCoord || v <= -maxVendorCoord {
		return zerr.With(domain.ErrMalformedRecord,
			"reason", "coordinate above vendor bound",
			"value", v,
		)
	}
	return nil
}

func skipBoundedBytes(c *layout.Cursor) error {
	b, err := readBytes(c)
	if err != nil {
		return err
	}
	if len(b) > maxVendorString {
		return zerr.With(domain.ErrMalformedRecord,
			"reason", "byte string above vendor bound",
			"length", len(b),
		)
	}
	return nil
}
