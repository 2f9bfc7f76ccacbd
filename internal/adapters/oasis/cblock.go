package oasis

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/layout"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseCBlock handles record 34: a DEFLATE-compressed block of further
// records. The inflated bytes are parsed with the same state as the
// surrounding stream, so reference numbers and modal values cross the
// block boundary in both directions.
func parseCBlock(c *layout.Cursor, st *parseState) error {
	compType, err := readUint(c)
	if err != nil {
		return err
	}
	if compType != 0 {
		err := zerr.With(domain.ErrMalformedRecord, "reason", "unsupported cblock compression type")
		err = zerr.With(err, "comp_type", compType)
		return zerr.With(err, "offset", c.Pos())
	}

	uncompressedCount, err := readUint(c)
	if err != nil {
		return err
	}
	compressedCount, err := readUint(c)
	if err != nil {
		return err
	}
	if compressedCount > uint64(c.Remaining()) {
		err := zerr.With(domain.ErrTruncatedRecord, "offset", c.Pos())
		err = zerr.With(err, "want", compressedCount)
		return zerr.With(err, "remaining", c.Remaining())
	}
	raw, err := c.ReadBytes(int(compressedCount))
	if err != nil {
		return err
	}

	// Raw DEFLATE, no zlib wrapper. The reader is capped one byte past
	// the declared size so an inflate bomb surfaces as a size mismatch
	// instead of an allocation.
	fr := flate.NewReader(bytes.NewReader(raw))
	defer fr.Close()
	inflated, err := io.ReadAll(io.LimitReader(fr, int64(uncompressedCount)+1))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to inflate cblock"), "offset", c.Pos())
	}
	if uint64(len(inflated)) != uncompressedCount {
		err := zerr.With(domain.ErrMalformedRecord, "reason", "cblock size mismatch")
		err = zerr.With(err, "declared", uncompressedCount)
		err = zerr.With(err, "inflated", len(inflated))
		return zerr.With(err, "offset", c.Pos())
	}

	return parseRecords(layout.NewCursor(inflated), st)
}
