// Package layout provides the shared byte cursor the format decoders
// parse from.
package layout

import (
	"encoding/binary"

	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

// Cursor is a read-only view over a contiguous byte buffer with a current
// position. Reads advance the position by exactly the number of bytes
// consumed; a failed read reports truncation and leaves the position
// unchanged. One cursor serves one parse pass (plus one per decompressed
// CBLOCK sub-stream).
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a cursor over data. The buffer is not copied and must
// not be mutated while the cursor is in use.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total buffer length.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// EOF reports whether the cursor is at the end of the buffer.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.data)
}

// ReadByte consumes and returns one byte.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, c.short(1)
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// ReadBytes consumes n bytes and returns them as a subslice of the
// underlying buffer (no copy).
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, c.short(n)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadUint16BE consumes two bytes as a big-endian uint16.
func (c *Cursor) ReadUint16BE() (uint16, error) {
	if c.pos+2 > len(c.data) {
		return 0, c.short(2)
	}
	v := binary.BigEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

// Skip consumes n bytes without interpreting them.
func (c *Cursor) Skip(n int) error {
	if n < 0 || c.pos+n > len(c.data) {
		return c.short(n)
	}
	c.pos += n
	return nil
}

// Seek moves the position to an absolute offset within the buffer.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return zerr.With(zerr.With(domain.ErrTruncatedRecord, "offset", pos), "len", len(c.data))
	}
	c.pos = pos
	return nil
}

// Tail returns the unread bytes without consuming them (no copy).
func (c *Cursor) Tail() []byte {
	return c.data[c.pos:]
}

func (c *Cursor) short(want int) error {
	err := zerr.With(domain.ErrTruncatedRecord, "offset", c.pos)
	err = zerr.With(err, "want", want)
	return zerr.With(err, "remaining", len(c.data)-c.pos)
}
