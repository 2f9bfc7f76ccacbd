package oasis

import (
	"unicode/utf8"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/layout"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

// readUint decodes an unsigned varint: 7-bit groups, least significant
// first, high bit as the continuation flag.
func readUint(c *layout.Cursor) (uint64, error) {
	var v uint64
	for shift := 0; ; shift += 7 {
		if shift > 63 {
			return 0, zerr.With(zerr.With(domain.ErrMalformedRecord,
				"reason", "unsigned varint overflows 64 bits"), "offset", c.Pos())
		}
		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, nil
		}
	}
}

// readSint decodes a signed varint: the unsigned value u maps to
// -(u+1)/2 when its low bit is set and to u/2 otherwise.
func readSint(c *layout.Cursor) (int64, error) {
	u, err := readUint(c)
	if err != nil {
		return 0, err
	}
	if u&1 == 1 {
		return -int64((u + 1) / 2), nil
	}
	return int64(u / 2), nil
}

// readBytes decodes a length-prefixed byte string. The returned slice
// aliases the cursor's buffer.
func readBytes(c *layout.Cursor) ([]byte, error) {
	n, err := readUint(c)
	if err != nil {
		return nil, err
	}
	if n > uint64(c.Remaining()) {
		err := zerr.With(domain.ErrTruncatedRecord, "offset", c.Pos())
		err = zerr.With(err, "want", n)
		return nil, zerr.With(err, "remaining", c.Remaining())
	}
	return c.ReadBytes(int(n))
}

// readName decodes a length-prefixed name string.
func readName(c *layout.Cursor) (string, error) {
	b, err := readBytes(c)
	if err != nil {
		return "", err
	}
	return decodeName(b), nil
}

// decodeName interprets raw name bytes as UTF-8. Names that are not
// valid UTF-8 come from tools that wrote Latin-1, so those are re-read
// byte for byte instead of being littered with replacement characters.
func decodeName(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	runes := make([]rune, len(b))
	for i, by := range b {
		runes[i] = rune(by)
	}
	return string(runes)
}
