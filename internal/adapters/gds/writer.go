package gds

import (
	"encoding/binary"
	"os"
	"time"

	"go.trai.ch/zerr"
)

// gdsVersion is the stream format version written into the HEADER record.
const gdsVersion = 600

// WriteEmptyLibrary writes a minimal GDSII library containing a single
// empty structure named cellName. The result decodes back to a hierarchy
// with exactly that cell as its only (top) cell.
func WriteEmptyLibrary(path, libName, cellName string) error {
	if cellName == "" {
		return zerr.New("cell name must not be empty")
	}
	if libName == "" {
		libName = cellName
	}

	now := time.Now()
	buf := make([]byte, 0, 256)
	buf = appendRecord(buf, recHeader, uint16Payload(gdsVersion))
	buf = appendRecord(buf, recBgnLib, timestampPayload(now))
	buf = appendRecord(buf, recLibName, stringPayload(libName))
	buf = appendRecord(buf, recUnits, unitsPayload(1e-3, 1e-9))
	buf = appendRecord(buf, recBgnStr, timestampPayload(now))
	buf = appendRecord(buf, recStrName, stringPayload(cellName))
	buf = appendRecord(buf, recEndStr, nil)
	buf = appendRecord(buf, recEndLib, nil)

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write library"), "path", path)
	}
	return nil
}

func appendRecord(buf []byte, code uint16, payload []byte) []byte {
	buf = binary.BigEndian.AppendUint16(buf, uint16(recordHeaderSize+len(payload)))
	buf = binary.BigEndian.AppendUint16(buf, code)
	return append(buf, payload...)
}

func uint16Payload(v uint16) []byte {
	return binary.BigEndian.AppendUint16(nil, v)
}

// stringPayload NUL-pads odd-length strings so every record stays
// even-sized, as the format requires.
func stringPayload(s string) []byte {
	b := []byte(s)
	if len(b)%2 != 0 {
		b = append(b, 0)
	}
	return b
}

// timestampPayload encodes modification and access times as the twelve
// uint16 fields of BGNLIB/BGNSTR.
func timestampPayload(t time.Time) []byte {
	buf := make([]byte, 0, 24)
	for range 2 {
		buf = binary.BigEndian.AppendUint16(buf, uint16(t.Year()))
		buf = binary.BigEndian.AppendUint16(buf, uint16(t.Month()))
		buf = binary.BigEndian.AppendUint16(buf, uint16(t.Day()))
		buf = binary.BigEndian.AppendUint16(buf, uint16(t.Hour()))
		buf = binary.BigEndian.AppendUint16(buf, uint16(t.Minute()))
		buf = binary.BigEndian.AppendUint16(buf, uint16(t.Second()))
	}
	return buf
}

func unitsPayload(userUnit, meterUnit float64) []byte {
	buf := make([]byte, 0, 16)
	buf = append(buf, gdsReal8(userUnit)...)
	return append(buf, gdsReal8(meterUnit)...)
}

// gdsReal8 encodes a float as the 8-byte GDSII real: sign bit, excess-64
// base-16 exponent, then 56 bits of mantissa in [1/16, 1).
func gdsReal8(v float64) []byte {
	out := make([]byte, 8)
	if v == 0 {
		return out
	}

	neg := v < 0
	if neg {
		v = -v
	}

	exp := 0
	for v >= 1 {
		v /= 16
		exp++
	}
	for v < 1.0/16 {
		v *= 16
		exp--
	}

	out[0] = byte(exp + 64)
	if neg {
		out[0] |= 0x80
	}
	mantissa := uint64(v * (1 << 56))
	for i := 1; i < 8; i++ {
		out[i] = byte(mantissa >> (8 * (7 - i)))
	}
	return out
}
