// Package gds decodes the cell hierarchy from GDSII stream files.
package gds

import (
	"os"
	"strings"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/layout"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

// Decoder reads GDSII records sequentially and extracts structure names
// (STRNAME) and structure references (SREF/AREF elements carrying an
// SNAME). Geometry and attribute records are skipped by their declared
// length. It implements ports.HierarchyReader.
type Decoder struct{}

// NewDecoder creates a new GDSII decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// ReadHierarchy parses the GDSII file at path. A failed parse returns a
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
	if len(data) < recordHeaderSize {
		return nil, zerr.With(zerr.With(domain.ErrMalformedRecord, "reason", "file too small for a record header"), "size", len(data))
	}

	h := domain.NewHierarchy()
	c := layout.NewCursor(data)

	var current domain.CellName
	inStructure := false
	pendingRef := false

loop:
	for !c.EOF() {
		start := c.Pos()

		length, err := c.ReadUint16BE()
		if err != nil {
			return nil, err
		}
		code, err := c.ReadUint16BE()
		if err != nil {
			return nil, err
		}
		if int(length) < recordHeaderSize {
			return nil, zerr.With(zerr.With(domain.ErrMalformedRecord, "offset", start), "declared_length", int(length))
		}

		payloadLen := int(length) - recordHeaderSize
		if payloadLen > c.Remaining() {
			err := zerr.With(domain.ErrTruncatedRecord, "offset", start)
			err = zerr.With(err, "declared_length", int(length))
			return nil, zerr.With(err, "remaining", c.Remaining()+recordHeaderSize)
		}

		switch code {
		case recBgnStr:
			// New structure; its name arrives with the next STRNAME.
			current = domain.CellName{}
			inStructure = true
			pendingRef = false
			if err := c.Skip(payloadLen); err != nil {
				return nil, err
			}

		case recStrName:
			payload, err := c.ReadBytes(payloadLen)
			if err != nil {
				return nil, err
			}
			current = domain.NewCellName(trimPad(payload))
			h.AddCell(current)

		case recSRef, recARef:
			pendingRef = true
			if err := c.Skip(payloadLen); err != nil {
				return nil, err
			}

		case recSName:
			payload, err := c.ReadBytes(payloadLen)
			if err != nil {
				return nil, err
			}
			// Stray SNAMEs outside an open reference element are skipped.
			if pendingRef && inStructure && current.String() != "" {
				h.AddChild(current, domain.NewCellName(trimPad(payload)))
			}
			pendingRef = false

		case recEndEl:
			pendingRef = false
			if err := c.Skip(payloadLen); err != nil {
				return nil, err
			}

		case recEndStr:
			current = domain.CellName{}
			inStructure = false
			pendingRef = false
			if err := c.Skip(payloadLen); err != nil {
				return nil, err
			}

		case recEndLib:
			break loop

		default:
			if err := c.Skip(payloadLen); err != nil {
				return nil, err
			}
		}
	}

	h.Finalize()
	return h, nil
}

// trimPad strips the NUL padding GDSII appends to odd-length strings.
func trimPad(payload []byte) string {
	return strings.TrimRight(string(payload), "\x00")
}
