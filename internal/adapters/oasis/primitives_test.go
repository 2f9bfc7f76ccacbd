package oasis_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/layout"
	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/oasis"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
)

func TestReadUint(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint64
	}{
		{"single byte", []byte{0x00}, 0},
		{"seven bits", []byte{0x7f}, 127},
		{"two groups", []byte{0x88, 0x27}, 5000},
		{"group order is little endian", []byte{0x81, 0x20}, 4097},
		{"top bit of the top group", append(bytes.Repeat([]byte{0x80}, 9), 0x01), 1 << 63},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oasis.ReadUint(layout.NewCursor(tt.data))
			if err != nil {
				t.Fatalf("ReadUint failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadUint_Overflow(t *testing.T) {
	// An eleventh continuation group would need shift 70.
	data := append(bytes.Repeat([]byte{0x80}, 10), 0x01)

	_, err := oasis.ReadUint(layout.NewCursor(data))
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestReadUint_Truncated(t *testing.T) {
	_, err := oasis.ReadUint(layout.NewCursor([]byte{0x80}))
	if !errors.Is(err, domain.ErrTruncatedRecord) {
		t.Errorf("expected ErrTruncatedRecord, got %v", err)
	}
}

func TestReadSint(t *testing.T) {
	tests := []struct {
		data []byte
		want int64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x02}, 1},
		{[]byte{0x01}, -1},
		{[]byte{0x04}, 2},
		{[]byte{0x03}, -2},
		{[]byte{0x88, 0x27}, 2500},
		{[]byte{0x87, 0x27}, -2500},
	}
	for _, tt := range tests {
		got, err := oasis.ReadSint(layout.NewCursor(tt.data))
		if err != nil {
			t.Fatalf("ReadSint(% x) failed: %v", tt.data, err)
		}
		if got != tt.want {
			t.Errorf("ReadSint(% x) = %d, want %d", tt.data, got, tt.want)
		}
	}
}

func TestDecodeName(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"ascii", []byte("nand2"), "nand2"},
		{"utf8 kept", []byte("µcell"), "µcell"},
		{"latin1 fallback", []byte{0xc4, 0x42}, "ÄB"},
		{"lone high byte", []byte{0xff}, "ÿ"},
		{"empty", []byte{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := oasis.DecodeName(tt.data); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
