package gds

// GDSII record codes: record-type byte in the high byte, data-type byte in
// the low byte, as they appear on the wire after the record length.
const (
	recHeader  uint16 = 0x0002
	recBgnLib  uint16 = 0x0102
	recLibName uint16 = 0x0206
	recUnits   uint16 = 0x0305
	recEndLib  uint16 = 0x0400
	recBgnStr  uint16 = 0x0502
	recStrName uint16 = 0x0606
	recEndStr  uint16 = 0x0700
	recEndEl   uint16 = 0x1100
	recSRef    uint16 = 0x0A00
	recARef    uint16 = 0x0B00
	recSName   uint16 = 0x1206
)

// recordHeaderSize is the fixed prefix of every record: a 2-byte big-endian
// total length (which includes the prefix itself) and a 2-byte record code.
const recordHeaderSize = 4
