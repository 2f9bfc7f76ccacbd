package oasis

// Hooks exported for testing purposes only.

var (
	ReadUint   = readUint
	ReadSint   = readSint
	DecodeName = decodeName
)

// SetRecordLimit lowers the record ceiling so tests do not need
// multi-hundred-megabyte inputs. It returns a restore func.
func SetRecordLimit(n uint64) (restore func()) {
	old := maxRecordCount
	maxRecordCount = n
	return func() { maxRecordCount = old }
}
