package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownFormat is returned when a file extension matches no known layout format.
	ErrUnknownFormat = zerr.New("unknown layout format")

	// ErrBadMagic is returned when a file does not start with the expected format magic.
	ErrBadMagic = zerr.New("bad magic header")

	// ErrTruncatedRecord is returned when a record declares more payload than the file holds.
	ErrTruncatedRecord = zerr.New("truncated record")

	// ErrMalformedRecord is returned when a record violates its format's framing rules.
	ErrMalformedRecord = zerr.New("malformed record")

	// ErrUnresolvedReference is returned when a record refers to a cell number never declared.
	ErrUnresolvedReference = zerr.New("unresolved cell reference")

	// ErrNoCurrentCell is returned when a placement occurs outside any cell definition.
	ErrNoCurrentCell = zerr.New("placement outside cell definition")

	// ErrRecordLimit is returned when a stream exceeds the record-count ceiling.
	ErrRecordLimit = zerr.New("record count limit exceeded")

	// ErrParserStalled is returned when too many consecutive records make almost no progress.
	ErrParserStalled = zerr.New("parser stalled")

	// ErrDecodeFailed is returned by the application layer when a load finished with errors.
	ErrDecodeFailed = zerr.New("decode failed")

	// ErrNoLibrariesFound is returned when a batch load resolves to zero layout files.
	ErrNoLibrariesFound = zerr.New("no layout files found")
)
