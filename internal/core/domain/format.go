package domain

import (
	"path/filepath"
	"strings"
)

// Format identifies the layout file format of a library.
type Format string

const (
	// FormatUnknown indicates the file extension matched no known format.
	FormatUnknown Format = "unknown"
	// FormatGDSII indicates a GDSII stream file.
	FormatGDSII Format = "gdsii"
	// FormatOASIS indicates an OASIS file.
	FormatOASIS Format = "oasis"
)

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}

// defaultExtensions maps well-known layout file extensions to their format.
var defaultExtensions = map[string]Format{
	".gds":   FormatGDSII,
	".gds2":  FormatGDSII,
	".gdsii": FormatGDSII,
	".oas":   FormatOASIS,
	".oasis": FormatOASIS,
}

// FormatForPath detects the layout format of a file path by extension,
// case-insensitively. Overrides from the settings file are consulted
// before the built-in table; override values are format names as produced
// by Format.String.
func FormatForPath(path string, overrides map[string]string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if name, ok := overrides[ext]; ok {
		switch Format(strings.ToLower(name)) {
		case FormatGDSII:
			return FormatGDSII
		case FormatOASIS:
			return FormatOASIS
		}
	}
	if f, ok := defaultExtensions[ext]; ok {
		return f
	}
	return FormatUnknown
}

// LayoutExtensions returns the file extensions recognized as layout files,
// merging the built-in table with override keys. Used by directory walks.
func LayoutExtensions(overrides map[string]string) []string {
	exts := make([]string, 0, len(defaultExtensions)+len(overrides))
	for ext := range defaultExtensions {
		exts = append(exts, ext)
	}
	for ext := range overrides {
		ext = strings.ToLower(ext)
		if _, ok := defaultExtensions[ext]; !ok {
			exts = append(exts, ext)
		}
	}
	return exts
}
