package domain

// Settings holds the tool configuration loaded from .lmhier.yaml.
type Settings struct {
	// Version is the settings schema version.
	Version string
	// Parallelism bounds concurrent decodes during batch loads.
	// Zero means "number of CPUs", decided at the point of use.
	Parallelism int
	// FormatOverrides maps additional file extensions (with leading dot)
	// to a format name, e.g. ".strm" -> "gdsii".
	FormatOverrides map[string]string
	// JournalPath is where decode results are journaled.
	JournalPath string
}

// DefaultJournalPath is used when the settings file does not name one.
const DefaultJournalPath = ".lmhier/journal.json"

// DefaultSettings returns the configuration used when no settings file
// exists.
func DefaultSettings() *Settings {
	return &Settings{
		Version:     "1",
		JournalPath: DefaultJournalPath,
	}
}
