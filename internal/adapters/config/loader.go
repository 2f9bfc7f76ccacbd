// Package config provides the settings loader for lmhier.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
)

// filenames are the settings file names probed in the working directory,
// in order.
var filenames = []string{".lmhier.yaml", "lmhier.yaml"}

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// Load reads the settings from the given working directory. When no
// settings file exists the defaults are returned, not an error.
func (l *FileConfigLoader) Load(cwd string) (*domain.Settings, error) {
	for _, name := range filenames {
		path := filepath.Join(cwd, name)
		data, err := os.ReadFile(path) //nolint:gosec // path is derived from the user's working directory
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
		}
		return parse(path, data)
	}
	return domain.DefaultSettings(), nil
}

func parse(path string, data []byte) (*domain.Settings, error) {
	var file Settingsfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
	}

	if file.Version != "" && file.Version != "1" {
		return nil, zerr.With(zerr.With(zerr.New("unsupported settings version"),
			"path", path), "version", file.Version)
	}
	if file.Parallelism < 0 {
		return nil, zerr.With(zerr.With(zerr.New("parallelism must not be negative"),
			"path", path), "parallelism", file.Parallelism)
	}

	overrides, err := parseFormats(path, file.Formats)
	if err != nil {
		return nil, err
	}

	settings := domain.DefaultSettings()
	settings.Parallelism = file.Parallelism
	settings.FormatOverrides = overrides
	if file.Journal != "" {
		settings.JournalPath = file.Journal
	}
	return settings, nil
}

// parseFormats validates the extension-to-format override table. Keys are
// normalized to lowercase with a leading dot; values must name a known
// format.
func parseFormats(path string, formats map[string]string) (map[string]string, error) {
	if len(formats) == 0 {
		return nil, nil
	}

	overrides := make(map[string]string, len(formats))
	for ext, name := range formats {
		format := domain.Format(strings.ToLower(name))
		if format != domain.FormatGDSII && format != domain.FormatOASIS {
			return nil, zerr.With(zerr.With(zerr.With(zerr.New("unknown format name in overrides"),
				"path", path), "extension", ext), "format", name)
		}
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		overrides[ext] = format.String()
	}
	return overrides, nil
}
