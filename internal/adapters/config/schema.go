package config

// Settingsfile represents the structure of the .lmhier.yaml settings file.
type Settingsfile struct {
	Version     string            `yaml:"version"`
	Parallelism int               `yaml:"parallelism"`
	Formats     map[string]string `yaml:"formats"`
	Journal     string            `yaml:"journal"`
}
