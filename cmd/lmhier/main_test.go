package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setup        func(t *testing.T, tmpDir string)
		args         []string
		expectedExit int
	}{
		{
			name:         "Version command succeeds without a settings file",
			setup:        func(t *testing.T, tmpDir string) {},
			args:         []string{"lmhier", "version"},
			expectedExit: 0,
		},
		{
			name: "Create writes a fresh library",
			setup: func(t *testing.T, tmpDir string) {
				settings := `version: "1"
parallelism: 2
`
				err := os.WriteFile(tmpDir+"/.lmhier.yaml", []byte(settings), 0o600)
				if err != nil {
					t.Fatalf("failed to write settings: %v", err)
				}
			},
			args:         []string{"lmhier", "create", "fresh.gds", "--cell", "TOP"},
			expectedExit: 0,
		},
		{
			name:         "Tree of a missing file fails",
			setup:        func(t *testing.T, tmpDir string) {},
			args:         []string{"lmhier", "tree", "nonexistent.gds"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setup(t, tmpDir)

			// Change to tmpDir so the journal and settings resolve there
			originalWd, _ := os.Getwd()
			err := os.Chdir(tmpDir)
			if err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
