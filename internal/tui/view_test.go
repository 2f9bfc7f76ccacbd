//nolint:testpackage // Test needs access to unexported fields
package tui

import (
	"strings"
	"testing"
)

func TestModel_View(t *testing.T) {
	m := NewModel(nil)
	m.width = 80
	m.height = 20

	m.decodes = []DecodeState{
		{ID: "1", Name: "decode top.gds", Status: statusRunning},
		{ID: "2", Name: "decode chip.oas", Status: statusCompleted, LastLog: "40 cells, 2 tops"},
		{ID: "3", Name: "decode broken.oas", Status: statusFailed, LastLog: "truncated record"},
	}

	output := m.View()
	t.Logf("View Output:\n%s", output)

	for _, want := range []string{"decode top.gds", "decode chip.oas", "decode broken.oas"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if !strings.Contains(output, "✓") {
		t.Error("expected checkmark for completed decode")
	}
	if !strings.Contains(output, "✗") {
		t.Error("expected cross for failed decode")
	}
	if !strings.Contains(output, "truncated record") {
		t.Error("expected last log line under the failed decode")
	}
}

func TestModel_View_Overflow(t *testing.T) {
	m := NewModel(nil)
	m.height = 2

	m.decodes = []DecodeState{
		{ID: "1", Name: "decode a.gds", Status: statusCompleted},
		{ID: "2", Name: "decode b.gds", Status: statusCompleted},
		{ID: "3", Name: "decode c.gds", Status: statusRunning},
	}

	output := m.View()
	if strings.Contains(output, "decode a.gds") {
		t.Error("expected the oldest decode to scroll off")
	}
	if !strings.Contains(output, "decode c.gds") {
		t.Error("expected the newest decode to be visible")
	}
}
