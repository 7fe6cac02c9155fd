package cliout

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(os.Stdout)
	fn()
	return buf.String()
}

func TestSetFormat(t *testing.T) {
	defer func() { _ = SetFormat("default") }()

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatDefault, false},
		{"default", FormatDefault, false},
		{"json", FormatJSON, false},
		{"yaml", FormatDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_ = SetFormat("default")
			err := SetFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if GetFormat() != tt.want {
				t.Errorf("GetFormat() = %q, want %q", GetFormat(), tt.want)
			}
		})
	}
}

func TestPrint_JSON(t *testing.T) {
	_ = SetFormat("json")
	defer func() { _ = SetFormat("default") }()

	called := false
	output := captureOutput(t, func() {
		if err := Print(map[string]bool{"matched": true}, func() { called = true }); err != nil {
			t.Fatal(err)
		}
	})

	if called {
		t.Error("formatter should not run in JSON mode")
	}
	var got map[string]bool
	if err := json.Unmarshal([]byte(output), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if !got["matched"] {
		t.Errorf("got %v, want matched=true", got)
	}
}

func TestPrint_Default(t *testing.T) {
	_ = SetFormat("default")

	output := captureOutput(t, func() {
		_ = Print(nil, func() { Success("all %d matched", 3) })
	})

	if !strings.Contains(output, "all 3 matched") {
		t.Errorf("output = %q", output)
	}
}

func TestNoColorForNonTerminal(t *testing.T) {
	ForceColor()
	output := captureOutput(t, func() {
		Error("failed")
		Label("Hostname", "example.com")
		Plain("%s", Status("matched"))
	})

	if strings.Contains(output, "\033[") {
		t.Errorf("expected no ANSI codes when writing to a buffer, got %q", output)
	}
	if !strings.Contains(output, "Hostname:") || !strings.Contains(output, "example.com") {
		t.Errorf("label output = %q", output)
	}
}

func TestHeaderAndMessages(t *testing.T) {
	output := captureOutput(t, func() {
		Header("Rules")
		Warning("rule %d skipped", 2)
		Info("3 rules")
	})

	for _, want := range []string{"Rules\n=====", "rule 2 skipped", "3 rules"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in %q", want, output)
		}
	}
}

func TestTable(t *testing.T) {
	output := captureOutput(t, func() {
		Table([]string{"PART", "PATTERN"}, []TableRow{
			{"PART": "hostname", "PATTERN": "example.com"},
			{"PART": "path", "PATTERN": "/**"},
		})
	})

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), output)
	}
	if !strings.Contains(lines[2], "hostname") || !strings.Contains(lines[2], "example.com") {
		t.Errorf("unexpected row: %q", lines[2])
	}
}

func TestTable_Empty(t *testing.T) {
	output := captureOutput(t, func() {
		Table([]string{"A"}, nil)
	})
	if output != "" {
		t.Errorf("expected no output, got %q", output)
	}
}
