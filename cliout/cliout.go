package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Cyan         = "\033[36m"
	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols with ASCII fallbacks
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"

	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
)

var (
	mu           sync.RWMutex
	globalFormat         = FormatDefault
	noColor              = false
	out          io.Writer = os.Stdout
)

// supportsUnicode detects if the terminal supports Unicode symbols
var supportsUnicode = detectUnicodeSupport()

func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	// Windows Terminal, VS Code, ConEmu and PowerShell render Unicode;
	// the legacy console does not.
	return os.Getenv("WT_SESSION") != "" ||
		os.Getenv("TERM_PROGRAM") == "vscode" ||
		os.Getenv("ConEmuPID") != "" ||
		os.Getenv("PSModulePath") != "" ||
		os.Getenv("TERM") != ""
}

func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// SetWriter redirects all output to w. Colors are only emitted when w is a
// terminal.
func SetWriter(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

// Writer returns the current output writer.
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// ForceColor re-enables color output after NoColor.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// colorEnabled reports whether styling should be written.
func colorEnabled() bool {
	mu.RLock()
	w, disabled := out, noColor
	mu.RUnlock()

	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// style wraps s in the given ANSI codes when colors are enabled.
func style(s string, codes ...string) string {
	if !colorEnabled() || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()
	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// PrintJSON prints data as indented JSON.
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(Writer())
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
// For JSON format, marshals the data object.
func Print(data interface{}, formatter func()) error {
	if IsJSON() {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

func printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(Writer(), format, args...)
}

// Header prints a bold header with a divider
func Header(text string) {
	printf("\n%s\n%s\n", style(text, Bold), strings.Repeat("=", len(text)))
}

// Success prints a success message with green checkmark
func Success(format string, args ...interface{}) {
	printf("%s %s\n", style(getIcon(SymbolCheck, ASCIICheck), BrightGreen), fmt.Sprintf(format, args...))
}

// Error prints an error message with red X
func Error(format string, args ...interface{}) {
	printf("%s %s\n", style(getIcon(SymbolCross, ASCIICross), BrightRed), fmt.Sprintf(format, args...))
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...interface{}) {
	printf("%s  %s\n", style(getIcon(SymbolWarning, ASCIIWarning), BrightYellow), fmt.Sprintf(format, args...))
}

// Info prints an info message with blue info icon
func Info(format string, args ...interface{}) {
	printf("%s  %s\n", style(getIcon(SymbolInfo, ASCIIInfo), BrightBlue), fmt.Sprintf(format, args...))
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...interface{}) {
	printf(format+"\n", args...)
}

// Label prints a label and value pair
func Label(label, value string) {
	printf("   %s %s\n", style(fmt.Sprintf("%-12s", label+":"), Dim), value)
}

// Status returns a status word colored by meaning.
func Status(status string) string {
	switch strings.ToLower(status) {
	case "match", "matched", "yes", "ok":
		return style(status, BrightGreen)
	case "restricted":
		return style(status, BrightYellow)
	case "no match", "no", "error", "invalid":
		return style(status, BrightRed)
	default:
		return status
	}
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int)
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	var b strings.Builder
	b.WriteString("   ")
	for _, header := range headers {
		b.WriteString(style(fmt.Sprintf("%-*s", widths[header], header), Bold) + "  ")
	}
	b.WriteString("\n   ")
	for _, header := range headers {
		b.WriteString(strings.Repeat("─", widths[header]) + "  ")
	}
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("   ")
		for _, header := range headers {
			fmt.Fprintf(&b, "%-*s  ", widths[header], row[header])
		}
		b.WriteString("\n")
	}
	printf("%s", b.String())
}
