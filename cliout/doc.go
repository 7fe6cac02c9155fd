// Package cliout provides output formatting for the browsers-match command:
// human-readable text with optional ANSI colors, or JSON.
//
// # Basic Usage
//
//	cliout.SetFormat(outputFlag)
//	cliout.Success("%s matches", url)
//	cliout.Label("Hostname", parts.Hostname)
//
// # Output Formats
//
// With the default format, helpers print styled text. With the JSON format,
// Print marshals its data argument instead of calling the formatter:
//
//	err := cliout.Print(result, func() {
//		cliout.Success("matched rule %d", result.Index)
//	})
//
// # Colors
//
// Colors are used only when output goes to a terminal (detected with
// golang.org/x/term), NO_COLOR is unset, and NoColor has not been called.
// Symbols fall back to ASCII on legacy Windows consoles.
package cliout
