// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// The rule and profile layers log through this package so that a host
// application configures logging once and every component follows it.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("rule matched", "index", 2, "profile", "firefox/work")
//	logutil.Warn("rule skipped", "pattern", pattern, "error", err)
//
// Component loggers carry context through a call chain:
//
//	log := logutil.NewLogger("rules").WithOperation("route")
//	log.WithRule(i, rule.Pattern).Debug("no match")
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set BROWSERS_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"DEBUG","msg":"rule matched","index":2}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=DEBUG msg="rule matched" index=2
package logutil
