// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package urlrule

import "strings"

const (
	schemeSep = "://"

	// Defaults for parts a pattern leaves out. Path and query may span
	// several segments, scheme and fragment are single tokens.
	defaultScheme   = "*"
	defaultPath     = "/**"
	defaultQuery    = "**"
	defaultFragment = "*"
)

// Normalize fills in the structural delimiters a shorthand pattern omits so
// that the result always has a scheme, a hostname-terminating "/", a "?" and
// a "#", in that order:
//
//	Normalize("example.com")           // "*://example.com/**?**#*"
//	Normalize("https://example.com/")  // "https://example.com/?**#*"
//	Normalize("example.com?a=1")       // "*://example.com/**?a=1#*"
//
// Missing parts are inserted where they belong rather than appended, so a
// later delimiter is never captured by an earlier part. Normalize is
// idempotent.
func Normalize(raw string) string {
	s := raw
	if schemeIndex(s) < 0 {
		s = defaultScheme + schemeSep + s
	}

	head := schemeIndex(s) + len(schemeSep)
	rest := s[head:]

	// A "/" only terminates the hostname when it comes before "?" and "#".
	end := indexAnyOrLen(rest, "?#")
	if !strings.Contains(rest[:end], "/") {
		rest = rest[:end] + defaultPath + rest[end:]
	}

	// A "?" after "#" belongs to the fragment.
	end = indexAnyOrLen(rest, "#")
	if !strings.Contains(rest[:end], "?") {
		rest = rest[:end] + "?" + defaultQuery + rest[end:]
	}

	if !strings.Contains(rest, "#") {
		rest += "#" + defaultFragment
	}

	return s[:head] + rest
}

// schemeIndex returns the index of the scheme delimiter, or -1 when there is
// none before the first "/", "?" or "#". A "://" inside a query value is not
// a scheme delimiter.
func schemeIndex(s string) int {
	i := strings.Index(s, schemeSep)
	if i < 0 || strings.ContainsAny(s[:i], "/?#") {
		return -1
	}
	return i
}

func indexAnyOrLen(s, chars string) int {
	if i := strings.IndexAny(s, chars); i >= 0 {
		return i
	}
	return len(s)
}
