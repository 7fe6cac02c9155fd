// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package urlrule compiles URL patterns into matchers and tests concrete URLs
// against them.
//
// A pattern is a URL in which any part may be a glob and most parts may be
// left out:
//
//	example.com                host example.com, anything else
//	*.example.com              one label in front of example.com
//	**.example.com             example.com or any subdomain of it
//	app.company.xyz/v2/**      that host, paths under /v2/
//	*://example.com            explicit wildcard scheme
//	https://example.com/?#     root path, no query, no fragment
//
// # Pipeline
//
// Normalize inserts the default for every omitted part ("*" scheme, "/**"
// path, "**" query, "*" fragment). Extract scans the normalized pattern
// into its parts. CompileMatcher turns each part into a glob, and the
// resulting Compiled matcher tests URLs part by part: a URL matches only if
// every part matches. Compile runs the whole pipeline.
//
// # Separators
//
// In every part "*" never crosses a "/" while "**" may span any number of
// "/"-separated segments, including none when written as "**/". Hostname
// labels and query parameters get the same treatment by rewriting "." (in
// hostnames) and "&" (in queries) to "/" in both the pattern and the URL
// before comparing. "beginning.*" therefore matches "beginning.of" but not
// "beginning.of.something", which needs "beginning.**".
//
// All comparisons are case-insensitive.
//
// # Authority
//
// By default the entire authority of a pattern is treated as the hostname,
// and the user, password and port of a URL are not constrained at all: a
// pattern such as "example.com:8080" can never match because no URL host
// contains a port. This is existing behavior that rules rely on. Patterns
// compiled WithAuthority split "user:pass@host:port" and constrain each
// part that is present.
//
// # Errors
//
// Compilation fails with a *PatternError (ErrMalformedPattern or
// ErrInvalidGlob) rather than producing a matcher that can never match.
// Matching fails with a *URLError (ErrInvalidURL or ErrMissingHost) for URLs
// that cannot be evaluated; deciding what to do with such URLs is up to the
// caller.
//
// Compiled matchers are immutable and safe for concurrent use.
package urlrule
