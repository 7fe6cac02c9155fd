// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package urlrule

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPattern is returned when a pattern lacks a structural
	// delimiter or has its delimiters out of order.
	ErrMalformedPattern = errors.New("malformed URL pattern")
	// ErrInvalidGlob is returned when a part of a pattern is not valid glob syntax.
	ErrInvalidGlob = errors.New("invalid glob syntax")
	// ErrMissingHost is returned when a URL to be matched has no host.
	ErrMissingHost = errors.New("url has no host")
	// ErrInvalidURL is returned when a raw URL cannot be parsed.
	ErrInvalidURL = errors.New("invalid URL")
)

// PatternError describes a pattern that could not be turned into a matcher.
// Err is ErrMalformedPattern or ErrInvalidGlob.
type PatternError struct {
	Pattern string
	// Field is the part the problem was found in, when known.
	Field Field
	// Offset is the byte offset into Pattern, or -1.
	Offset int
	Detail string
	Err    error
}

func (e *PatternError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("url pattern %q: %v at offset %d: %s", e.Pattern, e.Err, e.Offset, e.Detail)
	}
	return fmt.Sprintf("url pattern %q: %v in %s: %s", e.Pattern, e.Err, e.Field, e.Detail)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// URLError describes a URL that could not be evaluated against a matcher.
// Err is ErrInvalidURL or ErrMissingHost; Cause carries the parser error, if any.
type URLError struct {
	URL   string
	Err   error
	Cause error
}

func (e *URLError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("url %q: %v: %v", e.URL, e.Err, e.Cause)
	}
	return fmt.Sprintf("url %q: %v", e.URL, e.Err)
}

func (e *URLError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func malformed(pattern string, offset int, format string, args ...any) error {
	return &PatternError{
		Pattern: pattern,
		Offset:  offset,
		Detail:  fmt.Sprintf(format, args...),
		Err:     ErrMalformedPattern,
	}
}
