// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package urlrule

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jongio/browsers-core/urlutil"
)

// Compiled is a pattern compiled into one glob per URL part. It holds no
// mutable state and is safe for concurrent use.
type Compiled struct {
	source  string
	matcher Matcher
	parts   [numFields]partGlob
}

// partGlob is the compiled glob for one part.
type partGlob struct {
	field Field
	// glob is lowercased with the field separator rewritten to '/'.
	glob string
	any  bool
}

func (g partGlob) match(value string) bool {
	if g.any {
		return true
	}
	return doublestar.MatchUnvalidated(g.glob, g.field.rewrite(value))
}

// Compile normalizes, extracts and compiles a raw pattern.
//
//	c, err := urlrule.Compile("**.example.com")
//	if err != nil {
//		return err
//	}
//	ok, err := c.MatchString("https://docs.example.com/guide")
func Compile(pattern string, opts ...Option) (*Compiled, error) {
	m, err := Extract(Normalize(pattern), opts...)
	if err != nil {
		return nil, err
	}
	c, err := CompileMatcher(m)
	if err != nil {
		return nil, err
	}
	c.source = pattern
	return c, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string, opts ...Option) *Compiled {
	c, err := Compile(pattern, opts...)
	if err != nil {
		panic("urlrule: Compile(" + pattern + "): " + err.Error())
	}
	return c
}

// CompileMatcher compiles each part of m into a glob. Any part that is not
// valid glob syntax fails the whole matcher with a *PatternError wrapping
// ErrInvalidGlob; so does an empty hostname, which no URL could satisfy.
func CompileMatcher(m Matcher) (*Compiled, error) {
	c := &Compiled{source: m.Pattern, matcher: m}

	for _, f := range Fields {
		value := m.Get(f)
		if value == "" && fieldSpecs[f].anyWhenEmpty {
			c.parts[f] = partGlob{field: f, any: true}
			continue
		}

		if f == FieldHostname {
			if value == "" {
				return nil, &PatternError{
					Pattern: m.Pattern,
					Field:   f,
					Offset:  -1,
					Detail:  "hostname is empty",
					Err:     ErrMalformedPattern,
				}
			}
			ascii, err := asciiHostPattern(value)
			if err != nil {
				return nil, &PatternError{Pattern: m.Pattern, Field: f, Offset: -1, Detail: err.Error(), Err: ErrInvalidGlob}
			}
			value = escapeIPv6Literal(ascii)
		}

		glob := f.rewrite(value)
		if !doublestar.ValidatePattern(glob) {
			return nil, &PatternError{
				Pattern: m.Pattern,
				Field:   f,
				Offset:  -1,
				Detail:  fmt.Sprintf("%q is not a valid glob", value),
				Err:     ErrInvalidGlob,
			}
		}
		c.parts[f] = partGlob{field: f, glob: glob}
	}

	return c, nil
}

// asciiHostPattern converts internationalized labels of a hostname pattern to
// their punycode form. Labels containing glob syntax are left alone.
func asciiHostPattern(host string) (string, error) {
	labels := strings.Split(host, ".")
	for i, label := range labels {
		if strings.ContainsAny(label, `*?[]{}\`) {
			continue
		}
		ascii, err := urlutil.ToASCIILabel(label)
		if err != nil {
			return "", err
		}
		labels[i] = ascii
	}
	return strings.Join(labels, "."), nil
}

// escapeIPv6Literal escapes the brackets of an IPv6 literal so they are not
// read as a character class.
func escapeIPv6Literal(host string) string {
	if len(host) > 2 && host[0] == '[' && host[len(host)-1] == ']' && strings.Contains(host, ":") {
		return `\[` + host[1:len(host)-1] + `\]`
	}
	return host
}

// String returns the normalized pattern.
func (c *Compiled) String() string {
	return c.matcher.Pattern
}

// Source returns the pattern as given to Compile.
func (c *Compiled) Source() string {
	return c.source
}

// Matcher returns the parts the matcher was compiled from.
func (c *Compiled) Matcher() Matcher {
	return c.matcher
}
