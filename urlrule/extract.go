// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package urlrule

import (
	"fmt"
	"strings"
)

// Matcher is a normalized pattern split into its parts. The zero value of an
// authority sub-part (user, password, port) means "not specified".
type Matcher struct {
	Parts
	// Pattern is the normalized pattern the parts were extracted from.
	Pattern string `json:"pattern"`
}

// scanState is the position of the extraction scanner within a pattern.
type scanState int

const (
	stateScheme scanState = iota
	stateAuthority
	statePath
	stateQuery
	stateFragment
)

// missingDelimiter names what the scanner was waiting for in each state.
var missingDelimiter = [...]string{
	stateScheme:    `scheme delimiter "://"`,
	stateAuthority: `"/" after hostname`,
	statePath:      `query delimiter "?"`,
	stateQuery:     `fragment delimiter "#"`,
}

// Extract splits a fully delimited pattern, as produced by Normalize, into
// its parts. The path keeps its leading "/"; the query and fragment exclude
// their delimiters.
//
//	m, _ := urlrule.Extract("*://example.com/?#")
//	// m.Scheme == "*", m.Hostname == "example.com", m.Path == "/",
//	// m.Query == "", m.Fragment == ""
//
// Unless WithAuthority is given, the whole authority becomes the hostname and
// user, password and port stay empty. A missing or out-of-order delimiter is
// reported as a *PatternError wrapping ErrMalformedPattern.
func Extract(full string, opts ...Option) (Matcher, error) {
	o := newOptions(opts)

	m := Matcher{Pattern: full}
	state := stateScheme
	start := 0

scan:
	for i := 0; i < len(full); i++ {
		c := full[i]
		switch state {
		case stateScheme:
			if strings.HasPrefix(full[i:], schemeSep) {
				m.Scheme = full[start:i]
				i += len(schemeSep) - 1
				start = i + 1
				state = stateAuthority
				continue
			}
			if c == '/' || c == '?' || c == '#' {
				return Matcher{}, malformed(full, i, "%q before scheme delimiter %q", c, schemeSep)
			}
		case stateAuthority:
			switch c {
			case '/':
				if err := setAuthority(&m, full[start:i], o.authority); err != nil {
					return Matcher{}, err
				}
				start = i
				state = statePath
			case '?', '#':
				return Matcher{}, malformed(full, i, "%q before the \"/\" that ends the hostname", c)
			}
		case statePath:
			switch c {
			case '?':
				m.Path = full[start:i]
				start = i + 1
				state = stateQuery
			case '#':
				return Matcher{}, malformed(full, i, "fragment delimiter \"#\" before query delimiter \"?\"")
			}
		case stateQuery:
			if c == '#' {
				m.Query = full[start:i]
				m.Fragment = full[i+1:]
				state = stateFragment
				break scan
			}
		}
	}

	if state != stateFragment {
		return Matcher{}, malformed(full, len(full), "missing %s", missingDelimiter[state])
	}
	return m, nil
}

// setAuthority stores the authority section in m, splitting it into
// user, password, hostname and port when split is set.
func setAuthority(m *Matcher, authority string, split bool) error {
	if !split {
		m.Hostname = authority
		return nil
	}

	if at := strings.LastIndexByte(authority, '@'); at >= 0 {
		userinfo := authority[:at]
		authority = authority[at+1:]
		if colon := strings.IndexByte(userinfo, ':'); colon >= 0 {
			m.User, m.Password = userinfo[:colon], userinfo[colon+1:]
		} else {
			m.User = userinfo
		}
	}

	host, port := authority, ""
	if strings.HasPrefix(host, "[") {
		end := strings.IndexByte(host, ']')
		if end < 0 {
			return &PatternError{
				Pattern: m.Pattern,
				Field:   FieldHostname,
				Offset:  -1,
				Detail:  fmt.Sprintf("unterminated IPv6 literal in %q", authority),
				Err:     ErrMalformedPattern,
			}
		}
		if rest := host[end+1:]; strings.HasPrefix(rest, ":") {
			port = rest[1:]
		}
		host = host[:end+1]
	} else if colon := strings.LastIndexByte(host, ':'); colon >= 0 {
		host, port = host[:colon], host[colon+1:]
	}

	m.Hostname = host
	m.Port = port
	return nil
}
