// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package urlrule

import (
	"errors"
	neturl "net/url"

	"github.com/jongio/browsers-core/urlutil"
)

// Decompose splits a parsed URL into the parts matchers compare against:
// the host in lowercase ASCII form, the port only when it differs from the
// scheme's default, the escaped path ("/" for an empty hierarchical path),
// and the raw query and fragment without their delimiters. A URL without a
// host yields a *URLError wrapping ErrMissingHost.
func Decompose(u *neturl.URL) (Parts, error) {
	host, err := urlutil.Hostname(u)
	if err != nil {
		return Parts{}, &URLError{URL: u.String(), Err: ErrInvalidURL, Cause: err}
	}
	if host == "" {
		return Parts{}, &URLError{URL: u.String(), Err: ErrMissingHost}
	}

	p := Parts{
		Scheme:   u.Scheme,
		Hostname: host,
		Port:     urlutil.Port(u),
		Path:     u.EscapedPath(),
		Query:    u.RawQuery,
		Fragment: u.EscapedFragment(),
	}
	if u.User != nil {
		p.User = u.User.Username()
		p.Password, _ = u.User.Password()
	}
	if p.Path == "" && urlutil.IsHierarchical(p.Scheme) {
		p.Path = "/"
	}
	return p, nil
}

// MatchParts reports whether every part of p matches the corresponding
// compiled glob.
func (c *Compiled) MatchParts(p Parts) bool {
	for _, g := range c.parts {
		if !g.match(p.Get(g.field)) {
			return false
		}
	}
	return true
}

// MatchURL reports whether u matches. It fails only when u cannot be
// decomposed, see Decompose.
func (c *Compiled) MatchURL(u *neturl.URL) (bool, error) {
	p, err := Decompose(u)
	if err != nil {
		return false, err
	}
	return c.MatchParts(p), nil
}

// MatchString parses rawURL and reports whether it matches. Parse failures
// are returned as a *URLError wrapping ErrInvalidURL rather than treated as
// a non-match.
func (c *Compiled) MatchString(rawURL string) (bool, error) {
	u, err := urlutil.Parse(rawURL)
	if err != nil {
		return false, &URLError{URL: rawURL, Err: ErrInvalidURL, Cause: err}
	}
	ok, err := c.MatchURL(u)
	if err != nil {
		var urlErr *URLError
		if errors.As(err, &urlErr) {
			urlErr.URL = rawURL
		}
		return false, err
	}
	return ok, nil
}

// Matches is MatchString for callers that treat an unevaluable URL as a
// non-match.
func (c *Compiled) Matches(rawURL string) bool {
	ok, err := c.MatchString(rawURL)
	return err == nil && ok
}

// MatchFields reports the per-part outcome of matching p, in URL order.
func (c *Compiled) MatchFields(p Parts) map[Field]bool {
	out := make(map[Field]bool, numFields)
	for _, g := range c.parts {
		out[g.field] = g.match(p.Get(g.field))
	}
	return out
}
