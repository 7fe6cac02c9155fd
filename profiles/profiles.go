// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package profiles decides which browser profiles the chooser offers for a
// link.
//
// A profile may be restricted to a list of URL patterns ("restricted
// domains"). Restricted profiles are only offered for links matching one of
// their patterns and are listed ahead of every other profile when they
// match. Profiles without restrictions are always offered.
package profiles

import (
	"errors"
	"fmt"
	"io"
	neturl "net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jongio/browsers-core/cache"
	"github.com/jongio/browsers-core/logutil"
	"github.com/jongio/browsers-core/metrics"
	"github.com/jongio/browsers-core/urlrule"
	"github.com/jongio/browsers-core/urlutil"
)

// Profile is a browser profile as offered by the chooser.
type Profile struct {
	ID                string   `yaml:"id" json:"id"`
	BrowserID         string   `yaml:"browser" json:"browser"`
	Name              string   `yaml:"name" json:"name"`
	RestrictedDomains []string `yaml:"restricted_domains,omitempty" json:"restrictedDomains,omitempty"`
	Hidden            bool     `yaml:"hidden,omitempty" json:"hidden,omitempty"`
}

// Key identifies the profile as "<browser-id>/<profile-id>", the form rules
// use to name their target.
func (p Profile) Key() string {
	return p.BrowserID + "/" + p.ID
}

// Candidate is a profile offered for a particular link.
type Candidate struct {
	Profile    Profile `json:"profile"`
	Restricted bool    `json:"restricted"`
	// Matched is set for restricted profiles whose patterns match the link.
	Matched bool `json:"matched"`
}

// PatternError reports a restricted-domain pattern that could not be compiled.
type PatternError struct {
	Profile string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("profile %s: restricted domain %q: %v", e.Profile, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Option configures NewChooser.
type Option func(*settings)

type settings struct {
	cache *cache.Matchers
}

// WithCache shares compiled patterns through c.
func WithCache(c *cache.Matchers) Option {
	return func(s *settings) {
		s.cache = c
	}
}

type entry struct {
	profile  Profile
	matchers []*urlrule.Compiled
}

// Chooser orders profiles for links. It is safe for concurrent use.
type Chooser struct {
	entries []entry
	log     *logutil.ComponentLogger
}

// NewChooser compiles the restricted domains of every profile. All invalid
// patterns are returned together as an errors.Join of *PatternError values.
// Hidden profiles are kept out of the chooser entirely.
func NewChooser(list []Profile, opts ...Option) (*Chooser, error) {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.cache == nil {
		s.cache = cache.NewMatchers(cache.Options{})
	}

	ch := &Chooser{log: logutil.NewLogger("profiles")}
	var errs []error

	for _, p := range list {
		if p.Hidden {
			continue
		}

		e := entry{profile: p}
		for _, pattern := range p.RestrictedDomains {
			pattern = strings.TrimSpace(pattern)
			if pattern == "" {
				continue
			}
			c, err := s.cache.Get(pattern)
			metrics.RecordCompile(metrics.KindProfile, err)
			if err != nil {
				ch.log.WithOperation("compile").WithProfile(p.Key()).Warn("invalid restricted domain", "pattern", pattern, "error", err)
				errs = append(errs, &PatternError{Profile: p.Key(), Pattern: pattern, Err: err})
				continue
			}
			e.matchers = append(e.matchers, c)
		}
		ch.entries = append(ch.entries, e)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return ch, nil
}

// Candidates returns the profiles to offer for rawURL in display order:
// matching restricted profiles first, then unrestricted profiles, each group
// in configuration order. A link that cannot be evaluated offers every
// profile in configuration order.
func (c *Chooser) Candidates(rawURL string) []Candidate {
	u, err := urlutil.Parse(rawURL)
	if err != nil {
		return c.fallback(&urlrule.URLError{URL: rawURL, Err: urlrule.ErrInvalidURL, Cause: err})
	}
	return c.CandidatesURL(u)
}

// CandidatesURL is Candidates for an already parsed URL.
func (c *Chooser) CandidatesURL(u *neturl.URL) []Candidate {
	parts, err := urlrule.Decompose(u)
	if err != nil {
		return c.fallback(err)
	}

	var matched, open []Candidate
	for _, e := range c.entries {
		if len(e.matchers) == 0 {
			open = append(open, Candidate{Profile: e.profile})
			continue
		}
		ok := e.matches(parts)
		metrics.RecordMatch(metrics.KindProfile, ok, nil)
		if ok {
			matched = append(matched, Candidate{Profile: e.profile, Restricted: true, Matched: true})
		}
	}

	c.log.WithOperation("candidates").Debug("profiles ordered",
		"url", u.Redacted(), "restricted_matches", len(matched), "unrestricted", len(open))
	return append(matched, open...)
}

func (e entry) matches(parts urlrule.Parts) bool {
	for _, m := range e.matchers {
		if m.MatchParts(parts) {
			return true
		}
	}
	return false
}

// fallback offers every profile when the link cannot be evaluated.
func (c *Chooser) fallback(err error) []Candidate {
	metrics.RecordMatch(metrics.KindProfile, false, err)
	c.log.WithOperation("candidates").Debug("showing all profiles", "error", err)

	out := make([]Candidate, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, Candidate{Profile: e.profile, Restricted: len(e.matchers) > 0})
	}
	return out
}

// Len returns the number of profiles the chooser can offer.
func (c *Chooser) Len() int {
	return len(c.entries)
}

type document struct {
	Profiles []Profile `yaml:"profiles"`
}

// Decode reads a YAML profiles document:
//
//	profiles:
//	  - id: work
//	    browser: chrome
//	    name: Work
//	    restricted_domains: ["**.corp.example.com"]
//
// Unknown fields are rejected. An empty document yields no profiles.
func Decode(r io.Reader) ([]Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}
	return doc.Profiles, nil
}
