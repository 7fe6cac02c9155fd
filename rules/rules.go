// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rules

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

var (
	// ErrEmptyPattern is returned for a rule without a pattern.
	ErrEmptyPattern = errors.New("rule pattern is empty")
	// ErrMissingProfile is returned for a rule without a target profile.
	ErrMissingProfile = errors.New("rule has no target profile")
)

// Rule routes links matching Pattern to Profile.
type Rule struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	// Profile is "<browser-id>/<profile-id>".
	Profile   string `yaml:"profile" json:"profile"`
	Incognito bool   `yaml:"incognito,omitempty" json:"incognito,omitempty"`
	// Enabled defaults to true when omitted.
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

// IsEnabled reports whether the rule takes part in routing.
func (r Rule) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// RuleError reports a rule that could not be compiled.
type RuleError struct {
	Index   int
	Pattern string
	Err     error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %d (%q): %v", e.Index, e.Pattern, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// Decision is the outcome of routing a link.
type Decision struct {
	Matched bool `json:"matched"`
	// Index is the position of the matching rule in the original list.
	Index int  `json:"index"`
	Rule  Rule `json:"rule"`
}

// Option configures Compile.
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

type compiledRule struct {
	index   int
	rule    Rule
	matcher *urlrule.Compiled
}

// Set is a compiled, ordered list of rules. It is safe for concurrent use.
type Set struct {
	rules []compiledRule
	log   *logutil.ComponentLogger
}

// Compile compiles every enabled rule. All failures are returned together as
// an errors.Join of *RuleError values, in rule order.
func Compile(list []Rule, opts ...Option) (*Set, error) {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.cache == nil {
		s.cache = cache.NewMatchers(cache.Options{})
	}

	log := logutil.NewLogger("rules")
	set := &Set{log: log}
	var errs []error

	for i, r := range list {
		if !r.IsEnabled() {
			continue
		}

		c, err := compileRule(s.cache, r)
		metrics.RecordCompile(metrics.KindRule, err)
		if err != nil {
			log.WithOperation("compile").WithRule(i, r.Pattern).Warn("invalid rule", "error", err)
			errs = append(errs, &RuleError{Index: i, Pattern: r.Pattern, Err: err})
			continue
		}
		set.rules = append(set.rules, compiledRule{index: i, rule: r, matcher: c})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return set, nil
}

func compileRule(c *cache.Matchers, r Rule) (*urlrule.Compiled, error) {
	if strings.TrimSpace(r.Pattern) == "" {
		return nil, ErrEmptyPattern
	}
	if strings.TrimSpace(r.Profile) == "" {
		return nil, ErrMissingProfile
	}
	return c.Get(strings.TrimSpace(r.Pattern))
}

// Len returns the number of enabled rules.
func (s *Set) Len() int {
	return len(s.rules)
}

// Route finds the first rule matching rawURL. A URL that cannot be parsed or
// has no host returns a *urlrule.URLError.
func (s *Set) Route(rawURL string) (Decision, error) {
	u, err := urlutil.Parse(rawURL)
	if err != nil {
		err = &urlrule.URLError{URL: rawURL, Err: urlrule.ErrInvalidURL, Cause: err}
		metrics.RecordMatch(metrics.KindRule, false, err)
		return Decision{}, err
	}
	return s.RouteURL(u)
}

// RouteURL is Route for an already parsed URL.
func (s *Set) RouteURL(u *neturl.URL) (Decision, error) {
	log := s.log.WithOperation("route").WithFields("url", u.Redacted())

	parts, err := urlrule.Decompose(u)
	if err != nil {
		metrics.RecordMatch(metrics.KindRule, false, err)
		log.Debug("url cannot be routed", "error", err)
		return Decision{}, err
	}

	for _, r := range s.rules {
		if r.matcher.MatchParts(parts) {
			metrics.RecordMatch(metrics.KindRule, true, nil)
			log.WithRule(r.index, r.rule.Pattern).Debug("rule matched", "profile", r.rule.Profile)
			return Decision{Matched: true, Index: r.index, Rule: r.rule}, nil
		}
	}

	metrics.RecordMatch(metrics.KindRule, false, nil)
	log.Debug("no rule matched")
	return Decision{}, nil
}

type document struct {
	Rules []Rule `yaml:"rules"`
}

// Decode reads a YAML rules document:
//
//	rules:
//	  - pattern: "**.corp.example.com"
//	    profile: chrome/work
//	  - pattern: youtube.com
//	    profile: firefox/default
//	    incognito: true
//
// Unknown fields are rejected. An empty document yields no rules.
func Decode(r io.Reader) ([]Rule, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	return doc.Rules, nil
}
