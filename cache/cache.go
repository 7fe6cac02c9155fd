// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cache keeps compiled URL matchers for the lifetime of a process so
// that a pattern shared by several rules or profiles is compiled once.
package cache

import (
	"sync"

	"github.com/jongio/browsers-core/urlrule"
)

// Options configures a Matchers cache.
type Options struct {
	// Authority compiles patterns with urlrule.WithAuthority.
	Authority bool
	// MaxEntries bounds the cache; zero means unbounded. When full, new
	// patterns are compiled but not stored.
	MaxEntries int
}

// Stats tracks cache hit/miss statistics.
type Stats struct {
	Hits   int
	Misses int
	Errors int
}

// Matchers is a thread-safe cache from pattern to compiled matcher. Patterns
// are keyed by their normalized form; failed compilations are not cached.
type Matchers struct {
	opts    Options
	mu      sync.RWMutex
	entries map[string]*urlrule.Compiled
	statsMu sync.Mutex
	stats   Stats
}

// NewMatchers creates an empty cache.
func NewMatchers(opts Options) *Matchers {
	return &Matchers{
		opts:    opts,
		entries: make(map[string]*urlrule.Compiled),
	}
}

// Get returns the compiled matcher for pattern, compiling it on first use.
func (m *Matchers) Get(pattern string) (*urlrule.Compiled, error) {
	key := urlrule.Normalize(pattern)

	m.mu.RLock()
	c, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		m.recordHit()
		return c, nil
	}

	m.recordMiss()
	c, err := urlrule.Compile(pattern, m.compileOptions()...)
	if err != nil {
		m.recordError()
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.entries[key]; ok {
		return existing, nil
	}
	if m.opts.MaxEntries == 0 || len(m.entries) < m.opts.MaxEntries {
		m.entries[key] = c
	}
	return c, nil
}

// Invalidate removes a specific cache entry.
func (m *Matchers) Invalidate(pattern string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, urlrule.Normalize(pattern))
}

// Clear removes all cache entries.
func (m *Matchers) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]*urlrule.Compiled)
}

// Len returns the number of cached matchers.
func (m *Matchers) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// GetStats returns cache hit/miss statistics.
func (m *Matchers) GetStats() Stats {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	return m.stats
}

func (m *Matchers) compileOptions() []urlrule.Option {
	if m.opts.Authority {
		return []urlrule.Option{urlrule.WithAuthority()}
	}
	return nil
}

func (m *Matchers) recordHit() {
	m.statsMu.Lock()
	m.stats.Hits++
	m.statsMu.Unlock()
}

func (m *Matchers) recordMiss() {
	m.statsMu.Lock()
	m.stats.Misses++
	m.statsMu.Unlock()
}

func (m *Matchers) recordError() {
	m.statsMu.Lock()
	m.stats.Errors++
	m.statsMu.Unlock()
}
