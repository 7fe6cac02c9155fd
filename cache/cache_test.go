// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cache

import (
	"errors"
	"sync"
	"testing"

	"github.com/jongio/browsers-core/urlrule"
)

func TestNewMatchers(t *testing.T) {
	m := NewMatchers(Options{MaxEntries: 10})
	if m == nil {
		t.Fatal("NewMatchers() returned nil")
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}

func TestGet_CompilesOnce(t *testing.T) {
	m := NewMatchers(Options{})

	first, err := m.Get("example.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	// Equivalent spelling of the same pattern shares the entry.
	second, err := m.Get("*://example.com/**?**#*")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if first != second {
		t.Error("Get() compiled equivalent patterns twice")
	}

	stats := m.GetStats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Errors != 0 {
		t.Errorf("GetStats() = %+v, want 1 hit, 1 miss", stats)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestGet_ErrorsNotCached(t *testing.T) {
	m := NewMatchers(Options{})

	for i := 0; i < 2; i++ {
		_, err := m.Get("example.com/[")
		if !errors.Is(err, urlrule.ErrInvalidGlob) {
			t.Fatalf("Get() error = %v, want ErrInvalidGlob", err)
		}
	}

	stats := m.GetStats()
	if stats.Errors != 2 || stats.Misses != 2 {
		t.Errorf("GetStats() = %+v, want 2 errors, 2 misses", stats)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}

func TestGet_Authority(t *testing.T) {
	m := NewMatchers(Options{Authority: true})

	c, err := m.Get("example.com:8080")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !c.Matches("http://example.com:8080/") {
		t.Error("expected port-qualified pattern to match with Authority enabled")
	}
}

func TestGet_MaxEntries(t *testing.T) {
	m := NewMatchers(Options{MaxEntries: 1})

	if _, err := m.Get("a.example.com"); err != nil {
		t.Fatal(err)
	}
	c, err := m.Get("b.example.com")
	if err != nil {
		t.Fatal(err)
	}
	if c == nil {
		t.Fatal("Get() returned nil matcher when cache is full")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestInvalidateAndClear(t *testing.T) {
	m := NewMatchers(Options{})
	for _, p := range []string{"a.example.com", "b.example.com"} {
		if _, err := m.Get(p); err != nil {
			t.Fatal(err)
		}
	}

	m.Invalidate("a.example.com")
	if m.Len() != 1 {
		t.Errorf("Len() after Invalidate = %d, want 1", m.Len())
	}

	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", m.Len())
	}
}

func TestConcurrentAccess(t *testing.T) {
	m := NewMatchers(Options{})
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := m.Get("**.example.com")
			if err != nil {
				t.Errorf("Get() error = %v", err)
				return
			}
			if !c.Matches("https://www.example.com/") {
				t.Error("expected match")
			}
		}()
	}

	wg.Wait()

	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
	stats := m.GetStats()
	if stats.Hits+stats.Misses != 20 {
		t.Errorf("Hits+Misses = %d, want 20", stats.Hits+stats.Misses)
	}
}
