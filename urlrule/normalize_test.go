// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package urlrule

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"host only", "example.com", "*://example.com/**?**#*"},
		{"explicit scheme", "https://example.com", "https://example.com/**?**#*"},
		{"explicit wildcard scheme", "*://example.com", "*://example.com/**?**#*"},
		{"with path", "app.company.xyz/v2/**", "*://app.company.xyz/v2/**?**#*"},
		{"root path", "example.com/", "*://example.com/?**#*"},
		{"empty query", "example.com/?", "*://example.com/?#*"},
		{"empty query and fragment", "*://example.com/?#", "*://example.com/?#"},
		{"fragment without path or query", "example.com#top", "*://example.com/**?**#top"},
		{"query without path", "example.com?a=1", "*://example.com/**?a=1#*"},
		{"query without path with fragment", "example.com?a=1#top", "*://example.com/**?a=1#top"},
		{"path and fragment", "example.com/docs#top", "*://example.com/docs?**#top"},
		{"question mark inside fragment", "example.com/#a?b", "*://example.com/?**#a?b"},
		{"scheme delimiter inside query", "example.com/r?u=https://x.y", "*://example.com/r?u=https://x.y#*"},
		{"slash inside query", "example.com?next=/home", "*://example.com/**?next=/home#*"},
		{"wildcard host", "**.example.com", "*://**.example.com/**?**#*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"example.com",
		"*.example.com",
		"https://example.com/",
		"example.com/?",
		"example.com#frag",
		"example.com?q=1",
		"example.com/a/b?c=d#e",
		"*://example.com/?#",
		"ftp://files.example.com/pub/**",
		"user:pw@example.com:8080",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalize_AlwaysExtractable(t *testing.T) {
	// Every combination of present and omitted parts.
	schemes := []string{"", "https://", "*://"}
	paths := []string{"", "/", "/docs/**"}
	queries := []string{"", "?", "?a=1&**"}
	fragments := []string{"", "#", "#top"}

	for _, s := range schemes {
		for _, p := range paths {
			for _, q := range queries {
				for _, f := range fragments {
					raw := s + "example.com" + p + q + f
					m, err := Extract(Normalize(raw))
					if err != nil {
						t.Errorf("Extract(Normalize(%q)) error: %v", raw, err)
						continue
					}
					if m.Hostname != "example.com" {
						t.Errorf("Extract(Normalize(%q)).Hostname = %q", raw, m.Hostname)
					}
					if m.Scheme == "" || m.Path == "" {
						t.Errorf("Extract(Normalize(%q)) left scheme or path empty: %+v", raw, m)
					}
				}
			}
		}
	}
}
