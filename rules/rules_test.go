// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rules

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/browsers-core/cache"
	"github.com/jongio/browsers-core/logutil"
	"github.com/jongio/browsers-core/urlrule"
)

func boolPtr(b bool) *bool { return &b }

func testRules() []Rule {
	return []Rule{
		{Pattern: "**.corp.example.com", Profile: "chrome/work"},
		{Pattern: "youtube.com", Profile: "firefox/default", Incognito: true},
		{Pattern: "app.company.xyz/v2/**", Profile: "edge/app"},
		{Pattern: "**.example.com", Profile: "firefox/default"},
	}
}

func TestRoute(t *testing.T) {
	set, err := Compile(testRules())
	require.NoError(t, err)
	assert.Equal(t, 4, set.Len())

	tests := []struct {
		name      string
		url       string
		wantMatch bool
		wantIndex int
		wantProf  string
	}{
		{"first rule wins over later broader rule", "https://wiki.corp.example.com/page", true, 0, "chrome/work"},
		{"incognito rule", "https://youtube.com/watch?v=1", true, 1, "firefox/default"},
		{"path rule", "https://app.company.xyz/v2/items", true, 2, "edge/app"},
		{"path rule miss falls through", "https://app.company.xyz/v1/items", false, 0, ""},
		{"broad rule", "https://www.example.com/", true, 3, "firefox/default"},
		{"no rule", "https://golang.org/", false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := set.Route(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMatch, d.Matched)
			if tt.wantMatch {
				assert.Equal(t, tt.wantIndex, d.Index)
				assert.Equal(t, tt.wantProf, d.Rule.Profile)
			}
		})
	}

	d, err := set.Route("https://youtube.com/")
	require.NoError(t, err)
	assert.True(t, d.Rule.Incognito)
}

func TestRoute_DisabledRulesSkipped(t *testing.T) {
	list := []Rule{
		{Pattern: "example.com", Profile: "chrome/a", Enabled: boolPtr(false)},
		{Pattern: "example.com", Profile: "chrome/b", Enabled: boolPtr(true)},
	}
	set, err := Compile(list)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())

	d, err := set.Route("https://example.com/")
	require.NoError(t, err)
	assert.True(t, d.Matched)
	assert.Equal(t, 1, d.Index, "index refers to the original list")
	assert.Equal(t, "chrome/b", d.Rule.Profile)
}

func TestRoute_URLErrors(t *testing.T) {
	set, err := Compile(testRules())
	require.NoError(t, err)

	_, err = set.Route("not a url")
	assert.ErrorIs(t, err, urlrule.ErrInvalidURL)

	_, err = set.Route("mailto:someone@example.com")
	assert.ErrorIs(t, err, urlrule.ErrMissingHost)
}

func TestCompile_ReportsEveryInvalidRule(t *testing.T) {
	list := []Rule{
		{Pattern: "example.com/[", Profile: "chrome/a"},
		{Pattern: "ok.example.com", Profile: "chrome/b"},
		{Pattern: "  ", Profile: "chrome/c"},
		{Pattern: "other.example.com", Profile: ""},
		{Pattern: "https:///nohost", Profile: "chrome/d"},
		{Pattern: "example.com/[", Profile: "chrome/e", Enabled: boolPtr(false)},
	}

	set, err := Compile(list)
	require.Error(t, err)
	assert.Nil(t, set)

	assert.ErrorIs(t, err, urlrule.ErrInvalidGlob)
	assert.ErrorIs(t, err, ErrEmptyPattern)
	assert.ErrorIs(t, err, ErrMissingProfile)
	assert.ErrorIs(t, err, urlrule.ErrMalformedPattern)

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	var indexes []int
	for _, e := range joined.Unwrap() {
		var re *RuleError
		require.ErrorAs(t, e, &re)
		indexes = append(indexes, re.Index)
	}
	assert.Equal(t, []int{0, 2, 3, 4}, indexes)
}

func TestCompile_LogsInvalidRules(t *testing.T) {
	var buf bytes.Buffer
	logutil.SetupLoggerWithWriter(&buf, false, false)
	defer logutil.SetupLogger(false, false)

	_, err := Compile([]Rule{{Pattern: "example.com/[", Profile: "chrome/a"}})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "invalid rule")
	assert.Contains(t, out, "component=rules")
	assert.Contains(t, out, "rule=0")
}

func TestCompile_SharedCache(t *testing.T) {
	c := cache.NewMatchers(cache.Options{})
	list := []Rule{
		{Pattern: "example.com", Profile: "chrome/a"},
		{Pattern: "*://example.com", Profile: "chrome/b"},
	}

	_, err := Compile(list, WithCache(c))
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.GetStats().Hits)
}

func TestRuleError(t *testing.T) {
	err := &RuleError{Index: 2, Pattern: "x", Err: ErrMissingProfile}
	assert.Equal(t, `rule 2 ("x"): rule has no target profile`, err.Error())
	assert.ErrorIs(t, err, ErrMissingProfile)
}

func TestDecode(t *testing.T) {
	doc := `
rules:
  - pattern: "**.corp.example.com"
    profile: chrome/work
  - pattern: youtube.com
    profile: firefox/default
    incognito: true
  - pattern: old.example.com
    profile: chrome/work
    enabled: false
`
	list, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, Rule{Pattern: "**.corp.example.com", Profile: "chrome/work"}, list[0])
	assert.True(t, list[1].Incognito)
	assert.True(t, list[1].IsEnabled())
	assert.False(t, list[2].IsEnabled())
}

func TestDecode_Empty(t *testing.T) {
	list, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("rules:\n  - pattern: a.com\n    browser: chrome\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse rules")
}
