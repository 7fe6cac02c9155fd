// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/browsers-core/cliout"
	"github.com/jongio/browsers-core/metrics"
	"github.com/jongio/browsers-core/urlrule"
	"github.com/jongio/browsers-core/urlutil"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <pattern>",
		Short: "Print a pattern with its missing parts filled in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := struct {
				Pattern    string `json:"pattern"`
				Normalized string `json:"normalized"`
			}{
				Pattern:    args[0],
				Normalized: urlrule.Normalize(args[0]),
			}
			return cliout.Print(result, func() {
				cliout.Plain("%s", result.Normalized)
			})
		},
	}
}

func newExplainCmd() *cobra.Command {
	var authority bool
	cmd := &cobra.Command{
		Use:   "explain <pattern>",
		Short: "Show the parts a pattern is compiled from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := urlrule.Compile(args[0], patternOptions(authority)...)
			metrics.RecordCompile(metrics.KindRule, err)
			if err != nil {
				return err
			}

			m := c.Matcher()
			return cliout.Print(m, func() {
				cliout.Header(m.Pattern)
				for _, f := range urlrule.Fields {
					value := m.Get(f)
					if value == "" {
						value = "(any)"
					}
					cliout.Label(f.String(), value)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&authority, "authority", false, "Split user, password and port out of the host")
	return cmd
}

type matchResult struct {
	URL     string          `json:"url"`
	Matched bool            `json:"matched"`
	Fields  map[string]bool `json:"fields,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func newMatchCmd() *cobra.Command {
	var (
		authority bool
		fields    bool
	)
	cmd := &cobra.Command{
		Use:   "match <pattern> <url>...",
		Short: "Test URLs against a pattern",
		Long: `Test one or more URLs against a pattern. The command fails when any URL
cannot be evaluated, for example because it has no host.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := urlrule.Compile(args[0], patternOptions(authority)...)
			metrics.RecordCompile(metrics.KindRule, err)
			if err != nil {
				return err
			}

			results := make([]matchResult, 0, len(args)-1)
			var errs []error
			for _, raw := range args[1:] {
				res, err := evaluate(c, raw, fields)
				metrics.RecordMatch(metrics.KindRule, res.Matched, err)
				if err != nil {
					errs = append(errs, err)
				}
				results = append(results, res)
			}

			if err := cliout.Print(results, func() { printMatchResults(c, results, fields) }); err != nil {
				return err
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d of %d URLs could not be evaluated: %w", len(errs), len(results), errors.Join(errs...))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&authority, "authority", false, "Split user, password and port out of the host")
	cmd.Flags().BoolVar(&fields, "fields", false, "Show the result of every part")
	return cmd
}

func evaluate(c *urlrule.Compiled, raw string, withFields bool) (matchResult, error) {
	res := matchResult{URL: raw}

	u, err := urlutil.Parse(raw)
	if err != nil {
		err = &urlrule.URLError{URL: raw, Err: urlrule.ErrInvalidURL, Cause: err}
		res.Error = err.Error()
		return res, err
	}
	parts, err := urlrule.Decompose(u)
	if err != nil {
		res.Error = err.Error()
		return res, err
	}

	res.Matched = c.MatchParts(parts)
	if withFields {
		res.Fields = make(map[string]bool, len(urlrule.Fields))
		for f, ok := range c.MatchFields(parts) {
			res.Fields[f.String()] = ok
		}
	}
	return res, nil
}

func printMatchResults(c *urlrule.Compiled, results []matchResult, withFields bool) {
	cliout.Info("pattern %s", c.String())

	headers := []string{"URL", "RESULT"}
	if withFields {
		for _, f := range urlrule.Fields {
			headers = append(headers, f.String())
		}
	}

	rows := make([]cliout.TableRow, 0, len(results))
	for _, res := range results {
		row := cliout.TableRow{"URL": res.URL}
		switch {
		case res.Error != "":
			row["RESULT"] = "invalid"
		case res.Matched:
			row["RESULT"] = "match"
		default:
			row["RESULT"] = "no match"
		}
		for name, ok := range res.Fields {
			row[name] = yesNo(ok)
		}
		rows = append(rows, row)
	}
	cliout.Table(headers, rows)

	for _, res := range results {
		if res.Error != "" {
			cliout.Warning("%s", res.Error)
		}
	}
}

func patternOptions(authority bool) []urlrule.Option {
	if authority {
		return []urlrule.Option{urlrule.WithAuthority()}
	}
	return nil
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
