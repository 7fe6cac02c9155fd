// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jongio/browsers-core/cache"
	"github.com/jongio/browsers-core/cliout"
	"github.com/jongio/browsers-core/logutil"
	"github.com/jongio/browsers-core/profiles"
	"github.com/jongio/browsers-core/rules"
)

type routeResult struct {
	URL      string         `json:"url"`
	Decision rules.Decision `json:"decision"`
	Error    string         `json:"error,omitempty"`
}

func newRouteCmd() *cobra.Command {
	var rulesFile string
	cmd := &cobra.Command{
		Use:   "route <url>",
		Short: "Find the rule that routes a link",
		Long: `Find the first rule that matches a link. Rules are read from --rules or
from the file named by ` + envRules + `. A link that cannot be evaluated is
reported and would open the chooser.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := compileRules(rulesFile, cache.NewMatchers(cache.Options{}))
			if err != nil {
				return err
			}

			res := route(set, args[0])
			return cliout.Print(res, func() { printRoute(res) })
		},
	}
	cmd.Flags().StringVar(&rulesFile, "rules", "", "Rules file (default $"+envRules+")")
	return cmd
}

func newChooseCmd() *cobra.Command {
	var profilesFile string
	cmd := &cobra.Command{
		Use:   "choose <url>",
		Short: "List the profiles offered for a link",
		Long: `List the profiles the chooser offers for a link, in display order.
Profiles are read from --profiles or from the file named by ` + envProfiles + `.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := newChooser(profilesFile, cache.NewMatchers(cache.Options{}))
			if err != nil {
				return err
			}

			candidates := ch.Candidates(args[0])
			return cliout.Print(candidates, func() { printCandidates(candidates) })
		},
	}
	cmd.Flags().StringVar(&profilesFile, "profiles", "", "Profiles file (default $"+envProfiles+")")
	return cmd
}

type openResult struct {
	URL        string               `json:"url"`
	Decision   rules.Decision       `json:"decision"`
	Candidates []profiles.Candidate `json:"candidates,omitempty"`
	Error      string               `json:"error,omitempty"`
}

func newOpenCmd() *cobra.Command {
	var rulesFile, profilesFile string
	cmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Route a link, falling back to the chooser",
		Long: `Route a link the way the link handler does: the first matching rule wins,
otherwise the chooser's profiles are listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matchers := cache.NewMatchers(cache.Options{})
			set, err := compileRules(rulesFile, matchers)
			if err != nil {
				return err
			}
			ch, err := newChooser(profilesFile, matchers)
			if err != nil {
				return err
			}

			r := route(set, args[0])
			res := openResult{URL: r.URL, Decision: r.Decision, Error: r.Error}
			if !res.Decision.Matched {
				res.Candidates = ch.Candidates(args[0])
			}

			stats := matchers.GetStats()
			logutil.Debug("matcher cache", "entries", matchers.Len(), "hits", stats.Hits, "misses", stats.Misses)

			return cliout.Print(res, func() {
				printRoute(routeResult{URL: res.URL, Decision: res.Decision, Error: res.Error})
				if !res.Decision.Matched {
					printCandidates(res.Candidates)
				}
			})
		},
	}
	cmd.Flags().StringVar(&rulesFile, "rules", "", "Rules file (default $"+envRules+")")
	cmd.Flags().StringVar(&profilesFile, "profiles", "", "Profiles file (default $"+envProfiles+")")
	return cmd
}

func compileRules(flagValue string, matchers *cache.Matchers) (*rules.Set, error) {
	path, err := resolvePath(flagValue, envRules, "rules")
	if err != nil {
		return nil, err
	}
	list, err := loadRules(path)
	if err != nil {
		return nil, err
	}
	return rules.Compile(list, rules.WithCache(matchers))
}

func newChooser(flagValue string, matchers *cache.Matchers) (*profiles.Chooser, error) {
	path, err := resolvePath(flagValue, envProfiles, "profiles")
	if err != nil {
		return nil, err
	}
	list, err := loadProfiles(path)
	if err != nil {
		return nil, err
	}
	return profiles.NewChooser(list, profiles.WithCache(matchers))
}

// route evaluates raw against set. A link that cannot be evaluated is a
// result, not a failure: the caller falls back to the chooser.
func route(set *rules.Set, raw string) routeResult {
	res := routeResult{URL: raw}
	d, err := set.Route(raw)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Decision = d
	return res
}

func printRoute(res routeResult) {
	switch {
	case res.Error != "":
		cliout.Warning("link cannot be evaluated, the chooser is shown: %s", res.Error)
	case res.Decision.Matched:
		r := res.Decision.Rule
		cliout.Success("rule %d matched", res.Decision.Index)
		cliout.Label("Pattern", r.Pattern)
		cliout.Label("Profile", r.Profile)
		cliout.Label("Incognito", strconv.FormatBool(r.Incognito))
	default:
		cliout.Info("no rule matched, the chooser is shown")
	}
}

func printCandidates(candidates []profiles.Candidate) {
	if len(candidates) == 0 {
		cliout.Info("no profiles to offer")
		return
	}

	rows := make([]cliout.TableRow, 0, len(candidates))
	for _, c := range candidates {
		status := ""
		switch {
		case c.Matched:
			status = "matched"
		case c.Restricted:
			status = "restricted"
		}
		rows = append(rows, cliout.TableRow{
			"PROFILE": c.Profile.Key(),
			"NAME":    c.Profile.Name,
			"STATUS":  status,
		})
	}
	cliout.Table([]string{"PROFILE", "NAME", "STATUS"}, rows)
}
