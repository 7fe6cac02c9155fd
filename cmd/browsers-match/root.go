// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"github.com/spf13/cobra"

	"github.com/jongio/browsers-core/cliout"
	"github.com/jongio/browsers-core/logutil"
	"github.com/jongio/browsers-core/version"
)

const (
	envRules    = "BROWSERS_RULES"
	envProfiles = "BROWSERS_PROFILES"
)

type rootFlags struct {
	debug          bool
	structuredLogs bool
	output         string
	noColor        bool
	metrics        bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	info := version.New("browsers-match")
	info.Version = Version
	info.BuildDate = BuildDate
	info.GitCommit = GitCommit

	root := &cobra.Command{
		Use:   "browsers-match",
		Short: "Evaluate link routing patterns, rules and profile restrictions",
		Long: `browsers-match evaluates the URL patterns used to route links to browser
profiles. Patterns look like URLs with glob wildcards, for example
"**.example.com/docs/**". Missing parts default to wildcards.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(flags.debug, flags.structuredLogs)
			if flags.noColor {
				cliout.NoColor()
			}
			return cliout.SetFormat(flags.output)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !flags.metrics {
				return nil
			}
			return printMetrics()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	pf.BoolVar(&flags.structuredLogs, "structured-logs", false, "Write logs as JSON")
	pf.StringVarP(&flags.output, "output", "o", "default", "Output format (default, json)")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&flags.metrics, "metrics", false, "Print match metrics after the command")

	root.AddCommand(
		newNormalizeCmd(),
		newExplainCmd(),
		newMatchCmd(),
		newRouteCmd(),
		newChooseCmd(),
		newOpenCmd(),
		version.NewCommand(info),
		newMetadataCmd(func() *cobra.Command { return root }),
	)

	return root
}
