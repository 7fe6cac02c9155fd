// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/browsers-core/cliout"
	"github.com/jongio/browsers-core/logutil"
)

// commandMetadata describes the command tree for shell integrations and docs.
type commandMetadata struct {
	SchemaVersion        string           `json:"schemaVersion"`
	Commands             []commandInfo    `json:"commands"`
	EnvironmentVariables []envVarMetadata `json:"environmentVariables"`
}

type commandInfo struct {
	Name        []string       `json:"name"`
	Short       string         `json:"short"`
	Usage       string         `json:"usage,omitempty"`
	Flags       []flagMetadata `json:"flags,omitempty"`
	Subcommands []commandInfo  `json:"subcommands,omitempty"`
}

type flagMetadata struct {
	Name        string `json:"name"`
	Shorthand   string `json:"shorthand,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
}

type envVarMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var environmentVariables = []envVarMetadata{
	{Name: logutil.EnvDebug, Description: "Enable debug logging"},
	{Name: envRules, Description: "Rules file used when --rules is not given"},
	{Name: envProfiles, Description: "Profiles file used when --profiles is not given"},
}

// newMetadataCmd prints the command tree as JSON. rootProvider is called at
// run time so the tree is complete.
func newMetadataCmd(rootProvider func() *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "metadata",
		Short:  "Print command metadata as JSON",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliout.PrintJSON(buildMetadata(rootProvider()))
		},
	}
}

func buildMetadata(root *cobra.Command) commandMetadata {
	return commandMetadata{
		SchemaVersion:        "1.0",
		Commands:             describeChildren(root, nil),
		EnvironmentVariables: environmentVariables,
	}
}

func describeChildren(cmd *cobra.Command, path []string) []commandInfo {
	var out []commandInfo
	for _, child := range cmd.Commands() {
		if child.Hidden || child.Name() == "help" || child.Name() == "completion" {
			continue
		}
		out = append(out, describe(child, path))
	}
	return out
}

func describe(cmd *cobra.Command, parent []string) commandInfo {
	name := append(append([]string{}, parent...), cmd.Name())
	info := commandInfo{
		Name:  name,
		Short: cmd.Short,
		Usage: cmd.UseLine(),
	}

	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		info.Flags = append(info.Flags, flagMetadata{
			Name:        f.Name,
			Shorthand:   f.Shorthand,
			Description: f.Usage,
			Type:        f.Value.Type(),
			Default:     f.DefValue,
		})
	})

	info.Subcommands = describeChildren(cmd, name)
	return info
}
