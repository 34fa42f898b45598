// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tablemerge joins, stacks and deduplicates tables
// stored in CSV files, merging their metadata.
package main

import (
	"os"

	"cogentcore.org/tablemerge/base/logx"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by the commands of one run.
type app struct {
	// flags has the values bound to the command line flags.
	flags *Config

	// cfg is the effective configuration: the defaults, then the
	// config file, then the flags that were set.
	cfg *Config

	configFile   string
	vv, v, quiet bool
}

func newRootCmd() *cobra.Command {
	a := &app{flags: DefaultConfig()}
	root := &cobra.Command{
		Use:           "tablemerge",
		Short:         "Join, stack and deduplicate tables stored in CSV files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "TOML config file")
	pf.BoolVar(&a.vv, "vv", false, "very verbose: show debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "verbose: show info messages")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "quiet: only show errors")
	a.flags.AddFlags(pf)
	a.addCommands(root)
	return root
}

// configure sets the log level and the effective configuration.
// A leading ~ in the config and output file names is the home directory.
func (a *app) configure(cmd *cobra.Command) error {
	logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.quiet)
	a.cfg = DefaultConfig()
	if a.configFile != "" {
		fn, err := homedir.Expand(a.configFile)
		if err != nil {
			return logError(err)
		}
		if err := a.cfg.OpenConfig(fn); err != nil {
			return logError(err)
		}
	}
	a.cfg.Apply(a.flags, cmd.Flags())
	if a.cfg.Output != "" {
		out, err := homedir.Expand(a.cfg.Output)
		if err != nil {
			return logError(err)
		}
		a.cfg.Output = out
	}
	return nil
}
