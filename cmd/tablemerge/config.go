// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"cogentcore.org/tablemerge/base/metadata"
	"cogentcore.org/tablemerge/tensor/table"
	"cogentcore.org/tablemerge/tensor/table/merge"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Config is the configuration of the tablemerge tool, which can be
// loaded from a TOML file with the --config flag. Flags that are set
// on the command line override the values from the file.
type Config struct {
	// Delim is the delimiter of the input files: tab, comma, space or detect.
	Delim string `toml:"delim" desc:"delimiter of the input files: tab, comma, space or detect" def:"detect"`

	// OutDelim is the delimiter of the output file.
	OutDelim string `toml:"out_delim" desc:"delimiter of the output file: tab, comma or space" def:"comma"`

	// Output is the output file, or standard output if empty.
	Output string `toml:"output" desc:"output file, standard output if empty"`

	// Meta reads and writes the table metadata and column attributes
	// in a <file>.meta.yaml file next to each table file.
	Meta bool `toml:"meta" desc:"read and write <file>.meta.yaml metadata files" def:"true"`

	// Conflicts is the policy for conflicting metadata: silent, warn or error.
	Conflicts string `toml:"conflicts" desc:"policy for conflicting metadata: silent, warn or error" def:"warn"`

	// JoinType is the join type: inner, outer, left, right or exact.
	// Empty means inner for join and outer for the stacks.
	JoinType string `toml:"join_type" desc:"join type: inner, outer, left, right or exact"`

	// UniqueName is the template for renaming colliding column names.
	UniqueName string `toml:"unique_name" desc:"template for renaming colliding column names" def:"{col_name}_{table_name}"`

	// TableNames are the table names used in UniqueName.
	TableNames []string `toml:"table_names" desc:"table names used in the unique name template"`

	// Keys are the key column names of join and unique.
	Keys []string `toml:"keys" desc:"key column names of join and unique"`

	// Keep selects the row kept by unique: first, last or none.
	Keep string `toml:"keep" desc:"row kept by unique for each key: first, last or none" def:"first"`

	// Silent drops masked key columns in unique instead of failing.
	Silent bool `toml:"silent" desc:"drop masked key columns in unique instead of failing"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Delim:      "detect",
		OutDelim:   "comma",
		Meta:       true,
		Conflicts:  "warn",
		UniqueName: merge.DefaultUniqueName,
		Keep:       "first",
	}
}

// OpenConfig reads the configuration from the given TOML file
// on top of the current values. Unknown keys are an error.
func (cfg *Config) OpenConfig(filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	dec := toml.NewDecoder(fp).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config file %q: %w", filename, err)
	}
	return nil
}

// AddFlags adds the flags for the configuration fields, with the
// current values as defaults.
func (cfg *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&cfg.Delim, "delim", "d", cfg.Delim, "delimiter of the input files: tab, comma, space or detect")
	fs.StringVar(&cfg.OutDelim, "out-delim", cfg.OutDelim, "delimiter of the output file: tab, comma or space")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output file, standard output if empty")
	fs.BoolVar(&cfg.Meta, "meta", cfg.Meta, "read and write <file>.meta.yaml metadata files")
	fs.StringVar(&cfg.Conflicts, "conflicts", cfg.Conflicts, "policy for conflicting metadata: silent, warn or error")
	fs.StringVarP(&cfg.JoinType, "join-type", "j", cfg.JoinType, "join type: inner, outer, left, right or exact")
	fs.StringVar(&cfg.UniqueName, "unique-name", cfg.UniqueName, "template for renaming colliding column names")
	fs.StringSliceVar(&cfg.TableNames, "table-names", cfg.TableNames, "table names used in the unique name template")
	fs.StringSliceVarP(&cfg.Keys, "keys", "k", cfg.Keys, "key column names of join and unique")
	fs.StringVar(&cfg.Keep, "keep", cfg.Keep, "row kept by unique for each key: first, last or none")
	fs.BoolVar(&cfg.Silent, "silent", cfg.Silent, "drop masked key columns in unique instead of failing")
}

// Apply sets the fields of cfg for every flag that was changed
// on the command line, taking the values from the flag config.
func (cfg *Config) Apply(flags *Config, fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "delim":
			cfg.Delim = flags.Delim
		case "out-delim":
			cfg.OutDelim = flags.OutDelim
		case "output":
			cfg.Output = flags.Output
		case "meta":
			cfg.Meta = flags.Meta
		case "conflicts":
			cfg.Conflicts = flags.Conflicts
		case "join-type":
			cfg.JoinType = flags.JoinType
		case "unique-name":
			cfg.UniqueName = flags.UniqueName
		case "table-names":
			cfg.TableNames = flags.TableNames
		case "keys":
			cfg.Keys = flags.Keys
		case "keep":
			cfg.Keep = flags.Keep
		case "silent":
			cfg.Silent = flags.Silent
		}
	})
}

func (cfg *Config) delims() (in, out table.Delims, err error) {
	if err = in.SetString(cfg.Delim); err != nil {
		return
	}
	err = out.SetString(cfg.OutDelim)
	if out == table.Detect {
		out = table.Comma
	}
	return
}

func (cfg *Config) policy() (metadata.Policies, error) {
	var p metadata.Policies
	err := p.SetString(cfg.Conflicts)
	return p, err
}

func (cfg *Config) joinType(def merge.JoinTypes) (merge.JoinTypes, error) {
	if cfg.JoinType == "" {
		return def, nil
	}
	jt := def
	err := jt.SetString(cfg.JoinType)
	return jt, err
}

// StackOptions returns the options for the stack commands.
func (cfg *Config) StackOptions() (*merge.StackOptions, error) {
	opts := merge.DefaultStackOptions()
	var err error
	if opts.JoinType, err = cfg.joinType(merge.Outer); err != nil {
		return nil, err
	}
	if opts.Conflicts, err = cfg.policy(); err != nil {
		return nil, err
	}
	opts.UniqueName = cfg.UniqueName
	opts.TableNames = cfg.TableNames
	return opts, nil
}

// JoinOptions returns the options for the join command.
func (cfg *Config) JoinOptions() (*merge.JoinOptions, error) {
	opts := merge.DefaultJoinOptions()
	var err error
	if opts.JoinType, err = cfg.joinType(merge.Inner); err != nil {
		return nil, err
	}
	if opts.Conflicts, err = cfg.policy(); err != nil {
		return nil, err
	}
	opts.Keys = cfg.Keys
	opts.UniqueName = cfg.UniqueName
	opts.TableNames = cfg.TableNames
	return opts, nil
}

// UniqueOptions returns the options for the unique command.
func (cfg *Config) UniqueOptions() (*merge.UniqueOptions, error) {
	opts := &merge.UniqueOptions{Keys: cfg.Keys, Silent: cfg.Silent}
	if err := opts.Keep.SetString(cfg.Keep); err != nil {
		return nil, err
	}
	return opts, nil
}
