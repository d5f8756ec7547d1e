/*
 * root.go, part of molrx.
 *
 *
 * Copyright 2026 The molrx authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	chem "github.com/molrx/molrx"
	"github.com/molrx/molrx/balance"
	"github.com/molrx/molrx/chemjson"
	"github.com/molrx/molrx/reaction"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// RootOptions holds the flags that are not configuration.
type RootOptions struct {
	ConfigPath  string
	OutputPath  string
	WithOptions bool //the input starts with a chemjson.Options line
	Info        bool //write a chemjson.Info summary to stderr
}

func newRootCommand() *cobra.Command {
	opts := &RootOptions{}
	v := newViper()
	cmd := &cobra.Command{
		Use:           "molrx",
		Short:         "molrx applies reaction types to molecules",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	cmd.AddCommand(newRunCommand(v, opts), newRulesCommand())
	return cmd
}

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "list the reaction types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range reaction.All() {
				fmt.Fprintf(w, "%s\t%s\n", r.Name(), r.Mechanism().Description)
			}
			return w.Flush()
		},
	}
}

func newRunCommand(v *viper.Viper, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [input]",
		Short: "apply reaction types to the molecules in input (default stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, opts.ConfigPath)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			out := cmd.OutOrStdout()
			if opts.OutputPath != "" {
				f, err := os.Create(opts.OutputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			info, err := run(cmd.Context(), cfg, opts, in, out, log)
			if opts.Info && info != nil {
				if err2 := info.Send(cmd.ErrOrStderr()); err2 != nil && err == nil {
					err = err2
				}
			}
			return err
		},
	}
	f := cmd.Flags()
	f.StringSlice("rules", nil, "reaction types to run (default all)")
	f.Bool("active-centers", false, "take the ReactiveCenter flags of the input as the active centers")
	f.Bool("balance", false, "balance the reactions with H2O, H+ and H2")
	f.Bool("compress", false, "zstd-compress the output")
	f.StringVarP(&opts.OutputPath, "output", "o", "", "output file (default stdout)")
	f.BoolVar(&opts.WithOptions, "with-options", false, "the input starts with an options line, which overrides the configuration")
	f.BoolVar(&opts.Info, "info", false, "write a summary to stderr")
	for key, flag := range map[string]string{"rules": "rules", "active_centers_set": "active-centers", "balance": "balance", "compress": "compress"} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}
	return cmd
}

// run reads molecules from in until the end of the stream, applies every rule of
// cfg to each one and writes the reactions to out. A failed rule is logged and
// recorded in the returned Info, and the run goes on with the next one.
func run(ctx context.Context, cfg *Config, opts *RootOptions, in io.Reader, out io.Writer, log *zap.Logger) (*chemjson.Info, error) {
	D, err := chemjson.NewDecoder(in)
	if err != nil {
		return nil, err
	}
	defer D.Close()
	if opts.WithOptions {
		o, err := D.DecodeOptions()
		if err != nil {
			return nil, err
		}
		cfg.ActiveCentersSet = o.ActiveCentersSet
		cfg.Balance = o.Balance
		cfg.Compress = o.Compress
		if len(o.Rules) > 0 {
			cfg.Rules = o.Rules
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	rules := make([]*reaction.Rule, len(cfg.Rules))
	for i, name := range cfg.Rules {
		rules[i], err = reaction.New(name, reaction.WithLogger(log), reaction.WithActiveCenters(cfg.ActiveCentersSet))
		if err != nil {
			return nil, err
		}
	}
	E, err := chemjson.NewEncoder(out, cfg.Compress)
	if err != nil {
		return nil, err
	}
	B := &balance.Balancer{MaxCoefficient: cfg.MaxCoefficient, Logger: log}
	info := &chemjson.Info{ReactionsPerRule: make(map[string]int)}
	for {
		if err := ctx.Err(); err != nil {
			return info, err
		}
		mol, err := D.DecodeMolecule()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return info, err
		}
		n := 0
		for _, rule := range rules {
			set, err := rule.Initiate(chem.MoleculeSet{mol}, nil)
			if err != nil {
				log.Warn("rule failed", zap.String("rule", rule.Name()), zap.String("molecule", mol.Name), zap.Error(err))
				info.Errors = append(info.Errors, chemjson.NewError("process", rule.Name(), err))
				continue
			}
			if cfg.Balance {
				for _, r := range set.Reactions() {
					if err := B.Balance(r); err != nil {
						log.Warn("reaction not balanced", zap.String("reaction", r.ID), zap.Error(err))
					}
				}
			}
			if err := E.EncodeReactionSet(set); err != nil {
				return info, err
			}
			n += set.Len()
			info.ReactionsPerRule[rule.Name()] += set.Len()
		}
		info.Molecules++
		info.ReactionsPerMolecule = append(info.ReactionsPerMolecule, n)
		log.Info("molecule done", zap.String("molecule", mol.Name), zap.Int("reactions", n))
	}
	return info, E.Close()
}
