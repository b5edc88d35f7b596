// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/walteh/cleanmyfiles/cmd/cleanmyfiles/commands"
	"github.com/walteh/cleanmyfiles/cmd/cleanmyfiles/opts"
	"github.com/walteh/cleanmyfiles/pkg/config"
	"github.com/walteh/cleanmyfiles/pkg/log"
	"github.com/walteh/cleanmyfiles/pkg/ui"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the global flags. Config values are only overridden by
// flags the user actually set.
type rootFlags struct {
	configFile string
	debug      bool
	batchSize  int
	dryRun     bool
	logFile    string
	quiet      bool
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, f *rootFlags) {
	cmd.PersistentFlags().StringVarP(&f.configFile, "config", "c", "", "config file path (default: .cleanmyfiles.{yaml,yml,hcl,json} in the working directory)")
	cmd.PersistentFlags().BoolVarP(&f.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().IntVar(&f.batchSize, "batch-size", 0, "number of moves between cancellation checks")
	cmd.PersistentFlags().BoolVar(&f.dryRun, "dry-run", false, "plan and report without moving files")
	cmd.PersistentFlags().StringVar(&f.logFile, "log-file", "", "log file path")
	cmd.PersistentFlags().BoolVarP(&f.quiet, "quiet", "q", false, "only write the log file")
}

// newRootCmd builds the command tree. The returned options are filled in
// once a subcommand is about to run.
func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *opts.RootOpts) {
	flags := &rootFlags{}
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "cleanmyfiles",
		Short: "Sort a folder into Documents, Images, Videos, Audio, Archives and Others",
		Long: `cleanmyfiles moves the files of a folder into category subfolders picked by
file extension. Files that would overwrite an existing file are left in place.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["skipSetup"] == "true" {
				return nil
			}
			ctx, err := newRootOpts(cmd.Context(), cmd, flags, o, stdout)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	addRootFlags(rootCmd, flags)

	rootCmd.AddCommand(
		commands.NewOrganizeCmd(o),
		commands.NewSetupCmd(o),
		commands.NewScanCmd(o),
		commands.NewPlanCmd(o),
		commands.NewCategoriesCmd(o),
		newVersionCmd(),
	)

	return rootCmd, o
}

// newRootOpts loads the config, applies flag overrides and opens the log.
// It returns the context carrying the process logger.
func newRootOpts(ctx context.Context, cmd *cobra.Command, flags *rootFlags, o *opts.RootOpts, stdout io.Writer) (context.Context, error) {
	cfg, err := loadConfig(ctx, flags.configFile)
	if err != nil {
		return ctx, errors.Errorf("loading config: %w", err)
	}

	pf := cmd.Flags()
	if pf.Changed("batch-size") {
		cfg.BatchSize = flags.batchSize
	}
	if pf.Changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
	if pf.Changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if pf.Changed("quiet") {
		cfg.Log.Quiet = flags.quiet
	}
	if flags.debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return ctx, errors.Errorf("validating config: %w", err)
	}

	table, err := cfg.Table()
	if err != nil {
		return ctx, errors.Errorf("building category table: %w", err)
	}

	var console io.Writer = stdout
	if cfg.Log.Quiet {
		console = nil
	}

	logger, closer, err := log.Setup(log.Options{
		File:    cfg.Log.File,
		Level:   cfg.Log.Level,
		Console: console,
	})
	if err != nil {
		return ctx, errors.Errorf("setting up logging: %w", err)
	}

	ctx = log.NewContext(ctx, logger)
	logger.Zerolog().Debug().
		Str("config", cfg.Location()).
		Str("settings", cfg.String()).
		Strs("categories", table.Names()).
		Msg("configuration loaded")

	interactive := !cfg.Log.Quiet && !color.NoColor && stdout == os.Stdout

	o.Config = cfg
	o.Table = table
	o.UserLogger = ui.New(ctx, console, interactive)
	o.Out = stdout
	o.Closer = closer

	return ctx, nil
}

// loadConfig reads an explicit config file, or discovers one in the
// working directory
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path != "" {
		return config.Load(ctx, path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Errorf("getting working directory: %w", err)
	}
	return config.Discover(ctx, cwd)
}
