// Package cmd wires the seqscan subcommands: scanning directories for
// sequences, expanding patterns to file lists, rendering filenames and
// discovering a sequence from a seed file.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/seqscan/internal/config"
	"github.com/backmassage/seqscan/internal/logging"
)

// app carries the state shared by all subcommands once the root
// command's persistent setup has run.
type app struct {
	cfg config.Config
	log *logging.Logger

	// flag storage, applied over the config file in setup
	cfgPath   string
	colorFlag string
	logFile   string
	verbose   bool
}

// NewRootCommand creates the seqscan root command with all subcommands
// attached.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "seqscan",
		Short: "Discover and describe numbered file sequences",
		Long: `seqscan works with frame-per-file sequences (shot_0001.png,
shot_0002.png, ...). It scans directories for sequences, expands
patterns like "shot_####.png" or "file%04d.jpg" into the files they
designate, and renders concrete filenames from a pattern.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				a.log.Close()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file (default $HOME/.seqscan.yaml)")
	pf.StringVar(&a.colorFlag, "color", string(config.ColorAuto), "color output: auto, always or never")
	pf.StringVar(&a.logFile, "log-file", "", "also append log output to this file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLsCommand(a),
		newExpandCommand(a),
		newRenderCommand(a),
		newSeedCommand(a),
	)
	return root
}

// setup loads the config file, applies explicit flag overrides, and
// builds the logger. Runs once before any subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()

	path, explicit := a.cfgPath, true
	if path == "" {
		explicit = false
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".seqscan.yaml")
		}
	}
	if path != "" {
		if err := config.LoadFile(&a.cfg, path, explicit); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		a.cfg.ColorMode = config.ColorMode(a.colorFlag)
	}
	if flags.Changed("log-file") {
		a.cfg.LogFile = a.logFile
	}
	if flags.Changed("verbose") {
		a.cfg.Verbose = a.verbose
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(&a.cfg)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}
