// Package cmd provides the command-line interface for pagesim.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mohammadtauchid/pagesim/config"
	"github.com/mohammadtauchid/pagesim/input"
	"github.com/mohammadtauchid/pagesim/report"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var errNoReferences = errors.New("exactly one of --refs or --file is required")

// app carries the loaded configuration and the flags every subcommand
// shares.
type app struct {
	cfg     config.Config
	refs    string
	file    string
	output  string
	logFile string
}

// NewRootCmd builds the pagesim command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "pagesim",
		Short: "Simulate FIFO, LRU and Optimal page replacement.",
		Long: `pagesim replays a page reference string against a fixed number ` +
			`of frames and reports page faults, the frame contents after ` +
			`every reference and how the replacement policies compare.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.refs, "refs", "", `reference string, e.g. "7,0,1,2" or "7 0 1 2"`)
	flags.StringVar(&a.file, "file", "", "trace file with one reference per line")
	flags.StringVar(&a.output, "output", "", "directory to also write reports to (env "+config.EnvOutputDir+")")
	flags.StringVar(&a.logFile, "log-file", "", "append log lines to this file (env "+config.EnvLogFile+")")

	rootCmd.AddCommand(newRunCmd(a), newCompareCmd(a), newSweepCmd(a))

	return rootCmd
}

// Execute runs the root command and exits through atexit so registered
// cleanups always run.
func Execute() {
	log.SetPrefix("pagesim: ")
	log.SetFlags(log.LstdFlags)

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if !cmd.Flags().Changed("output") {
		a.output = cfg.OutputDir
	}
	if !cmd.Flags().Changed("log-file") {
		a.logFile = cfg.LogFile
	}

	if a.logFile != "" {
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(f)
		atexit.Register(func() {
			f.Close()
		})
	}

	return nil
}

// references loads the stream from --refs or --file.
func (a *app) references(cmd *cobra.Command) ([]int, error) {
	refsSet := cmd.Flags().Changed("refs")
	fileSet := cmd.Flags().Changed("file")

	switch {
	case refsSet == fileSet:
		return nil, errNoReferences
	case fileSet:
		return input.ReadTraceFile(a.file)
	default:
		return input.ParseReferences(a.refs)
	}
}

// frames returns the --frames value, falling back to the configured one.
func (a *app) frames(cmd *cobra.Command, value int) int {
	if cmd.Flags().Changed("frames") {
		return value
	}

	return a.cfg.Frames
}

// writer returns where a report goes: the command output, plus a fresh
// report file when an output directory is configured. The returned
// close function must be called once the report is written.
func (a *app) writer(cmd *cobra.Command, name string) (io.Writer, func() error, error) {
	out := cmd.OutOrStdout()
	if a.output == "" {
		return out, func() error { return nil }, nil
	}

	f, err := report.Create(a.output, name)
	if err != nil {
		return nil, nil, fmt.Errorf("creating report file: %w", err)
	}
	log.Printf("writing report to %s", f.Name())

	return io.MultiWriter(out, f), f.Close, nil
}
