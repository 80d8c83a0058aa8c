package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/litematic/internal/config"
	"github.com/arloliu/litematic/internal/logger"
	"github.com/arloliu/litematic/litematic"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	configPath string
	logLevel   string

	// cfg is loaded before every command runs.
	cfg = config.Default()

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	nameColor = color.New(color.FgCyan)
	numColor  = color.New(color.Faint)

	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
)

var rootCmd = &cobra.Command{
	Use:   "litematic",
	Short: "Inspect and edit block palettes of Litematica schematics",
	Long: `litematic lists the blocks used by a .litematic schematic and rewrites
palette entries, replacing every occurrence of one block with another across
all regions. Files are backed up and re-verified after each save.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", config.DefaultFileName, "Path to the YAML configuration file")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")
}

func setup(_ *cobra.Command, _ []string) error {
	if noColor {
		color.NoColor = true
	}

	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger.Init(logger.Options{
		Enabled: logLevel != "" || verbose,
		Level:   level,
		Output:  stderr,
	})

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ioOptions returns the options passed to every litematic call.
func ioOptions() []litematic.Option {
	return []litematic.Option{litematic.WithLogger(logger.L)}
}

// textOut reports whether human-readable output is wanted on stdout
func textOut() bool {
	return !quiet && !jsonOut
}

// printInfo prints an info message unless quiet or emitting JSON
func printInfo(format string, args ...any) {
	if textOut() {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printOK prints a success message in green
func printOK(format string, args ...any) {
	if textOut() {
		okColor.Fprintf(stdout, format, args...)
	}
}

// printWarn prints a highlighted warning to stderr
func printWarn(format string, args ...any) {
	if !quiet {
		warnColor.Fprintf(stderr, "Warning: "+format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && textOut() {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
