// Package main provides the command-line interface for n2tstatus, which
// reports the status of the .tst files of a Nand2Tetris assignment by
// running the Hardware Simulator over each of them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpplain/n2tstatus/internal/n2t"
)

// Version variables set via ldflags during build
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global flags
var (
	configPath string
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "n2tstatus",
	Short: "Report the status of the .tst files of a Nand2Tetris assignment",
	Long: `n2tstatus runs the Hardware Simulator over every .tst script in a
directory and prints the simulator's verdict next to each file name.

Configuration is read from the first available source:
  1. --config flag
  2. $` + n2t.ConfigEnvVar + `
  3. ` + n2t.ConfigFileName + ` beside the n2tstatus executable`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		n2t.SetNoColor(noColor)
		n2t.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.SetVersionTemplate("n2tstatus version {{.Version}}\n")

	showConfigCmd.Flags().BoolVar(&showJSON, "json", false, "Print the configuration as JSON")

	rootCmd.AddCommand(setExecutableCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(versionCmd)
}

var setExecutableCmd = &cobra.Command{
	Use:     "set-executable PATH",
	Short:   "Store the location of the Hardware Simulator executable",
	Example: "  n2tstatus set-executable ~/nand2tetris/tools/HardwareSimulator.sh",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		if err := n2t.SetSimulator(store, args[0]); err != nil {
			n2t.PrintErrorWithHint(err)
			os.Exit(n2t.ExitError)
		}
	},
}

var reportCmd = &cobra.Command{
	Use:   "report [DIR]",
	Short: "Run the Hardware Simulator over every .tst file in DIR (default: current directory)",
	Example: `  n2tstatus report
  n2tstatus report projects/01`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		} else if wd, err := os.Getwd(); err == nil {
			dir = wd
		}

		store := openStore()
		os.Exit(n2t.Report(store, dir))
	},
}

var showJSON bool

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Print the configuration file path and every stored key=value pair",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		format := n2t.FormatHuman
		if showJSON {
			format = n2t.FormatJSON
		}
		if err := n2t.ShowConfig(store, format); err != nil {
			n2t.PrintErrorWithHint(err)
			os.Exit(n2t.ExitError)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		n2t.PrintInfo("%s %s", n2t.Bold("n2tstatus version"), n2t.Green(version))
		n2t.PrintInfo("  commit: %s", n2t.Cyan(commit))
		n2t.PrintInfo("  built:  %s", n2t.Cyan(date))
	},
}

// openStore loads the configuration or exits. Load failures abort before
// any command does work.
func openStore() *n2t.Store {
	store, err := n2t.Open(n2t.ResolveConfigPath(configPath))
	if err != nil {
		n2t.PrintErrorWithHint(err)
		os.Exit(n2t.ExitError)
	}
	return store
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Run 'n2tstatus --help' for usage.")
		os.Exit(n2t.ExitUsage)
	}
}
