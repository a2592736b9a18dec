// Command cgt computes canonical forms of short partizan game positions.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagDebug    bool
	flagNoColor  bool
	flagParallel bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "cgt",
		Short:         "Canonical forms of short partizan games",
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if flagDebug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagParallel, "parallel", false, "Evaluate independent components concurrently")

	rootCmd.AddCommand(newValueCmd())
	rootCmd.AddCommand(newSnortCmd())
	rootCmd.AddCommand(newDomineeringCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
