package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitFailure      = 1
	exitInvalidInput = 2
	exitUnverified   = 15
)

// codedError carries the process exit code of a failed command
type codedError struct {
	code int
	err  error
}

func (err codedError) Error() string {
	return err.err.Error()
}

func (err codedError) Unwrap() error {
	return err.err
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "orblocks",
		Short:         "Feasible operating-room blocks per patient",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON instead of console output")

	rootCmd.AddCommand(feasibilityCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "orblocks: %v\n", err)
		var coded codedError
		if errors.As(err, &coded) {
			os.Exit(coded.code)
		}
		os.Exit(exitFailure)
	}
}
