// Segtimer controls seven-segment display timers over HTTP.
//
// It can blank the display, show the clock, run countdowns, set colors and
// start animations on a timer found by name, URL or mDNS discovery.
//
// Usage:
//
//	segtimer [command] [flags]
//
// See 'segtimer --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/segtimer/internal/httpclient"
	"github.com/muurk/segtimer/internal/logging"
	"github.com/muurk/segtimer/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// Global flags
var (
	deviceFlag  string
	headerFlags []string
	timeoutFlag time.Duration
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "segtimer",
	Short: "Seven-segment timer control utility",
	Long: `Control a seven-segment display timer over its HTTP API.

Devices are addressed with --device, which takes a registered name
(see 'segtimer devices') or a URL. Without --device the default device
is used.`,
	Version:       version.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(logLevel); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&deviceFlag, "device", "d", "", "Device name or URL (default: configured default device)")
	rootCmd.PersistentFlags().StringArrayVarP(&headerFlags, "header", "H", nil, `Extra request header "Key: Value" (repeatable)`)
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", httpclient.DefaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $"+logging.LogLevelEnvVar+")")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "segtimer %s\n", version.Full())
	},
}

// reportedError marks an error whose details were already rendered
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
