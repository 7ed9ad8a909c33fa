package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tivojn/google-maps-api-skill/internal/apierr"
	"github.com/tivojn/google-maps-api-skill/internal/cli"
)

// Injected at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitGeneral    = 1
	ExitUsage      = 2
	ExitSetup      = 3
	ExitValidation = 4
	ExitAPI        = 5
	ExitNetwork    = 6
	ExitInterrupt  = 130
)

func main() {
	// Context with signal cancellation.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create the CLI environment with production defaults. The credential
	// resolver owns .env loading, so nothing is preloaded here.
	env := cli.DefaultEnv()

	// Root command.
	rootCmd := &cobra.Command{
		Use:     "gmaps",
		Short:   "Google Maps Platform from the command line",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		// Silence Cobra's default error/usage printing; we handle it ourselves.
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().BoolVar(&env.Verbose, "verbose", false,
		"Log request details to stderr")
	rootCmd.PersistentFlags().IntVar(&env.Retries, "retry", 0,
		"Retry rate-limited or transient failures up to N times")

	for _, c := range cli.Commands(env) {
		rootCmd.AddCommand(c)
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to exit codes. Taxonomy sentinels are checked
// before Cobra's message patterns because the sentinel texts ("invalid
// argument") overlap with Cobra's flag-parsing wording.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	// Interrupt.
	if errors.Is(err, context.Canceled) {
		return ExitInterrupt
	}

	// Setup: no credential anywhere.
	if errors.Is(err, apierr.ErrMissingCredential) {
		return ExitSetup
	}

	// Validation: rejected before any network activity.
	if errors.Is(err, apierr.ErrValidation) {
		return ExitValidation
	}

	// API failures: the service received and rejected the request.
	if errors.Is(err, apierr.ErrAuthorization) || errors.Is(err, apierr.ErrRateLimited) ||
		errors.Is(err, apierr.ErrInvalidRequest) {
		return ExitAPI
	}

	// Network and timeout: no usable reply was obtained.
	if errors.Is(err, apierr.ErrNetwork) || errors.Is(err, apierr.ErrTimeout) {
		return ExitNetwork
	}

	// Usage: unknown operations and Cobra flag/arg parsing errors. Cobra
	// doesn't expose typed errors, so message patterns are matched.
	if errors.Is(err, apierr.ErrUnknownOperation) || isCobraUsageError(err) {
		return ExitUsage
	}

	return ExitGeneral
}

// cobraUsageErrorPatterns contains error message substrings that indicate
// Cobra usage errors. These patterns are stable across Cobra versions.
var cobraUsageErrorPatterns = []string{
	"required flag",             // Missing required flag
	"unknown flag",              // Flag doesn't exist
	"unknown shorthand",         // Short flag doesn't exist
	"unknown command",           // Subcommand doesn't exist
	"flag needs an argument",    // Flag provided without value
	"invalid argument",          // Invalid flag value type
	"if any flags in the group", // Mutually exclusive flag violation
	"accepts ",                  // Wrong number of arguments (e.g., "accepts 1 arg(s)")
	"requires at least",         // Too few arguments
	"requires at most",          // Too many arguments
}

// isCobraUsageError checks if an error is a Cobra usage/parsing error.
func isCobraUsageError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := err.Error()
	for _, pattern := range cobraUsageErrorPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
