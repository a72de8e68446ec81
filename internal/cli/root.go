package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitsniff/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gitsniff",
	Short: "Collect candidate personal and sensitive data from GitHub repositories",
	Long: `gitsniff locates a GitHub repository, walks every file reachable from
its root over the contents API, and scans the text with a battery of
pattern matchers: postal addresses, email addresses, telephone
numbers, credential-like assignments and URLs. Findings are reported
as JSON or YAML once the whole tree has been scanned.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			logger.Error("%s", exitErr.message)
			if exitErr.err != nil {
				logger.Debug("cause: %v", exitErr.err)
			}
			return exitErr.code
		}

		// Anything untyped at this point is a usage/flag problem.
		fmt.Fprintln(os.Stderr, "Error:", err)
		return ExitParameterError
	}
	return ExitSuccess
}
