package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"gitsniff/internal/core/domain"
	"gitsniff/internal/storage/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent scan runs",
	Long: `History lists the most recent scan runs recorded in the local
database, newest first. Failed runs are listed too; their finding
count is always zero since partial results are discarded.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := sqlite.NewStore("")
	if err != nil {
		return &exitError{code: ExitUnknown, message: "opening history database: " + err.Error(), err: err}
	}
	defer store.Close()

	runs, err := store.ListRuns(cmd.Context(), historyLimit)
	if err != nil {
		return &exitError{code: ExitUnknown, message: "listing runs: " + err.Error(), err: err}
	}

	if len(runs) == 0 {
		cmd.Println("no runs recorded yet")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %-40s  %6d findings  %-6s  %s\n",
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			run.Repo,
			run.Findings,
			run.Status,
			joinCategories(run.Categories),
		)
	}
	return nil
}

func joinCategories(cats []domain.Category) string {
	if len(cats) == 0 {
		return "-"
	}
	names := make([]string, len(cats))
	for i, cat := range cats {
		names[i] = string(cat)
	}
	return strings.Join(names, ",")
}
