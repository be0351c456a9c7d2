package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/hive/internal/fixtures"
	"github.com/spf13/cobra"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Work with the dashboard fixture datasets",
}

var fixturesCheckCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate fixture YAML and print dataset sizes",
	Long: `Loads the fixtures exactly as the server does and reports how many
entries each dataset holds. Without a directory the embedded datasets are
checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}

		set, err := fixtures.Load(fixtures.Source(dir))
		if err != nil {
			return fmt.Errorf("invalid fixtures: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATASET\tENTRIES")
		fmt.Fprintf(w, "accounts\t%d\n", len(set.Accounts))
		fmt.Fprintf(w, "tasks\t%d\n", len(set.Tasks))
		fmt.Fprintf(w, "notifications\t%d\n", len(set.Notifications))
		fmt.Fprintf(w, "overview_kpis\t%d\n", len(set.OverviewKPIs))
		fmt.Fprintf(w, "department_kpis\t%d\n", len(set.DepartmentKPIs))
		fmt.Fprintf(w, "revenue\t%d\n", len(set.Revenue))
		fmt.Fprintf(w, "roadmaps\t%d\n", len(set.Roadmaps))
		return w.Flush()
	},
}

func init() {
	fixturesCmd.AddCommand(fixturesCheckCmd)
	rootCmd.AddCommand(fixturesCmd)
}
