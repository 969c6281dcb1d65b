package cmd

import (
	"fmt"
	"strings"

	"autoscan/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd verifies the endpoints table schema.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the endpoints table schema",
	Long:  `Compares the endpoints table of the configured store with the columns the processor reads and writes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, err := openStore(cfg, logg)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		defer closeStore(db, logg)

		report, err := integrity.NewService(db, logg).CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\n=== Schema Check ===")
		fmt.Fprintf(out, "Table: %s (%s)\n", report.Table, report.Driver)
		fmt.Fprintf(out, "Missing Columns: %s\n", joinOrNone(report.MissingColumns))
		fmt.Fprintf(out, "Type Mismatches: %s\n", joinOrNone(report.TypeMismatches))
		for _, e := range report.Errors {
			fmt.Fprintf(out, "Error: %s\n", e)
		}

		if !report.Matched {
			return fmt.Errorf("table %s does not match the endpoint model", report.Table)
		}

		logg.Info("Schema check passed", zap.String("table", report.Table))
		return nil
	},
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
