package cmd

import (
	"fmt"

	"autoscan/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd uploads a snapshot of the endpoints table to object storage.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Upload a JSON snapshot of device locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		db, err := openStore(cfg, logg)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		defer closeStore(db, logg)

		report, err := newService(cfg, logg, db, client).Export(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d devices to %s/%s (%d bytes)\n",
			report.Count, report.Bucket, report.Object, report.Size)
		logg.Debug("Export finished", zap.String("object", report.Object))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
}
