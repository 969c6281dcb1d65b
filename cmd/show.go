package cmd

import (
	"encoding/json"
	"fmt"

	"autoscan/feature/endpoints"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// showCmd prints the stored record of a device.
var showCmd = &cobra.Command{
	Use:   "show <device_barcode>",
	Short: "Show the stored record of a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, err := openStore(cfg, logg)
		if err != nil {
			logg.Error("Inventory store unavailable", zap.Error(err))
			return &exitError{code: endpoints.ExitConnection}
		}
		defer closeStore(db, logg)

		record, err := newService(cfg, logg, db, nil).Lookup(cmd.Context(), args[0])
		if err != nil {
			return &exitError{code: endpoints.ExitCode(nil, err), err: err}
		}
		if record == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "device not in inventory")
			return &exitError{code: endpoints.ExitNotFound}
		}

		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
