package cmd

import (
	"encoding/json"
	"fmt"

	"autoscan/feature/endpoints"

	"github.com/spf13/cobra"
)

// decodeCmd prints the decoded barcodes without touching the store.
var decodeCmd = &cobra.Command{
	Use:   "decode <device_barcode> [location_barcode]",
	Short: "Decode barcodes without recording the scan",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		// Only a missing second argument means removal; an empty one is still a location.
		var location *string
		if len(args) == 2 {
			location = &args[1]
		}

		scan, err := newService(cfg, logg, nil, nil).Decode(args[0], location)
		if err != nil {
			return &exitError{code: endpoints.ExitCode(nil, err), err: err}
		}

		data, err := json.MarshalIndent(scan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(decodeCmd)
}
