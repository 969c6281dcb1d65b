package cmd

import (
	"errors"
	"fmt"
	"os"

	"autoscan/core/logger"
	"autoscan/feature/endpoints"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

// exitError carries the exit code reported to the scanner host.
// err is nil when the cause has already been logged.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// RootCmd records one scan event: a device barcode, optionally followed by a location barcode.
var RootCmd = &cobra.Command{
	Use:   "autoscan <device_barcode> [location_barcode]",
	Short: "Record the location of a scanned inventory device",
	Long: `autoscan processes one barcode scan event.

With a location barcode the device is placed at that location, creating its
record on first sight. With the device barcode alone the device is removed from
its location, unless the record carries a user or a comment.

Exit codes: 0 ok, 1 store unavailable, 2 write failed, 3 removal blocked by
annotation, 4 unrecognized barcode, 10 removal of an unknown device.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
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

		// Only a missing second argument means removal; an empty one is still a location.
		var location *string
		if len(args) == 2 {
			location = &args[1]
		}

		svc := newService(cfg, logg, db, nil)
		res, err := svc.Process(cmd.Context(), args[0], location)
		fmt.Fprintln(cmd.OutOrStdout(), endpoints.StatusLine(res, err))

		if code := endpoints.ExitCode(res, err); code != endpoints.ExitOK {
			return &exitError{code: code}
		}
		return nil
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		code := endpoints.ExitConnection
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			code = exitErr.code
			err = exitErr.err
		}

		if err != nil {
			// Failures before the configured logger exists go to a console logger.
			l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
			if logErr == nil {
				l.Error("command failed", zap.Error(err), zap.Int("exit_code", code))
				_ = l.Sync()
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		os.Exit(code)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory holding the .env file")
}
