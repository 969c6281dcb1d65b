package endpoints

import (
	"errors"

	"autoscan/core/barcode"
	"autoscan/core/reconcile"
)

// Exit codes understood by the scanner host.
const (
	ExitOK           = 0
	ExitConnection   = 1
	ExitCommit       = 2
	ExitBlocked      = 3
	ExitUnrecognized = 4
	ExitNotFound     = 10
)

// ExitCode maps the result of a processed scan to the code reported to the scanner host.
func ExitCode(res *reconcile.Result, err error) int {
	if err != nil {
		switch {
		case errors.Is(err, reconcile.ErrCommit):
			return ExitCommit
		case errors.Is(err, barcode.ErrUnrecognizedLocation),
			errors.Is(err, barcode.ErrUnknownProduct),
			errors.Is(err, barcode.ErrEmptyDevice),
			errors.Is(err, barcode.ErrInvalidDevice):
			return ExitUnrecognized
		default:
			return ExitConnection
		}
	}

	if res == nil {
		return ExitOK
	}

	switch res.Outcome {
	case reconcile.OutcomeBlocked:
		return ExitBlocked
	case reconcile.OutcomeNotFound:
		return ExitNotFound
	default:
		return ExitOK
	}
}

// StatusLine renders a one-line, human readable summary of a processed scan.
func StatusLine(res *reconcile.Result, err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	if res == nil {
		return ""
	}

	id := res.Action.NetworkID
	switch res.Outcome {
	case reconcile.OutcomeInserted:
		return id + " added to inventory"
	case reconcile.OutcomeUpdated:
		return id + " location updated"
	case reconcile.OutcomeCleared:
		return id + " removed from location"
	case reconcile.OutcomeBlocked:
		return id + " removal blocked: device has a user or comment"
	case reconcile.OutcomeNotFound:
		return id + " removal ignored: device not in inventory"
	default:
		return id + " " + string(res.Outcome)
	}
}
