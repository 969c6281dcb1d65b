package reconcile

import (
	"time"

	"autoscan/core/barcode"
)

// ReadDateLayout is the layout of the read_date column.
const ReadDateLayout = "2006-01-02 15:04:05"

// Record is the stored state of one device, keyed by network identifier.
type Record struct {
	NetworkID      string `json:"network_id"`
	Location       string `json:"location"`
	LocationPrefix string `json:"location_prefix"`
	SocketForm     string `json:"socket_form"`
	Voltage        string `json:"voltage"`
	ReadDate       string `json:"read_date"`
	ProductName    string `json:"product_name"`
	ProductID      string `json:"product_id"`
	User           string `json:"user"`
	Comment        string `json:"comment"`
}

// Annotated reports whether a person has flagged the record with a user or a comment.
func (r Record) Annotated() bool {
	return r.User != "" || r.Comment != ""
}

// HasLocation reports whether the record currently points at a location.
func (r Record) HasLocation() bool {
	return r.Location != ""
}

// Scan is one decoded scan event. A nil Location means the device was scanned alone.
type Scan struct {
	Device   barcode.Device    `json:"device"`
	Location *barcode.Location `json:"location,omitempty"`
}

// LocationUpdate carries the columns written when a known device is placed.
// Product is nil when the scan carried no product prefix; those columns are then left alone.
type LocationUpdate struct {
	Location       string
	LocationPrefix string
	SocketForm     string
	Voltage        string
	ReadDate       string
	Product        *barcode.Product
}

// ActionType represents the type of store write.
type ActionType string

const (
	// ActionInsert creates the record of a device seen for the first time.
	ActionInsert ActionType = "insert"
	// ActionUpdateLocation moves a known device to the scanned location.
	ActionUpdateLocation ActionType = "update_location"
	// ActionClearLocation empties the location of a known device.
	ActionClearLocation ActionType = "clear_location"
	// ActionNone writes nothing.
	ActionNone ActionType = "none"
)

// Action represents a planned store write.
type Action struct {
	// Type specifies the write to perform.
	Type ActionType `json:"type"`

	// NetworkID is the record key.
	NetworkID string `json:"network_id"`

	// Reason explains why this action was chosen.
	Reason string `json:"reason"`

	// Record is the full row for ActionInsert.
	Record *Record `json:"-"`

	// Update holds the columns for ActionUpdateLocation.
	Update *LocationUpdate `json:"-"`
}

// Outcome is the terminal state of one scan.
type Outcome string

const (
	OutcomeInserted Outcome = "inserted"
	OutcomeUpdated  Outcome = "updated"
	OutcomeCleared  Outcome = "cleared"
	// OutcomeBlocked means the clear was refused because the record is annotated.
	OutcomeBlocked Outcome = "blocked"
	// OutcomeNotFound means a removal was requested for an unknown device.
	OutcomeNotFound Outcome = "not_found"
)

// Result is the reconciliation output for a single scan.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Action  Action  `json:"action"`
	// Existing is the record as read right before the decision, nil if absent.
	Existing *Record `json:"existing,omitempty"`
}

// formatReadDate renders a read timestamp for the read_date column.
func formatReadDate(t time.Time) string {
	return t.Format(ReadDateLayout)
}
