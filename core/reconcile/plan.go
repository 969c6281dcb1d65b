package reconcile

import (
	"context"
	"fmt"
)

// Plan decides the store write for a scan given the record read right before.
// existing is nil when the device is not in the store. Plan performs no I/O.
func Plan(existing *Record, scan Scan) (Action, Outcome) {
	id := scan.Device.NetworkID

	if scan.Location == nil {
		if existing == nil {
			return Action{
				Type:      ActionNone,
				NetworkID: id,
				Reason:    "removal requested for a device not in the store",
			}, OutcomeNotFound
		}
		if existing.Annotated() {
			return Action{
				Type:      ActionNone,
				NetworkID: id,
				Reason:    fmt.Sprintf("record annotated (user=%q comment=%q)", existing.User, existing.Comment),
			}, OutcomeBlocked
		}
		return Action{
			Type:      ActionClearLocation,
			NetworkID: id,
			Reason:    "device scanned without a location",
		}, OutcomeCleared
	}

	update := LocationUpdate{
		Location:       scan.Location.Code,
		LocationPrefix: scan.Location.Prefix,
		SocketForm:     scan.Location.Form,
		Voltage:        scan.Location.Voltage,
		ReadDate:       formatReadDate(scan.Location.ReadAt),
	}
	if scan.Device.HasPrefix() {
		product := scan.Device.Product
		update.Product = &product
	}

	if existing == nil {
		return Action{
			Type:      ActionInsert,
			NetworkID: id,
			Reason:    "first scan of device",
			Record:    newRecord(id, update),
		}, OutcomeInserted
	}

	return Action{
		Type:      ActionUpdateLocation,
		NetworkID: id,
		Reason:    fmt.Sprintf("moved from %q to %q", existing.LocationPrefix+existing.Location, update.LocationPrefix+update.Location),
		Update:    &update,
	}, OutcomeUpdated
}

// Apply executes a planned action against the store.
// Write failures are wrapped with ErrCommit.
func Apply(ctx context.Context, store Store, action Action) error {
	var err error

	switch action.Type {
	case ActionNone:
		return nil
	case ActionInsert:
		if action.Record == nil {
			return fmt.Errorf("insert action for %s has no record", action.NetworkID)
		}
		err = store.Insert(ctx, *action.Record)
	case ActionUpdateLocation:
		if action.Update == nil {
			return fmt.Errorf("update action for %s has no columns", action.NetworkID)
		}
		err = store.UpdateLocation(ctx, action.NetworkID, *action.Update)
	case ActionClearLocation:
		err = store.ClearLocation(ctx, action.NetworkID)
	default:
		return fmt.Errorf("unknown action type %q", action.Type)
	}

	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrCommit, action.Type, action.NetworkID, err)
	}
	return nil
}

func newRecord(id string, update LocationUpdate) *Record {
	record := &Record{
		NetworkID:      id,
		Location:       update.Location,
		LocationPrefix: update.LocationPrefix,
		SocketForm:     update.SocketForm,
		Voltage:        update.Voltage,
		ReadDate:       update.ReadDate,
	}
	if update.Product != nil {
		record.ProductName = update.Product.Name
		record.ProductID = update.Product.ID
	}
	return record
}
