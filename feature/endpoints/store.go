package endpoints

import (
	"context"
	"errors"
	"fmt"

	"autoscan/core/reconcile"
	"autoscan/feature/endpoints/models"

	"gorm.io/gorm"
)

// ErrRecordGone is returned when a write finds no row for the network id,
// which happens when the row is deleted between the lookup and the write.
var ErrRecordGone = errors.New("record no longer exists")

// Store implements reconcile.Store on the endpoints table.
// Every write is a single statement committed before it returns.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on an open connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the endpoints table if it does not exist.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Endpoint{}); err != nil {
		return fmt.Errorf("failed to migrate endpoints table: %w", err)
	}
	return nil
}

// Lookup fetches a device by network id, including its annotations.
func (s *Store) Lookup(ctx context.Context, networkID string) (*reconcile.Record, error) {
	var row models.Endpoint
	err := s.db.WithContext(ctx).Where("network_id = ?", networkID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec := row.ToRecord()
	return &rec, nil
}

// Insert creates a new row.
func (s *Store) Insert(ctx context.Context, record reconcile.Record) error {
	row := models.FromRecord(record)
	return s.db.WithContext(ctx).Create(&row).Error
}

// UpdateLocation writes the location columns, and the product columns only when
// the update carries a product.
func (s *Store) UpdateLocation(ctx context.Context, networkID string, update reconcile.LocationUpdate) error {
	cols := map[string]any{
		"location_prefix": update.LocationPrefix,
		"location":        update.Location,
		"read_date":       update.ReadDate,
		"socket_form":     update.SocketForm,
		"voltage":         update.Voltage,
	}
	if update.Product != nil {
		cols["product_name"] = update.Product.Name
		cols["product_id"] = update.Product.ID
	}

	res := s.db.WithContext(ctx).
		Model(&models.Endpoint{}).
		Where("network_id = ?", networkID).
		Updates(cols)
	return checkWritten(res, networkID)
}

// ClearLocation empties the location and location prefix, keeping the row.
func (s *Store) ClearLocation(ctx context.Context, networkID string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Endpoint{}).
		Where("network_id = ?", networkID).
		Updates(map[string]any{
			"location":        "",
			"location_prefix": "",
		})
	return checkWritten(res, networkID)
}

// checkWritten relies on matched-row counts, which mysql reports only with clientFoundRows.
func checkWritten(res *gorm.DB, networkID string) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrRecordGone, networkID)
	}
	return nil
}

// List returns every row ordered by network id.
func (s *Store) List(ctx context.Context) ([]models.Endpoint, error) {
	var rows []models.Endpoint
	if err := s.db.WithContext(ctx).Order("network_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list endpoints: %w", err)
	}
	return rows, nil
}
