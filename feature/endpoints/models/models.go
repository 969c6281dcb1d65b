package models

import "autoscan/core/reconcile"

// Endpoint represents the 'endpoints' table of the inventory database.
// Nullable columns are pointers so inserts without a product prefix leave them NULL.
type Endpoint struct {
	NetworkID      string  `gorm:"column:network_id;primaryKey;type:varchar(10)" json:"network_id"`
	Location       string  `gorm:"column:location" json:"location"`
	LocationPrefix string  `gorm:"column:location_prefix" json:"location_prefix"`
	SocketForm     string  `gorm:"column:socket_form" json:"socket_form"`
	Voltage        string  `gorm:"column:voltage" json:"voltage"`
	ReadDate       string  `gorm:"column:read_date" json:"read_date"`
	ProductName    *string `gorm:"column:product_name" json:"product_name"`
	ProductID      *string `gorm:"column:product_id" json:"product_id"`
	User           *string `gorm:"column:user" json:"user"`
	Comment        *string `gorm:"column:comment" json:"comment"`
}

// TableName overrides the table name.
func (Endpoint) TableName() string {
	return "endpoints"
}

// ToRecord converts the row to the reconciler's view. NULL columns become empty strings.
func (e Endpoint) ToRecord() reconcile.Record {
	return reconcile.Record{
		NetworkID:      e.NetworkID,
		Location:       e.Location,
		LocationPrefix: e.LocationPrefix,
		SocketForm:     e.SocketForm,
		Voltage:        e.Voltage,
		ReadDate:       e.ReadDate,
		ProductName:    deref(e.ProductName),
		ProductID:      deref(e.ProductID),
		User:           deref(e.User),
		Comment:        deref(e.Comment),
	}
}

// FromRecord builds a row for insertion. Empty product columns are stored as NULL.
func FromRecord(r reconcile.Record) Endpoint {
	return Endpoint{
		NetworkID:      r.NetworkID,
		Location:       r.Location,
		LocationPrefix: r.LocationPrefix,
		SocketForm:     r.SocketForm,
		Voltage:        r.Voltage,
		ReadDate:       r.ReadDate,
		ProductName:    ref(r.ProductName),
		ProductID:      ref(r.ProductID),
		User:           ref(r.User),
		Comment:        ref(r.Comment),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ref(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
