package mocks

import (
	"context"

	"autoscan/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of reconcile.Store
type Store struct {
	mock.Mock
}

func (m *Store) Lookup(ctx context.Context, networkID string) (*reconcile.Record, error) {
	args := m.Called(ctx, networkID)
	if rec, ok := args.Get(0).(*reconcile.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Insert(ctx context.Context, record reconcile.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *Store) UpdateLocation(ctx context.Context, networkID string, update reconcile.LocationUpdate) error {
	args := m.Called(ctx, networkID, update)
	return args.Error(0)
}

func (m *Store) ClearLocation(ctx context.Context, networkID string) error {
	args := m.Called(ctx, networkID)
	return args.Error(0)
}
