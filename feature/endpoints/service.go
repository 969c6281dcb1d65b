package endpoints

import (
	"context"
	"time"

	"autoscan/core/barcode"
	"autoscan/core/logger"
	"autoscan/core/reconcile"
	"autoscan/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles scan processing for endpoint devices.
type Service struct {
	store   *Store
	decoder *barcode.Decoder
	logger  *zap.Logger
	client  storage.Client
	bucket  string
	now     func() time.Time
}

// NewService creates a new endpoints service.
// client may be nil when snapshot exports are not used.
func NewService(db *gorm.DB, decoder *barcode.Decoder, logger *zap.Logger, client storage.Client, bucket string) *Service {
	return &Service{
		store:   NewStore(db),
		decoder: decoder,
		logger:  logger,
		client:  client,
		bucket:  bucket,
		now:     time.Now,
	}
}

// WithLogger returns a copy of the service that logs to l.
func (s *Service) WithLogger(l *zap.Logger) *Service {
	c := *s
	c.logger = l
	return &c
}

// Decode turns raw barcodes into a scan without touching the store.
// A nil location means the device was scanned alone. A present location is
// always decoded, so an empty one is rejected like any unrecognized barcode.
func (s *Service) Decode(device string, location *string) (*reconcile.Scan, error) {
	dev, err := s.decoder.DecodeIdentifier(device)
	if err != nil {
		return nil, err
	}

	scan := &reconcile.Scan{Device: dev}
	if location != nil {
		loc, err := s.decoder.DecodeLocation(*location)
		if err != nil {
			return nil, err
		}
		scan.Location = loc
	}
	return scan, nil
}

// Process decodes one scan event and reconciles it against the store.
// Nothing is written when decoding fails.
func (s *Service) Process(ctx context.Context, device string, location *string) (*reconcile.Result, error) {
	l := logger.WithScan(s.logger, device, location)

	scan, err := s.Decode(device, location)
	if err != nil {
		l.Error("Barcode rejected", zap.Error(err))
		return nil, err
	}

	l = l.With(zap.String("network_id", scan.Device.NetworkID))
	if scan.Device.HasPrefix() {
		l = l.With(zap.String("product_prefix", scan.Device.Prefix), zap.String("product_name", scan.Device.Product.Name))
	}
	if scan.Location != nil {
		l = l.With(zap.String("location_kind", string(scan.Location.Kind)), zap.String("location_code", scan.Location.Code))
	}

	result, err := reconcile.Reconcile(ctx, s.store, *scan)
	if err != nil {
		l.Error("Scan not recorded", zap.Error(err))
		return nil, err
	}

	switch result.Outcome {
	case reconcile.OutcomeBlocked:
		l.Warn("Removal blocked by annotation", zap.String("reason", result.Action.Reason))
	case reconcile.OutcomeNotFound:
		l.Warn("Removal requested for unknown device")
	default:
		l.Info("Scan recorded", zap.String("outcome", string(result.Outcome)), zap.String("reason", result.Action.Reason))
	}

	return result, nil
}

// Lookup returns the stored record for a device barcode, or nil when there is none.
func (s *Service) Lookup(ctx context.Context, device string) (*reconcile.Record, error) {
	dev, err := s.decoder.DecodeIdentifier(device)
	if err != nil {
		return nil, err
	}
	return s.store.Lookup(ctx, dev.NetworkID)
}
