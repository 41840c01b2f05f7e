package repository

import (
	"time"

	"ship_telemetry/internal/app/ds"
)

// CreateTelemetry persists one telemetry row for shipID. Timestamp defaults
// to the ingestion time when the caller leaves it zero.
func (r *Repository) CreateTelemetry(t *ds.Telemetry, shipID int) error {
	t.ShipID = shipID
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now().UTC()
	}
	return r.db.Create(t).Error
}

// CreateTelemetryBatch inserts a batch of rows in one transaction. Used by
// the history seeder when flushing buffered points.
func (r *Repository) CreateTelemetryBatch(points []ds.Telemetry) error {
	if len(points) == 0 {
		return nil
	}
	return r.db.Create(&points).Error
}

// GetTelemetry returns telemetry for shipID ordered by timestamp descending,
// truncated to limit rows. Non-nil bounds filter to [start, end] inclusive.
func (r *Repository) GetTelemetry(shipID, limit int, start, end *time.Time) ([]ds.Telemetry, error) {
	query := r.db.Where("ship_id = ?", shipID)
	if start != nil {
		query = query.Where("timestamp >= ?", *start)
	}
	if end != nil {
		query = query.Where("timestamp <= ?", *end)
	}

	var points []ds.Telemetry
	err := query.Order("timestamp desc").Limit(limit).Find(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

// DeleteTelemetryForShip drops every telemetry row of shipID. Only the
// reseeding command calls this.
func (r *Repository) DeleteTelemetryForShip(shipID int) error {
	return r.db.Where("ship_id = ?", shipID).Delete(&ds.Telemetry{}).Error
}

// Migrate creates or updates the schema. Users first so the membership table
// can reference them.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&ds.User{}, &ds.Ship{}, &ds.UserShip{}, &ds.Telemetry{})
}
