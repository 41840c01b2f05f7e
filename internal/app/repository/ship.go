package repository

import (
	"errors"
	"fmt"

	"ship_telemetry/internal/app/ds"

	"gorm.io/gorm"
)

const DefaultShipWeight = 1000.0

// GetShipByMMSI returns the ship registered under mmsi.
func (r *Repository) GetShipByMMSI(mmsi string) (*ds.Ship, error) {
	ship := &ds.Ship{}
	err := r.db.Where("mmsi = ?", mmsi).First(ship).Error
	if err != nil {
		return nil, err
	}
	return ship, nil
}

// CreateShip persists a new ship. Weight falls back to DefaultShipWeight when
// not positive. A duplicate MMSI surfaces as gorm.ErrDuplicatedKey.
func (r *Repository) CreateShip(name, mmsi string, weight float64) (*ds.Ship, error) {
	if weight <= 0 {
		weight = DefaultShipWeight
	}
	ship := &ds.Ship{Name: name, MMSI: mmsi, Weight: weight}
	if err := r.db.Create(ship).Error; err != nil {
		return nil, err
	}
	return ship, nil
}

// GetOrCreateShip returns the ship registered under mmsi, creating it with a
// placeholder name when unseen. A concurrent create racing on the unique
// constraint is resolved by re-reading instead of failing the ingest.
func (r *Repository) GetOrCreateShip(mmsi string) (*ds.Ship, error) {
	ship, err := r.GetShipByMMSI(mmsi)
	if err == nil {
		return ship, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ship, err = r.CreateShip(fmt.Sprintf("Ship %s", mmsi), mmsi, DefaultShipWeight)
	if err == nil {
		return ship, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.GetShipByMMSI(mmsi)
	}
	return nil, err
}

// GetAllShips lists ships paginated by offset/limit, ordered by primary key.
func (r *Repository) GetAllShips(offset, limit int) ([]ds.Ship, error) {
	var ships []ds.Ship
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

// UpdateShipWeight sets the weight of an existing ship.
func (r *Repository) UpdateShipWeight(id int, weight float64) error {
	return r.db.Model(&ds.Ship{}).Where("id = ?", id).Update("weight", weight).Error
}

// ShipOverview pairs a ship with its most recent telemetry point, if any.
type ShipOverview struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	MMSI          string        `json:"mmsi"`
	LastTelemetry *ds.Telemetry `json:"last_telemetry"`
}

// GetShipsOverview returns one entry per ship with its latest telemetry row
// attached, or nil when the ship has no telemetry yet. One lookup per ship.
func (r *Repository) GetShipsOverview() ([]ShipOverview, error) {
	var ships []ds.Ship
	if err := r.db.Order("id").Find(&ships).Error; err != nil {
		return nil, err
	}

	overview := make([]ShipOverview, 0, len(ships))
	for _, ship := range ships {
		entry := ShipOverview{ID: ship.ID, Name: ship.Name, MMSI: ship.MMSI}

		latest := &ds.Telemetry{}
		err := r.db.Where("ship_id = ?", ship.ID).
			Order("timestamp desc").
			First(latest).Error
		switch {
		case err == nil:
			entry.LastTelemetry = latest
		case errors.Is(err, gorm.ErrRecordNotFound):
			// ship has no telemetry yet
		default:
			return nil, err
		}
		overview = append(overview, entry)
	}
	return overview, nil
}
