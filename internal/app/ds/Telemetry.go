package ds

import "time"

// @Schema(description="Telemetry point: one timestamped sensor reading for a ship")
type Telemetry struct {
	ID              int       `gorm:"primaryKey;column:id" json:"id"`
	ShipID          int       `gorm:"column:ship_id;index:idx_ship_time,priority:1" json:"ship_id"`
	Timestamp       time.Time `gorm:"column:timestamp;index:idx_ship_time,priority:2" json:"timestamp"`
	RPM             float64   `gorm:"column:rpm" json:"rpm"`
	Speed           float64   `gorm:"column:speed" json:"speed"`
	FuelConsumption float64   `gorm:"column:fuel_consumption" json:"fuel_consumption"`
	Latitude        float64   `gorm:"column:latitude" json:"latitude"`
	Longitude       float64   `gorm:"column:longitude" json:"longitude"`
	Heading         float64   `gorm:"column:heading;default:0" json:"heading"`
}

func (Telemetry) TableName() string {
	return "telemetry"
}
