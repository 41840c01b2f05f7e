package ds

// @Schema(description="Ship model identified by its MMSI")
type Ship struct {
	ID     int     `gorm:"primaryKey;column:id" json:"id"`
	Name   string  `gorm:"column:name;index" json:"name"`
	MMSI   string  `gorm:"column:mmsi;uniqueIndex" json:"mmsi"`
	Weight float64 `gorm:"column:weight;default:1000" json:"weight"`

	Users     []UserShip  `gorm:"foreignKey:ShipID" json:"-"`
	Telemetry []Telemetry `gorm:"foreignKey:ShipID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Ship) TableName() string {
	return "ships"
}
