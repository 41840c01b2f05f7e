package ds

// UserShip links users to the ships they own. Nothing reads it yet: no
// endpoint scopes ships or telemetry by owner. It is migrated so the schema
// is ready once ownership checks land.
type UserShip struct {
	UserID int `gorm:"primaryKey;column:user_id" json:"user_id"`
	ShipID int `gorm:"primaryKey;column:ship_id" json:"ship_id"`
}

func (UserShip) TableName() string {
	return "user_ships"
}
