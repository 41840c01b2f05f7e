package ds

// @Schema(description="User model representing a registered user")
type User struct {
	ID             int    `gorm:"primaryKey;column:id" json:"id"`
	Username       string `gorm:"column:username;uniqueIndex" json:"username"`
	HashedPassword string `gorm:"column:hashed_password" json:"-"`

	Ships []UserShip `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
