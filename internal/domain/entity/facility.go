package entity

// Floor is a building floor. Rooms and reception desks each belong to exactly
// one floor.
type Floor struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FloorNumber int    `gorm:"not null;uniqueIndex" json:"floor_number"`
	Name        string `gorm:"type:varchar(100)" json:"name,omitempty"`

	// Relationships
	Rooms      []Room      `gorm:"foreignKey:FloorID" json:"rooms,omitempty"`
	Receptions []Reception `gorm:"foreignKey:FloorID" json:"receptions,omitempty"`
}

func (Floor) TableName() string {
	return "floors"
}

// Room is a consultation room.
type Room struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomNumber string `gorm:"type:varchar(20);uniqueIndex;not null" json:"room_number"`
	Name       string `gorm:"type:varchar(100)" json:"name,omitempty"`
	FloorID    uint   `gorm:"not null;index" json:"floor_id"`
	IsActive   *bool  `gorm:"not null;default:true" json:"is_active"`

	// Relationships
	Floor Floor `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}

// Reception is a reception desk.
type Reception struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	FloorID  uint   `gorm:"not null;index" json:"floor_id"`
	IsActive *bool  `gorm:"not null;default:true" json:"is_active"`

	// Relationships
	Floor Floor `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
}

func (Reception) TableName() string {
	return "receptions"
}
