package model

type Notification struct {
	DTO
	UserId  uint   `gorm:"not null;index" json:"userId"`
	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"not null" json:"message"`
	Type    string `gorm:"not null" json:"type"` // booking, payment, system
	IsRead  bool   `gorm:"default:false" json:"isRead"`

	User User `gorm:"foreignKey:UserId" json:"-"`
}

type Notifications []Notification
