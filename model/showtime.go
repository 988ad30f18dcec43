package model

import "time"

type Showtime struct {
	DTO
	PublicCode string    `gorm:"size:16;uniqueIndex" json:"publicCode"`
	MovieId    uint      `gorm:"not null" json:"movieId"`
	TheaterId  uint      `gorm:"not null" json:"theaterId"`
	StartTime  time.Time `gorm:"not null" validate:"required" json:"startTime"`
	// EndTime is derived: StartTime + movie duration.
	EndTime time.Time `json:"endTime"`
	Price   float64   `gorm:"not null" validate:"required,gt=0" json:"price"`
	// VipPrice is the full per-seat rate for VIP rows, not a surcharge on Price.
	VipPrice float64 `gorm:"not null" json:"vipPrice"`
	Screen   string  `gorm:"default:'Screen 1'" json:"screen"`
	Status   string  `gorm:"default:SCHEDULED" json:"status"`

	Movie   Movie   `gorm:"foreignKey:MovieId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"movie"`
	Theater Theater `gorm:"foreignKey:TheaterId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"theater"`

	Seats []ShowtimeSeat `gorm:"foreignKey:ShowtimeId" json:"-"`
}

// ShowtimeSeat is one seat of one showtime. The full label set is fixed when
// the showtime is created; a seat is always in exactly one status.
type ShowtimeSeat struct {
	DTO
	ShowtimeId uint   `gorm:"not null;uniqueIndex:idx_showtime_label" json:"showtimeId"`
	Label      string `gorm:"size:5;not null;uniqueIndex:idx_showtime_label" json:"label"` // e.g. "A3"
	Row        string `gorm:"size:2;not null" json:"row"`
	Number     int    `gorm:"not null" json:"number"`
	IsVip      bool   `gorm:"default:false" json:"isVip"`
	Status     string `gorm:"not null;default:AVAILABLE" json:"status"` // AVAILABLE, HELD, BOOKED
	HeldBy     string `json:"heldBy,omitempty"`
	ExpiredAt  *time.Time `json:"expiredAt,omitempty"`

	Showtime Showtime `gorm:"foreignKey:ShowtimeId" json:"-"`
}

type CreateShowtimeInput struct {
	MovieId   uint      `json:"movieId" validate:"required,gt=0"`
	TheaterId uint      `json:"theaterId" validate:"required,gt=0"`
	StartTime time.Time `json:"startTime" validate:"required"`
	Price     float64   `json:"price" validate:"required,gt=0"`
	VipPrice  float64   `json:"vipPrice" validate:"omitempty,gtfield=Price"`
	Screen    string    `json:"screen"`
}

type EditShowtimeInput struct {
	StartTime *time.Time `json:"startTime"`
	Price     *float64   `json:"price" validate:"omitempty,gt=0"`
	VipPrice  *float64   `json:"vipPrice" validate:"omitempty,gt=0"`
	Screen    *string    `json:"screen"`
}

type FilterShowtime struct {
	Pagination
	MovieId   uint   `json:"movieId" validate:"omitempty,gt=0"`
	TheaterId uint   `json:"theaterId" validate:"omitempty,gt=0"`
	StartDate string `json:"startDate"` // YYYY-MM-DD
	EndDate   string `json:"endDate"`
	Status    string `json:"status" validate:"omitempty,oneof=SCHEDULED EXPIRED CANCELLED"`
}

type HoldSeatsInput struct {
	Seats []string `json:"seats" validate:"required,min=1,dive,required"`
}
