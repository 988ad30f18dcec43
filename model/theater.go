package model

type Theater struct {
	DTO
	Slug     string `gorm:"uniqueIndex" json:"slug"`
	Name     string `gorm:"not null" validate:"required" json:"name"`
	Location string `gorm:"not null" validate:"required" json:"location"`
	Capacity int    `json:"capacity"`
	// Amenities is a comma-separated tag list, e.g. "IMAX,VIP Seating,Food Court".
	Amenities string `json:"amenities"`
	Screens   int    `gorm:"default:1" json:"screens"`
	// Layout: rows are labelled A.. upward, VipRows names the premium ones.
	Rows        int    `gorm:"not null" validate:"required,gt=0" json:"rows"`
	SeatsPerRow int    `gorm:"not null" validate:"required,gt=0" json:"seatsPerRow"`
	VipRows     string `gorm:"default:'A,B'" json:"vipRows"`
	IsActive    *bool  `gorm:"default:true" json:"isActive"`

	Showtimes []Showtime `gorm:"foreignKey:TheaterId" json:"-"`
}

type Theaters []Theater

type CreateTheaterInput struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Amenities   string `json:"amenities"`
	Screens     int    `json:"screens" validate:"omitempty,gt=0"`
	Rows        int    `json:"rows" validate:"required,gt=0,lte=26"`
	SeatsPerRow int    `json:"seatsPerRow" validate:"required,gt=0"`
	VipRows     string `json:"vipRows"`
}

type EditTheaterInput struct {
	Name      *string `json:"name"`
	Location  *string `json:"location"`
	Amenities *string `json:"amenities"`
	Screens   *int    `json:"screens" validate:"omitempty,gt=0"`
	VipRows   *string `json:"vipRows"`
	IsActive  *bool   `json:"isActive"`
}

type FilterTheater struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Location  string `json:"location"`
	Active    *bool  `json:"active"`
}
