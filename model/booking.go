package model

import "time"

type Booking struct {
	DTO
	PublicCode string `gorm:"size:20;uniqueIndex" json:"publicCode"` // BKG-XXXXXXXX
	UserId     uint   `gorm:"not null" json:"userId"`
	ShowtimeId uint   `gorm:"not null" json:"showtimeId"`
	// SeatLabels is the comma-joined seat list, unique within the booking.
	SeatLabels  string  `gorm:"not null" json:"-"`
	TotalPrice  float64 `gorm:"not null" json:"totalPrice"`
	Description string  `json:"description"`
	Status      string  `gorm:"not null;default:CONFIRMED" json:"status"`
	// PaymentStatus mirrors the latest non-failed payment attempt.
	PaymentStatus string `gorm:"not null;default:PENDING" json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`

	VipExperience bool   `gorm:"default:false" json:"vipExperience"`
	ParkingPass   bool   `gorm:"default:false" json:"parkingPass"`
	FoodItemIds   string `json:"-"` // comma-joined FoodItem ids

	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	User     User      `gorm:"foreignKey:UserId" json:"-"`
	Showtime Showtime  `gorm:"foreignKey:ShowtimeId" json:"showtime"`
	Payments []Payment `gorm:"foreignKey:BookingId" json:"-"`
}

type Bookings []Booking

type CreateBookingInput struct {
	ShowtimeId     uint           `json:"showtimeId" validate:"required,gt=0"`
	Seats          []string       `json:"seats" validate:"required,min=1,dive,required"`
	PaymentMethod  string         `json:"paymentMethod" validate:"required,oneof=credit_card debit_card wallet cash"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
	VipExperience  bool           `json:"isVIP"`
	ParkingPass    bool           `json:"parkingPass"`
	FoodOptions    []uint         `json:"foodOptions" validate:"omitempty,dive,gt=0"`
}

type CancelBookingInput struct {
	RefundRequested bool `json:"refundRequested"`
}

// UserBookingsResponse splits a user's bookings for the profile screen.
type UserBookingsResponse struct {
	Upcoming []Booking `json:"upcoming"`
	History  []Booking `json:"history"`
}
