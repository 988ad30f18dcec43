package model

import "time"

// Payment is one settlement attempt. Failed attempts accumulate without a
// booking or transaction id, so both are nullable; UserId and ShowtimeId keep
// the attempt traceable after the reservation rolls back.
type Payment struct {
	DTO
	BookingId     *uint      `gorm:"index" json:"bookingId,omitempty"`
	UserId        uint       `gorm:"index" json:"userId"`
	ShowtimeId    uint       `gorm:"index" json:"showtimeId"`
	Amount        float64    `gorm:"not null" json:"amount"`
	Method        string     `gorm:"not null" json:"method"`
	Status        string     `gorm:"not null;default:PENDING" json:"status"`
	TransactionId *string    `gorm:"uniqueIndex" json:"transactionId,omitempty"`
	FailReason    string     `json:"failReason,omitempty"`
	RefundedAt    *time.Time `json:"refundedAt,omitempty"`

	Booking *Booking `gorm:"foreignKey:BookingId" json:"-"`
}

type Payments []Payment

// PaymentDetails is a tagged union: only the fields of the selected method are
// read, everything else is ignored. Cash carries no details at all.
type PaymentDetails struct {
	// Card methods
	CardNumber string `json:"cardNumber,omitempty"`
	CardHolder string `json:"cardHolder,omitempty"`
	Expiry     string `json:"expiry,omitempty"` // MM/YY
	CVV        string `json:"cvv,omitempty"`
	// Wallet
	WalletEmail string `json:"walletEmail,omitempty"`
}

// PaymentMethodInfo describes one supported method for the client.
type PaymentMethodInfo struct {
	Method         string   `json:"method"`
	Label          string   `json:"label"`
	RequiredFields []string `json:"requiredFields"`
	Instant        bool     `json:"instant"`
}
