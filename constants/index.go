package constants

// Roles
const (
	ROLE_ADMIN = "admin"
	ROLE_USER  = "user"
)

// Booking status
const (
	BOOKING_CONFIRMED = "CONFIRMED"
	BOOKING_CANCELLED = "CANCELLED"
	BOOKING_COMPLETED = "COMPLETED"
)

// Payment status
const (
	PAYMENT_PENDING    = "PENDING"
	PAYMENT_PROCESSING = "PROCESSING"
	PAYMENT_COMPLETED  = "COMPLETED"
	PAYMENT_FAILED     = "FAILED"
	PAYMENT_REFUNDED   = "REFUNDED"
	PAYMENT_CANCELLED  = "CANCELLED"
)

// Payment methods
const (
	METHOD_CREDIT_CARD = "credit_card"
	METHOD_DEBIT_CARD  = "debit_card"
	METHOD_WALLET      = "wallet"
	METHOD_CASH        = "cash"
)

// Showtime status
const (
	SHOWTIME_SCHEDULED = "SCHEDULED"
	SHOWTIME_EXPIRED   = "EXPIRED"
	SHOWTIME_CANCELLED = "CANCELLED"
)

// Movie status
const (
	MOVIE_COMING_SOON = "COMING_SOON"
	MOVIE_NOW_SHOWING = "NOW_SHOWING"
	MOVIE_ENDED       = "ENDED"
)

// Common error messages
const (
	MISSING_LOGIN_INPUT   = "Email and password are required"
	INVALID_EMAIL         = "Email does not exist"
	INVALID_PASSWORD      = "Incorrect password"
	ACCOUNT_NOT_ACTIVE    = "Account is deactivated"
	ERROR_INTERNAL_ERROR  = "Internal server error"
	ERROR_CREATE          = "Failed to create record"
	ERROR_PARSE_LOCALS    = "Failed to read parsed input"
	CAN_NOT_HASH_PASSWORD = "Failed to hash password"
	DATA_INPUT_NOT_NUMBER = "Parameter must be a number"
)
