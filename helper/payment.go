package helper

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"movie_booking/constants"
	"movie_booking/model"
	"movie_booking/utils"
)

// PaymentError is a validation or settlement failure. Validation failures are
// deterministic; settlement failures come from the simulated gateway.
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	return e.Reason
}

// SettlementResult is the outcome of one payment attempt.
type SettlementResult struct {
	Success       bool
	TransactionId string
	Reason        string
}

var txnPrefixes = map[string]string{
	constants.METHOD_CREDIT_CARD: "cc",
	constants.METHOD_DEBIT_CARD:  "dc",
	constants.METHOD_WALLET:      "wal",
	constants.METHOD_CASH:        "cash",
}

// Per-method settlement success rates. Cash has no remote step and always
// succeeds; the other rates exist to exercise the failure path.
var settlementRates = map[string]float64{
	constants.METHOD_CREDIT_CARD: 0.95,
	constants.METHOD_DEBIT_CARD:  0.95,
	constants.METHOD_WALLET:      0.90,
	constants.METHOD_CASH:        1.0,
}

var (
	txnCounter uint64

	settleMu   sync.Mutex
	settleRand = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// NewTransactionId returns a method-prefixed id that cannot collide within
// the process lifetime: the counter component is strictly increasing.
func NewTransactionId(method string) string {
	prefix, ok := txnPrefixes[method]
	if !ok {
		prefix = "txn"
	}
	return fmt.Sprintf("%s-%d-%06d", prefix, time.Now().UnixNano(), atomic.AddUint64(&txnCounter, 1))
}

// ValidatePaymentDetails checks the input shape for the chosen method before
// any settlement is attempted.
func ValidatePaymentDetails(method string, details model.PaymentDetails) error {
	switch method {
	case constants.METHOD_CREDIT_CARD, constants.METHOD_DEBIT_CARD:
		if !utils.IsValidCardNumber(details.CardNumber) {
			return &PaymentError{Reason: "invalid card number: 16 digits required"}
		}
		if details.CardHolder == "" {
			return &PaymentError{Reason: "card holder name is required"}
		}
		if !utils.IsValidExpiry(details.Expiry, time.Now()) {
			return &PaymentError{Reason: "card expiry must be MM/YY and not in the past"}
		}
		if !utils.IsValidCVV(details.CVV) {
			return &PaymentError{Reason: "invalid CVV"}
		}
	case constants.METHOD_WALLET:
		if !utils.IsValidEmail(details.WalletEmail) {
			return &PaymentError{Reason: "a valid wallet email is required"}
		}
	case constants.METHOD_CASH:
		// Nothing to validate.
	default:
		return &PaymentError{Reason: fmt.Sprintf("unsupported payment method: %s", method)}
	}
	return nil
}

// SettlePayment runs the simulated gateway step. A real gateway call would
// replace the body but must keep the contract: validate first, then return
// either a transaction id or a failure reason.
func SettlePayment(method string, amount float64, details model.PaymentDetails) SettlementResult {
	if err := ValidatePaymentDetails(method, details); err != nil {
		return SettlementResult{Success: false, Reason: err.Error()}
	}
	if amount < 0 {
		return SettlementResult{Success: false, Reason: "amount must be non-negative"}
	}

	rate := settlementRates[method]
	settleMu.Lock()
	roll := settleRand.Float64()
	settleMu.Unlock()

	if roll >= rate {
		return SettlementResult{Success: false, Reason: "payment declined by gateway"}
	}

	return SettlementResult{Success: true, TransactionId: NewTransactionId(method)}
}

// NewFailedPaymentAttempt builds the audit row for a declined or rejected
// attempt. No booking and no transaction id exist at that point, so both stay
// nil; user and showtime keep the attempt traceable.
func NewFailedPaymentAttempt(userId, showtimeId uint, method string, amount float64, reason string) model.Payment {
	return model.Payment{
		UserId:     userId,
		ShowtimeId: showtimeId,
		Amount:     amount,
		Method:     method,
		Status:     constants.PAYMENT_FAILED,
		FailReason: reason,
	}
}

// CanRefund reports whether a payment in the given status may be refunded.
// Only settled money can move back; anything else leaves the record as is.
func CanRefund(status string) error {
	if status != constants.PAYMENT_COMPLETED {
		return &PaymentError{Reason: fmt.Sprintf("cannot refund a payment with status %s", status)}
	}
	return nil
}

// SetSettlementSeed makes the stochastic settlement step reproducible.
func SetSettlementSeed(seed int64) {
	settleMu.Lock()
	settleRand = rand.New(rand.NewSource(seed))
	settleMu.Unlock()
}

// PaymentMethods lists the supported methods with client-facing metadata.
func PaymentMethods() []model.PaymentMethodInfo {
	return []model.PaymentMethodInfo{
		{Method: constants.METHOD_CREDIT_CARD, Label: "Credit card",
			RequiredFields: []string{"cardNumber", "cardHolder", "expiry", "cvv"}},
		{Method: constants.METHOD_DEBIT_CARD, Label: "Debit card",
			RequiredFields: []string{"cardNumber", "cardHolder", "expiry", "cvv"}},
		{Method: constants.METHOD_WALLET, Label: "Mobile wallet",
			RequiredFields: []string{"walletEmail"}},
		{Method: constants.METHOD_CASH, Label: "Cash at counter",
			RequiredFields: []string{}, Instant: true},
	}
}
