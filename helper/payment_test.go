package helper

import (
	"strings"
	"testing"
	"time"

	"movie_booking/constants"
	"movie_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() model.PaymentDetails {
	expiry := time.Now().AddDate(1, 0, 0).Format("01/06")
	return model.PaymentDetails{
		CardNumber: "4111 1111 1111 1111",
		CardHolder: "Jane Doe",
		Expiry:     expiry,
		CVV:        "123",
	}
}

func TestValidatePaymentDetailsCard(t *testing.T) {
	assert.NoError(t, ValidatePaymentDetails(constants.METHOD_CREDIT_CARD, validCard()))

	bad := validCard()
	bad.CardNumber = "1234"
	assert.Error(t, ValidatePaymentDetails(constants.METHOD_CREDIT_CARD, bad))

	bad = validCard()
	bad.CVV = "12"
	assert.Error(t, ValidatePaymentDetails(constants.METHOD_DEBIT_CARD, bad))

	bad = validCard()
	bad.Expiry = "01/20"
	assert.Error(t, ValidatePaymentDetails(constants.METHOD_CREDIT_CARD, bad))

	bad = validCard()
	bad.CardHolder = ""
	assert.Error(t, ValidatePaymentDetails(constants.METHOD_CREDIT_CARD, bad))
}

func TestValidatePaymentDetailsWallet(t *testing.T) {
	assert.NoError(t, ValidatePaymentDetails(constants.METHOD_WALLET, model.PaymentDetails{WalletEmail: "a@b.com"}))
	assert.Error(t, ValidatePaymentDetails(constants.METHOD_WALLET, model.PaymentDetails{WalletEmail: "not-an-email"}))
}

func TestValidatePaymentDetailsCashNeedsNothing(t *testing.T) {
	assert.NoError(t, ValidatePaymentDetails(constants.METHOD_CASH, model.PaymentDetails{}))
}

func TestValidatePaymentDetailsUnknownMethod(t *testing.T) {
	assert.Error(t, ValidatePaymentDetails("cheque", model.PaymentDetails{}))
}

func TestSettlePaymentCashAlwaysSucceeds(t *testing.T) {
	for i := 0; i < 50; i++ {
		result := SettlePayment(constants.METHOD_CASH, 42, model.PaymentDetails{})
		require.True(t, result.Success)
		assert.True(t, strings.HasPrefix(result.TransactionId, "cash-"))
	}
}

func TestSettlePaymentValidationFailureIsDeterministic(t *testing.T) {
	bad := validCard()
	bad.CVV = "1"

	result := SettlePayment(constants.METHOD_CREDIT_CARD, 100, bad)

	assert.False(t, result.Success)
	assert.Empty(t, result.TransactionId)
	assert.Contains(t, result.Reason, "CVV")
}

func TestSettlePaymentRejectsNegativeAmount(t *testing.T) {
	result := SettlePayment(constants.METHOD_CASH, -1, model.PaymentDetails{})
	assert.False(t, result.Success)
}

func TestSettlePaymentSeeded(t *testing.T) {
	SetSettlementSeed(1)
	first := SettlePayment(constants.METHOD_WALLET, 100, model.PaymentDetails{WalletEmail: "a@b.com"})

	SetSettlementSeed(1)
	second := SettlePayment(constants.METHOD_WALLET, 100, model.PaymentDetails{WalletEmail: "a@b.com"})

	assert.Equal(t, first.Success, second.Success)
}

func TestNewTransactionIdUniqueAndPrefixed(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTransactionId(constants.METHOD_CREDIT_CARD)
		require.True(t, strings.HasPrefix(id, "cc-"))
		require.False(t, seen[id], "duplicate transaction id %s", id)
		seen[id] = true
	}

	assert.True(t, strings.HasPrefix(NewTransactionId(constants.METHOD_DEBIT_CARD), "dc-"))
	assert.True(t, strings.HasPrefix(NewTransactionId(constants.METHOD_WALLET), "wal-"))
	assert.True(t, strings.HasPrefix(NewTransactionId("unknown"), "txn-"))
}

func TestCanRefundOnlyCompleted(t *testing.T) {
	assert.NoError(t, CanRefund(constants.PAYMENT_COMPLETED))

	for _, status := range []string{
		constants.PAYMENT_FAILED,
		constants.PAYMENT_PENDING,
		constants.PAYMENT_REFUNDED,
		constants.PAYMENT_CANCELLED,
	} {
		err := CanRefund(status)
		require.Error(t, err)
		assert.Contains(t, err.Error(), status)
	}
}

func TestFailedPaymentAttemptsAccumulate(t *testing.T) {
	first := NewFailedPaymentAttempt(7, 3, constants.METHOD_CREDIT_CARD, 108, "payment declined by gateway")
	second := NewFailedPaymentAttempt(7, 3, constants.METHOD_CREDIT_CARD, 108, "payment declined by gateway")

	// Nil transaction ids cannot collide on the unique index, so repeated
	// declines each keep their own audit row.
	assert.Nil(t, first.TransactionId)
	assert.Nil(t, second.TransactionId)
	assert.Nil(t, first.BookingId)

	assert.Equal(t, constants.PAYMENT_FAILED, first.Status)
	assert.Equal(t, uint(7), first.UserId)
	assert.Equal(t, uint(3), first.ShowtimeId)
	assert.Equal(t, "payment declined by gateway", first.FailReason)
}

func TestPaymentMethodsMetadata(t *testing.T) {
	methods := PaymentMethods()
	require.Len(t, methods, 4)

	byMethod := make(map[string]model.PaymentMethodInfo)
	for _, m := range methods {
		byMethod[m.Method] = m
	}

	assert.Contains(t, byMethod[constants.METHOD_CREDIT_CARD].RequiredFields, "cvv")
	assert.Equal(t, []string{"walletEmail"}, byMethod[constants.METHOD_WALLET].RequiredFields)
	assert.True(t, byMethod[constants.METHOD_CASH].Instant)
	assert.Empty(t, byMethod[constants.METHOD_CASH].RequiredFields)
}
