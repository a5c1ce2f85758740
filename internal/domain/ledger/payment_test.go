package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	t.Run("valid payment", func(t *testing.T) {
		p, err := NewPayment(uuid.New(), uuid.New(), time.Now(), decimal.NewFromInt(2500), PaymentModeCheque, PaymentStatusReceived)
		require.NoError(t, err)
		assert.False(t, p.IsPending())
		assert.False(t, p.IsLinked())
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewPayment(uuid.New(), uuid.New(), time.Now(), decimal.Zero, PaymentModeCash, PaymentStatusReceived)
		require.Error(t, err)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		_, err := NewPayment(uuid.New(), uuid.New(), time.Now(), decimal.NewFromInt(10), PaymentMode("Barter"), PaymentStatusReceived)
		require.Error(t, err)
	})
}

func TestPaymentLinking(t *testing.T) {
	p, err := NewPayment(uuid.New(), uuid.New(), time.Now(), decimal.NewFromInt(100), PaymentModeCash, PaymentStatusReceived)
	require.NoError(t, err)

	require.NoError(t, p.LinkBill(uuid.New()))
	assert.True(t, p.IsLinked())

	// a payment settles at most one document
	err = p.LinkLetter(uuid.New())
	assert.Error(t, err)
}

func TestParsePaymentMode(t *testing.T) {
	mode, err := ParsePaymentMode("NEFT")
	require.NoError(t, err)
	assert.Equal(t, PaymentModeTransfer, mode)

	mode, err = ParsePaymentMode("check")
	require.NoError(t, err)
	assert.Equal(t, PaymentModeCheque, mode)

	_, err = ParsePaymentMode("gold")
	assert.Error(t, err)
}

func TestReceiptNumberGeneration(t *testing.T) {
	t.Run("defaults to a time-derived token", func(t *testing.T) {
		r, err := NewReceipt(uuid.New(), "", time.Now())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(r.ReceiptNumber, "RCPT-"))
	})

	t.Run("caller-supplied number wins", func(t *testing.T) {
		r, err := NewReceipt(uuid.New(), "RC-0042", time.Now())
		require.NoError(t, err)
		assert.Equal(t, "RC-0042", r.ReceiptNumber)
	})

	t.Run("consecutive generated numbers differ", func(t *testing.T) {
		a := GenerateReceiptNumber()
		b := GenerateReceiptNumber()
		assert.NotEqual(t, a, b)
	})
}
