package payment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/payment"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(s)
	require.NoError(t, err)
	return m
}

func newTestPayment(t *testing.T, method payment.Method) *payment.Payment {
	t.Helper()
	id := kernel.NewUUID()
	p, err := payment.NewPayment(
		id,
		kernel.NewUUID(),
		mustMoney(t, "36.90"),
		method,
		payment.GenerateTransactionID(id),
		nil,
		time.Now(),
	)
	require.NoError(t, err)
	return p
}

func Test_NewPayment(t *testing.T) {
	t.Run("should create pending payment with transaction id", func(t *testing.T) {
		p := newTestPayment(t, payment.MethodCard)

		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Contains(t, p.TransactionID(), "TXN-")
		assert.Nil(t, p.CompletedAt())
	})

	t.Run("should reject non positive amount", func(t *testing.T) {
		_, err := payment.NewPayment(
			kernel.NewUUID(),
			kernel.NewUUID(),
			kernel.ZeroMoney(),
			payment.MethodCash,
			"TXN-000000000000",
			nil,
			time.Now(),
		)

		assert.Error(t, err)
	})

	t.Run("should reject empty transaction id", func(t *testing.T) {
		_, err := payment.NewPayment(
			kernel.NewUUID(),
			kernel.NewUUID(),
			mustMoney(t, "10.00"),
			payment.MethodCash,
			"",
			nil,
			time.Now(),
		)

		assert.Error(t, err)
	})
}

func Test_Payment_Complete(t *testing.T) {
	t.Run("should complete a pending payment", func(t *testing.T) {
		p := newTestPayment(t, payment.MethodCash)
		now := time.Now()

		changed, err := p.Complete(now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, payment.StatusCompleted, p.Status())
		require.NotNil(t, p.CompletedAt())
		assert.Equal(t, now, *p.CompletedAt())
	})

	t.Run("should complete a processing payment", func(t *testing.T) {
		p := newTestPayment(t, payment.MethodCard)
		require.NoError(t, p.MarkProcessing())

		changed, err := p.Complete(time.Now())

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, payment.StatusCompleted, p.Status())
	})

	t.Run("should be idempotent when already completed", func(t *testing.T) {
		p := newTestPayment(t, payment.MethodCard)
		first := time.Now()
		_, err := p.Complete(first)
		require.NoError(t, err)

		changed, err := p.Complete(first.Add(time.Minute))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, first, *p.CompletedAt())
	})

	t.Run("should refuse to complete a failed payment", func(t *testing.T) {
		p := newTestPayment(t, payment.MethodCard)
		require.NoError(t, p.Fail("card declined"))

		_, err := p.Complete(time.Now())

		var procErr *payment.PaymentProcessingError
		require.ErrorAs(t, err, &procErr)
		assert.Equal(t, "PAYMENT_PROCESSING_FAILED", procErr.Code())
	})
}

func Test_Payment_Fail(t *testing.T) {
	t.Run("should record failure reason", func(t *testing.T) {
		p := newTestPayment(t, payment.MethodMobileMoney)

		err := p.Fail("provider timeout")

		require.NoError(t, err)
		assert.Equal(t, payment.StatusFailed, p.Status())
		assert.Equal(t, "provider timeout", p.Details()["failure_reason"])
	})

	t.Run("should refuse to fail a completed payment", func(t *testing.T) {
		p := newTestPayment(t, payment.MethodCard)
		_, err := p.Complete(time.Now())
		require.NoError(t, err)

		assert.Error(t, p.Fail("too late"))
	})
}

func Test_Payment_Refund(t *testing.T) {
	t.Run("should refund a completed payment", func(t *testing.T) {
		p := newTestPayment(t, payment.MethodCard)
		_, err := p.Complete(time.Now())
		require.NoError(t, err)

		err = p.Refund("guest complaint", time.Now())

		require.NoError(t, err)
		assert.Equal(t, payment.StatusRefunded, p.Status())
		assert.Equal(t, "guest complaint", p.Details()["refund_reason"])
	})

	t.Run("should refuse to refund a pending payment", func(t *testing.T) {
		p := newTestPayment(t, payment.MethodCard)

		assert.Error(t, p.Refund("nope", time.Now()))
	})
}

func Test_Method_SettlesImmediately(t *testing.T) {
	assert.True(t, payment.MethodCash.SettlesImmediately())
	assert.False(t, payment.MethodCard.SettlesImmediately())
	assert.False(t, payment.MethodMobileMoney.SettlesImmediately())
}

func Test_NewTip(t *testing.T) {
	t.Run("should create tip", func(t *testing.T) {
		tip, err := payment.NewTip(
			kernel.NewUUID(),
			kernel.NewUUID(),
			nil,
			kernel.NewUUID(),
			mustMoney(t, "5.00"),
			payment.MethodCash,
			time.Now(),
		)

		require.NoError(t, err)
		assert.NoError(t, tip.Validate())
		assert.Nil(t, tip.PaymentID())
	})

	t.Run("should reject zero amount", func(t *testing.T) {
		_, err := payment.NewTip(
			kernel.NewUUID(),
			kernel.NewUUID(),
			nil,
			kernel.NewUUID(),
			kernel.ZeroMoney(),
			payment.MethodCash,
			time.Now(),
		)

		assert.Error(t, err)
	})
}
