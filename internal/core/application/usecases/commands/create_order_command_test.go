package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
)

func TestNewCreateOrderCommand(t *testing.T) {
	validLines := []commands.OrderLine{{MenuItemID: kernel.NewUUID(), Quantity: 1}}

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.SourcePOS, "notes", validLines,
		)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.SourcePOS, "", nil,
		)

		assert.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.SourcePOS, "",
			[]commands.OrderLine{{MenuItemID: kernel.NewUUID(), Quantity: 0}},
		)

		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestNewSplitPaymentCommand(t *testing.T) {
	t.Run("should require at least two parts", func(t *testing.T) {
		_, err := commands.NewSplitPaymentCommand(
			kernel.NewUUID(), kernel.NewUUID(),
			[]commands.SplitPart{{Amount: testMoney(t, "10.00"), Method: payment.MethodCash}},
		)

		assert.ErrorIs(t, err, commands.ErrSplitPartsAreRequired)
	})

	t.Run("should reject zero amount part", func(t *testing.T) {
		_, err := commands.NewSplitPaymentCommand(
			kernel.NewUUID(), kernel.NewUUID(),
			[]commands.SplitPart{
				{Amount: testMoney(t, "0.00"), Method: payment.MethodCash},
				{Amount: testMoney(t, "10.00"), Method: payment.MethodCard},
			},
		)

		assert.Error(t, err)
	})
}

func TestNewProcessPaymentCommand(t *testing.T) {
	t.Run("should reject tendered below amount", func(t *testing.T) {
		tendered := testMoney(t, "5.00")

		_, err := commands.NewProcessPaymentCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testMoney(t, "10.00"), payment.MethodCash, &tendered,
		)

		assert.Error(t, err)
	})
}
