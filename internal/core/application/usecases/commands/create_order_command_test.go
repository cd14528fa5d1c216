package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id, name string, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(id, name, quantity)
	require.NoError(t, err)
	return item
}

func TestNewCreateOrderCommand(t *testing.T) {
	items := []order.Item{mustItem(t, "1", "TesteItem", 1)}

	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("Test name", "Teste", items)
		require.NoError(t, err)

		assert.Equal(t, "Test name", cmd.Name())
		assert.Equal(t, "Teste", cmd.Description())
		assert.Equal(t, items, cmd.Items())
		require.NoError(t, cmd.Validate())
	})

	t.Run("description is optional", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("Test name", "", items)
		require.NoError(t, err)
		assert.Empty(t, cmd.Description())
	})

	t.Run("creation rule boundaries", func(t *testing.T) {
		testCases := []struct {
			name      string
			orderName string
			items     []order.Item
			wantErr   bool
		}{
			{"empty name", "", items, true},
			{"length 3 name rejected", "abc", items, true},
			{"length 4 name accepted", "abcd", items, false},
			{"empty items", "Test name", nil, true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := commands.NewCreateOrderCommand(tc.orderName, "Teste", tc.items)
				if tc.wantErr {
					require.ErrorIs(t, err, order.ErrInvalidOrder)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
