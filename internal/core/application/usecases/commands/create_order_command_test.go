package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	attrs := order.Attributes{Driver: "Alice", TripNumber: "TR-100"}
	cmd, err := commands.NewCreateOrderCommand(id, attrs)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, attrs, cmd.Attributes())
}

func TestNewCreateOrderCommand_EmptyAttributesAllowed(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Attributes{})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, order.Attributes{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
