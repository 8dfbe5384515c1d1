package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to ingest one delivery order into
// the session working set. Every attribute is optional; gaps are recorded on
// the order as missing fields rather than rejected here.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, order.Attributes{
//	    Driver:     "Alice",
//	    Pickup:     "12 Dock Rd",
//	    Dropoff:    "400 Market St",
//	    TripNumber: "TR-100",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to ingest order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	attributes order.Attributes

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to ingest a new delivery order.
// Validates that the order ID is valid; attribute gaps are allowed.
func NewCreateOrderCommand(orderID kernel.UUID, attributes order.Attributes) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:    orderID,
		attributes: attributes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Attributes returns the raw order attribute values to ingest.
func (c CreateOrderCommand) Attributes() order.Attributes {
	return c.attributes
}
