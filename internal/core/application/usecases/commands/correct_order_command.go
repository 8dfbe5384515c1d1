package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCorrectOrderCommandIsNotConstructed = errors.New(
		"CorrectOrderCommand must be created via NewCorrectOrderCommand constructor",
	)

	// ErrNoCorrections is returned when a correction command carries no
	// field to change.
	ErrNoCorrections = errs.NewValueIsRequiredError("at least one correction")
)

// CorrectOrderCommand represents a request to fix one ingested order: assign
// a driver, attach it to a trip, or override its distance. Nil fields are
// left untouched.
//
// Example:
//
//	tripNumber := "TR-100"
//	cmd, err := NewCorrectOrderCommand(orderID, CorrectOrderFields{TripNumber: &tripNumber})
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to correct order: %w", err)
//	}
type CorrectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	fields  CorrectOrderFields

	guard guard.ConstructorGuard
}

// CorrectOrderFields carries the optional corrections. A non-nil field is
// applied; an empty string detaches the value.
type CorrectOrderFields struct {
	Driver     *string
	TripNumber *string
	Distance   *float64
}

// NewCorrectOrderCommand creates a command to correct the addressed order.
// At least one correction must be present.
func NewCorrectOrderCommand(orderID kernel.UUID, fields CorrectOrderFields) (CorrectOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CorrectOrderCommand{}, err
	}
	if fields.Driver == nil && fields.TripNumber == nil && fields.Distance == nil {
		return CorrectOrderCommand{}, ErrNoCorrections
	}

	return CorrectOrderCommand{
		orderID: orderID,
		fields:  fields,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CorrectOrderCommand) Validate() error {
	return c.guard.Validate(ErrCorrectOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to correct.
func (c CorrectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Fields returns the corrections to apply.
func (c CorrectOrderCommand) Fields() CorrectOrderFields {
	return c.fields
}
