package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrRemoveMissingTripNumberOrdersCommandIsNotConstructed = errors.New(
	"RemoveMissingTripNumberOrdersCommand must be created via NewRemoveMissingTripNumberOrdersCommand constructor",
)

// RemoveMissingTripNumberOrdersCommand represents an explicit, user-confirmed
// request to drop every order without a trip number. Like noise removal, it
// is a standalone bulk action, never a silent side effect.
type RemoveMissingTripNumberOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewRemoveMissingTripNumberOrdersCommand creates a command to purge orders
// lacking a trip number.
func NewRemoveMissingTripNumberOrdersCommand() RemoveMissingTripNumberOrdersCommand {
	return RemoveMissingTripNumberOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RemoveMissingTripNumberOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMissingTripNumberOrdersCommandIsNotConstructed)
}
