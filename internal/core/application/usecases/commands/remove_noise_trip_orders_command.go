package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrRemoveNoiseTripOrdersCommandIsNotConstructed = errors.New(
	"RemoveNoiseTripOrdersCommand must be created via NewRemoveNoiseTripOrdersCommand constructor",
)

// RemoveNoiseTripOrdersCommand represents an explicit, user-confirmed request
// to drop every order whose trip number is placeholder noise. The removal is
// never performed silently as part of another operation.
type RemoveNoiseTripOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewRemoveNoiseTripOrdersCommand creates a command to purge noise-trip orders.
func NewRemoveNoiseTripOrdersCommand() RemoveNoiseTripOrdersCommand {
	return RemoveNoiseTripOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RemoveNoiseTripOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemoveNoiseTripOrdersCommandIsNotConstructed)
}
