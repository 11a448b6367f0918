package commands

import (
	"errors"

	"printshop/internal/pkg/guard"
)

var ErrRefreshTrackingCommandIsNotConstructed = errors.New(
	"RefreshTrackingCommand must be created via NewRefreshTrackingCommand constructor",
)

// RefreshTrackingCommand represents a request to poll the carrier for every
// shipped order and mark the delivered ones. This is a parameterless batch
// command run periodically by the job scheduler.
type RefreshTrackingCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshTrackingCommand creates a tracking refresh command.
func NewRefreshTrackingCommand() RefreshTrackingCommand {
	return RefreshTrackingCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RefreshTrackingCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTrackingCommandIsNotConstructed)
}
