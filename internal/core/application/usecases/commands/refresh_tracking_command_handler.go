package commands

import (
	"context"
	"log/slog"

	"printshop/internal/core/ports"
)

// RefreshTrackingCommandHandler polls the carrier for all shipped orders and
// records confirmed deliveries.
//
// Carrier lookups for individual shipments may fail independently; a failed
// lookup is logged and skipped so one flaky tracking number does not stall
// the rest of the batch.
type RefreshTrackingCommandHandler struct {
	uowFactory OrderUoWFactory
	carrier    ports.Carrier
	logger     *slog.Logger
}

// NewRefreshTrackingCommandHandler creates a handler for tracking refreshes.
func NewRefreshTrackingCommandHandler(
	uowFactory OrderUoWFactory,
	carrier ports.Carrier,
	logger *slog.Logger,
) RefreshTrackingCommandHandler {
	return RefreshTrackingCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
		logger:     logger,
	}
}

// Handle processes the tracking refresh.
// Loads every order in Shipped status, asks the carrier for its current
// state, and marks delivered orders. All updates commit in one transaction.
func (h *RefreshTrackingCommandHandler) Handle(ctx context.Context, cmd RefreshTrackingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	shipped, err := repo.GetAllInShippedStatus(ctx)
	if err != nil {
		return err
	}

	for _, o := range shipped {
		status, trackErr := h.carrier.Track(ctx, o.TrackingNumber())
		if trackErr != nil {
			h.logger.Warn("tracking lookup failed",
				"order", o.Number(),
				"trackingNumber", o.TrackingNumber(),
				"error", trackErr)
			continue
		}

		if !status.Delivered {
			continue
		}

		if err = o.MarkDelivered(); err != nil {
			return err
		}
		if err = repo.Update(ctx, o); err != nil {
			return err
		}

		h.logger.Info("order delivered",
			"order", o.Number(),
			"trackingNumber", o.TrackingNumber())
	}

	return uow.Commit(ctx)
}
