package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newShippedOrder creates an order already in Shipped status with the given
// tracking number.
func newShippedOrder(t *testing.T, trackingNumber string) *order.PrintOrder {
	t.Helper()
	o := newPaidOrder(t)
	require.NoError(t, o.Ship(trackingNumber))
	return o
}

func TestRefreshTrackingCommandHandler_Handle_MarksDelivered(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshTrackingCommand()

	delivered := newShippedOrder(t, "1Z999AA10123456784")
	inTransit := newShippedOrder(t, "1Z999AA10123456785")

	orderRepo := new(MockShipOrderRepository)
	uow := new(MockShipUoW)
	carrier := new(MockCarrier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllInShippedStatus", ctx).
			Return([]*order.PrintOrder{delivered, inTransit}, nil).
			Once(),
		carrier.On("Track", ctx, "1Z999AA10123456784").
			Return(ports.TrackingStatus{TrackingNumber: "1Z999AA10123456784", Delivered: true}, nil).
			Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.PrintOrder")).Return(nil).Once(),
		carrier.On("Track", ctx, "1Z999AA10123456785").
			Return(ports.TrackingStatus{TrackingNumber: "1Z999AA10123456785", Description: "In Transit"}, nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRefreshTrackingCommandHandler(factory, carrier, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, delivered.Status())
	assert.Equal(t, order.Shipped, inTransit.Status())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	carrier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRefreshTrackingCommandHandler_Handle_NoShippedOrders(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshTrackingCommand()

	orderRepo := new(MockShipOrderRepository)
	uow := new(MockShipUoW)
	carrier := new(MockCarrier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllInShippedStatus", ctx).Return([]*order.PrintOrder{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRefreshTrackingCommandHandler(factory, carrier, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	carrier.AssertNotCalled(t, "Track", mock.Anything, mock.Anything)
}

func TestRefreshTrackingCommandHandler_Handle_SkipsFailedLookups(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshTrackingCommand()

	flaky := newShippedOrder(t, "1Z999AA10123456784")
	delivered := newShippedOrder(t, "1Z999AA10123456785")

	orderRepo := new(MockShipOrderRepository)
	uow := new(MockShipUoW)
	carrier := new(MockCarrier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllInShippedStatus", ctx).
			Return([]*order.PrintOrder{flaky, delivered}, nil).
			Once(),
		carrier.On("Track", ctx, "1Z999AA10123456784").
			Return(ports.TrackingStatus{}, errors.New("carrier timeout")).
			Once(),
		carrier.On("Track", ctx, "1Z999AA10123456785").
			Return(ports.TrackingStatus{TrackingNumber: "1Z999AA10123456785", Delivered: true}, nil).
			Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.PrintOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRefreshTrackingCommandHandler(factory, carrier, discardLogger())
	err := handler.Handle(ctx, cmd)

	// One failed lookup does not fail the batch; the other order still lands.
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, flaky.Status())
	assert.Equal(t, order.Delivered, delivered.Status())
}

func TestRefreshTrackingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RefreshTrackingCommand{} // not constructed properly

	factory := new(MockShipUoWFactory)
	carrier := new(MockCarrier)
	handler := commands.NewRefreshTrackingCommandHandler(factory, carrier, discardLogger())

	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRefreshTrackingCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRefreshTrackingCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshTrackingCommand()

	orderRepo := new(MockShipOrderRepository)
	uow := new(MockShipUoW)
	carrier := new(MockCarrier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllInShippedStatus", ctx).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRefreshTrackingCommandHandler(factory, carrier, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}
