package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogProduct(t *testing.T, id kernel.UUID, price string, stock int) *product.Product {
	t.Helper()
	unitPrice, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	p, err := product.NewProduct(id, "Margherita", unitPrice, stock)
	require.NoError(t, err)
	return p
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Main St",
		[]commands.LineInput{{ProductID: productID, Quantity: 2}},
	)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(newCatalogProduct(t, productID, "9.90", 10), nil).Once(),
		productRepo.On("ReserveStock", mock.Anything, productID, 2).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	persisted := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, order.Pending, persisted.Status())
	require.Len(t, persisted.Lines(), 1)
	assert.Equal(t, 2, persisted.Lines()[0].Quantity())
	assert.Equal(t, "19.80", persisted.Total().String())

	record := deliveryRepo.Calls[0].Arguments.Get(1).(*delivery.Delivery)
	assert.Equal(t, persisted.ID(), record.OrderID())
	assert.False(t, record.IsCompleted())

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_MergesDuplicateProducts(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Main St",
		[]commands.LineInput{
			{ProductID: productID, Quantity: 2},
			{ProductID: productID, Quantity: 3},
		},
	)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, productID).
		Return(newCatalogProduct(t, productID, "9.90", 10), nil).Twice()
	productRepo.On("ReserveStock", mock.Anything, productID, 2).Return(nil).Once()
	productRepo.On("ReserveStock", mock.Anything, productID, 3).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	persisted := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	require.Len(t, persisted.Lines(), 1)
	assert.Equal(t, 5, persisted.Lines()[0].Quantity())
	assert.Equal(t, "49.50", persisted.Total().String())
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Main St",
		[]commands.LineInput{{ProductID: productID, Quantity: 5}},
	)

	stockErr := product.NewInsufficientStockError(productID.String(), 1, 5)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(newCatalogProduct(t, productID, "9.90", 1), nil).Once(),
		productRepo.On("ReserveStock", mock.Anything, productID, 5).Return(stockErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrInsufficientStock)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}
