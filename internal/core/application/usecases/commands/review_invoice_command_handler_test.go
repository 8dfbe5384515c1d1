package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/billing"
	"dispatch/internal/core/domain/model/invoice"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func draftSessionInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	base, err := kernel.NewMoney(25)
	require.NoError(t, err)
	zero, err := kernel.NewMoney(0)
	require.NoError(t, err)
	item, err := invoice.NewItem(invoice.ItemParams{
		OrderID:   "TR-100",
		Driver:    "Alice",
		Distance:  10,
		RouteType: route.Single,
		Stops:     1,
		BaseCost:  base,
		AddOns:    zero,
	})
	require.NoError(t, err)
	inv, err := invoice.NewInvoice(invoice.Details{BusinessName: "Acme"}, []invoice.Item{item})
	require.NoError(t, err)
	return inv
}

func reviewedSessionInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	reviewed, err := draftSessionInvoice(t).Review()
	require.NoError(t, err)
	return reviewed
}

func TestReviewInvoiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	current := draftSessionInvoice(t)

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(current, nil).Once(),
		repo.On("Save", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewInvoiceCommandHandler(factory)
	err := h.Handle(ctx, commands.NewReviewInvoiceCommand())
	require.NoError(t, err)

	saved := repo.Calls[1].Arguments.Get(1).(*invoice.Invoice)
	assert.Equal(t, invoice.Reviewed, saved.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReviewInvoiceCommandHandler_Handle_AlreadyReviewed(t *testing.T) {
	ctx := t.Context()

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(reviewedSessionInvoice(t), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewInvoiceCommandHandler(factory)
	err := h.Handle(ctx, commands.NewReviewInvoiceCommand())
	require.Error(t, err)
	require.ErrorIs(t, err, invoice.ErrInvalidStateTransition)
	uow.AssertExpectations(t)
}

func TestFinalizeInvoiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(reviewedSessionInvoice(t), nil).Once(),
		repo.On("Save", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinalizeInvoiceCommandHandler(factory)
	err := h.Handle(ctx, commands.NewFinalizeInvoiceCommand())
	require.NoError(t, err)

	saved := repo.Calls[1].Arguments.Get(1).(*invoice.Invoice)
	assert.Equal(t, invoice.Finalized, saved.Status())
	uow.AssertExpectations(t)
}

func TestFinalizeInvoiceCommandHandler_Handle_DraftRejected(t *testing.T) {
	ctx := t.Context()

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(draftSessionInvoice(t), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinalizeInvoiceCommandHandler(factory)
	err := h.Handle(ctx, commands.NewFinalizeInvoiceCommand())
	require.Error(t, err)
	require.ErrorIs(t, err, invoice.ErrInvalidStateTransition)
	uow.AssertExpectations(t)
}

func TestUpdateInvoiceDetailsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(draftSessionInvoice(t), nil).Once(),
		repo.On("Save", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateInvoiceDetailsCommandHandler(factory)
	cmd := commands.NewUpdateInvoiceDetailsCommand(invoice.Details{BusinessName: "Acme", ContactPerson: "Pat"})
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	saved := repo.Calls[1].Arguments.Get(1).(*invoice.Invoice)
	assert.Equal(t, "Pat", saved.Details().ContactPerson)
	uow.AssertExpectations(t)
}

func TestRecalculateInvoiceItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(draftSessionInvoice(t), nil).Once(),
		repo.On("Save", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewRecalculateInvoiceItemCommand(0, 40, billing.DefaultSettings())
	require.NoError(t, err)

	h := commands.NewRecalculateInvoiceItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	saved := repo.Calls[1].Arguments.Get(1).(*invoice.Invoice)
	item, err := saved.Item(0)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, item.Distance(), 1e-9)
	assert.InDelta(t, 44.0, item.TotalCost().Amount(), 1e-9)
	assert.True(t, item.Recalculated())
	uow.AssertExpectations(t)
}

func TestRecalculateInvoiceItemCommandHandler_Handle_LockedInvoice(t *testing.T) {
	ctx := t.Context()
	finalized, err := reviewedSessionInvoice(t).Finalize()
	require.NoError(t, err)

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(finalized, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewRecalculateInvoiceItemCommand(0, 40, billing.DefaultSettings())
	require.NoError(t, err)

	h := commands.NewRecalculateInvoiceItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, invoice.ErrInvoiceLocked)
	uow.AssertExpectations(t)
}

func TestNewRecalculateInvoiceItemCommand_AdjustmentDisabled(t *testing.T) {
	settings := billing.DefaultSettings()
	settings.AllowManualDistanceAdjustment = false

	_, err := commands.NewRecalculateInvoiceItemCommand(0, 40, settings)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrManualAdjustmentDisabled)
}
