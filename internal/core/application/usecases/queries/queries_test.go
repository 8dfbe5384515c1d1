package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/billing"
	"dispatch/internal/core/domain/model/invoice"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllIncomplete(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ReplaceAll(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Save(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context) (*invoice.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func ingested(t *testing.T, attrs order.Attributes) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), attrs)
	require.NoError(t, err)
	return o
}

func sessionInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	base, err := kernel.NewMoney(44)
	require.NoError(t, err)
	zero, err := kernel.NewMoney(0)
	require.NoError(t, err)
	item, err := invoice.NewItem(invoice.ItemParams{
		OrderID:   "TR-100",
		Driver:    "Alice",
		Pickup:    "A",
		Dropoff:   "B",
		Distance:  40,
		RouteType: route.Single,
		Stops:     1,
		BaseCost:  base,
		AddOns:    zero,
	})
	require.NoError(t, err)
	inv, err := invoice.NewInvoice(invoice.Details{
		Date:         time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		WeekEnding:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		BusinessName: "Acme",
	}, []invoice.Item{item})
	require.NoError(t, err)
	return inv
}

func TestGetIncompleteOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	incomplete := ingested(t, order.Attributes{Pickup: "A", TripNumber: "TR-1"})

	repo := new(MockOrderRepository)
	repo.On("GetAllIncomplete", ctx).Return([]*order.Order{incomplete}, nil).Once()

	h := queries.NewGetIncompleteOrdersQueryHandler(repo)
	responses, err := h.Handle(ctx, queries.NewGetIncompleteOrdersQuery())
	require.NoError(t, err)

	require.Len(t, responses, 1)
	assert.Equal(t, incomplete.ID(), responses[0].ID)
	assert.Contains(t, responses[0].MissingFields, order.FieldAddress)
	repo.AssertExpectations(t)
}

func TestGetIncompleteOrdersQueryHandler_Handle_ValidationError(t *testing.T) {
	h := queries.NewGetIncompleteOrdersQueryHandler(new(MockOrderRepository))
	_, err := h.Handle(t.Context(), queries.GetIncompleteOrdersQuery{})
	require.Error(t, err)
}

func TestGetInvoiceQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	repo := new(MockInvoiceRepository)
	repo.On("Get", ctx).Return(sessionInvoice(t), nil).Once()

	h := queries.NewGetInvoiceQueryHandler(repo)
	response, err := h.Handle(ctx, queries.NewGetInvoiceQuery())
	require.NoError(t, err)

	assert.Equal(t, "draft", response.Status)
	assert.Equal(t, "Acme", response.BusinessName)
	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), response.Date)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), response.WeekEnding)
	assert.False(t, response.LastModified.IsZero())
	assert.InDelta(t, 44.0, response.TotalCost, 1e-9)
	require.Len(t, response.Items, 1)
	assert.Equal(t, "single", response.Items[0].RouteType)
	assert.Nil(t, response.Items[0].OriginalDistance)
	repo.AssertExpectations(t)
}

func TestGetInvoiceQueryHandler_Handle_NoInvoiceYet(t *testing.T) {
	ctx := t.Context()

	repo := new(MockInvoiceRepository)
	repo.On("Get", ctx).Return(nil, errs.NewObjectNotFoundError("invoice", nil)).Once()

	h := queries.NewGetInvoiceQueryHandler(repo)
	_, err := h.Handle(ctx, queries.NewGetInvoiceQuery())
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetIssuesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	orders := []*order.Order{
		// Missing dropoff: error severity.
		ingested(t, order.Attributes{Driver: "Alice", Pickup: "A", TripNumber: "TR-1"}),
	}

	repo := new(MockOrderRepository)
	repo.On("GetAll", ctx).Return(orders, nil).Once()

	detector := services.NewIssueDetector(services.NewRouteOrganizer(nil))
	h := queries.NewGetIssuesQueryHandler(repo, detector)

	query, err := queries.NewGetIssuesQuery(billing.DefaultSettings())
	require.NoError(t, err)

	responses, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, responses, 1)
	assert.Equal(t, "error", responses[0].Severity)
	assert.Equal(t, "Alice", responses[0].Driver)
	repo.AssertExpectations(t)
}
