package memory

import (
	"context"

	"dispatch/internal/core/domain/model/invoice"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// liveOrderRepository operates on the session state directly, locking the
// store per operation. Used by the query side and by single-shot access
// outside a unit of work.
type liveOrderRepository struct {
	store *Store
}

func (r *liveOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return orderSet{orders: &r.store.orders}.add(aggregate)
}

func (r *liveOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return orderSet{orders: &r.store.orders}.update(aggregate)
}

func (r *liveOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return orderSet{orders: &r.store.orders}.get(id)
}

func (r *liveOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return orderSet{orders: &r.store.orders}.getAll(), nil
}

func (r *liveOrderRepository) GetAllIncomplete(_ context.Context) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return orderSet{orders: &r.store.orders}.getAllIncomplete(), nil
}

func (r *liveOrderRepository) ReplaceAll(_ context.Context, aggregates []*order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return orderSet{orders: &r.store.orders}.replaceAll(aggregates)
}

// liveInvoiceRepository operates on the session invoice slot directly.
type liveInvoiceRepository struct {
	store *Store
}

func (r *liveInvoiceRepository) Save(_ context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.invoice = aggregate
	return nil
}

func (r *liveInvoiceRepository) Get(_ context.Context) (*invoice.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.invoice == nil {
		return nil, errs.NewObjectNotFoundError("invoice", nil)
	}
	return r.store.invoice, nil
}
