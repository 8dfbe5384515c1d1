package memory

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/invoice"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when Begin was
// not called or the transaction already ended.
var ErrNoActiveTransaction = errors.New("no active transaction")

// SessionUnitOfWorkFactory creates snapshot-based units of work over one
// session store. Each business operation gets a fresh instance so concurrent
// commands stay isolated from each other's uncommitted changes.
type SessionUnitOfWorkFactory struct {
	store *Store
}

// NewSessionUnitOfWorkFactory creates a factory bound to the given store.
func NewSessionUnitOfWorkFactory(store *Store) *SessionUnitOfWorkFactory {
	return &SessionUnitOfWorkFactory{store: store}
}

// Create produces a new unit of work ready for Begin.
func (f *SessionUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &SessionUnitOfWork{store: f.store}
}

// SessionUnitOfWork implements the transaction boundary against the session
// store. Begin deep-copies the session state; repositories returned by this
// unit of work operate on the copy only. Commit swaps the copy back into the
// store in one locked step; Rollback discards it, leaving the session exactly
// as it was before Begin.
type SessionUnitOfWork struct {
	store *Store

	active    bool
	txOrders  []*order.Order
	txInvoice *invoice.Invoice
}

// Begin starts a transaction by snapshotting the session state.
// Multiple calls to Begin on the same instance are safe and keep the
// original snapshot.
func (uow *SessionUnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.txOrders, uow.txInvoice = uow.store.snapshot()
	uow.active = true
	return nil
}

// Commit publishes the transaction's state as the new session state.
// After commit the transaction is closed and cannot be reused.
func (uow *SessionUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.restore(uow.txOrders, uow.txInvoice)
	uow.reset()
	return nil
}

// Rollback discards the transaction's state. The session keeps the state it
// had before Begin.
func (uow *SessionUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.reset()
	return nil
}

// OrderRepository returns a repository bound to the transaction snapshot.
func (uow *SessionUnitOfWork) OrderRepository() ports.OrderRepository {
	return &txOrderRepository{uow: uow}
}

// InvoiceRepository returns a repository bound to the transaction snapshot.
func (uow *SessionUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return &txInvoiceRepository{uow: uow}
}

func (uow *SessionUnitOfWork) reset() {
	uow.active = false
	uow.txOrders = nil
	uow.txInvoice = nil
}

// txOrderRepository operates on the unit of work's snapshot. Outside an
// active transaction every operation fails.
type txOrderRepository struct {
	uow *SessionUnitOfWork
}

func (r *txOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	return orderSet{orders: &r.uow.txOrders}.add(aggregate)
}

func (r *txOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	return orderSet{orders: &r.uow.txOrders}.update(aggregate)
}

func (r *txOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	return orderSet{orders: &r.uow.txOrders}.get(id)
}

func (r *txOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	return orderSet{orders: &r.uow.txOrders}.getAll(), nil
}

func (r *txOrderRepository) GetAllIncomplete(_ context.Context) ([]*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	return orderSet{orders: &r.uow.txOrders}.getAllIncomplete(), nil
}

func (r *txOrderRepository) ReplaceAll(_ context.Context, aggregates []*order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	return orderSet{orders: &r.uow.txOrders}.replaceAll(aggregates)
}

// txInvoiceRepository operates on the unit of work's invoice slot.
type txInvoiceRepository struct {
	uow *SessionUnitOfWork
}

func (r *txInvoiceRepository) Save(_ context.Context, aggregate *invoice.Invoice) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.txInvoice = aggregate
	return nil
}

func (r *txInvoiceRepository) Get(_ context.Context) (*invoice.Invoice, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	if r.uow.txInvoice == nil {
		return nil, errs.NewObjectNotFoundError("invoice", nil)
	}
	return r.uow.txInvoice, nil
}
