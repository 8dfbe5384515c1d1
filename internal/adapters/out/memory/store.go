// Package memory provides the in-memory session store backing the dispatch
// engine. The working set of orders and the current invoice live for one
// operator session; nothing is persisted across restarts.
//
// The store supports two access modes:
//   - Direct repositories, used by the query side, which lock per operation
//   - Snapshot-based units of work, used by the command side, which deep-copy
//     the session state on Begin and swap it back atomically on Commit
package memory

import (
	"sync"

	"dispatch/internal/core/domain/model/invoice"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// Store holds the session state under a single mutex. Orders keep ingestion
// order; the invoice slot holds at most one aggregate.
type Store struct {
	mu      sync.RWMutex
	orders  []*order.Order
	invoice *invoice.Invoice
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// OrderRepository returns a repository reading and writing the live session
// state directly. Every operation takes the store lock.
func (s *Store) OrderRepository() ports.OrderRepository {
	return &liveOrderRepository{store: s}
}

// InvoiceRepository returns a repository over the live invoice slot.
func (s *Store) InvoiceRepository() ports.InvoiceRepository {
	return &liveInvoiceRepository{store: s}
}

// snapshot deep-copies the session state for a transaction.
func (s *Store) snapshot() ([]*order.Order, *invoice.Invoice) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*order.Order, len(s.orders))
	for i, o := range s.orders {
		orders[i] = o.Clone()
	}
	// The invoice is immutable; mutating operations return a new value, so
	// sharing the pointer across the snapshot is safe.
	return orders, s.invoice
}

// restore swaps the committed transaction state back into the session.
func (s *Store) restore(orders []*order.Order, inv *invoice.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = orders
	s.invoice = inv
}
