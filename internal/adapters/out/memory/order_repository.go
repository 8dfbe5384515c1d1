package memory

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// orderSet is the shared storage logic for both live and transactional order
// repositories. It is not safe for concurrent use by itself; callers decide
// the locking discipline.
type orderSet struct {
	orders *[]*order.Order
}

func (s orderSet) add(aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if s.indexOf(aggregate.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order %s already exists", aggregate.ID()))
	}

	*s.orders = append(*s.orders, aggregate)
	return nil
}

func (s orderSet) update(aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	i := s.indexOf(aggregate.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	(*s.orders)[i] = aggregate
	return nil
}

func (s orderSet) get(id kernel.UUID) (*order.Order, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return (*s.orders)[i], nil
}

func (s orderSet) getAll() []*order.Order {
	out := make([]*order.Order, len(*s.orders))
	copy(out, *s.orders)
	return out
}

func (s orderSet) getAllIncomplete() []*order.Order {
	var out []*order.Order
	for _, o := range *s.orders {
		if !o.IsComplete() {
			out = append(out, o)
		}
	}
	return out
}

func (s orderSet) replaceAll(aggregates []*order.Order) error {
	for _, o := range aggregates {
		if err := o.Validate(); err != nil {
			return err
		}
	}

	replacement := make([]*order.Order, len(aggregates))
	copy(replacement, aggregates)
	*s.orders = replacement
	return nil
}

func (s orderSet) indexOf(id kernel.UUID) int {
	for i, o := range *s.orders {
		if o.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}
