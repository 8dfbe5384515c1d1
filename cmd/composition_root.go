package cmd

import (
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// CompositionRoot wires the storage, domain services and use case handlers
// of one dispatch session.
type CompositionRoot struct {
	config Config

	store      *memory.Store
	uowFactory *memory.SessionUnitOfWorkFactory

	organizer services.RouteOrganizer
	resolver  services.DistanceResolver
	pricing   services.PricingEngine
	detector  services.IssueDetector
}

// NewCompositionRoot assembles the application around an in-memory session
// store and the given distance estimator.
func NewCompositionRoot(config Config, estimator ports.DistanceEstimator) (CompositionRoot, error) {
	resolver, err := services.NewDistanceResolver(estimator, services.DefaultWaveSize)
	if err != nil {
		return CompositionRoot{}, err
	}

	store := memory.NewStore()
	organizer := services.NewRouteOrganizer(nil)

	return CompositionRoot{
		config:     config,
		store:      store,
		uowFactory: memory.NewSessionUnitOfWorkFactory(store),
		organizer:  organizer,
		resolver:   resolver,
		pricing:    services.NewPricingEngine(),
		detector:   services.NewIssueDetector(organizer),
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCorrectOrderCommandHandler() commands.CorrectOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCorrectOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveNoiseTripOrdersCommandHandler() commands.RemoveNoiseTripOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveNoiseTripOrdersCommandHandler(f, c.organizer)
}

func (c *CompositionRoot) CreateRemoveMissingTripNumberOrdersCommandHandler() commands.RemoveMissingTripNumberOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveMissingTripNumberOrdersCommandHandler(f, c.organizer)
}

func (c *CompositionRoot) CreateGenerateInvoiceCommandHandler() commands.GenerateInvoiceCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateInvoiceCommandHandler(f, c.organizer, c.resolver, c.pricing)
}

func (c *CompositionRoot) CreateReviewInvoiceCommandHandler() commands.ReviewInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateFinalizeInvoiceCommandHandler() commands.FinalizeInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateInvoiceDetailsCommandHandler() commands.UpdateInvoiceDetailsCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateInvoiceDetailsCommandHandler(f)
}

func (c *CompositionRoot) CreateRecalculateInvoiceItemCommandHandler() commands.RecalculateInvoiceItemCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecalculateInvoiceItemCommandHandler(f)
}

func (c *CompositionRoot) CreateGetIncompleteOrdersQueryHandler() queries.GetIncompleteOrdersQueryHandler {
	return queries.NewGetIncompleteOrdersQueryHandler(c.store.OrderRepository())
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.store.InvoiceRepository())
}

func (c *CompositionRoot) CreateGetIssuesQueryHandler() queries.GetIssuesQueryHandler {
	return queries.NewGetIssuesQueryHandler(c.store.OrderRepository(), c.detector)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
