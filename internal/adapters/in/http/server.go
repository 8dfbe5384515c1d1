// Package http exposes the dispatch workflow over a JSON API: order
// ingestion and cleanup, invoice generation and lifecycle, and anomaly scans.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/billing"
	"dispatch/internal/core/domain/model/invoice"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ServerParams bundles every handler the server exposes.
type ServerParams struct {
	CreateOrderHandler            commands.CreateOrderCommandHandler
	CorrectOrderHandler           commands.CorrectOrderCommandHandler
	RemoveNoiseTripsHandler       commands.RemoveNoiseTripOrdersCommandHandler
	RemoveMissingTripsHandler     commands.RemoveMissingTripNumberOrdersCommandHandler
	GenerateInvoiceHandler        commands.GenerateInvoiceCommandHandler
	ReviewInvoiceHandler          commands.ReviewInvoiceCommandHandler
	FinalizeInvoiceHandler        commands.FinalizeInvoiceCommandHandler
	UpdateInvoiceDetailsHandler   commands.UpdateInvoiceDetailsCommandHandler
	RecalculateInvoiceItemHandler commands.RecalculateInvoiceItemCommandHandler

	GetIncompleteOrdersHandler queries.GetIncompleteOrdersQueryHandler
	GetInvoiceHandler          queries.GetInvoiceQueryHandler
	GetIssuesHandler           queries.GetIssuesQueryHandler

	// Settings holds the billing and flagging thresholds applied to invoice
	// generation, item recalculation and anomaly scans.
	Settings billing.Settings
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	params ServerParams
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(params ServerParams) *Server {
	return &Server{params: params}
}

// RegisterRoutes mounts every API route on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/incomplete", s.GetIncompleteOrders)
	api.POST("/orders/remove-noise-trips", s.RemoveNoiseTripOrders)
	api.POST("/orders/remove-missing-trip-numbers", s.RemoveMissingTripNumberOrders)
	api.POST("/orders/:id/corrections", s.CorrectOrder)

	api.POST("/invoice/generate", s.GenerateInvoice)
	api.GET("/invoice", s.GetInvoice)
	api.POST("/invoice/review", s.ReviewInvoice)
	api.POST("/invoice/finalize", s.FinalizeInvoice)
	api.PATCH("/invoice/details", s.UpdateInvoiceDetails)
	api.POST("/invoice/items/:index/recalculate", s.RecalculateInvoiceItem)

	api.GET("/issues", s.GetIssues)
}

// CreateOrder handles POST /api/v1/orders - ingests one delivery order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, order.Attributes{
		Driver:             req.Driver,
		Pickup:             req.Pickup,
		Dropoff:            req.Dropoff,
		TripNumber:         req.TripNumber,
		ExReadyTime:        req.ExReadyTime,
		ExDeliveryTime:     req.ExDeliveryTime,
		ActualPickupTime:   req.ActualPickupTime,
		ActualDeliveryTime: req.ActualDeliveryTime,
		EstimatedDistance:  req.EstimatedDistance,
		Distance:           req.Distance,
		Date:               req.Date,
	})
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.params.CreateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetIncompleteOrders handles GET /api/v1/orders/incomplete - lists orders
// still missing critical fields.
func (s *Server) GetIncompleteOrders(ctx echo.Context) error {
	incomplete, err := s.params.GetIncompleteOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetIncompleteOrdersQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]IncompleteOrderResponse, len(incomplete))
	for i, o := range incomplete {
		response[i] = IncompleteOrderResponse{
			ID:            o.ID.String(),
			Driver:        o.Driver,
			TripNumber:    o.TripNumber,
			MissingFields: o.MissingFields,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RemoveNoiseTripOrders handles POST /api/v1/orders/remove-noise-trips -
// drops orders whose trip numbers are placeholder noise.
func (s *Server) RemoveNoiseTripOrders(ctx echo.Context) error {
	removed, err := s.params.RemoveNoiseTripsHandler.Handle(
		ctx.Request().Context(), commands.NewRemoveNoiseTripOrdersCommand())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RemovedOrdersResponse{Removed: removed})
}

// RemoveMissingTripNumberOrders handles POST
// /api/v1/orders/remove-missing-trip-numbers - drops orders with no trip
// number at all.
func (s *Server) RemoveMissingTripNumberOrders(ctx echo.Context) error {
	removed, err := s.params.RemoveMissingTripsHandler.Handle(
		ctx.Request().Context(), commands.NewRemoveMissingTripNumberOrdersCommand())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RemovedOrdersResponse{Removed: removed})
}

// CorrectOrder handles POST /api/v1/orders/:id/corrections - applies field
// corrections to one order.
func (s *Server) CorrectOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	var req CorrectOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCorrectOrderCommand(orderID, commands.CorrectOrderFields{
		Driver:     req.Driver,
		TripNumber: req.TripNumber,
		Distance:   req.Distance,
	})
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.params.CorrectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GenerateInvoice handles POST /api/v1/invoice/generate - groups the working
// set into routes, resolves distances and builds a draft invoice.
func (s *Server) GenerateInvoice(ctx echo.Context) error {
	var req GenerateInvoiceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details := commands.InvoiceDetails{
		BusinessName:  req.BusinessName,
		BusinessType:  req.BusinessType,
		ContactPerson: req.ContactPerson,
	}
	if req.Date != nil {
		details.Date = *req.Date
	}
	if req.WeekEnding != nil {
		details.WeekEnding = *req.WeekEnding
	}

	cmd, err := commands.NewGenerateInvoiceCommand(s.params.Settings, details, nil)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.params.GenerateInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	issues := make([]IssueResponse, len(result.ResolutionIssues))
	for i, iss := range result.ResolutionIssues {
		issues[i] = IssueResponse{
			OrderID:  iss.OrderID,
			Driver:   iss.Driver,
			Severity: iss.Severity.String(),
			Message:  iss.Message,
			Details:  iss.Details,
		}
	}

	return ctx.JSON(http.StatusCreated, GenerateInvoiceResponse{
		Status:           result.Invoice.Status().String(),
		Items:            len(result.Invoice.Items()),
		TotalDistance:    result.Invoice.TotalDistance(),
		TotalCost:        result.Invoice.TotalCost().Rounded(),
		ResolutionIssues: issues,
	})
}

// GetInvoice handles GET /api/v1/invoice - retrieves the session invoice.
func (s *Server) GetInvoice(ctx echo.Context) error {
	inv, err := s.params.GetInvoiceHandler.Handle(
		ctx.Request().Context(), queries.NewGetInvoiceQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{
			OrderID:          item.OrderID,
			Driver:           item.Driver,
			Pickup:           item.Pickup,
			Dropoff:          item.Dropoff,
			Distance:         item.Distance,
			OriginalDistance: item.OriginalDistance,
			RouteType:        item.RouteType,
			Stops:            item.Stops,
			BaseCost:         item.BaseCost,
			AddOns:           item.AddOns,
			TotalCost:        item.TotalCost,
			Recalculated:     item.Recalculated,
		}
	}

	return ctx.JSON(http.StatusOK, InvoiceResponse{
		Status:            inv.Status,
		Date:              inv.Date,
		WeekEnding:        inv.WeekEnding,
		LastModified:      inv.LastModified,
		BusinessName:      inv.BusinessName,
		BusinessType:      inv.BusinessType,
		ContactPerson:     inv.ContactPerson,
		TotalDistance:     inv.TotalDistance,
		TotalCost:         inv.TotalCost,
		RecalculatedCount: inv.RecalculatedCount,
		Items:             items,
	})
}

// ReviewInvoice handles POST /api/v1/invoice/review - marks the draft
// invoice as reviewed.
func (s *Server) ReviewInvoice(ctx echo.Context) error {
	err := s.params.ReviewInvoiceHandler.Handle(
		ctx.Request().Context(), commands.NewReviewInvoiceCommand())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinalizeInvoice handles POST /api/v1/invoice/finalize - locks the reviewed
// invoice against further mutation.
func (s *Server) FinalizeInvoice(ctx echo.Context) error {
	err := s.params.FinalizeInvoiceHandler.Handle(
		ctx.Request().Context(), commands.NewFinalizeInvoiceCommand())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateInvoiceDetails handles PATCH /api/v1/invoice/details - replaces the
// invoice header metadata.
func (s *Server) UpdateInvoiceDetails(ctx echo.Context) error {
	var req UpdateInvoiceDetailsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details := invoice.Details{
		BusinessName:  req.BusinessName,
		BusinessType:  req.BusinessType,
		ContactPerson: req.ContactPerson,
	}
	if req.Date != nil {
		details.Date = *req.Date
	}
	if req.WeekEnding != nil {
		details.WeekEnding = *req.WeekEnding
	}

	err := s.params.UpdateInvoiceDetailsHandler.Handle(
		ctx.Request().Context(), commands.NewUpdateInvoiceDetailsCommand(details))
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecalculateInvoiceItem handles POST
// /api/v1/invoice/items/:index/recalculate - reprices one invoice line with
// a corrected distance.
func (s *Server) RecalculateInvoiceItem(ctx echo.Context) error {
	var index int
	if err := echo.PathParamsBinder(ctx).Int("index", &index).BindError(); err != nil {
		return badRequest(ctx, "Invalid item index")
	}

	var req RecalculateItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecalculateInvoiceItemCommand(index, req.Miles, s.params.Settings)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.params.RecalculateInvoiceItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetIssues handles GET /api/v1/issues - scans the working set for
// anomalies, most urgent first.
func (s *Server) GetIssues(ctx echo.Context) error {
	query, err := queries.NewGetIssuesQuery(s.params.Settings)
	if err != nil {
		return domainError(ctx, err)
	}

	found, err := s.params.GetIssuesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]IssueResponse, len(found))
	for i, iss := range found {
		response[i] = IssueResponse{
			OrderID:  iss.OrderID,
			Driver:   iss.Driver,
			Severity: iss.Severity,
			Message:  iss.Message,
			Details:  iss.Details,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain and application errors onto HTTP statuses.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, invoice.ErrInvoiceLocked),
		errors.Is(err, invoice.ErrInvalidStateTransition):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrNoRoutesResolved):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrManualAdjustmentDisabled):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
