package queries

import (
	"context"

	"dispatch/internal/core/domain/model/issue"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// GetIssuesQueryHandler scans the working set with the issue detector and
// returns the found anomalies ordered most urgent first.
type GetIssuesQueryHandler struct {
	orderRepo ports.OrderRepository
	detector  services.IssueDetector
}

// NewGetIssuesQueryHandler creates a handler for anomaly scans.
func NewGetIssuesQueryHandler(orderRepo ports.OrderRepository, detector services.IssueDetector) GetIssuesQueryHandler {
	return GetIssuesQueryHandler{orderRepo: orderRepo, detector: detector}
}

// Handle executes the scan. Errors outrank warnings in the returned order;
// issues of equal severity keep detection order.
func (h GetIssuesQueryHandler) Handle(
	ctx context.Context,
	query GetIssuesQuery,
) ([]GetIssuesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	found, err := h.detector.Detect(orders, query.Settings())
	if err != nil {
		return nil, err
	}

	responses := make([]GetIssuesQueryResponse, 0, len(found))
	for _, iss := range issue.SortBySeverity(found) {
		responses = append(responses, GetIssuesQueryResponse{
			OrderID:  iss.OrderID,
			Driver:   iss.Driver,
			Severity: iss.Severity.String(),
			Message:  iss.Message,
			Details:  iss.Details,
		})
	}

	return responses, nil
}
