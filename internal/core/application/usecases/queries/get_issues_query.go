package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/billing"
	"dispatch/internal/pkg/guard"
)

var ErrGetIssuesQueryIsNotConstructed = errors.New(
	"GetIssuesQuery must be created via NewGetIssuesQuery constructor",
)

// GetIssuesQuery runs the anomaly scan over the current working set. The scan
// is re-derived on every call, so corrections immediately clear their issues.
type GetIssuesQuery struct { //nolint:recvcheck //using for validation
	settings billing.Settings

	guard guard.ConstructorGuard
}

// NewGetIssuesQuery creates a query using the given flagging thresholds.
func NewGetIssuesQuery(settings billing.Settings) (GetIssuesQuery, error) {
	if err := settings.Validate(); err != nil {
		return GetIssuesQuery{}, err
	}

	return GetIssuesQuery{
		settings: settings,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetIssuesQuery) Validate() error {
	return q.guard.Validate(ErrGetIssuesQueryIsNotConstructed)
}

// Settings returns the flagging thresholds for this scan.
func (q GetIssuesQuery) Settings() billing.Settings {
	return q.settings
}

// GetIssuesQueryResponse is the read model of one detected issue.
type GetIssuesQueryResponse struct {
	OrderID  string
	Driver   string
	Severity string
	Message  string
	Details  map[string]string
}
