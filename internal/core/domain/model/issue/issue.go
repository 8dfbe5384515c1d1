// Package issue defines the review flags raised against delivery orders
// before invoicing. Issues never block invoice generation; they are surfaced
// to the dispatcher for manual review.
package issue

import (
	"sort"

	"dispatch/internal/pkg/errs"
)

// Severity ranks how urgently an issue needs attention.
type Severity int

const (
	Unknown Severity = iota
	Warning
	Error
)

func getSeverityStrings() map[Severity]string {
	return map[Severity]string{
		Unknown: "unknown",
		Warning: "warning",
		Error:   "error",
	}
}

func getValidSeverityStrings() map[Severity]string {
	return map[Severity]string{
		Warning: "warning",
		Error:   "error",
	}
}

// Validate checks that the severity is one of the recognized levels.
func (s Severity) Validate() error {
	if _, ok := getValidSeverityStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("severity")
	}
	return nil
}

func (s Severity) String() string {
	if v, ok := getSeverityStrings()[s]; ok {
		return v
	}
	return getSeverityStrings()[Unknown]
}

// Outranks reports whether s is more urgent than other.
func (s Severity) Outranks(other Severity) bool {
	return s > other
}

// Issue is one review flag attached to an order. Details carries
// rule-specific facts, such as the measured distance for an outlier flag.
type Issue struct {
	OrderID  string
	Driver   string
	Severity Severity
	Message  string
	Details  map[string]string
}

// GroupByDriver buckets issues by driver name. Orders inside each bucket keep
// their original relative order.
func GroupByDriver(issues []Issue) map[string][]Issue {
	grouped := make(map[string][]Issue)
	for _, iss := range issues {
		grouped[iss.Driver] = append(grouped[iss.Driver], iss)
	}
	return grouped
}

// GroupBySeverity buckets issues by severity, keeping relative order within
// each bucket.
func GroupBySeverity(issues []Issue) map[Severity][]Issue {
	grouped := make(map[Severity][]Issue)
	for _, iss := range issues {
		grouped[iss.Severity] = append(grouped[iss.Severity], iss)
	}
	return grouped
}

// SortBySeverity returns a copy of issues ordered most urgent first. The sort
// is stable, so issues of equal severity keep their detection order.
func SortBySeverity(issues []Issue) []Issue {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Outranks(sorted[j].Severity)
	})
	return sorted
}
