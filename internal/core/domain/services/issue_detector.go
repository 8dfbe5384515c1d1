package services

import (
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/billing"
	"dispatch/internal/core/domain/model/issue"
	"dispatch/internal/core/domain/model/order"
)

// unknownDay buckets driver-load counts for orders without any date source.
const unknownDay = "unknown"

// IssueDetector scans the working set of orders for anomalies the dispatcher
// should review before invoicing. Detection is a pure function of the orders
// and the current settings; it has no side effects and can be re-run at any
// time to re-derive the full issue list.
//
// Detection rules, each independently triggerable:
//   - Driver overload: one warning per driver-day whose order count exceeds
//     the configured threshold
//   - Distance outlier: one warning per route whose known distance exceeds
//     the configured threshold (disabled at zero)
//   - Time-window violation: one warning per order whose actual pickup or
//     delivery time drifts past the allowed window
//   - Missing critical field: one error per order missing an address or trip
//     number
type IssueDetector struct {
	organizer RouteOrganizer
}

// NewIssueDetector creates an IssueDetector that groups routes with the given
// organizer. The organizer's noise predicate decides which trip numbers form
// real routes during the distance-outlier scan.
func NewIssueDetector(organizer RouteOrganizer) IssueDetector {
	return IssueDetector{organizer: organizer}
}

// Detect scans orders under the given settings and returns every issue found.
// A single order or driver may accumulate multiple issues. Output order is
// not significant; consumers group or sort by their own rule.
func (d IssueDetector) Detect(orders []*order.Order, settings billing.Settings) ([]issue.Issue, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
	}

	var issues []issue.Issue
	issues = append(issues, d.detectDriverOverload(orders, settings)...)

	outliers, err := d.detectDistanceOutliers(orders, settings)
	if err != nil {
		return nil, err
	}
	issues = append(issues, outliers...)

	issues = append(issues, d.detectTimeWindowViolations(orders, settings)...)
	issues = append(issues, d.detectMissingCriticalFields(orders)...)

	return issues, nil
}

func (d IssueDetector) detectDriverOverload(orders []*order.Order, settings billing.Settings) []issue.Issue {
	if settings.FlagDriverLoadThreshold <= 0 {
		return nil
	}

	type driverDay struct {
		driver string
		day    string
	}

	counts := make(map[driverDay]int)
	seen := make([]driverDay, 0)
	for _, o := range orders {
		key := driverDay{driver: o.Driver(), day: dayOf(o)}
		if _, ok := counts[key]; !ok {
			seen = append(seen, key)
		}
		counts[key]++
	}

	var issues []issue.Issue
	for _, key := range seen {
		count := counts[key]
		if count <= settings.FlagDriverLoadThreshold {
			continue
		}
		issues = append(issues, issue.Issue{
			Driver:   key.driver,
			Severity: issue.Warning,
			Message: fmt.Sprintf("driver has %d orders on %s, over the load threshold of %d",
				count, key.day, settings.FlagDriverLoadThreshold),
			Details: map[string]string{
				"day":        key.day,
				"orderCount": fmt.Sprintf("%d", count),
			},
		})
	}
	return issues
}

func (d IssueDetector) detectDistanceOutliers(orders []*order.Order, settings billing.Settings) ([]issue.Issue, error) {
	if settings.FlagDistanceThreshold <= 0 {
		return nil, nil
	}

	routes, err := d.organizer.GroupByTrip(orders)
	if err != nil {
		return nil, err
	}

	var issues []issue.Issue
	for _, rt := range routes {
		known := rt.KnownDistance()
		if known == nil || *known <= settings.FlagDistanceThreshold {
			continue
		}
		issues = append(issues, issue.Issue{
			OrderID:  rt.Representative().ID().String(),
			Driver:   rt.Driver(),
			Severity: issue.Warning,
			Message: fmt.Sprintf("route distance %.1f miles exceeds the outlier threshold of %.1f miles",
				*known, settings.FlagDistanceThreshold),
			Details: map[string]string{
				"tripNumber": rt.Key(),
				"distance":   fmt.Sprintf("%.1f", *known),
			},
		})
	}
	return issues, nil
}

func (d IssueDetector) detectTimeWindowViolations(orders []*order.Order, settings billing.Settings) []issue.Issue {
	if settings.FlagTimeWindow <= 0 {
		return nil
	}

	var issues []issue.Issue
	for _, o := range orders {
		var drifts []string
		if gap := timeGap(o.ExReadyTime(), o.ActualPickupTime()); gap > settings.FlagTimeWindow {
			drifts = append(drifts, fmt.Sprintf("pickup drifted %s", gap.Round(time.Minute)))
		}
		if gap := timeGap(o.ExDeliveryTime(), o.ActualDeliveryTime()); gap > settings.FlagTimeWindow {
			drifts = append(drifts, fmt.Sprintf("delivery drifted %s", gap.Round(time.Minute)))
		}
		if len(drifts) == 0 {
			continue
		}
		issues = append(issues, issue.Issue{
			OrderID:  o.ID().String(),
			Driver:   o.Driver(),
			Severity: issue.Warning,
			Message: fmt.Sprintf("%s beyond the %s window",
				strings.Join(drifts, "; "), settings.FlagTimeWindow),
			Details: map[string]string{
				"tripNumber": o.TripNumber(),
			},
		})
	}
	return issues
}

func (d IssueDetector) detectMissingCriticalFields(orders []*order.Order) []issue.Issue {
	var issues []issue.Issue
	for _, o := range orders {
		var critical []string
		for _, field := range o.MissingFields() {
			switch field {
			case order.FieldPickupLocation, order.FieldAddress, order.FieldTripNumber:
				critical = append(critical, field)
			}
		}
		if len(critical) == 0 {
			continue
		}
		issues = append(issues, issue.Issue{
			OrderID:  o.ID().String(),
			Driver:   o.Driver(),
			Severity: issue.Error,
			Message:  fmt.Sprintf("order is missing critical fields: %s", strings.Join(critical, ", ")),
			Details: map[string]string{
				"missingFields": strings.Join(o.MissingFields(), ", "),
			},
		})
	}
	return issues
}

func dayOf(o *order.Order) string {
	date := o.Date()
	if date == nil {
		return unknownDay
	}
	return date.Format("2006-01-02")
}

// timeGap returns the absolute drift between an expected and an actual
// timestamp, or zero when either side is unrecorded.
func timeGap(expected, actual *time.Time) time.Duration {
	if expected == nil || actual == nil {
		return 0
	}
	gap := actual.Sub(*expected)
	if gap < 0 {
		gap = -gap
	}
	return gap
}
