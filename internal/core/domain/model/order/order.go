package order

import (
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("Order must be created via NewOrder constructor")

// ErrDistanceIsInvalid is returned when a distance override is negative or
// otherwise unusable.
var ErrDistanceIsInvalid = errs.NewValueIsInvalidError("distance must not be negative")

// UnassignedDriver is the display name used for orders without a driver.
const UnassignedDriver = "Unassigned"

// Names of order fields tracked by MissingFields. The ingestion step and the
// correction workflows both report gaps using these identifiers.
const (
	FieldDriver         = "driver"
	FieldPickupLocation = "pickupLocation"
	FieldAddress        = "address"
	FieldExReadyTime    = "exReadyTime"
	FieldTripNumber     = "tripNumber"
)

// Attributes carries the raw field values of an ingested delivery order.
// Every field is optional; NewOrder records which ones are missing.
type Attributes struct {
	Driver             string
	Pickup             string
	Dropoff            string
	TripNumber         string
	ExReadyTime        *time.Time
	ExDeliveryTime     *time.Time
	ActualPickupTime   *time.Time
	ActualDeliveryTime *time.Time
	EstimatedDistance  *float64
	Distance           *float64
	Date               *time.Time
}

// Order represents one delivery leg. It is the root record of the dispatch
// session: the route organizer groups orders into trips, the pricing engine
// bills each trip, and the issue detector scans orders for anomalies.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - MissingFields lists exactly the tracked fields that are empty, in a
//     stable order, and is recomputed whenever a field is edited
//   - Can only be created through the NewOrder constructor
//
// String fields are stored trimmed; an all-whitespace trip number counts as
// missing.
type Order struct {
	id kernel.UUID

	driver     string
	pickup     string
	dropoff    string
	tripNumber string

	exReadyTime        *time.Time
	exDeliveryTime     *time.Time
	actualPickupTime   *time.Time
	actualDeliveryTime *time.Time

	estimatedDistance *float64
	distance          *float64

	date *time.Time

	missingFields []string

	guard guard.ConstructorGuard
}

// NewOrder creates an Order from ingested attribute values.
// The identifier must be valid; every other field may be absent. The
// constructor trims string fields and computes the initial MissingFields set.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.Attributes{
//	    Driver:     "Alice",
//	    Pickup:     "12 Dock Rd",
//	    Dropoff:    "400 Market St",
//	    TripNumber: "TR-100",
//	})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, attrs Attributes) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:                 id,
		driver:             strings.TrimSpace(attrs.Driver),
		pickup:             strings.TrimSpace(attrs.Pickup),
		dropoff:            strings.TrimSpace(attrs.Dropoff),
		tripNumber:         strings.TrimSpace(attrs.TripNumber),
		exReadyTime:        copyTime(attrs.ExReadyTime),
		exDeliveryTime:     copyTime(attrs.ExDeliveryTime),
		actualPickupTime:   copyTime(attrs.ActualPickupTime),
		actualDeliveryTime: copyTime(attrs.ActualDeliveryTime),
		estimatedDistance:  copyFloat(attrs.EstimatedDistance),
		distance:           copyFloat(attrs.Distance),
		date:               copyTime(attrs.Date),
		guard:              guard.NewConstructorGuard(),
	}
	o.recomputeMissingFields()

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Driver returns the driver name, or UnassignedDriver when none is recorded.
func (o *Order) Driver() string {
	if o.driver == "" {
		return UnassignedDriver
	}
	return o.driver
}

// Pickup returns the pickup address (may be empty).
func (o *Order) Pickup() string {
	return o.pickup
}

// Dropoff returns the delivery address (may be empty).
func (o *Order) Dropoff() string {
	return o.dropoff
}

// TripNumber returns the trip identifier grouping legs into one route.
// Empty means the order has not been attached to a trip.
func (o *Order) TripNumber() string {
	return o.tripNumber
}

// HasTripNumber reports whether a non-empty trip number is recorded.
func (o *Order) HasTripNumber() bool {
	return o.tripNumber != ""
}

// ExReadyTime returns the expected ready timestamp, or nil.
func (o *Order) ExReadyTime() *time.Time {
	return copyTime(o.exReadyTime)
}

// ExDeliveryTime returns the expected delivery timestamp, or nil.
func (o *Order) ExDeliveryTime() *time.Time {
	return copyTime(o.exDeliveryTime)
}

// ActualPickupTime returns the recorded pickup timestamp, or nil.
func (o *Order) ActualPickupTime() *time.Time {
	return copyTime(o.actualPickupTime)
}

// ActualDeliveryTime returns the recorded delivery timestamp, or nil.
func (o *Order) ActualDeliveryTime() *time.Time {
	return copyTime(o.actualDeliveryTime)
}

// EstimatedDistance returns the distance estimate carried by the ingested
// record, or nil when none was provided.
func (o *Order) EstimatedDistance() *float64 {
	return copyFloat(o.estimatedDistance)
}

// Distance returns the assigned distance in miles, or nil when the order has
// not been measured or corrected yet.
func (o *Order) Distance() *float64 {
	return copyFloat(o.distance)
}

// Date returns the service date of the order. When no explicit date was
// ingested it is derived from the expected ready time, then the expected
// delivery time, truncated to the day. Returns nil when no source is
// available.
func (o *Order) Date() *time.Time {
	source := o.date
	if source == nil {
		source = o.exReadyTime
	}
	if source == nil {
		source = o.exDeliveryTime
	}
	if source == nil {
		return nil
	}

	day := time.Date(source.Year(), source.Month(), source.Day(), 0, 0, 0, 0, source.Location())
	return &day
}

// MissingFields returns the ordered set of tracked field names that are
// currently empty. The slice is a copy; mutating it does not affect the order.
func (o *Order) MissingFields() []string {
	out := make([]string, len(o.missingFields))
	copy(out, o.missingFields)
	return out
}

// IsComplete reports whether no tracked field is missing.
func (o *Order) IsComplete() bool {
	return len(o.missingFields) == 0
}

// AssignDriver records a driver on the order and recomputes MissingFields.
func (o *Order) AssignDriver(driver string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.driver = strings.TrimSpace(driver)
	o.recomputeMissingFields()
	return nil
}

// AssignTripNumber records a trip number on the order and recomputes
// MissingFields. Assigning an empty value detaches the order from its trip.
func (o *Order) AssignTripNumber(tripNumber string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.tripNumber = strings.TrimSpace(tripNumber)
	o.recomputeMissingFields()
	return nil
}

// OverrideDistance records a manually corrected distance in miles.
func (o *Order) OverrideDistance(miles float64) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if miles < 0 {
		return ErrDistanceIsInvalid
	}

	o.distance = &miles
	o.recomputeMissingFields()
	return nil
}

// Clone returns a deep copy of the order. Used by the session store to build
// transaction snapshots.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}

	clone := *o
	clone.exReadyTime = copyTime(o.exReadyTime)
	clone.exDeliveryTime = copyTime(o.exDeliveryTime)
	clone.actualPickupTime = copyTime(o.actualPickupTime)
	clone.actualDeliveryTime = copyTime(o.actualDeliveryTime)
	clone.estimatedDistance = copyFloat(o.estimatedDistance)
	clone.distance = copyFloat(o.distance)
	clone.date = copyTime(o.date)
	clone.missingFields = make([]string, len(o.missingFields))
	copy(clone.missingFields, o.missingFields)
	return &clone
}

// recomputeMissingFields rebuilds the missing-field set from current values.
// The order of names is stable so downstream display stays deterministic.
func (o *Order) recomputeMissingFields() {
	missing := make([]string, 0, 5)

	if o.driver == "" {
		missing = append(missing, FieldDriver)
	}
	if o.pickup == "" {
		missing = append(missing, FieldPickupLocation)
	}
	if o.dropoff == "" {
		missing = append(missing, FieldAddress)
	}
	if o.exReadyTime == nil {
		missing = append(missing, FieldExReadyTime)
	}
	if o.tripNumber == "" {
		missing = append(missing, FieldTripNumber)
	}

	o.missingFields = missing
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
