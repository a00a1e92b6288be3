package purchase

import (
	"slices"
	"strings"

	"marketplace-orders/internal/pkg/errs"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusPaid       Status = "PAID"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// fulfilment moves forward only; cancellation is handled separately by Cancel.
var fulfilment = map[Status][]Status{
	StatusPending:    {StatusPaid},
	StatusPaid:       {StatusProcessing},
	StatusProcessing: {StatusShipped},
	StatusShipped:    {StatusDelivered},
}

var cancellable = []Status{StatusPending, StatusPaid}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusPaid, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
}

func (s Status) IsValid() bool {
	return slices.Contains(AllStatuses(), s)
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) IsCancellable() bool {
	return slices.Contains(cancellable, s)
}

func (s Status) CanAdvanceTo(target Status) bool {
	return slices.Contains(fulfilment[s], target)
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", errs.Validation("invalid purchase status: %s", raw)
	}
	return s, nil
}
