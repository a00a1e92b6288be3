package purchase

import (
	"regexp"

	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/pkg/refcode"
)

const TrackingPrefix = "BMC-"

var trackingPattern = regexp.MustCompile(`^BMC-[A-Z0-9]{6}$`)

func NewTrackingID() (string, error) {
	return refcode.Generate(TrackingPrefix)
}

func ValidateTrackingID(id string) error {
	if !trackingPattern.MatchString(id) {
		return errs.Validation("invalid tracking id format")
	}
	return nil
}
