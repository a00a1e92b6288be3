package booking

import (
	"regexp"

	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/pkg/refcode"
)

const ReferencePrefix = "BMC-BOOK-"

var referencePattern = regexp.MustCompile(`^BMC-BOOK-[A-Z0-9]{6}$`)

func NewReference() (string, error) {
	return refcode.Generate(ReferencePrefix)
}

func ValidateReference(ref string) error {
	if !referencePattern.MatchString(ref) {
		return errs.Validation("invalid booking reference format")
	}
	return nil
}
