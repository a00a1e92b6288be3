package commands

import (
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/pkg/errs"
)

var classes = []error{
	errs.ErrValidation,
	errs.ErrInvalidTransition,
	errs.ErrInvalidState,
	errs.ErrUnauthorized,
	errs.ErrForbidden,
	errs.ErrNotFound,
	errs.ErrConflict,
	errs.ErrInternal,
}

// translate maps repository failures onto the error taxonomy. Errors that
// already carry a class pass through untouched.
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	for _, class := range classes {
		if errs.Is(err, class) {
			return err
		}
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.NotFound("%s not found", entity)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Conflict("%s was modified concurrently", entity)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Conflict("%s already exists", entity)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Validation("%s references a missing record", entity)
	default:
		return errs.Internal(err, "failed to persist "+entity)
	}
}
