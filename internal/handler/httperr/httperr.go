package httperr

import (
	"net/http"

	"marketplace-orders/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int      `json:"-"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details []string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Details: details}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps an error class to its HTTP status. Internal errors never leak
// their message.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, errs.Details(err))
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation),
		errs.Is(err, errs.ErrInvalidTransition),
		errs.Is(err, errs.ErrInvalidState):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
