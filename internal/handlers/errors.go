package handlers

import (
	"errors"
	"net/http"

	"github.com/FranzoniLeo/financial-control/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries every field failure of a rejected request.
type ValidationErrorResponse struct {
	Error  string                 `json:"error"`
	Fields []apperrors.FieldError `json:"fields"`
}

// respondError translates service-layer sentinel errors into HTTP responses.
// Ownership mismatches already arrive as ErrNotFound, so nothing here leaks
// whether a resource exists under another account.
func respondError(c *gin.Context, err error, fallback string) {
	var verrs apperrors.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Validation failed", Fields: verrs})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Resource already exists"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
