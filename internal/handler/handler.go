package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "civicportal/internal/errors"
)

// idParam parses the :id path parameter.
func idParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return id, nil
}

// invalidBody writes the standard 400 response for an unparseable payload.
func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_BODY",
	})
}

// validationError writes a 400 response listing every failing field. The
// repository is never touched when validation fails.
func validationError(c echo.Context, err error) error {
	resp := apperrors.ValidationResponse{
		Error: "validation failed",
		Code:  "VALIDATION_ERROR",
	}

	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			resp.Fields = append(resp.Fields, apperrors.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
	} else {
		resp.Fields = append(resp.Fields, apperrors.FieldError{
			Field:   "",
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusBadRequest, resp)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

// domainError translates a domain error into its wire status.
func domainError(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}

func newNotFoundResponse() apperrors.ErrorResponse {
	return apperrors.MapErrorToHTTP(apperrors.ErrNotFound).ToErrorResponse()
}
