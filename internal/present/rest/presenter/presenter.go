// Package presenter shapes every response into the service's envelope:
// {"msg": "ok", <OPERATION>: payload}, plus the informational field lists on
// creates and partial updates. The key spellings (GETTED, Filds_Missing,
// Filds_not_edited) are the wire contract clients already depend on.
package presenter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/swcatalog/internal/domain"
)

func Getted(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, echo.Map{"msg": "ok", "GETTED": payload})
}

func Posted(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, echo.Map{"msg": "ok", "POSTED": payload})
}

// PostedWithMissing additionally reports which optional fields were omitted
// and defaulted to null. Informational, not an error.
func PostedWithMissing(c echo.Context, payload any, missing []string) error {
	return c.JSON(http.StatusOK, echo.Map{
		"msg":           "ok",
		"Filds_Missing": missing,
		"POSTED":        payload,
	})
}

func Put(c echo.Context, payload any, notEdited []string) error {
	return c.JSON(http.StatusOK, echo.Map{
		"msg":              "ok",
		"Filds_not_edited": notEdited,
		"PUT":              payload,
	})
}

func Deleted(c echo.Context, detail string) error {
	return c.JSON(http.StatusOK, echo.Map{"msg": "ok", "DELETED": detail})
}

func BadRequestMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"msg": msg})
}

// Error maps a domain error to its status code. Anything untyped is a store
// or infrastructure failure and surfaces as a 500 without crashing the
// request cycle.
func Error(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"msg": err.Error()})
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidReference),
		errors.Is(err, domain.ErrMissingField):
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": err.Error()})
	default:
		slog.ErrorContext(
			c.Request().Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("path", c.Path()),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "internal server error"})
	}
}
