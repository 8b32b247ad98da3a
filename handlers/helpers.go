package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/radipleven/school-gradebook-project/apperr"
)

// uintParam parses a numeric path parameter.
func uintParam(c echo.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || n == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, map[string]any{
			"error": "invalid " + name + " parameter",
		})
	}
	return uint(n), nil
}

// respondErr renders a service error in the shared JSON shape.
func respondErr(c echo.Context, aerr *apperr.Error) error {
	body := map[string]any{"error": aerr.Msg}
	if len(aerr.Fields) > 0 {
		body["fields"] = aerr.Fields
	}
	return c.JSON(aerr.HTTPStatus(), body)
}

func bindErr(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
}
