package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// parseID parses a positive integer path parameter. Non-numeric segments are
// rejected at the boundary with a 400 before any query runs.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
