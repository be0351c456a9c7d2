package view

import "github.com/labstack/echo/v4"

// IsFragmentRequest reports whether an htmx request targets the element with
// the given id, in which case only that fragment needs rendering.
func IsFragmentRequest(c echo.Context, targetID string) bool {
	h := c.Request().Header
	return h.Get("HX-Request") == "true" && h.Get("HX-Target") == targetID
}
