package echomw

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reoring/fieldmap/mapdef"
	"github.com/reoring/fieldmap/middleware"
)

// ValidateMappingUpdate parses the request body as a JSON mapping definition
// and simulates merging it into existing: 400 for a malformed definition, 409
// with the full conflict list when the merge reports conflicts, otherwise the
// parsed mapping is stored in the request context and the chain continues.
func ValidateMappingUpdate(existing mapdef.Mapping) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(err))
			}
			incoming, conflicts, err := middleware.SimulateUpdate(existing, body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(err))
			}
			if len(conflicts) > 0 {
				return c.JSON(http.StatusConflict, middleware.ConflictPayload(conflicts))
			}
			ctx := middleware.ContextWithMapping(c.Request().Context(), incoming)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetMapping fetches the parsed mapping from echo.Context.
func GetMapping(c echo.Context) (mapdef.Mapping, bool) {
	return middleware.MappingFromContext(c.Request().Context())
}
