package ginmw

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reoring/fieldmap/mapdef"
	"github.com/reoring/fieldmap/middleware"
)

// ValidateMappingUpdate parses the incoming JSON mapping definition and
// simulates merging it into existing. A malformed definition returns 400; any
// merge conflict returns 409 with the full conflict list. On success the
// parsed mapping is stored in the request context for the handler to apply.
func ValidateMappingUpdate(existing mapdef.Mapping) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, middleware.ErrorPayload(err))
			c.Abort()
			return
		}
		incoming, conflicts, err := middleware.SimulateUpdate(existing, body)
		if err != nil {
			c.JSON(http.StatusBadRequest, middleware.ErrorPayload(err))
			c.Abort()
			return
		}
		if len(conflicts) > 0 {
			c.JSON(http.StatusConflict, middleware.ConflictPayload(conflicts))
			c.Abort()
			return
		}
		// store parsed mapping in request context
		c.Request = c.Request.WithContext(middleware.ContextWithMapping(c.Request.Context(), incoming))
		c.Next()
	}
}

// GetMapping fetches the parsed mapping from gin.Context.
func GetMapping(c *gin.Context) (mapdef.Mapping, bool) {
	return middleware.MappingFromContext(c.Request.Context())
}
