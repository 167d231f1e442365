package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"tracking/internal/pkg/result"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// newRequestValidator returns a middleware that checks requests against the
// OpenAPI document. Requests that match no documented operation, such as
// /health, pass through untouched. A rejected request is answered in-band
// with "Invalid request body", like any other failure.
func newRequestValidator(swagger *openapi3.T, logger *slog.Logger) (echo.MiddlewareFunc, error) {
	// Paths in the document are absolute, so match them against the raw URL path.
	swagger.Servers = nil

	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				logger.WarnContext(req.Context(), "request rejected",
					"method", req.Method,
					"path", req.URL.Path,
					"error", err,
				)
				return c.JSON(http.StatusOK, result.Failure[any](invalidRequestBody))
			}

			return next(c)
		}
	}, nil
}
