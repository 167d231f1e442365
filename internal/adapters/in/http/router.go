package http

import (
	"fmt"
	"net/http"

	_ "tracking/internal/adapters/in/http/docs" // registers the swagger document
	"tracking/internal/generated/servers"
	"tracking/internal/pkg/result"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the Echo instance serving s under /api/v1, plus /health
// and /swagger/*. Requests to /api/v1 are checked against the embedded
// OpenAPI document before they reach s.
//
// Example:
//
//	e, err := http.NewRouter(server)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	e.Logger.Fatal(e.Start(":8080"))
func NewRouter(s *Server) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	validator, err := newRequestValidator(swagger, s.logger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				s.logger.Error("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			s.logger.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			s.logger.Error("panic recovered", "error", err, "stack", string(stack))
			return c.JSON(http.StatusInternalServerError, result.FromError[any](fmt.Errorf("internal error: %w", err)))
		},
	}))

	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, s)

	return e, nil
}
