/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"

	"github.com/laysakura/vc-issuer-mock/pkg/observability/health/healthutil"
)

const checkTimeout = 5 * time.Second

// EchoRouter is the subset of echo routing methods the handlers are registered with.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Controller for health check API.
type Controller struct {
	handler echo.HandlerFunc
}

// NewController creates a health check controller running the given checks on every request.
func NewController(checks ...health.Check) *Controller {
	responseTimes := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithTimeout(checkTimeout),
		health.WithInterceptors(healthutil.ResponseTimeInterceptor(responseTimes)),
	}

	for _, check := range checks {
		opts = append(opts, health.WithCheck(check))
	}

	handler := health.NewHandler(
		health.NewChecker(opts...),
		health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes)),
	)

	return &Controller{handler: echo.WrapHandler(handler)}
}

// GetHealthcheck returns the health check status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	return c.handler(ctx)
}

// RegisterHandlers adds the health check route to the router.
func RegisterHandlers(router EchoRouter, c *Controller) {
	router.GET("/healthcheck", c.GetHealthcheck)
}
