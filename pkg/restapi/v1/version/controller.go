/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	// Version is the build version of the binary.
	Version string
}

// Controller reports the issuer version.
type Controller struct {
	version string
}

type versionResponse struct {
	Version string `json:"version"`
}

// NewController creates the controller and registers GET /version.
func NewController(router router, cfg Config) *Controller {
	c := &Controller{version: cfg.Version}

	if c.version == "" {
		c.version = "dev"
	}

	router.GET("/version", c.Version)

	return c
}

// Version returns the build version.
// (GET /version).
func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{Version: c.version})
}
