/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/laysakura/vc-issuer-mock/internal/logfields"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/resterr"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/v1/util"
)

const invalidLogSpecTitle = "invalid log spec"

var logger = log.New("logapi")

type router interface {
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Controller changes log levels at runtime.
type Controller struct{}

// NewController creates the controller and registers POST /loglevels.
func NewController(router router) *Controller {
	c := &Controller{}

	router.POST("/loglevels", c.PostLogLevels)

	return c
}

// PostLogLevels updates log levels from a "module1=level1:module2=level2:defaultLevel" body.
// (POST /loglevels).
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	body, err := util.ReadRawBody(ctx)
	if err != nil {
		return err
	}

	spec := strings.TrimSpace(string(body))

	if err = log.SetSpec(spec); err != nil {
		return resterr.NewParsingError(invalidLogSpecTitle, err)
	}

	logger.Infoc(ctx.Request().Context(), "Log levels modified", logfields.WithUserLogLevel(spec))

	return ctx.NoContent(http.StatusOK)
}
