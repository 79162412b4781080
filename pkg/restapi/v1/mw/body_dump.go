/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/laysakura/vc-issuer-mock/internal/logfields"
)

const (
	healthCheckPath = "/healthcheck"
	metricsPath     = "/metrics"
)

var logger = log.New("body-dump")

// BodyDump returns a middleware that logs request and response bodies of API calls at debug level.
func BodyDump() echo.MiddlewareFunc {
	return middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Skipper: skipNonAPI,
		Handler: func(c echo.Context, reqBody, resBody []byte) {
			logger.Debugc(c.Request().Context(), "API call",
				log.WithURL(c.Request().URL.String()),
				log.WithHTTPStatus(c.Response().Status),
				logfields.WithRequestBody(reqBody),
				logfields.WithResponseBody(resBody),
			)
		},
	})
}

func skipNonAPI(c echo.Context) bool {
	path := strings.ToLower(c.Request().URL.Path)

	return strings.HasSuffix(path, healthCheckPath) || strings.HasSuffix(path, metricsPath)
}
