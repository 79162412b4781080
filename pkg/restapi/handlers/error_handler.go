/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/laysakura/vc-issuer-mock/internal/logfields"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/resterr"
)

var logger = log.New("rest-err")

func HTTPErrorHandler(tracer trace.Tracer) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		ctx, span := tracer.Start(c.Request().Context(), "HTTPErrorHandler")
		defer span.End()

		apiErr := processError(err)
		pd := apiErr.ProblemDetails

		span.SetStatus(codes.Error, pd.Title)
		span.RecordError(err)

		fields := []zap.Field{
			log.WithURL(c.Request().RequestURI),
			log.WithHTTPStatus(apiErr.Status),
			logfields.WithProblemType(pd.Type.Name()),
			logfields.WithAdditionalMessage(pd.Detail),
			log.WithError(pd.Err),
		}

		if apiErr.Status >= http.StatusInternalServerError {
			logger.Errorc(ctx, "HTTP Error Handler", fields...)
		} else {
			logger.Debugc(ctx, "HTTP Error Handler", fields...)
		}

		sendResponse(c, apiErr.Status, apiErr)
	}
}

func sendResponse(c echo.Context, code int, message interface{}) {
	var err error
	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			logger.Errorc(c.Request().Context(), "head error msg", log.WithError(fmt.Errorf("%v", message)))
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, message)
		}
		if err != nil {
			logger.Errorc(c.Request().Context(), "write http response", log.WithError(err))
		}
	}
}

// processError converts err into a VC-API error body. Echo client errors keep their status.
func processError(err error) *resterr.VCAPIError {
	var problemDetails *resterr.ProblemDetails
	if errors.As(err, &problemDetails) {
		return resterr.NewVCAPIError(problemDetails)
	}

	var echoHTTPError *echo.HTTPError
	if errors.As(err, &echoHTTPError) && echoHTTPError.Code < http.StatusInternalServerError {
		detail := fmt.Sprintf("%v", echoHTTPError.Message)
		if echoHTTPError.Internal != nil {
			detail = echoHTTPError.Internal.Error()
		}

		return &resterr.VCAPIError{
			Status: echoHTTPError.Code,
			ProblemDetails: resterr.NewProblemDetails(resterr.ParsingError,
				http.StatusText(echoHTTPError.Code), detail, err),
		}
	}

	return resterr.NewVCAPIError(resterr.NewUnknownError(err))
}
