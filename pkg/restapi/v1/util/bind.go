/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/laysakura/vc-issuer-mock/pkg/restapi/resterr"
)

const (
	requestBodyTitle = "JSON parse error"
)

var errEmptyBody = errors.New("request body is empty")

// ReadRawBody reads the whole request body. A missing body is a ParsingError.
func ReadRawBody(ctx echo.Context) ([]byte, error) {
	if ctx.Request().Body == nil {
		return nil, resterr.NewParsingError(requestBodyTitle, errEmptyBody)
	}

	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, resterr.NewParsingError(requestBodyTitle, fmt.Errorf("read request body: %w", err))
	}

	if len(body) == 0 {
		return nil, resterr.NewParsingError(requestBodyTitle, errEmptyBody)
	}

	return body, nil
}

// WriteOutputWithCode returns a writer that renders output as JSON with the given status code, or returns err.
func WriteOutputWithCode(code int, ctx echo.Context) func(output interface{}, err error) error {
	return func(output interface{}, err error) error {
		if err != nil {
			return err
		}

		b, err := json.Marshal(output)
		if err != nil {
			return err
		}

		return ctx.JSONBlob(code, b)
	}
}
