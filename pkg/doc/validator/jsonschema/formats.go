/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonschema

import (
	"time"

	"github.com/xeipuuv/gojsonschema"
)

func init() { //nolint:gochecknoinits
	// The built-in "date-time" checker also accepts bare dates and times.
	gojsonschema.FormatCheckers.Add("date-time", RFC3339FormatChecker{})
}

// RFC3339FormatChecker accepts RFC 3339 date-times only, e.g. "2010-01-01T19:23:24Z".
type RFC3339FormatChecker struct{}

// IsFormat implements gojsonschema.FormatChecker. Non-string values are left to the "type" keyword.
func (RFC3339FormatChecker) IsFormat(input interface{}) bool {
	s, ok := input.(string)
	if !ok {
		return true
	}

	_, err := time.Parse(time.RFC3339, s)

	return err == nil
}
