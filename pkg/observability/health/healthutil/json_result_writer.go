/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
)

type healthStatus struct {
	Status      health.AvailabilityStatus `json:"status"`
	CurrentTime time.Time                 `json:"currentTime"`
	Components  map[string]checkResult    `json:"components,omitempty"`
}

type checkResult struct {
	health.CheckResult
	LastResponseTime    string `json:"last_response_time,omitempty"`
	AverageResponseTime string `json:"avg_response_time,omitempty"`
}

// JSONResultWriter writes the checker result as JSON, adding response times recorded by ResponseTimeInterceptor.
type JSONResultWriter struct {
	responseTimes *ResponseTimes
	now           func() time.Time
}

func NewJSONResultWriter(responseTimes *ResponseTimes) *JSONResultWriter {
	return &JSONResultWriter{
		responseTimes: responseTimes,
		now:           time.Now,
	}
}

func (rw *JSONResultWriter) Write(result *health.CheckerResult, status int, w http.ResponseWriter, _ *http.Request) error { //nolint:lll
	r := &healthStatus{
		Status:      result.Status,
		CurrentTime: rw.now().UTC(),
	}

	if result.Details != nil {
		r.Components = make(map[string]checkResult, len(*result.Details))

		for name, cr := range *result.Details {
			component := checkResult{CheckResult: cr}

			if t, ok := rw.responseTimes.Get(name); ok {
				component.LastResponseTime = t.LastResponseTime.String()
				component.AverageResponseTime = t.AverageResponseTime.String()
			}

			r.Components[name] = component
		}
	}

	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal health status: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}
