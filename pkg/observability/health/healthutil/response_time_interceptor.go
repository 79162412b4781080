/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

type ResponseTimeState struct {
	LastResponseTime    time.Duration
	AverageResponseTime time.Duration
}

// ResponseTimes holds the response times of health checks, keyed by check name.
type ResponseTimes struct {
	mu     sync.RWMutex
	states map[string]ResponseTimeState
}

func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{states: map[string]ResponseTimeState{}}
}

// Get returns the response times of the named check.
func (rt *ResponseTimes) Get(name string) (ResponseTimeState, bool) {
	if rt == nil {
		return ResponseTimeState{}, false
	}

	rt.mu.RLock()
	defer rt.mu.RUnlock()

	s, ok := rt.states[name]

	return s, ok
}

func (rt *ResponseTimes) record(name string, elapsed time.Duration) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	prev, ok := rt.states[name]
	if !ok {
		rt.states[name] = ResponseTimeState{
			LastResponseTime:    elapsed,
			AverageResponseTime: elapsed,
		}

		return
	}

	rt.states[name] = ResponseTimeState{
		LastResponseTime:    elapsed,
		AverageResponseTime: (prev.AverageResponseTime + elapsed) / 2, //nolint:mnd
	}
}

// ResponseTimeInterceptor records the duration of every check run into rt.
func ResponseTimeInterceptor(rt *ResponseTimes) health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			start := time.Now()
			result := next(ctx, name, state)

			rt.record(name, time.Since(start))

			return result
		}
	}
}
