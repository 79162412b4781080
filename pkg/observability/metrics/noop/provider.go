/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/laysakura/vc-issuer-mock/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) SignTime(_ time.Duration)                      {}
func (n *NoMetrics) ResolveVerificationMethodTime(_ time.Duration) {}
func (n *NoMetrics) IssueCredentialTime(_ time.Duration)           {}

type noopProvider struct{}

// NewProvider creates a metrics provider that discards all measurements.
func NewProvider() metrics.Provider {
	return &noopProvider{}
}

func (p *noopProvider) Create() error {
	return nil
}

func (p *noopProvider) Destroy() error {
	return nil
}

func (p *noopProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}
