/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/laysakura/vc-issuer-mock/pkg/observability/metrics"
)

const metricsPath = "/metrics"

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	e        *echo.Echo
	hostURL  string
	separate bool
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider. Create adds GET /metrics to e,
// served in the OpenMetrics format when the scraper asks for it.
// When hostURL is set, e is a dedicated metrics server started by Create and stopped by Destroy.
func NewPrometheusProvider(e *echo.Echo, hostURL string) metrics.Provider {
	return &promProvider{e: e, hostURL: hostURL, separate: hostURL != ""}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.e == nil {
		return nil
	}

	pp.e.GET(metricsPath, echo.WrapHandler(promhttp.HandlerFor(prometheus.DefaultGatherer,
		promhttp.HandlerOpts{EnableOpenMetrics: true},
	)))

	if !pp.separate {
		return nil
	}

	go func() {
		if err := pp.e.Start(pp.hostURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics HTTP server stopped", log.WithError(err), log.WithURL(pp.hostURL))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.e != nil && pp.separate {
		return pp.e.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the issuer.
type PromMetrics struct {
	signTime            prometheus.Histogram
	resolveVMTime       prometheus.Histogram
	issueCredentialTime prometheus.Histogram
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		signTime:            newSignTime(),
		resolveVMTime:       newResolveVMTime(),
		issueCredentialTime: newIssueCredentialTime(),
	}

	registerMetrics(pm)

	return pm
}

// SignTime records the time for sign.
func (pm *PromMetrics) SignTime(value time.Duration) {
	pm.signTime.Observe(value.Seconds())

	logger.Debug("crypto sign time", log.WithDuration(value))
}

// ResolveVerificationMethodTime records the time to resolve the verification method of an issuer.
func (pm *PromMetrics) ResolveVerificationMethodTime(value time.Duration) {
	pm.resolveVMTime.Observe(value.Seconds())

	logger.Debug("verification method resolution time", log.WithDuration(value))
}

// IssueCredentialTime records the time for the IssueCredential service call.
func (pm *PromMetrics) IssueCredentialTime(value time.Duration) {
	pm.issueCredentialTime.Observe(value.Seconds())

	logger.Debug("IssueCredential service call time", log.WithDuration(value))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.signTime, pm.resolveVMTime, pm.issueCredentialTime,
	)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newSignTime() prometheus.Histogram {
	return newHistogram(
		metrics.Crypto, metrics.CryptoSignTimeMetric,
		"The time (in seconds) it takes to run crypto sign.",
		nil,
	)
}

func newResolveVMTime() prometheus.Histogram {
	return newHistogram(
		metrics.Resolver, metrics.ResolveVerificationMethodMetric,
		"The time (in seconds) it takes to resolve the verification method of an issuer.",
		nil,
	)
}

func newIssueCredentialTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.IssueCredentialMetric,
		"The time (in seconds) it takes to execute IssueCredential service call.",
		nil,
	)
}
