/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/laysakura/vc-issuer-mock/cmd/common"
	"github.com/laysakura/vc-issuer-mock/internal/logfields"
	"github.com/laysakura/vc-issuer-mock/pkg/did"
	"github.com/laysakura/vc-issuer-mock/pkg/doc/validator/jsonschema"
	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc/crypto"
	"github.com/laysakura/vc-issuer-mock/pkg/kms"
	"github.com/laysakura/vc-issuer-mock/pkg/kms/key"
	keystorecheck "github.com/laysakura/vc-issuer-mock/pkg/observability/health/keystore"
	"github.com/laysakura/vc-issuer-mock/pkg/observability/metrics"
	metricsnoop "github.com/laysakura/vc-issuer-mock/pkg/observability/metrics/noop"
	metricsprovider "github.com/laysakura/vc-issuer-mock/pkg/observability/metrics/prometheus"
	"github.com/laysakura/vc-issuer-mock/pkg/observability/tracing"
	issuecredentialtracing "github.com/laysakura/vc-issuer-mock/pkg/observability/tracing/wrappers/issuecredential"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/handlers"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/v1/healthcheck"
	issuerv1 "github.com/laysakura/vc-issuer-mock/pkg/restapi/v1/issuer"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/v1/logapi"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/v1/mw"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/v1/version"
	"github.com/laysakura/vc-issuer-mock/pkg/service/issuecredential"
)

var logger = log.New("issuer-rest")

type server interface {
	ListenAndServe(host string, router http.Handler) error
}

// HTTPServer represents an actual HTTP server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, router http.Handler) error {
	return http.ListenAndServe(host, router) //nolint:gosec
}

type startOpts struct {
	server  server
	version string
}

// StartOpts configures the start command.
type StartOpts func(opts *startOpts)

// WithHTTPServer sets the server the echo router is served with.
func WithHTTPServer(srv server) StartOpts {
	return func(opts *startOpts) {
		opts.server = srv
	}
}

// WithVersion sets the build version reported by GET /version.
func WithVersion(v string) StartOpts {
	return func(opts *startOpts) {
		opts.version = v
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start issuer-rest",
		Long:  "Start issuer-rest, the VC-API credential issuer",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			if params.logLevel != "" {
				common.SetDefaultLogLevel(logger, params.logLevel)
			}

			o := &startOpts{server: &HTTPServer{}}

			for _, opt := range opts {
				opt(o)
			}

			e, shutdown, err := buildEchoHandler(params, o.version)
			if err != nil {
				return err
			}

			defer shutdown()

			logger.Info("Starting issuer-rest", log.WithURL(params.hostURL))

			return o.server.ListenAndServe(params.hostURL, e)
		},
	}
}

func buildEchoHandler(params *startupParameters, buildVersion string) (*echo.Echo, func(), error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	shutdownTracing, tracer, err := tracing.Initialize(params.tracingParams.exporter, params.tracingParams.serviceName)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize tracing: %w", err)
	}

	e.HTTPErrorHandler = handlers.HTTPErrorHandler(tracer)

	e.Use(echomw.Recover())
	e.Use(mw.BodyDump())

	metricsProvider, err := createMetricsProvider(params, e)
	if err != nil {
		shutdownTracing()

		return nil, nil, err
	}

	shutdown := func() {
		if destroyErr := metricsProvider.Destroy(); destroyErr != nil {
			logger.Warn("Failed to destroy metrics provider", log.WithError(destroyErr))
		}

		shutdownTracing()
	}

	m := metricsProvider.Metrics()

	keyStore, err := createKeyStore(params)
	if err != nil {
		shutdown()

		return nil, nil, err
	}

	vdr, err := did.NewRegistry(&did.RegistryConfig{
		UniversalResolverURL: params.universalResolverURL,
		HTTPClient:           &http.Client{Timeout: params.didWebHTTPTimeout},
	})
	if err != nil {
		shutdown()

		return nil, nil, fmt.Errorf("create DID registry: %w", err)
	}

	issueCredentialSvc := issuecredential.New(&issuecredential.Config{
		Resolver: did.NewResolver(&did.Config{
			VDR:      vdr,
			KeyStore: keyStore,
			Metrics:  m,
		}),
		Crypto:  crypto.New(crypto.WithMetrics(m)),
		Signer:  keyStore,
		Metrics: m,
	})

	issuerv1.RegisterHandlers(e, issuerv1.NewController(&issuerv1.Config{
		IssueCredentialService: issuecredentialtracing.Wrap(issueCredentialSvc, tracer),
		SchemaValidator:        jsonschema.NewCachingValidator(),
		DefaultIssuer:          params.defaultIssuer,
	}))

	healthcheck.RegisterHandlers(e, healthcheck.NewController(keystorecheck.Check(keyStore)))
	logapi.NewController(e)
	version.NewController(e, version.Config{Version: buildVersion})

	return e, shutdown, nil
}

func createMetricsProvider(params *startupParameters, e *echo.Echo) (metrics.Provider, error) {
	var provider metrics.Provider

	switch params.metricsProvider {
	case metrics.ProviderPrometheus:
		metricsEcho := e
		if params.promHTTPURL != "" {
			metricsEcho = echo.New()
			metricsEcho.HideBanner = true
			metricsEcho.HidePort = true
		}

		provider = metricsprovider.NewPrometheusProvider(metricsEcho, params.promHTTPURL)
	default:
		provider = metricsnoop.NewProvider()
	}

	if err := provider.Create(); err != nil {
		return nil, fmt.Errorf("create metrics provider: %w", err)
	}

	return provider, nil
}

func createKeyStore(params *startupParameters) (*kms.KeyStore, error) {
	if len(params.issuerKeyFiles) > 0 {
		rawKeys := make([][]byte, 0, len(params.issuerKeyFiles))

		for _, path := range params.issuerKeyFiles {
			raw, err := os.ReadFile(path) //nolint:gosec
			if err != nil {
				return nil, fmt.Errorf("read issuer key file %s: %w", path, err)
			}

			rawKeys = append(rawKeys, raw)
		}

		ks, err := kms.ParseKeyStore(rawKeys...)
		if err != nil {
			return nil, fmt.Errorf("load issuer keys: %w", err)
		}

		logger.Info("Issuer keys loaded", logfields.WithKeyCount(ks.Len()))

		return ks, nil
	}

	keyTypes, err := key.ParseKeyTypes(params.issuerKeyTypes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", issuerKeyTypesFlagName, err)
	}

	ks, err := kms.GenerateKeyStore(keyTypes...)
	if err != nil {
		return nil, fmt.Errorf("generate issuer keys: %w", err)
	}

	logger.Info("Issuer keys generated", logfields.WithKeyCount(ks.Len()))

	return ks, nil
}
