/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/laysakura/vc-issuer-mock/cmd/common"
	"github.com/laysakura/vc-issuer-mock/pkg/observability/metrics"
	"github.com/laysakura/vc-issuer-mock/pkg/observability/tracing"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLEnvKey        = "VC_ISSUER_HOST_URL"
	hostURLFlagUsage     = "URL to run the issuer-rest instance on. Format: HostName:Port. Defaults to " +
		defaultHostURL + ". " + commonEnvVarUsageText + hostURLEnvKey

	issuerKeysFlagName  = "issuer-keys"
	issuerKeysEnvKey    = "VC_ISSUER_ISSUER_KEYS"
	issuerKeysFlagUsage = "Comma-separated list of paths to files holding an issuer private key in JWK format. " +
		"Fresh keys are generated when not set. " + commonEnvVarUsageText + issuerKeysEnvKey

	issuerKeyTypesFlagName  = "issuer-key-types"
	issuerKeyTypesEnvKey    = "VC_ISSUER_ISSUER_KEY_TYPES"
	issuerKeyTypesFlagUsage = "Comma-separated list of key types generated when --" + issuerKeysFlagName +
		" is not set. Supported: RSAPS256, ECDSAP256IEEEP1363, ECDSAP384IEEEP1363, ED25519. " +
		"Defaults to RSAPS256,ECDSAP384IEEEP1363,ED25519. " + commonEnvVarUsageText + issuerKeyTypesEnvKey

	defaultIssuerFlagName  = "default-issuer"
	defaultIssuerEnvKey    = "VC_ISSUER_DEFAULT_ISSUER"
	defaultIssuerFlagUsage = "Issuer ID set on credentials that have no issuer. Defaults to " +
		defaultIssuerID + ". " + commonEnvVarUsageText + defaultIssuerEnvKey

	didWebHTTPTimeoutFlagName  = "did-web-http-timeout"
	didWebHTTPTimeoutEnvKey    = "VC_ISSUER_DID_WEB_HTTP_TIMEOUT"
	didWebHTTPTimeoutFlagUsage = "HTTP timeout used to resolve did:web and remote DIDs. Defaults to " +
		"10s. " + commonEnvVarUsageText + didWebHTTPTimeoutEnvKey

	universalResolverURLFlagName  = "universal-resolver-url"
	universalResolverURLEnvKey    = "VC_ISSUER_UNIVERSAL_RESOLVER_URL"
	universalResolverURLFlagUsage = "Universal Resolver URL used for DID methods not resolved locally. " +
		commonEnvVarUsageText + universalResolverURLEnvKey

	metricsProviderFlagName  = "metrics-provider"
	metricsProviderEnvKey    = "VC_ISSUER_METRICS_PROVIDER"
	metricsProviderFlagUsage = "Metrics provider (none, prometheus). Defaults to none. " +
		commonEnvVarUsageText + metricsProviderEnvKey

	promHTTPURLFlagName  = "prom-http-url"
	promHTTPURLEnvKey    = "VC_ISSUER_PROM_HTTP_URL"
	promHTTPURLFlagUsage = "Host:Port of a dedicated Prometheus metrics server. The /metrics endpoint is served " +
		"by the API server when not set. " + commonEnvVarUsageText + promHTTPURLEnvKey

	tracingExporterFlagName  = "tracing-exporter"
	tracingExporterEnvKey    = "VC_ISSUER_TRACING_EXPORTER"
	tracingExporterFlagUsage = "Tracing span exporter (JAEGER, STDOUT). Tracing is disabled when not set. " +
		commonEnvVarUsageText + tracingExporterEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "VC_ISSUER_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "Service name reported to the tracing backend. Defaults to issuer-rest. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey
)

const (
	defaultHostURL            = "0.0.0.0:50080"
	defaultIssuerID           = "https://github.com/laysakura/vc-issuer-mock"
	defaultDIDWebHTTPTimeout  = 10 * time.Second
	defaultTracingServiceName = "issuer-rest"
)

type startupParameters struct {
	hostURL              string
	issuerKeyFiles       []string
	issuerKeyTypes       []string
	defaultIssuer        string
	didWebHTTPTimeout    time.Duration
	universalResolverURL string
	metricsProvider      string
	promHTTPURL          string
	tracingParams        *tracingParams
	logLevel             string
}

type tracingParams struct {
	exporter    tracing.SpanExporterType
	serviceName string
}

func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, true)
	if err != nil {
		return nil, err
	}

	if hostURL == "" {
		hostURL = defaultHostURL
	}

	defaultIssuer := cmdutils.GetUserSetOptionalVarFromString(cmd, defaultIssuerFlagName, defaultIssuerEnvKey)
	if defaultIssuer == "" {
		defaultIssuer = defaultIssuerID
	}

	didWebHTTPTimeout, err := getDuration(cmd, didWebHTTPTimeoutFlagName, didWebHTTPTimeoutEnvKey,
		defaultDIDWebHTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", didWebHTTPTimeoutFlagName, err)
	}

	metricsProvider, err := getMetricsProviderName(cmd)
	if err != nil {
		return nil, err
	}

	tracingParams, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:              hostURL,
		issuerKeyFiles:       cmdutils.GetUserSetOptionalCSVVar(cmd, issuerKeysFlagName, issuerKeysEnvKey),
		issuerKeyTypes:       cmdutils.GetUserSetOptionalCSVVar(cmd, issuerKeyTypesFlagName, issuerKeyTypesEnvKey),
		defaultIssuer:        defaultIssuer,
		didWebHTTPTimeout:    didWebHTTPTimeout,
		universalResolverURL: cmdutils.GetUserSetOptionalVarFromString(cmd, universalResolverURLFlagName,
			universalResolverURLEnvKey),
		metricsProvider: metricsProvider,
		promHTTPURL:     cmdutils.GetUserSetOptionalVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey),
		tracingParams:   tracingParams,
		logLevel:        cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
	}, nil
}

func getMetricsProviderName(cmd *cobra.Command) (string, error) {
	metricsProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey)

	switch metricsProvider {
	case "":
		return metrics.ProviderNone, nil
	case metrics.ProviderNone, metrics.ProviderPrometheus:
		return metricsProvider, nil
	default:
		return "", fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	exporter := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingExporterFlagName, tracingExporterEnvKey)
	if !tracing.IsExportedSupported(exporter) {
		return nil, fmt.Errorf("unsupported tracing exporter: %s", exporter)
	}

	return &tracingParams{
		exporter:    exporter,
		serviceName: serviceName,
	}, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringSlice(issuerKeysFlagName, []string{}, issuerKeysFlagUsage)
	startCmd.Flags().StringSlice(issuerKeyTypesFlagName, []string{}, issuerKeyTypesFlagUsage)
	startCmd.Flags().String(defaultIssuerFlagName, "", defaultIssuerFlagUsage)
	startCmd.Flags().String(didWebHTTPTimeoutFlagName, "", didWebHTTPTimeoutFlagUsage)
	startCmd.Flags().String(universalResolverURLFlagName, "", universalResolverURLFlagUsage)
	startCmd.Flags().String(metricsProviderFlagName, "", metricsProviderFlagUsage)
	startCmd.Flags().String(promHTTPURLFlagName, "", promHTTPURLFlagUsage)
	startCmd.Flags().String(tracingExporterFlagName, "", tracingExporterFlagUsage)
	startCmd.Flags().String(tracingServiceNameFlagName, "", tracingServiceNameFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
}
