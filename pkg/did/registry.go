/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"fmt"
	"net/http"

	jwkvdr "github.com/hyperledger/aries-framework-go-ext/component/vdr/jwk"
	ariesdid "github.com/hyperledger/aries-framework-go/component/models/did"
	vdrpkg "github.com/hyperledger/aries-framework-go/component/vdr"
	vdrapi "github.com/hyperledger/aries-framework-go/component/vdr/api"
	"github.com/hyperledger/aries-framework-go/component/vdr/httpbinding"
	"github.com/hyperledger/aries-framework-go/component/vdr/key"
	"github.com/hyperledger/aries-framework-go/component/vdr/web"
)

// Locally resolved DID methods.
const (
	MethodKey = "key"
	MethodJWK = "jwk"
	MethodWeb = "web"
)

// RegistryConfig configures the DID registry.
type RegistryConfig struct {
	// UniversalResolverURL, when set, resolves the DID methods not handled locally.
	UniversalResolverURL string
	// HTTPClient is used for did:web and the universal resolver.
	HTTPClient *http.Client
}

// NewRegistry creates a VDR registry resolving did:key, did:jwk and did:web locally.
func NewRegistry(config *RegistryConfig) (vdrapi.Registry, error) {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	opts := []vdrpkg.Option{
		vdrpkg.WithVDR(key.New()),
		vdrpkg.WithVDR(jwkvdr.New()),
		vdrpkg.WithVDR(&webVDR{http: httpClient, VDR: web.New()}),
	}

	if config.UniversalResolverURL != "" {
		universalResolverVDR, err := httpbinding.New(config.UniversalResolverURL,
			httpbinding.WithAccept(acceptsRemoteDID), httpbinding.WithHTTPClient(httpClient))
		if err != nil {
			return nil, fmt.Errorf("failed to create new universal resolver vdr: %w", err)
		}

		opts = append(opts, vdrpkg.WithVDR(universalResolverVDR))
	}

	return vdrpkg.New(opts...), nil
}

// acceptsRemoteDID returns if the universal resolver should resolve the given DID method.
func acceptsRemoteDID(method string) bool {
	return method != MethodKey && method != MethodJWK && method != MethodWeb
}

type webVDR struct {
	http *http.Client
	*web.VDR
}

func (w *webVDR) Read(didID string, opts ...vdrapi.DIDMethodOption) (*ariesdid.DocResolution, error) {
	docRes, err := w.VDR.Read(didID, append(opts, vdrapi.WithOption(web.HTTPClientOpt, w.http))...)
	if err != nil {
		return nil, fmt.Errorf("failed to read did web: %w", err)
	}

	return docRes, nil
}
