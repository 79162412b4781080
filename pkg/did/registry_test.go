/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"net/http"
	"net/http/httptest"
	"testing"

	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	t.Run("did:key", func(t *testing.T) {
		registry, err := NewRegistry(&RegistryConfig{})
		require.NoError(t, err)

		didKey, keyID := keyDID(t, newKeyStore(t, arieskms.ED25519Type))

		res, err := registry.Resolve(didKey)
		require.NoError(t, err)
		require.Equal(t, didKey, res.DIDDocument.ID)
		require.Equal(t, keyID, res.DIDDocument.VerificationMethod[0].ID)
	})

	t.Run("universal resolver", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		registry, err := NewRegistry(&RegistryConfig{
			UniversalResolverURL: srv.URL,
			HTTPClient:           srv.Client(),
		})
		require.NoError(t, err)

		_, err = registry.Resolve("did:example:123")
		require.Error(t, err)
	})

	t.Run("unsupported method without universal resolver", func(t *testing.T) {
		registry, err := NewRegistry(&RegistryConfig{})
		require.NoError(t, err)

		_, err = registry.Resolve("did:example:123")
		require.Error(t, err)
	})
}

func TestAcceptsRemoteDID(t *testing.T) {
	require.False(t, acceptsRemoteDID(MethodKey))
	require.False(t, acceptsRemoteDID(MethodJWK))
	require.False(t, acceptsRemoteDID(MethodWeb))
	require.True(t, acceptsRemoteDID("ion"))
}
