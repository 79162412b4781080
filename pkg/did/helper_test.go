/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"
	"github.com/hyperledger/aries-framework-go/component/models/did"
	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"
	"github.com/stretchr/testify/require"
)

func TestIsDID(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "did:example:123", want: true},
		{value: "did:example:123#key-1", want: true},
		{value: "did:web:university.example:issuers:565049", want: true},
		{value: "https://university.example/issuers/565049"},
		{value: "did:"},
		{value: "university"},
		{value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			require.Equal(t, tt.want, IsDID(tt.value))
		})
	}
}

func TestDIDFromURL(t *testing.T) {
	require.Equal(t, "did:example:123", DIDFromURL("did:example:123#key-1"))
	require.Equal(t, "did:example:123", DIDFromURL("did:example:123?versionId=1"))
	require.Equal(t, "did:example:123", DIDFromURL("did:example:123/path"))
	require.Equal(t, "did:example:123", DIDFromURL("did:example:123"))
}

func TestFragment(t *testing.T) {
	require.Equal(t, "key-1", Fragment("did:example:123#key-1"))
	require.Empty(t, Fragment("did:example:123"))
}

func TestIsAbsoluteURI(t *testing.T) {
	require.True(t, IsAbsoluteURI("https://university.example/issuers/565049"))
	require.True(t, IsAbsoluteURI("did:example:123#key-1"))
	require.True(t, IsAbsoluteURI("urn:uuid:2f1a0c1e-8a3b-4b1c-9d0e-1f2a3b4c5d6e"))
	require.False(t, IsAbsoluteURI("key-1"))
	require.False(t, IsAbsoluteURI("/issuers/565049"))
	require.False(t, IsAbsoluteURI(""))
}

func TestKeyDID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ks := newKeyStore(t, arieskms.ECDSAP256TypeIEEEP1363)

		didKey, keyID := keyDID(t, ks)
		require.True(t, strings.HasPrefix(didKey, "did:key:z"))
		require.Equal(t, didKey, DIDFromURL(keyID))
		require.NotEmpty(t, Fragment(keyID))
	})

	t.Run("RSA keys have no did:key", func(t *testing.T) {
		ks := newKeyStore(t, arieskms.RSAPS256Type)

		_, _, err := KeyDID(ks.PublicKeys()[0])
		require.ErrorContains(t, err, "create did:key")
	})
}

func TestToVerificationMethod(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	t.Run("raw Ed25519 key", func(t *testing.T) {
		m := did.NewVerificationMethodFromBytes("#key-1", Ed25519VerificationKey2020, "", pub)

		vm := toVerificationMethod("did:example:123", m)
		require.Equal(t, "did:example:123#key-1", vm.ID)
		require.Equal(t, "did:example:123", vm.Controller)
		require.NotNil(t, vm.Key)
		require.Equal(t, ed25519.PublicKey(pub), vm.Key.Key)
	})

	t.Run("unsupported key material", func(t *testing.T) {
		m := did.NewVerificationMethodFromBytes("did:example:123#key-2", "X25519KeyAgreementKey2019",
			"did:example:controller", pub)

		vm := toVerificationMethod("did:example:123", m)
		require.Equal(t, "did:example:123#key-2", vm.ID)
		require.Equal(t, "did:example:controller", vm.Controller)
		require.Nil(t, vm.Key)
	})

	t.Run("JWK key material", func(t *testing.T) {
		ks := newKeyStore(t, arieskms.ECDSAP256TypeIEEEP1363)

		m, err := did.NewVerificationMethodFromJWK("did:example:123#key-3", "JsonWebKey2020",
			"did:example:123", ks.PublicKeys()[0])
		require.NoError(t, err)

		vm := toVerificationMethod("did:example:123", m)
		require.IsType(t, &jwk.JWK{}, vm.Key)
		require.Equal(t, "P-256", vm.Curve())
	})
}
