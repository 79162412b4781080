/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"
	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk/jwksupport"
	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"
	"github.com/stretchr/testify/require"

	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	"github.com/laysakura/vc-issuer-mock/pkg/kms"
	"github.com/laysakura/vc-issuer-mock/pkg/kms/key"
)

func TestGenerateKeyStore(t *testing.T) {
	t.Run("default key types", func(t *testing.T) {
		ks, err := kms.GenerateKeyStore()
		require.NoError(t, err)
		require.Equal(t, 3, ks.Len())

		pubs := ks.PublicKeys()
		require.Len(t, pubs, 3)
		require.Equal(t, "RSA", pubs[0].Kty)
		require.Equal(t, "EC", pubs[1].Kty)
		require.Equal(t, "P-384", pubs[1].Crv)
		require.Equal(t, "OKP", pubs[2].Kty)
		require.Equal(t, "Ed25519", pubs[2].Crv)

		for i, pair := range ks.KeyPairs() {
			require.True(t, pair.Public.IsPublic())
			require.False(t, pair.Private.IsPublic())
			require.Equal(t, pair.Private.KeyID, pair.Public.KeyID)
			require.Same(t, pubs[i], pair.Public)
		}
	})

	t.Run("explicit key types", func(t *testing.T) {
		ks, err := kms.GenerateKeyStore(arieskms.ED25519Type, arieskms.ECDSAP256TypeIEEEP1363)
		require.NoError(t, err)
		require.Equal(t, 2, ks.Len())
		require.Equal(t, "Ed25519", ks.PublicKeys()[0].Crv)
		require.Equal(t, "P-256", ks.PublicKeys()[1].Crv)
	})

	t.Run("unsupported key type", func(t *testing.T) {
		_, err := kms.GenerateKeyStore(arieskms.BLS12381G2Type)
		require.ErrorContains(t, err, "unsupported key type")
	})
}

func TestNewKeyStore(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := kms.NewKeyStore()
		require.ErrorContains(t, err, "at least one private key")
	})

	t.Run("public key rejected", func(t *testing.T) {
		pub, _, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		j, err := jwksupport.JWKFromKey(pub)
		require.NoError(t, err)

		_, err = kms.NewKeyStore(j)
		require.ErrorContains(t, err, "not a private key")
	})

	t.Run("nil key rejected", func(t *testing.T) {
		_, err := kms.NewKeyStore(&jwk.JWK{})
		require.ErrorContains(t, err, "empty key")
	})

	t.Run("duplicate keys keep the first", func(t *testing.T) {
		first, err := key.Create(arieskms.ED25519Type)
		require.NoError(t, err)

		second := &jwk.JWK{JSONWebKey: first.JSONWebKey}
		second.KeyID = "second"

		ks, err := kms.NewKeyStore(first, second)
		require.NoError(t, err)
		require.Equal(t, 2, ks.Len())

		priv, ok := ks.FindPrivateKey(ks.PublicKeys()[1])
		require.True(t, ok)
		require.Equal(t, first.KeyID, priv.KeyID)
	})
}

func TestParseKeyStore(t *testing.T) {
	generated, err := kms.GenerateKeyStore()
	require.NoError(t, err)

	var raw [][]byte

	for _, pair := range generated.KeyPairs() {
		b, err := pair.Private.MarshalJSON()
		require.NoError(t, err)

		raw = append(raw, b)
	}

	ks, err := kms.ParseKeyStore(raw...)
	require.NoError(t, err)
	require.Equal(t, generated.Len(), ks.Len())

	for _, pub := range generated.PublicKeys() {
		priv, ok := ks.FindPrivateKey(pub)
		require.True(t, ok)
		require.Equal(t, pub.KeyID, priv.KeyID)
	}

	_, err = kms.ParseKeyStore([]byte("{"))
	require.ErrorContains(t, err, "parse key #0")
}

func TestKeyStore_Lookup(t *testing.T) {
	ks, err := kms.GenerateKeyStore()
	require.NoError(t, err)

	other, err := kms.GenerateKeyStore(arieskms.ED25519Type)
	require.NoError(t, err)

	t.Run("find private key", func(t *testing.T) {
		for _, pair := range ks.KeyPairs() {
			priv, ok := ks.FindPrivateKey(pair.Public)
			require.True(t, ok)
			require.Same(t, pair.Private, priv)

			// Lookup by private key compares the public part.
			priv, ok = ks.FindPrivateKey(pair.Private)
			require.True(t, ok)
			require.Same(t, pair.Private, priv)
		}

		_, ok := ks.FindPrivateKey(other.PublicKeys()[0])
		require.False(t, ok)

		_, ok = ks.FindPrivateKey(nil)
		require.False(t, ok)
	})

	t.Run("find by key id", func(t *testing.T) {
		pair := ks.KeyPairs()[1]

		found := ks.FindByKeyID(pair.Private.KeyID)
		require.Len(t, found, 1)
		require.Same(t, pair, found[0])

		require.Empty(t, ks.FindByKeyID("unknown"))
	})

	t.Run("signer for verification method", func(t *testing.T) {
		var signer vc.Signer = ks

		pair := ks.KeyPairs()[2]

		priv, ok := signer.SignerFor(&vc.VerificationMethod{ID: "did:example:123#key-1", Key: pair.Public})
		require.True(t, ok)
		require.Same(t, pair.Private, priv)

		_, ok = signer.SignerFor(&vc.VerificationMethod{ID: "did:example:123#key-1"})
		require.False(t, ok)

		_, ok = signer.SignerFor(nil)
		require.False(t, ok)

		_, ok = signer.SignerFor(&vc.VerificationMethod{Key: other.PublicKeys()[0]})
		require.False(t, ok)
	})
}
