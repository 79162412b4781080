/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	vcsverifiable "github.com/laysakura/vc-issuer-mock/pkg/doc/verifiable"
	"github.com/laysakura/vc-issuer-mock/pkg/kms"
)

const alumniCredential = `{
  "@context": [
    "https://www.w3.org/ns/credentials/v2",
    "https://www.w3.org/ns/credentials/examples/v2"
  ],
  "id": "http://university.example/credentials/1872",
  "type": ["VerifiableCredential", "ExampleAlumniCredential"],
  "issuer": "https://university.example/issuers/565049",
  "validFrom": "2010-01-01T19:23:24Z",
  "credentialSubject": {
    "id": "did:example:ebfeb1f712ebc6f1c276e12ec21",
    "alumniOf": {
      "id": "did:example:c276e12ec21ebfeb1f712ebc6f1",
      "name": "Example University"
    }
  }
}`

type testSigner struct {
	name  string
	kt    arieskms.KeyType
	suite vcsverifiable.CryptoSuite
}

var testSigners = []testSigner{ //nolint:gochecknoglobals
	{name: "RSA", kt: arieskms.RSAPS256Type, suite: vcsverifiable.JSONWebSignature2020},
	{name: "P-256", kt: arieskms.ECDSAP256TypeIEEEP1363, suite: vcsverifiable.ECDSAJCS2019},
	{name: "P-384", kt: arieskms.ECDSAP384TypeIEEEP1363, suite: vcsverifiable.ECDSAJCS2019},
	{name: "Ed25519", kt: arieskms.ED25519Type, suite: vcsverifiable.EdDSAJCS2022},
}

func TestCrypto_SignCredential(t *testing.T) {
	created := time.Date(2024, 7, 24, 10, 0, 0, 0, time.UTC)
	c := New(WithClock(func() time.Time { return created }))

	for _, ts := range testSigners {
		t.Run(ts.name, func(t *testing.T) {
			ks, vm := newKeyStore(t, ts.kt)

			suite, err := SelectSuite(vm)
			require.NoError(t, err)
			require.Equal(t, ts.suite, suite)

			cred := parseCredential(t, alumniCredential)

			signed, err := c.SignCredential(context.Background(), suite, cred, ks, &SigningOptions{
				MandatoryPointers: []string{"/issuer", "/validFrom", "/validUntil"},
				VerificationMethod: vm,
			})
			require.NoError(t, err)

			// The input is left untouched.
			require.False(t, cred.Proof().Exists())

			proof := signed.Proof()
			require.True(t, proof.IsObject())
			require.Equal(t, suite.ProofType(), proof.Get("type").String())
			require.Equal(t, vm.ID, proof.Get("verificationMethod").String())
			require.Equal(t, AssertionMethod, proof.Get("proofPurpose").String())
			require.Equal(t, "2024-07-24T10:00:00Z", proof.Get("created").String())
			require.False(t, proof.Get("@context").Exists())

			if suite.IsDataIntegrity() {
				require.Equal(t, suite.Name(), proof.Get("cryptosuite").String())
				require.True(t, strings.HasPrefix(proof.Get("proofValue").String(), "z"))
				require.False(t, proof.Get("jws").Exists())
			} else {
				require.False(t, proof.Get("cryptosuite").Exists())
				require.Len(t, strings.Split(proof.Get("jws").String(), "."), 3)
				require.Contains(t, proof.Get("jws").String(), "..")

				header, err := base64.RawURLEncoding.DecodeString(strings.Split(proof.Get("jws").String(), ".")[0])
				require.NoError(t, err)
				require.Equal(t, "PS256", gjson.GetBytes(header, "alg").String())
				require.Equal(t, "false", gjson.GetBytes(header, "b64").Raw)
				require.Equal(t, `["b64"]`, gjson.GetBytes(header, "crit").Raw)
			}

			unsecured, err := signed.WithoutProof()
			require.NoError(t, err)
			require.JSONEq(t, alumniCredential, string(unsecured.Bytes()))

			require.NoError(t, VerifyCredential(signed, vm.Key))
		})
	}
}

func TestVerifyCredential_Tampered(t *testing.T) {
	c := New()

	for _, ts := range testSigners {
		t.Run(ts.name, func(t *testing.T) {
			ks, vm := newKeyStore(t, ts.kt)

			signed, err := c.SignCredential(context.Background(), ts.suite, parseCredential(t, alumniCredential), ks,
				&SigningOptions{VerificationMethod: vm})
			require.NoError(t, err)

			tampered, err := signed.WithIssuer("https://attacker.example")
			require.NoError(t, err)
			require.Error(t, VerifyCredential(tampered, vm.Key))

			_, otherVM := newKeyStore(t, ts.kt)
			require.Error(t, VerifyCredential(signed, otherVM.Key))
		})
	}

	t.Run("no proof", func(t *testing.T) {
		_, vm := newKeyStore(t, arieskms.ED25519Type)

		err := VerifyCredential(parseCredential(t, alumniCredential), vm.Key)
		require.ErrorContains(t, err, "no proof")
	})
}

func TestCrypto_SignCredential_Errors(t *testing.T) {
	c := New()
	ctx := context.Background()

	ks, vm := newKeyStore(t, arieskms.ED25519Type)

	t.Run("missing verification method", func(t *testing.T) {
		_, err := c.SignCredential(ctx, vcsverifiable.EdDSAJCS2022, parseCredential(t, alumniCredential), ks, nil)
		require.ErrorContains(t, err, "verification method is required")

		_, err = c.SignCredential(ctx, vcsverifiable.EdDSAJCS2022, parseCredential(t, alumniCredential), ks,
			&SigningOptions{})
		require.ErrorContains(t, err, "verification method is required")
	})

	t.Run("already secured", func(t *testing.T) {
		cred, err := parseCredential(t, alumniCredential).WithProof(map[string]interface{}{"type": "DataIntegrityProof"})
		require.NoError(t, err)

		_, err = c.SignCredential(ctx, vcsverifiable.EdDSAJCS2022, cred, ks, &SigningOptions{VerificationMethod: vm})
		require.ErrorContains(t, err, "already secured")
	})

	t.Run("invalid mandatory pointer", func(t *testing.T) {
		_, err := c.SignCredential(ctx, vcsverifiable.EdDSAJCS2022, parseCredential(t, alumniCredential), ks,
			&SigningOptions{VerificationMethod: vm, MandatoryPointers: []string{"issuer"}})
		require.ErrorContains(t, err, "invalid mandatory pointer")
	})

	t.Run("suite does not match key", func(t *testing.T) {
		_, err := c.SignCredential(ctx, vcsverifiable.ECDSAJCS2019, parseCredential(t, alumniCredential), ks,
			&SigningOptions{VerificationMethod: vm})
		require.ErrorContains(t, err, "does not match")
	})

	t.Run("no private key", func(t *testing.T) {
		_, otherVM := newKeyStore(t, arieskms.ED25519Type)

		_, err := c.SignCredential(ctx, vcsverifiable.EdDSAJCS2022, parseCredential(t, alumniCredential), ks,
			&SigningOptions{VerificationMethod: otherVM})
		require.ErrorContains(t, err, "no private key for verification method")
	})
}

func newKeyStore(t *testing.T, kt arieskms.KeyType) (*kms.KeyStore, *vc.VerificationMethod) {
	t.Helper()

	ks, err := kms.GenerateKeyStore(kt)
	require.NoError(t, err)

	return ks, &vc.VerificationMethod{
		ID:         "https://university.example/issuers/565049",
		Type:       vc.JSONWebKey2020,
		Controller: "https://university.example/issuers/565049",
		Key:        ks.PublicKeys()[0],
	}
}

func parseCredential(t *testing.T, s string) *vc.Credential {
	t.Helper()

	require.True(t, gjson.Valid(s))

	cred, err := vc.ParseCredential([]byte(s))
	require.NoError(t, err)

	return cred
}
