/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signer

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	_ "crypto/sha256" // hash registration
	_ "crypto/sha512" // hash registration
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"

	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	vcsverifiable "github.com/laysakura/vc-issuer-mock/pkg/doc/verifiable"
	noopMetricsProvider "github.com/laysakura/vc-issuer-mock/pkg/observability/metrics/noop"
)

type metricsProvider interface {
	SignTime(value time.Duration)
}

var (
	_ vc.SignerAlgorithm = (*JWKSigner)(nil)
	_ jose.OpaqueSigner  = (*JWKSigner)(nil)
)

// JWKSigner signs messages with a private key held in JWK format.
// Note: do not create an instance of JWKSigner directly. Use NewJWKSigner() instead.
type JWKSigner struct {
	key           *jwk.JWK
	signatureType vcsverifiable.SignatureType
	metrics       metricsProvider
}

// NewJWKSigner creates a signer for a private key. The signature algorithm follows the key type.
func NewJWKSigner(privateKey *jwk.JWK, metrics metricsProvider) (*JWKSigner, error) {
	if privateKey == nil || privateKey.Key == nil {
		return nil, errors.New("private key is required")
	}

	if privateKey.IsPublic() {
		return nil, errors.New("signer requires a private key")
	}

	kty, crv := vc.KeyTypeOf(privateKey)

	signatureType, err := vcsverifiable.GetSignatureTypeByKey(kty, crv)
	if err != nil {
		return nil, err
	}

	if metrics == nil {
		metrics = &noopMetricsProvider.NoMetrics{}
	}

	return &JWKSigner{
		key:           privateKey,
		signatureType: signatureType,
		metrics:       metrics,
	}, nil
}

// Sign signs data. ECDSA signatures are returned in IEEE P1363 (r||s) form.
func (s *JWKSigner) Sign(data []byte) ([]byte, error) {
	startTime := time.Now()

	defer func() {
		s.metrics.SignTime(time.Since(startTime))
	}()

	switch k := s.key.Key.(type) {
	case ed25519.PrivateKey:
		return ed25519.Sign(k, data), nil
	case *ecdsa.PrivateKey:
		return signECDSA(k, s.hash(), data)
	case *rsa.PrivateKey:
		digest := sum(s.hash(), data)

		sig, err := rsa.SignPSS(rand.Reader, k, s.hash(), digest, &rsa.PSSOptions{
			SaltLength: rsa.PSSSaltLengthEqualsHash,
		})
		if err != nil {
			return nil, fmt.Errorf("rsa sign: %w", err)
		}

		return sig, nil
	default:
		return nil, fmt.Errorf("unsupported private key %T", s.key.Key)
	}
}

func (s *JWKSigner) Alg() string {
	return s.signatureType.Name()
}

// Public returns the public key of the signer.
func (s *JWKSigner) Public() *jose.JSONWebKey {
	pub := s.key.Public()

	return &pub
}

// Algs returns the JWS algorithm of the signer.
func (s *JWKSigner) Algs() []jose.SignatureAlgorithm {
	return []jose.SignatureAlgorithm{jose.SignatureAlgorithm(s.Alg())}
}

// SignPayload signs a JWS signing input.
func (s *JWKSigner) SignPayload(payload []byte, alg jose.SignatureAlgorithm) ([]byte, error) {
	if string(alg) != s.Alg() {
		return nil, fmt.Errorf("algorithm %s is not supported by %s signer", alg, s.Alg())
	}

	return s.Sign(payload)
}

func (s *JWKSigner) hash() crypto.Hash {
	if s.signatureType == vcsverifiable.ES384 {
		return crypto.SHA384
	}

	return crypto.SHA256
}

func signECDSA(k *ecdsa.PrivateKey, h crypto.Hash, data []byte) ([]byte, error) {
	r, ss, err := ecdsa.Sign(rand.Reader, k, sum(h, data))
	if err != nil {
		return nil, fmt.Errorf("ecdsa sign: %w", err)
	}

	size := (k.Curve.Params().BitSize + 7) / 8 //nolint:gomnd

	sig := make([]byte, 2*size)
	r.FillBytes(sig[:size])
	ss.FillBytes(sig[size:])

	return sig, nil
}

func sum(h crypto.Hash, data []byte) []byte {
	hasher := h.New()
	hasher.Write(data)

	return hasher.Sum(nil)
}
