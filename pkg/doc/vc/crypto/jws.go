/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"crypto"
	"fmt"

	"github.com/go-jose/go-jose/v3"

	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	"github.com/laysakura/vc-issuer-mock/pkg/kms/signer"
)

// signJWS adds a JsonWebSignature2020 proof holding a detached JWS with an unencoded payload (RFC 7797)
// over the signature base.
func signJWS(credential *vc.Credential, proof map[string]interface{}, s *signer.JWKSigner) (*vc.Credential, error) {
	payload, err := signatureBase(credential, proof, crypto.SHA256)
	if err != nil {
		return nil, err
	}

	joseSigner, err := jose.NewSigner(jose.SigningKey{
		Algorithm: jose.SignatureAlgorithm(s.Alg()),
		Key:       s,
	}, (&jose.SignerOptions{}).WithBase64(false))
	if err != nil {
		return nil, fmt.Errorf("create jws signer: %w", err)
	}

	jws, err := joseSigner.Sign(payload)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	detached, err := jws.DetachedCompactSerialize()
	if err != nil {
		return nil, fmt.Errorf("serialize jws: %w", err)
	}

	proof[proofJWS] = detached

	return credential.WithProof(proof)
}
