/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/go-jose/go-jose/v3"
	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"
	"github.com/multiformats/go-multibase"

	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	vcsverifiable "github.com/laysakura/vc-issuer-mock/pkg/doc/verifiable"
)

// VerifyCredential checks the proof of a secured credential against a public key.
func VerifyCredential(credential *vc.Credential, publicKey *jwk.JWK) error {
	proofResult := credential.Proof()
	if !proofResult.IsObject() {
		return errors.New("credential has no proof object")
	}

	if publicKey == nil || publicKey.Key == nil {
		return errors.New("public key is required")
	}

	proof, ok := proofResult.Value().(map[string]interface{})
	if !ok {
		return errors.New("invalid proof")
	}

	suite, err := vcsverifiable.ParseCryptoSuite(
		proofResult.Get(proofType).String(), proofResult.Get(proofCryptosuite).String())
	if err != nil {
		return err
	}

	kty, crv := vc.KeyTypeOf(publicKey)

	signatureType, err := vcsverifiable.GetSignatureTypeByKey(kty, crv)
	if err != nil {
		return err
	}

	pub := publicKey.Public().Key

	if suite == vcsverifiable.JSONWebSignature2020 {
		return verifyJWS(credential, proof, proofResult.Get(proofJWS).String(), pub)
	}

	hashData, err := signatureBase(credential, proof, hashForAlg(signatureType.Name()))
	if err != nil {
		return err
	}

	_, sig, err := multibase.Decode(proofResult.Get(proofValue).String())
	if err != nil {
		return fmt.Errorf("decode proof value: %w", err)
	}

	return verifySignature(pub, signatureType, hashData, sig)
}

func verifyJWS(credential *vc.Credential, proof map[string]interface{}, detached string, pub interface{}) error {
	payload, err := signatureBase(credential, proof, crypto.SHA256)
	if err != nil {
		return err
	}

	jws, err := jose.ParseDetached(detached, payload)
	if err != nil {
		return fmt.Errorf("parse jws: %w", err)
	}

	if _, err = jws.Verify(pub); err != nil {
		return fmt.Errorf("verify jws: %w", err)
	}

	return nil
}

func verifySignature(pub interface{}, signatureType vcsverifiable.SignatureType, data, sig []byte) error {
	switch k := pub.(type) {
	case ed25519.PublicKey:
		if !ed25519.Verify(k, data, sig) {
			return errors.New("invalid ed25519 signature")
		}
	case *ecdsa.PublicKey:
		size := (k.Curve.Params().BitSize + 7) / 8 //nolint:gomnd
		if len(sig) != 2*size {
			return fmt.Errorf("invalid ecdsa signature length %d", len(sig))
		}

		r := new(big.Int).SetBytes(sig[:size])
		s := new(big.Int).SetBytes(sig[size:])

		if !ecdsa.Verify(k, digest(hashForAlg(signatureType.Name()), data), r, s) {
			return errors.New("invalid ecdsa signature")
		}
	case *rsa.PublicKey:
		if err := rsa.VerifyPSS(k, crypto.SHA256, digest(crypto.SHA256, data), sig, nil); err != nil {
			return fmt.Errorf("invalid rsa signature: %w", err)
		}
	default:
		return fmt.Errorf("unsupported public key %T", pub)
	}

	return nil
}
