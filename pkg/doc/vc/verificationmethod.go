/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vc

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"

	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"

	"github.com/laysakura/vc-issuer-mock/pkg/doc/verifiable"
)

// JSONWebKey2020 is the verification method type used for methods synthesized from issuer keys.
const JSONWebKey2020 = "JsonWebKey2020"

// VerificationMethod is the public key a proof is checked against.
type VerificationMethod struct {
	ID         string
	Type       string
	Controller string
	Key        *jwk.JWK
}

// KeyType returns the JWK key type ("RSA", "EC", "OKP") of the method key, empty when unknown.
func (vm *VerificationMethod) KeyType() string {
	if vm == nil {
		return ""
	}

	kty, _ := KeyTypeOf(vm.Key)

	return kty
}

// Curve returns the JWK curve of the method key, empty for RSA or unknown keys.
func (vm *VerificationMethod) Curve() string {
	if vm == nil {
		return ""
	}

	_, crv := KeyTypeOf(vm.Key)

	return crv
}

// KeyTypeOf returns the JWK key type and curve of j, derived from the key material when present.
func KeyTypeOf(j *jwk.JWK) (string, string) {
	if j == nil {
		return "", ""
	}

	switch k := j.Key.(type) {
	case *rsa.PublicKey, *rsa.PrivateKey:
		return verifiable.KeyTypeRSA, ""
	case *ecdsa.PublicKey:
		return verifiable.KeyTypeEC, k.Curve.Params().Name
	case *ecdsa.PrivateKey:
		return verifiable.KeyTypeEC, k.Curve.Params().Name
	case ed25519.PublicKey, ed25519.PrivateKey:
		return verifiable.KeyTypeOKP, verifiable.CurveEd25519
	}

	return j.Kty, j.Crv
}
