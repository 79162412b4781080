/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vc

import (
	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"
)

// SignerAlgorithm signs data with a single private key.
type SignerAlgorithm interface {
	// Sign signs data and returns the raw signature.
	Sign(data []byte) ([]byte, error)
	// Alg returns the JWA algorithm name of the signature.
	Alg() string
}

// Signer gives access to the private key matching a verification method.
type Signer interface {
	// SignerFor returns the private key for the public key of vm, or false when the signer does not hold it.
	SignerFor(vm *VerificationMethod) (*jwk.JWK, bool)
}
