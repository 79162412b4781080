/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"fmt"
)

// JWK key types a cryptosuite can be selected for.
const (
	KeyTypeRSA = "RSA"
	KeyTypeEC  = "EC"
	KeyTypeOKP = "OKP"
)

// Curves.
const (
	CurveP256    = "P-256"
	CurveP384    = "P-384"
	CurveEd25519 = "Ed25519"
)

// DataIntegrityProof is the proof type shared by all Data Integrity cryptosuites.
const DataIntegrityProof = "DataIntegrityProof"

// CryptoSuite identifies how a credential proof is produced.
type CryptoSuite string

const (
	// JSONWebSignature2020 signs the canonical credential with a detached JWS.
	JSONWebSignature2020 CryptoSuite = "JsonWebSignature2020"
	// ECDSAJCS2019 is the ECDSA Data Integrity cryptosuite with JCS canonicalization.
	ECDSAJCS2019 CryptoSuite = "ecdsa-jcs-2019"
	// EdDSAJCS2022 is the EdDSA Data Integrity cryptosuite with JCS canonicalization.
	EdDSAJCS2022 CryptoSuite = "eddsa-jcs-2022"
)

func (s CryptoSuite) Name() string {
	return string(s)
}

// IsDataIntegrity reports whether the suite produces a DataIntegrityProof with a "cryptosuite" field.
func (s CryptoSuite) IsDataIntegrity() bool {
	return s == ECDSAJCS2019 || s == EdDSAJCS2022
}

// ProofType returns the value of the proof "type" field.
func (s CryptoSuite) ProofType() string {
	if s.IsDataIntegrity() {
		return DataIntegrityProof
	}

	return string(s)
}

// ParseCryptoSuite resolves a suite from its proof type and optional cryptosuite name.
func ParseCryptoSuite(proofType, cryptosuite string) (CryptoSuite, error) {
	switch {
	case proofType == JSONWebSignature2020.Name():
		return JSONWebSignature2020, nil
	case proofType == DataIntegrityProof && cryptosuite == ECDSAJCS2019.Name():
		return ECDSAJCS2019, nil
	case proofType == DataIntegrityProof && cryptosuite == EdDSAJCS2022.Name():
		return EdDSAJCS2022, nil
	}

	return "", fmt.Errorf("unsupported proof type %q with cryptosuite %q", proofType, cryptosuite)
}

// SignatureType is a JWA signature algorithm.
type SignatureType string

const (
	EdDSA SignatureType = "EdDSA"
	ES256 SignatureType = "ES256"
	ES384 SignatureType = "ES384"
	PS256 SignatureType = "PS256"
)

func (st SignatureType) Name() string {
	return string(st)
}

// GetSignatureTypeByKey returns the signature algorithm used with a key of the given type and curve.
func GetSignatureTypeByKey(kty, crv string) (SignatureType, error) {
	switch kty {
	case KeyTypeRSA:
		return PS256, nil
	case KeyTypeEC:
		switch crv {
		case CurveP256:
			return ES256, nil
		case CurveP384:
			return ES384, nil
		}
	case KeyTypeOKP:
		if crv == CurveEd25519 {
			return EdDSA, nil
		}
	}

	return "", fmt.Errorf("unsupported key type %q with curve %q", kty, crv)
}
