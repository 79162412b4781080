/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"errors"
	"fmt"

	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	vcsverifiable "github.com/laysakura/vc-issuer-mock/pkg/doc/verifiable"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/resterr"
)

// SelectSuite picks the cryptosuite for the key of a verification method:
// RSA keys sign JsonWebSignature2020 proofs, EC keys ecdsa-jcs-2019 and Ed25519 keys eddsa-jcs-2022.
func SelectSuite(vm *vc.VerificationMethod) (vcsverifiable.CryptoSuite, error) {
	suite, err := suiteForKey(vm)
	if err != nil {
		return "", resterr.NewProblemDetails(
			resterr.InvalidCryptosuiteError,
			"invalid cryptosuite error",
			"The resolved verification method cannot be used to select a cryptographic suite",
			err,
		).WithComponent(resterr.SuiteSelectorComponent)
	}

	return suite, nil
}

func suiteForKey(vm *vc.VerificationMethod) (vcsverifiable.CryptoSuite, error) {
	if vm == nil || vm.Key == nil {
		return "", errors.New("verification method has no public key")
	}

	switch kty := vm.KeyType(); kty {
	case vcsverifiable.KeyTypeRSA:
		return vcsverifiable.JSONWebSignature2020, nil
	case vcsverifiable.KeyTypeEC:
		return vcsverifiable.ECDSAJCS2019, nil
	case vcsverifiable.KeyTypeOKP:
		if vm.Curve() == vcsverifiable.CurveEd25519 {
			return vcsverifiable.EdDSAJCS2022, nil
		}

		return "", fmt.Errorf("no cryptosuite for %s key with curve %q", kty, vm.Curve())
	default:
		return "", fmt.Errorf("no cryptosuite for key type %q", kty)
	}
}
