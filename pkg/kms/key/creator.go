/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package key

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"
	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk/jwksupport"
	"github.com/hyperledger/aries-framework-go/spi/kms"
)

const rsaKeySize = 2048

// SupportedKeyTypes lists the key types Create can generate.
var SupportedKeyTypes = []kms.KeyType{ //nolint:gochecknoglobals
	kms.RSAPS256Type,
	kms.ECDSAP256TypeIEEEP1363,
	kms.ECDSAP384TypeIEEEP1363,
	kms.ED25519Type,
}

// Create generates a new private key of the given type and returns it in JWK format with a random key ID.
func Create(kt kms.KeyType) (*jwk.JWK, error) {
	priv, err := generate(kt)
	if err != nil {
		return nil, err
	}

	j, err := jwksupport.JWKFromKey(priv)
	if err != nil {
		return nil, fmt.Errorf("failed to convert key to JWK: %w", err)
	}

	j.KeyID = uuid.NewString()

	return j, nil
}

func generate(kt kms.KeyType) (interface{}, error) {
	switch kt { // nolint:exhaustive // default catch-all
	case kms.RSAPS256Type:
		return rsa.GenerateKey(rand.Reader, rsaKeySize)
	case kms.ECDSAP256TypeIEEEP1363:
		return ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	case kms.ECDSAP384TypeIEEEP1363:
		return ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	case kms.ED25519Type:
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create new crypto key: %w", err)
		}

		return priv, nil
	default:
		return nil, fmt.Errorf("unsupported key type: %s", kt)
	}
}

// ParseKeyTypes parses key type names such as "ED25519" or "ECDSAP384IEEEP1363" (case-insensitive).
func ParseKeyTypes(names []string) ([]kms.KeyType, error) {
	keyTypes := make([]kms.KeyType, 0, len(names))

	for _, name := range names {
		kt, ok := parseKeyType(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unsupported key type: %s", name)
		}

		keyTypes = append(keyTypes, kt)
	}

	return keyTypes, nil
}

func parseKeyType(name string) (kms.KeyType, bool) {
	for _, kt := range SupportedKeyTypes {
		if strings.EqualFold(string(kt), name) {
			return kt, true
		}
	}

	return "", false
}
