/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keystore

import (
	"context"
	"errors"

	"github.com/alexliesenfeld/health"
	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"
)

type keyStore interface {
	PublicKeys() []*jwk.JWK
}

// New returns a health check that fails when the issuer key store holds no usable key.
func New(ks keyStore) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if ks == nil || len(ks.PublicKeys()) == 0 {
			return errors.New("issuer key store is empty")
		}

		return nil
	}
}

// Check returns the keystore health check definition.
func Check(ks keyStore) health.Check {
	return health.Check{
		Name:  "keystore",
		Check: New(ks),
	}
}
