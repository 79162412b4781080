/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"crypto"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"
	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk/jwksupport"
	arieskms "github.com/hyperledger/aries-framework-go/spi/kms"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/laysakura/vc-issuer-mock/internal/logfields"
	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	"github.com/laysakura/vc-issuer-mock/pkg/doc/verifiable"
	"github.com/laysakura/vc-issuer-mock/pkg/kms/key"
)

var logger = log.New("kms")

// DefaultKeyTypes are the key types generated when no issuer keys are configured.
var DefaultKeyTypes = []arieskms.KeyType{ //nolint:gochecknoglobals
	arieskms.RSAPS256Type,
	arieskms.ECDSAP384TypeIEEEP1363,
	arieskms.ED25519Type,
}

// KeyPair is a private key and the public key derived from it.
type KeyPair struct {
	Private *jwk.JWK
	Public  *jwk.JWK
}

// KeyStore holds the issuer key pairs. It is immutable after construction and safe for concurrent use.
type KeyStore struct {
	pairs        []*KeyPair
	byThumbprint map[string]*KeyPair
}

// NewKeyStore creates a KeyStore from private keys. Keys keep their order; when two keys share the same
// public key, lookups return the first one.
func NewKeyStore(privateKeys ...*jwk.JWK) (*KeyStore, error) {
	if len(privateKeys) == 0 {
		return nil, errors.New("key store requires at least one private key")
	}

	ks := &KeyStore{
		pairs:        make([]*KeyPair, 0, len(privateKeys)),
		byThumbprint: make(map[string]*KeyPair, len(privateKeys)),
	}

	for i, priv := range privateKeys {
		pair, err := newKeyPair(priv)
		if err != nil {
			return nil, fmt.Errorf("key #%d: %w", i, err)
		}

		tp, err := thumbprint(pair.Public)
		if err != nil {
			return nil, fmt.Errorf("key #%d: %w", i, err)
		}

		if _, ok := ks.byThumbprint[tp]; !ok {
			ks.byThumbprint[tp] = pair
		}

		ks.pairs = append(ks.pairs, pair)
	}

	logger.Debug("Key store created", logfields.WithKeyCount(len(ks.pairs)))

	return ks, nil
}

// ParseKeyStore creates a KeyStore from private keys in JWK JSON format.
func ParseKeyStore(rawJWKs ...[]byte) (*KeyStore, error) {
	keys := make([]*jwk.JWK, 0, len(rawJWKs))

	for i, raw := range rawJWKs {
		j := &jwk.JWK{}

		if err := j.UnmarshalJSON(raw); err != nil {
			return nil, fmt.Errorf("parse key #%d: %w", i, err)
		}

		keys = append(keys, j)
	}

	return NewKeyStore(keys...)
}

// GenerateKeyStore creates a KeyStore with a fresh key per key type, DefaultKeyTypes when none are given.
func GenerateKeyStore(keyTypes ...arieskms.KeyType) (*KeyStore, error) {
	if len(keyTypes) == 0 {
		keyTypes = DefaultKeyTypes
	}

	keys := make([]*jwk.JWK, 0, len(keyTypes))

	for _, kt := range keyTypes {
		j, err := key.Create(kt)
		if err != nil {
			return nil, fmt.Errorf("generate %s key: %w", kt, err)
		}

		logger.Debug("Issuer key generated", logfields.WithKeyType(string(kt)), logfields.WithKeyID(j.KeyID))

		keys = append(keys, j)
	}

	return NewKeyStore(keys...)
}

// KeyPairs returns the key pairs in insertion order.
func (ks *KeyStore) KeyPairs() []*KeyPair {
	return append([]*KeyPair(nil), ks.pairs...)
}

// PublicKeys returns the public keys in insertion order.
func (ks *KeyStore) PublicKeys() []*jwk.JWK {
	return lo.Map(ks.pairs, func(p *KeyPair, _ int) *jwk.JWK {
		return p.Public
	})
}

// Len returns the number of key pairs.
func (ks *KeyStore) Len() int {
	return len(ks.pairs)
}

// FindPrivateKey returns the private key whose public key material equals pub.
func (ks *KeyStore) FindPrivateKey(pub *jwk.JWK) (*jwk.JWK, bool) {
	if pub == nil || pub.Key == nil {
		return nil, false
	}

	normalized := &jwk.JWK{JSONWebKey: pub.Public()}
	if normalized.Key == nil {
		return nil, false
	}

	tp, err := thumbprint(normalized)
	if err != nil {
		return nil, false
	}

	pair, ok := ks.byThumbprint[tp]
	if !ok {
		return nil, false
	}

	return pair.Private, true
}

// FindByKeyID returns all key pairs with the given key ID.
func (ks *KeyStore) FindByKeyID(kid string) []*KeyPair {
	return lo.Filter(ks.pairs, func(p *KeyPair, _ int) bool {
		return p.Private.KeyID == kid
	})
}

// SignerFor returns the private key for the public key of the verification method.
func (ks *KeyStore) SignerFor(vm *vc.VerificationMethod) (*jwk.JWK, bool) {
	if vm == nil || vm.Key == nil {
		return nil, false
	}

	priv, ok := ks.FindPrivateKey(vm.Key)
	if !ok {
		logger.Debug("No private key for verification method", logfields.WithVerificationMethod(vm.ID))
	}

	return priv, ok
}

func newKeyPair(priv *jwk.JWK) (*KeyPair, error) {
	if priv == nil || priv.Key == nil {
		return nil, errors.New("empty key")
	}

	if priv.IsPublic() {
		return nil, errors.New("not a private key")
	}

	kty, crv := vc.KeyTypeOf(priv)
	if _, err := verifiable.GetSignatureTypeByKey(kty, crv); err != nil {
		return nil, err
	}

	pub, err := jwksupport.JWKFromKey(priv.Public().Key)
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}

	pub.KeyID = priv.KeyID

	return &KeyPair{Private: priv, Public: pub}, nil
}

func thumbprint(pub *jwk.JWK) (string, error) {
	tp, err := pub.Thumbprint(crypto.SHA256)
	if err != nil {
		return "", fmt.Errorf("thumbprint: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(tp), nil
}
