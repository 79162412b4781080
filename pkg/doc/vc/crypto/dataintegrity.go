/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"crypto"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
	"github.com/multiformats/go-multibase"

	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	vcsverifiable "github.com/laysakura/vc-issuer-mock/pkg/doc/verifiable"
)

// signDataIntegrity adds a DataIntegrityProof with a multibase base58-btc proofValue.
func signDataIntegrity(credential *vc.Credential, proof map[string]interface{},
	s vc.SignerAlgorithm) (*vc.Credential, error) {
	hashData, err := signatureBase(credential, proof, hashForAlg(s.Alg()))
	if err != nil {
		return nil, err
	}

	sig, err := s.Sign(hashData)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	value, err := multibase.Encode(multibase.Base58BTC, sig)
	if err != nil {
		return nil, fmt.Errorf("encode proof value: %w", err)
	}

	proof[proofValue] = value

	return credential.WithProof(proof)
}

// signatureBase returns hash(JCS(proof configuration)) || hash(JCS(unsecured credential)). The proof
// configuration is the proof without its signature and with the "@context" of the credential.
func signatureBase(credential *vc.Credential, proof map[string]interface{}, h crypto.Hash) ([]byte, error) {
	unsecured, err := credential.WithoutProof()
	if err != nil {
		return nil, err
	}

	canonDoc, err := jcs.Transform(unsecured.Bytes())
	if err != nil {
		return nil, fmt.Errorf("canonicalize credential: %w", err)
	}

	conf := make(map[string]interface{}, len(proof)+1)

	for k, v := range proof {
		if k == proofValue || k == proofJWS {
			continue
		}

		conf[k] = v
	}

	if ctx := credential.Context(); ctx.Exists() {
		conf[vc.FieldContext] = json.RawMessage(ctx.Raw)
	}

	confBytes, err := json.Marshal(conf)
	if err != nil {
		return nil, fmt.Errorf("marshal proof configuration: %w", err)
	}

	canonConf, err := jcs.Transform(confBytes)
	if err != nil {
		return nil, fmt.Errorf("canonicalize proof configuration: %w", err)
	}

	return append(digest(h, canonConf), digest(h, canonDoc)...), nil
}

func hashForAlg(alg string) crypto.Hash {
	if alg == vcsverifiable.ES384.Name() {
		return crypto.SHA384
	}

	return crypto.SHA256
}

func digest(h crypto.Hash, data []byte) []byte {
	hasher := h.New()
	hasher.Write(data)

	return hasher.Sum(nil)
}
