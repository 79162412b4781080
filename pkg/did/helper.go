/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"crypto/ed25519"
	"fmt"
	"net/url"
	"strings"

	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"
	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk/jwksupport"
	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/util/fingerprint"
	"github.com/hyperledger/aries-framework-go/component/models/did"

	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
)

const (
	didScheme = "did:"

	// Ed25519VerificationKey2018 ed25119 verification type.
	Ed25519VerificationKey2018 = "Ed25519VerificationKey2018"
	// Ed25519VerificationKey2020 ed25119 verification type.
	Ed25519VerificationKey2020 = "Ed25519VerificationKey2020"
)

// IsDID reports whether s is a DID or a DID URL.
func IsDID(s string) bool {
	if !strings.HasPrefix(s, didScheme) {
		return false
	}

	_, err := did.Parse(DIDFromURL(s))

	return err == nil
}

// DIDFromURL returns the DID of a DID URL, dropping its path, query and fragment.
func DIDFromURL(didURL string) string {
	if i := strings.IndexAny(didURL, "/?#"); i >= 0 {
		return didURL[:i]
	}

	return didURL
}

// Fragment returns the fragment of a URL, empty when it has none.
func Fragment(didURL string) string {
	_, fragment, _ := strings.Cut(didURL, "#")

	return fragment
}

// IsAbsoluteURI reports whether s parses as an absolute URI.
func IsAbsoluteURI(s string) bool {
	u, err := url.Parse(s)

	return err == nil && u.IsAbs()
}

// KeyDID returns the did:key and its verification method ID for an EC or OKP public key.
func KeyDID(pub *jwk.JWK) (string, string, error) {
	didKey, keyID, err := fingerprint.CreateDIDKeyByJwk(pub)
	if err != nil {
		return "", "", fmt.Errorf("create did:key: %w", err)
	}

	return didKey, keyID, nil
}

// lookupVerificationMethod finds a verification method of doc by absolute or document-relative ID.
func lookupVerificationMethod(doc *did.Doc, id string) (*did.VerificationMethod, bool) {
	matches := func(vmID string) bool {
		return vmID == id || (strings.HasPrefix(vmID, "#") && doc.ID+vmID == id)
	}

	for i := range doc.VerificationMethod {
		if matches(doc.VerificationMethod[i].ID) {
			return &doc.VerificationMethod[i], true
		}
	}

	for i := range doc.AssertionMethod {
		if matches(doc.AssertionMethod[i].VerificationMethod.ID) {
			return &doc.AssertionMethod[i].VerificationMethod, true
		}
	}

	return nil, false
}

// firstVerificationMethod returns the first verification method of doc.
func firstVerificationMethod(doc *did.Doc) (*did.VerificationMethod, bool) {
	if len(doc.VerificationMethod) > 0 {
		return &doc.VerificationMethod[0], true
	}

	if len(doc.AssertionMethod) > 0 {
		return &doc.AssertionMethod[0].VerificationMethod, true
	}

	return nil, false
}

// toVerificationMethod converts a DID document verification method. Key stays nil when the key material
// is neither a JWK nor a raw Ed25519 key.
func toVerificationMethod(docID string, m *did.VerificationMethod) *vc.VerificationMethod {
	id := m.ID
	if strings.HasPrefix(id, "#") {
		id = docID + id
	}

	controller := m.Controller
	if controller == "" {
		controller = docID
	}

	key := m.JSONWebKey()

	if key == nil && (m.Type == Ed25519VerificationKey2018 || m.Type == Ed25519VerificationKey2020) &&
		len(m.Value) == ed25519.PublicKeySize {
		if j, err := jwksupport.JWKFromKey(ed25519.PublicKey(m.Value)); err == nil {
			key = j
		}
	}

	return &vc.VerificationMethod{
		ID:         id,
		Type:       m.Type,
		Controller: controller,
		Key:        key,
	}
}
