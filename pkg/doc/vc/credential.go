/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	// ContextV2 is the base context of a VCDM 2.0 credential.
	ContextV2 = "https://www.w3.org/ns/credentials/v2"

	FieldContext           = "@context"
	FieldID                = "id"
	FieldType              = "type"
	FieldIssuer            = "issuer"
	FieldValidFrom         = "validFrom"
	FieldValidUntil        = "validUntil"
	FieldCredentialSubject = "credentialSubject"
	FieldProof             = "proof"
)

// Credential is a credential kept as its raw JSON object. Accessors read the JSON directly and every
// modification returns a new Credential, so claims the issuer does not understand are carried through unchanged.
type Credential struct {
	raw []byte
}

// ParseCredential parses a JSON credential. The input must be a JSON object.
func ParseCredential(data []byte) (*Credential, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("credential is not valid JSON")
	}

	if !gjson.ParseBytes(data).IsObject() {
		return nil, errors.New("credential must be a JSON object")
	}

	return &Credential{raw: append([]byte(nil), bytes.TrimSpace(data)...)}, nil
}

// ID returns the credential id, empty when absent.
func (c *Credential) ID() string {
	return gjson.GetBytes(c.raw, FieldID).String()
}

// Issuer returns the issuer identifier, either the issuer string or the "id" of an issuer object.
func (c *Credential) Issuer() string {
	issuer := gjson.GetBytes(c.raw, FieldIssuer)

	switch {
	case issuer.IsObject():
		return issuer.Get(FieldID).String()
	case issuer.Type == gjson.String:
		return issuer.Str
	default:
		return ""
	}
}

// HasIssuer reports whether the credential has an "issuer" property.
func (c *Credential) HasIssuer() bool {
	return gjson.GetBytes(c.raw, FieldIssuer).Exists()
}

// Subjects returns the raw "credentialSubject" value.
func (c *Credential) Subjects() gjson.Result {
	return gjson.GetBytes(c.raw, FieldCredentialSubject)
}

// Proof returns the raw "proof" value.
func (c *Credential) Proof() gjson.Result {
	return gjson.GetBytes(c.raw, FieldProof)
}

// Context returns the raw "@context" value.
func (c *Credential) Context() gjson.Result {
	return c.topLevel(FieldContext)
}

// Types returns the credential types.
func (c *Credential) Types() []string {
	t := gjson.GetBytes(c.raw, FieldType)
	if !t.IsArray() {
		if t.Type == gjson.String {
			return []string{t.Str}
		}

		return nil
	}

	var types []string

	for _, v := range t.Array() {
		types = append(types, v.String())
	}

	return types
}

// topLevel looks up a top-level property by its exact name. Used for names gjson treats as path syntax.
func (c *Credential) topLevel(name string) gjson.Result {
	var result gjson.Result

	gjson.ParseBytes(c.raw).ForEach(func(key, value gjson.Result) bool {
		if key.String() == name {
			result = value

			return false
		}

		return true
	})

	return result
}

// WithID returns a copy of the credential with the given id.
func (c *Credential) WithID(id string) (*Credential, error) {
	return c.with(FieldID, id)
}

// WithIssuer returns a copy of the credential with the given issuer identifier.
func (c *Credential) WithIssuer(issuer string) (*Credential, error) {
	return c.with(FieldIssuer, issuer)
}

// WithProof returns a copy of the credential with its proof set to the given value.
func (c *Credential) WithProof(proof interface{}) (*Credential, error) {
	return c.with(FieldProof, proof)
}

// WithoutProof returns a copy of the credential without its proof.
func (c *Credential) WithoutProof() (*Credential, error) {
	raw, err := sjson.DeleteBytes(c.raw, FieldProof)
	if err != nil {
		return nil, fmt.Errorf("delete %s: %w", FieldProof, err)
	}

	return &Credential{raw: raw}, nil
}

func (c *Credential) with(field string, value interface{}) (*Credential, error) {
	raw, err := sjson.SetBytes(c.raw, field, value)
	if err != nil {
		return nil, fmt.Errorf("set %s: %w", field, err)
	}

	return &Credential{raw: raw}, nil
}

// Bytes returns the credential JSON.
func (c *Credential) Bytes() []byte {
	return c.raw
}

// ToMap decodes the credential keeping numbers as json.Number.
func (c *Credential) ToMap() (map[string]interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(c.raw))
	decoder.UseNumber()

	var m map[string]interface{}

	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode credential: %w", err)
	}

	return m, nil
}

func (c *Credential) MarshalJSON() ([]byte, error) {
	return c.raw, nil
}

func (c *Credential) UnmarshalJSON(data []byte) error {
	parsed, err := ParseCredential(data)
	if err != nil {
		return err
	}

	c.raw = parsed.raw

	return nil
}
