/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc/crypto"
)

// Options are the caller supplied issuance options.
type Options struct {
	// MandatoryPointers are JSON pointers to claims that must always be disclosed.
	MandatoryPointers []string
	// CredentialID overrides the credential id when set.
	CredentialID string
}

// BuildSigningOptions returns the signing options for a proof made with vm.
func BuildSigningOptions(opts *Options, vm *vc.VerificationMethod) *crypto.SigningOptions {
	pointers := []string{}

	if opts != nil {
		pointers = append(pointers, opts.MandatoryPointers...)
	}

	return &crypto.SigningOptions{
		MandatoryPointers:  pointers,
		VerificationMethod: vm,
		Purpose:            crypto.AssertionMethod,
	}
}
