/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/xeipuuv/gojsonpointer"

	"github.com/laysakura/vc-issuer-mock/internal/logfields"
	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	vcsverifiable "github.com/laysakura/vc-issuer-mock/pkg/doc/verifiable"
	"github.com/laysakura/vc-issuer-mock/pkg/kms/signer"
)

var logger = log.New("vc-crypto")

const (
	// AssertionMethod assertionMethod.
	AssertionMethod = "assertionMethod"

	// Authentication authentication.
	Authentication = "authentication"
)

// Proof property names.
const (
	proofType               = "type"
	proofCryptosuite        = "cryptosuite"
	proofCreated            = "created"
	proofVerificationMethod = "verificationMethod"
	proofPurpose            = "proofPurpose"
	proofValue              = "proofValue"
	proofJWS                = "jws"
)

type metricsProvider interface {
	SignTime(value time.Duration)
}

// SigningOptions holds options for signing a credential.
type SigningOptions struct {
	// MandatoryPointers are JSON pointers to claims that must always be disclosed.
	MandatoryPointers []string
	// VerificationMethod is the method the proof refers to. Its public key selects the private key.
	VerificationMethod *vc.VerificationMethod
	// Purpose is the proof purpose, AssertionMethod when empty.
	Purpose string
	// Created is the proof creation time, the current time when nil.
	Created *time.Time
}

// Opt configures Crypto.
type Opt func(c *Crypto)

// WithMetrics sets the metrics provider used by signers.
func WithMetrics(metrics metricsProvider) Opt {
	return func(c *Crypto) {
		c.metrics = metrics
	}
}

// WithClock sets the clock used for the proof creation time.
func WithClock(now func() time.Time) Opt {
	return func(c *Crypto) {
		c.now = now
	}
}

// Crypto to sign credential.
type Crypto struct {
	metrics metricsProvider
	now     func() time.Time
}

// New return new instance of vc crypto.
func New(opts ...Opt) *Crypto {
	c := &Crypto{now: time.Now}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SignCredential adds a proof of the given cryptosuite to an unsecured credential. The private key is obtained
// from keys for the public key of opts.VerificationMethod.
func (c *Crypto) SignCredential(
	ctx context.Context,
	suite vcsverifiable.CryptoSuite,
	credential *vc.Credential,
	keys vc.Signer,
	opts *SigningOptions,
) (*vc.Credential, error) {
	if opts == nil || opts.VerificationMethod == nil {
		return nil, errors.New("verification method is required")
	}

	vm := opts.VerificationMethod

	if credential.Proof().Exists() {
		return nil, errors.New("credential is already secured with a proof")
	}

	if err := c.checkMandatoryPointers(ctx, credential, opts.MandatoryPointers); err != nil {
		return nil, err
	}

	keySuite, err := suiteForKey(vm)
	if err != nil {
		return nil, err
	}

	if keySuite != suite {
		return nil, fmt.Errorf("cryptosuite %s does not match %s key of %s", suite, vm.KeyType(), vm.ID)
	}

	privateKey, ok := keys.SignerFor(vm)
	if !ok {
		return nil, fmt.Errorf("no private key for verification method %s", vm.ID)
	}

	s, err := signer.NewJWKSigner(privateKey, c.metrics)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	purpose := opts.Purpose
	if purpose == "" {
		purpose = AssertionMethod
	}

	created := c.now()
	if opts.Created != nil {
		created = *opts.Created
	}

	proof := map[string]interface{}{
		proofType:               suite.ProofType(),
		proofCreated:            created.UTC().Format(time.RFC3339),
		proofVerificationMethod: vm.ID,
		proofPurpose:            purpose,
	}

	logger.Debugc(ctx, "Signing credential",
		logfields.WithCryptoSuite(suite.Name()),
		logfields.WithVerificationMethod(vm.ID),
		logfields.WithKeyID(privateKey.KeyID),
	)

	switch suite {
	case vcsverifiable.JSONWebSignature2020:
		return signJWS(credential, proof, s)
	case vcsverifiable.ECDSAJCS2019, vcsverifiable.EdDSAJCS2022:
		proof[proofCryptosuite] = suite.Name()

		return signDataIntegrity(credential, proof, s)
	default:
		return nil, fmt.Errorf("unsupported cryptosuite %s", suite)
	}
}

// checkMandatoryPointers rejects malformed JSON pointers. Pointers to absent claims are accepted, they only
// matter to selective disclosure suites.
func (c *Crypto) checkMandatoryPointers(ctx context.Context, credential *vc.Credential, pointers []string) error {
	if len(pointers) == 0 {
		return nil
	}

	doc, err := credential.ToMap()
	if err != nil {
		return err
	}

	for _, p := range pointers {
		ptr, err := gojsonpointer.NewJsonPointer(p)
		if err != nil {
			return fmt.Errorf("invalid mandatory pointer %q: %w", p, err)
		}

		if _, _, err = ptr.Get(doc); err != nil {
			logger.Debugc(ctx, "Mandatory pointer does not resolve",
				logfields.WithMandatoryPointers([]string{p}), log.WithError(err))
		}
	}

	return nil
}
