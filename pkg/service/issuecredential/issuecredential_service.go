/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -self_package mocks -package issuecredential_test -source=issuecredential_service.go -mock_names vmResolver=MockVMResolver,vcCrypto=MockVCCrypto

package issuecredential

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/laysakura/vc-issuer-mock/internal/logfields"
	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc/crypto"
	vcsverifiable "github.com/laysakura/vc-issuer-mock/pkg/doc/verifiable"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/resterr"
)

var logger = log.New("issue-credential")

const signatureErrorTitle = "signature error"

type vmResolver interface {
	Resolve(ctx context.Context, issuer, methodRef string) (*vc.VerificationMethod, error)
}

type vcCrypto interface {
	SignCredential(
		ctx context.Context,
		suite vcsverifiable.CryptoSuite,
		credential *vc.Credential,
		keys vc.Signer,
		opts *crypto.SigningOptions,
	) (*vc.Credential, error)
}

type metricsProvider interface {
	IssueCredentialTime(value time.Duration)
}

type Config struct {
	Resolver vmResolver
	Crypto   vcCrypto
	Signer   vc.Signer
	Metrics  metricsProvider
}

type Service struct {
	resolver vmResolver
	crypto   vcCrypto
	signer   vc.Signer
	metrics  metricsProvider
}

func New(config *Config) *Service {
	return &Service{
		resolver: config.Resolver,
		crypto:   config.Crypto,
		signer:   config.Signer,
		metrics:  config.Metrics,
	}
}

// IssueCredential secures the credential with a proof made by the issuer key. Every error is a
// *resterr.ProblemDetails.
func (s *Service) IssueCredential(
	ctx context.Context,
	credential *vc.Credential,
	opts *Options,
) (*vc.Credential, error) {
	if s.metrics != nil {
		start := time.Now()

		defer func() {
			s.metrics.IssueCredentialTime(time.Since(start))
		}()
	}

	if err := validateCredentialSubject(credential); err != nil {
		return nil, err
	}

	issuer := credential.Issuer()

	vm, err := s.resolver.Resolve(ctx, issuer, "")
	if err != nil {
		return nil, asProblem(err)
	}

	suite, err := crypto.SelectSuite(vm)
	if err != nil {
		return nil, asProblem(err)
	}

	signingOpts := BuildSigningOptions(opts, vm)

	if opts != nil && opts.CredentialID != "" {
		credential, err = credential.WithID(opts.CredentialID)
		if err != nil {
			return nil, asProblem(fmt.Errorf("override credential id: %w", err))
		}
	}

	logger.Debugc(ctx, "Issuing credential",
		logfields.WithIssuer(issuer),
		logfields.WithVerificationMethod(vm.ID),
		logfields.WithCryptoSuite(suite.Name()),
		logfields.WithMandatoryPointers(signingOpts.MandatoryPointers),
	)

	signed, err := s.crypto.SignCredential(ctx, suite, credential, s.signer, signingOpts)
	if err != nil {
		logger.Errorc(ctx, "Sign credential failed", logfields.WithIssuer(issuer), log.WithError(err))

		return nil, resterr.NewProblemDetails(resterr.SignatureError, signatureErrorTitle, err.Error(), err).
			WithComponent(resterr.IssueCredentialSvcComponent)
	}

	return signed, nil
}

// asProblem keeps problem details raised by collaborators and classifies anything else as unknown.
func asProblem(err error) *resterr.ProblemDetails {
	var pd *resterr.ProblemDetails
	if errors.As(err, &pd) {
		return pd
	}

	return resterr.NewUnknownError(err).WithComponent(resterr.IssueCredentialSvcComponent)
}
