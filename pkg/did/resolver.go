/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"
	vdrapi "github.com/hyperledger/aries-framework-go/component/vdr/api"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/laysakura/vc-issuer-mock/internal/logfields"
	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/resterr"
)

var logger = log.New("vm-resolver")

// Resolution problem titles.
const (
	TitleInvalidURI         = "invalid verification method URI"
	TitleDIDResolution      = "DID resolution failed"
	TitleNoDIDMethod        = "no verification method in DID document"
	TitleNoIssuerKeys       = "no issuer keys"
	TitleMissingVerifMethod = "missing verification method"
)

type keyStore interface {
	PublicKeys() []*jwk.JWK
}

type metricsProvider interface {
	ResolveVerificationMethodTime(value time.Duration)
}

// Config holds the resolver dependencies.
type Config struct {
	VDR      vdrapi.Registry
	KeyStore keyStore
	Metrics  metricsProvider
}

type resolveRequest struct {
	issuer    string
	methodRef string
}

type strategy struct {
	name    string
	resolve func(ctx context.Context, req *resolveRequest) (*vc.VerificationMethod, error)
}

// Resolver picks the verification method a credential proof refers to.
type Resolver struct {
	vdr        vdrapi.Registry
	keys       keyStore
	metrics    metricsProvider
	strategies []strategy
}

var errEmptyResolution = errors.New("DID resolution returned no document")

// NewResolver creates a Resolver.
func NewResolver(config *Config) *Resolver {
	r := &Resolver{
		vdr:     config.VDR,
		keys:    config.KeyStore,
		metrics: config.Metrics,
	}

	r.strategies = []strategy{
		{name: "did-method", resolve: r.didMethodStrategy},
		{name: "method-ref-key", resolve: r.methodRefKeyStrategy},
		{name: "issuer-did", resolve: r.issuerDIDStrategy},
		{name: "issuer-key", resolve: r.issuerKeyStrategy},
	}

	return r
}

// Resolve returns the verification method for an explicit method reference or, when methodRef is empty,
// for the issuer. Strategies run in order: the first one producing a method wins and an error stops the chain.
func (r *Resolver) Resolve(ctx context.Context, issuer, methodRef string) (*vc.VerificationMethod, error) {
	if r.metrics != nil {
		start := time.Now()

		defer func() {
			r.metrics.ResolveVerificationMethodTime(time.Since(start))
		}()
	}

	req := &resolveRequest{issuer: issuer, methodRef: methodRef}

	for _, s := range r.strategies {
		vm, err := s.resolve(ctx, req)
		if err != nil {
			return nil, err
		}

		if vm != nil {
			logger.Debugc(ctx, "Verification method resolved",
				logfields.WithStrategy(s.name),
				logfields.WithVerificationMethod(vm.ID),
			)

			return vm, nil
		}
	}

	return nil, resolutionError(TitleMissingVerifMethod,
		"Neither a verification method nor an issuer was given", nil)
}

// didMethodStrategy looks the method reference up in the DID document of its DID.
// Any failure falls through to the next strategy.
func (r *Resolver) didMethodStrategy(ctx context.Context, req *resolveRequest) (*vc.VerificationMethod, error) {
	if req.methodRef == "" || !IsDID(req.methodRef) || r.vdr == nil {
		return nil, nil
	}

	didID := DIDFromURL(req.methodRef)

	res, err := r.vdr.Resolve(didID)
	if err == nil && (res == nil || res.DIDDocument == nil) {
		err = errEmptyResolution
	}

	if err != nil {
		logger.Debugc(ctx, "Verification method DID not resolved", logfields.WithDID(didID), log.WithError(err))

		return nil, nil
	}

	m, ok := lookupVerificationMethod(res.DIDDocument, req.methodRef)
	if !ok {
		logger.Debugc(ctx, "Verification method not found in DID document",
			logfields.WithDID(didID),
			logfields.WithVerificationMethod(req.methodRef),
		)

		return nil, nil
	}

	return toVerificationMethod(res.DIDDocument.ID, m), nil
}

// methodRefKeyStrategy binds the first issuer key to the method reference.
func (r *Resolver) methodRefKeyStrategy(_ context.Context, req *resolveRequest) (*vc.VerificationMethod, error) {
	if req.methodRef == "" {
		return nil, nil
	}

	return r.keyMethod(req.methodRef)
}

// issuerDIDStrategy takes the first verification method of the issuer DID document.
func (r *Resolver) issuerDIDStrategy(ctx context.Context, req *resolveRequest) (*vc.VerificationMethod, error) {
	if req.methodRef != "" || !IsDID(req.issuer) {
		return nil, nil
	}

	if r.vdr == nil {
		return nil, resolutionError(TitleDIDResolution, "Could not fetch issuer DID document",
			fmt.Errorf("no VDR configured for %s", req.issuer))
	}

	didID := DIDFromURL(req.issuer)

	res, err := r.vdr.Resolve(didID)
	if err == nil && (res == nil || res.DIDDocument == nil) {
		err = errEmptyResolution
	}

	if err != nil {
		return nil, resolutionError(TitleDIDResolution, "Could not fetch issuer DID document", err)
	}

	m, ok := firstVerificationMethod(res.DIDDocument)
	if !ok {
		return nil, resolutionError(TitleNoDIDMethod,
			"Could not get any verification method for issuer DID document", nil)
	}

	logger.Debugc(ctx, "Using first verification method of issuer DID", logfields.WithDID(didID))

	return toVerificationMethod(res.DIDDocument.ID, m), nil
}

// issuerKeyStrategy binds the first issuer key to the issuer identifier.
func (r *Resolver) issuerKeyStrategy(_ context.Context, req *resolveRequest) (*vc.VerificationMethod, error) {
	if req.methodRef != "" || req.issuer == "" {
		return nil, nil
	}

	return r.keyMethod(req.issuer)
}

// keyMethod returns a JsonWebKey2020 method whose id and controller are both id.
func (r *Resolver) keyMethod(id string) (*vc.VerificationMethod, error) {
	if !IsAbsoluteURI(id) {
		return nil, resolutionError(TitleInvalidURI,
			fmt.Sprintf("%q is not an absolute URI", id), nil)
	}

	var keys []*jwk.JWK
	if r.keys != nil {
		keys = r.keys.PublicKeys()
	}

	if len(keys) == 0 {
		return nil, resolutionError(TitleNoIssuerKeys, "The issuer has no keys", nil)
	}

	return &vc.VerificationMethod{
		ID:         id,
		Type:       vc.JSONWebKey2020,
		Controller: id,
		Key:        keys[0],
	}, nil
}

func resolutionError(title, detail string, cause error) *resterr.ProblemDetails {
	return resterr.NewProblemDetails(resterr.VerificationMethodResolutionError, title, detail, cause).
		WithComponent(resterr.VMResolverComponent)
}
