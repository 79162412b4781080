/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package issuecredential . Service

package issuecredential

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	"github.com/laysakura/vc-issuer-mock/pkg/observability/tracing/attributeutil"
	"github.com/laysakura/vc-issuer-mock/pkg/service/issuecredential"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements issuecredential.ServiceInterface

type Service issuecredential.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) IssueCredential(
	ctx context.Context,
	credential *vc.Credential,
	opts *issuecredential.Options,
) (*vc.Credential, error) {
	ctx, span := w.tracer.Start(ctx, "issuecredential.IssueCredential")
	defer span.End()

	span.SetAttributes(attribute.String("issuer", credential.Issuer()))
	span.SetAttributes(attributeutil.JSON("options", opts))

	signed, err := w.svc.IssueCredential(ctx, credential, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	if proof := signed.Proof(); proof.Exists() {
		span.SetAttributes(attribute.String("verification_method", proof.Get("verificationMethod").String()))
	}

	return signed, nil
}
