/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"context"

	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
)

type ServiceInterface interface {
	IssueCredential(
		ctx context.Context,
		credential *vc.Credential,
		opts *Options,
	) (*vc.Credential, error)
}
