/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	IssuerControllerComponent   Component = "issuer.controller"
	IssueCredentialSvcComponent Component = "issuer.issue-credential-service"
	VMResolverComponent         Component = "issuer.verification-method-resolver"
	SuiteSelectorComponent      Component = "issuer.suite-selector"
	CryptoSignerComponent       Component = "crypto-signer"
)
