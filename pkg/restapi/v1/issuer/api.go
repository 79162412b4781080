/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuer

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
)

// IssueCredentialRequest is the body of POST /credentials/issue.
type IssueCredentialRequest struct {
	Credential json.RawMessage         `json:"credential"`
	Options    *IssueCredentialOptions `json:"options,omitempty"`
}

// IssueCredentialOptions are the options of an issue credential request.
type IssueCredentialOptions struct {
	MandatoryPointers *[]string `json:"mandatoryPointers,omitempty"`
	CredentialId      *string   `json:"credentialId,omitempty"` //nolint:revive,stylecheck
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Issue a credential.
	// (POST /credentials/issue)
	PostCredentialsIssue(ctx echo.Context) error
}

// EchoRouter is the subset of echo routing methods the handlers are registered with.
type EchoRouter interface {
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface, m ...echo.MiddlewareFunc) {
	router.POST("/credentials/issue", si.PostCredentialsIssue, m...)
}
