/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"github.com/tidwall/gjson"

	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/resterr"
)

const (
	credentialSubjectTitle  = "validation error (credentialSubject)"
	credentialSubjectDetail = "`credentialSubject` property, or any of its element, must not be empty."
)

// validateCredentialSubject requires at least one subject and no empty subject object.
func validateCredentialSubject(credential *vc.Credential) error {
	subjects := credential.Subjects()

	var items []gjson.Result

	switch {
	case subjects.IsObject():
		items = []gjson.Result{subjects}
	case subjects.IsArray():
		items = subjects.Array()
	}

	if len(items) == 0 {
		return subjectError()
	}

	for _, s := range items {
		if !s.IsObject() || len(s.Map()) == 0 {
			return subjectError()
		}
	}

	return nil
}

func subjectError() *resterr.ProblemDetails {
	return resterr.NewMalformedValueError(credentialSubjectTitle, credentialSubjectDetail).
		WithComponent(resterr.IssueCredentialSvcComponent)
}
