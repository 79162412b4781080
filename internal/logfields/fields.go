/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldAdditionalMessage  = "additionalMessage"
	FieldCryptoSuite        = "cryptosuite"
	FieldDID                = "did"
	FieldIssuer             = "issuer"
	FieldJSONSchemaID       = "jsonSchemaID"
	FieldKeyCount           = "keyCount"
	FieldKeyID              = "keyID"
	FieldKeyType            = "keyType"
	FieldMandatoryPointers  = "mandatoryPointers"
	FieldProblemType        = "problemType"
	FieldRequestBody        = "requestBody"
	FieldResponseBody       = "responseBody"
	FieldStrategy           = "strategy"
	FieldUserLogLevel       = "userLogLevel"
	FieldVerificationMethod = "verificationMethod"
)

// WithAdditionalMessage sets the AdditionalMessage field.
func WithAdditionalMessage(value string) zap.Field {
	return zap.Any(FieldAdditionalMessage, value)
}

// WithCryptoSuite sets the cryptosuite field.
func WithCryptoSuite(suite string) zap.Field {
	return zap.String(FieldCryptoSuite, suite)
}

// WithDID sets the DID field.
func WithDID(did string) zap.Field {
	return zap.String(FieldDID, did)
}

// WithIssuer sets the Issuer field.
func WithIssuer(issuer string) zap.Field {
	return zap.String(FieldIssuer, issuer)
}

// WithJSONSchemaID sets the JSONSchemaID field.
func WithJSONSchemaID(id string) zap.Field {
	return zap.String(FieldJSONSchemaID, id)
}

// WithKeyCount sets the KeyCount field.
func WithKeyCount(count int) zap.Field {
	return zap.Int(FieldKeyCount, count)
}

// WithKeyID sets the KeyID field.
func WithKeyID(keyID string) zap.Field {
	return zap.String(FieldKeyID, keyID)
}

// WithKeyType sets the KeyType field.
func WithKeyType(keyType string) zap.Field {
	return zap.String(FieldKeyType, keyType)
}

// WithMandatoryPointers sets the MandatoryPointers field.
func WithMandatoryPointers(pointers []string) zap.Field {
	return zap.Strings(FieldMandatoryPointers, pointers)
}

// WithProblemType sets the ProblemType field.
func WithProblemType(problemType string) zap.Field {
	return zap.String(FieldProblemType, problemType)
}

// WithRequestBody sets the RequestBody field.
func WithRequestBody(body []byte) zap.Field {
	return zap.ByteString(FieldRequestBody, body)
}

// WithResponseBody sets the ResponseBody field.
func WithResponseBody(body []byte) zap.Field {
	return zap.ByteString(FieldResponseBody, body)
}

// WithStrategy sets the resolution Strategy field.
func WithStrategy(strategy string) zap.Field {
	return zap.String(FieldStrategy, strategy)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// WithVerificationMethod sets the VerificationMethod field.
func WithVerificationMethod(vm string) zap.Field {
	return zap.String(FieldVerificationMethod, vm)
}
