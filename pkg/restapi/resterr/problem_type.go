/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"fmt"
	"net/http"
)

const (
	vcDataModelProblemBaseURL = "https://www.w3.org/TR/vc-data-model#"
	customProblemBaseURL      = "https://github.com/laysakura/vc-issuer-mock#"
)

// ProblemType classifies a ProblemDetails. The set of problem types is closed.
type ProblemType int

const (
	// ParsingError is raised when the input cannot be parsed into the expected shape.
	ParsingError ProblemType = iota + 1
	// CryptographicSecurityError is raised when a proof fails verification.
	CryptographicSecurityError
	// MalformedValueError is raised for structurally valid but semantically invalid input.
	MalformedValueError
	// RangeError is raised when a value is out of an allowed range.
	RangeError
	// InvalidCryptosuiteError is raised when the resolved key type has no matching cryptosuite.
	InvalidCryptosuiteError
	// VerificationMethodResolutionError is raised when no usable verification method can be produced.
	VerificationMethodResolutionError
	// SignatureError is raised when signing fails.
	SignatureError
	// UnknownError is any uncaught internal fault.
	UnknownError
)

// AllProblemTypes lists every problem type in code order.
var AllProblemTypes = []ProblemType{ //nolint:gochecknoglobals
	ParsingError,
	CryptographicSecurityError,
	MalformedValueError,
	RangeError,
	InvalidCryptosuiteError,
	VerificationMethodResolutionError,
	SignatureError,
	UnknownError,
}

// Code returns the numeric problem code.
func (t ProblemType) Code() int {
	switch t {
	case ParsingError:
		return -64
	case CryptographicSecurityError:
		return -65
	case MalformedValueError:
		return -66
	case RangeError:
		return -67
	case InvalidCryptosuiteError:
		return -400
	case VerificationMethodResolutionError:
		return -401
	case SignatureError:
		return -402
	case UnknownError:
		return -500
	}

	return UnknownError.Code()
}

// Name returns the fragment used in the problem type URL.
func (t ProblemType) Name() string {
	switch t {
	case ParsingError:
		return "PARSING_ERROR"
	case CryptographicSecurityError:
		return "CRYPTOGRAPHIC_SECURITY_ERROR"
	case MalformedValueError:
		return "MALFORMED_VALUE_ERROR"
	case RangeError:
		return "RANGE_ERROR"
	case InvalidCryptosuiteError:
		return "INVALID_CRYPTOSUITE_ERROR"
	case VerificationMethodResolutionError:
		return "VERIFICATION_METHOD_RESOLUTION_ERROR"
	case SignatureError:
		return "SIGNATURE_ERROR"
	case UnknownError:
		return "UNKNOWN_ERROR"
	}

	return UnknownError.Name()
}

// URL returns the problem type URL serialized in the "type" field.
func (t ProblemType) URL() string {
	switch t {
	case ParsingError, CryptographicSecurityError, MalformedValueError, RangeError:
		return vcDataModelProblemBaseURL + t.Name()
	default:
		return customProblemBaseURL + t.Name()
	}
}

// HTTPStatus returns the status code used when the problem reaches the HTTP boundary.
func (t ProblemType) HTTPStatus() int {
	if t == UnknownError {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

func (t ProblemType) String() string {
	return t.URL()
}

// ParseProblemType maps a problem type URL back to its ProblemType.
func ParseProblemType(url string) (ProblemType, error) {
	for _, t := range AllProblemTypes {
		if t.URL() == url {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unsupported problem type: %s", url)
}
