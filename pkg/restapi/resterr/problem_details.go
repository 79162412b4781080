/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ProblemDetails is the structured error produced by every fallible step of credential issuance.
// Err is kept for logging and is never serialized.
type ProblemDetails struct {
	Type           ProblemType
	Title          string
	Detail         string
	ErrorComponent Component
	Err            error
}

// problemDetailsJSON is a helper struct for JSON encoding/decoding of ProblemDetails.
type problemDetailsJSON struct {
	Type   string `json:"type"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// NewProblemDetails creates a ProblemDetails. A nil cause is replaced by the detail message.
func NewProblemDetails(problemType ProblemType, title, detail string, cause error) *ProblemDetails {
	if cause == nil {
		cause = errors.New(detail)
	}

	return &ProblemDetails{
		Type:   problemType,
		Title:  title,
		Detail: detail,
		Err:    cause,
	}
}

func NewParsingError(title string, err error) *ProblemDetails {
	return NewProblemDetails(ParsingError, title, err.Error(), err)
}

func NewMalformedValueError(title, detail string) *ProblemDetails {
	return NewProblemDetails(MalformedValueError, title, detail, nil)
}

func NewUnknownError(err error) *ProblemDetails {
	return NewProblemDetails(UnknownError, "Internal Server Error", err.Error(), err)
}

// Code returns the numeric code of the problem type.
func (p *ProblemDetails) Code() int {
	return p.Type.Code()
}

// HTTPStatus returns the status code for the problem type.
func (p *ProblemDetails) HTTPStatus() int {
	return p.Type.HTTPStatus()
}

func (p *ProblemDetails) WithComponent(component Component) *ProblemDetails {
	p.ErrorComponent = component

	return p
}

func (p *ProblemDetails) Error() string {
	description := []string{fmt.Sprintf("code: %d", p.Code())}

	if p.ErrorComponent != "" {
		description = append(description, fmt.Sprintf("component: %s", p.ErrorComponent))
	}

	if p.Title != "" {
		description = append(description, fmt.Sprintf("title: %s", p.Title))
	}

	return fmt.Sprintf("%s[%s]: %v", p.Type.Name(), strings.Join(description, "; "), p.Err)
}

func (p *ProblemDetails) Unwrap() error {
	return p.Err
}

func (p *ProblemDetails) MarshalJSON() ([]byte, error) {
	return json.Marshal(&problemDetailsJSON{
		Type:   p.Type.URL(),
		Code:   p.Code(),
		Title:  p.Title,
		Detail: p.Detail,
	})
}

func (p *ProblemDetails) UnmarshalJSON(b []byte) error {
	var data problemDetailsJSON

	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}

	problemType, err := ParseProblemType(data.Type)
	if err != nil {
		return err
	}

	if problemType.Code() != data.Code {
		return fmt.Errorf("code %d does not match problem type %s", data.Code, data.Type)
	}

	p.Type = problemType
	p.Title = data.Title
	p.Detail = data.Detail
	p.Err = errors.New(data.Detail)

	return nil
}

// VCAPIError is the error response body of the VC-API endpoints.
type VCAPIError struct {
	Status         int             `json:"status"`
	ProblemDetails *ProblemDetails `json:"problemDetails"`
}

// NewVCAPIError wraps problem details with the HTTP status derived from its type.
func NewVCAPIError(p *ProblemDetails) *VCAPIError {
	return &VCAPIError{
		Status:         p.HTTPStatus(),
		ProblemDetails: p,
	}
}

func (e *VCAPIError) Error() string {
	return fmt.Sprintf("status=%d, problem_details=%s", e.Status, e.ProblemDetails.Error())
}

// AsProblemDetails returns the ProblemDetails found in err's chain, classifying anything else as UnknownError.
func AsProblemDetails(err error) *ProblemDetails {
	var problemDetails *ProblemDetails
	if errors.As(err, &problemDetails) {
		return problemDetails
	}

	return NewUnknownError(err)
}
