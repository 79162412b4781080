/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -self_package mocks -package issuer_test -source=controller.go -mock_names issueCredentialService=MockIssueCredentialService

package issuer

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/xeipuuv/gojsonpointer"

	"github.com/laysakura/vc-issuer-mock/internal/logfields"
	"github.com/laysakura/vc-issuer-mock/pkg/doc/vc"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/resterr"
	"github.com/laysakura/vc-issuer-mock/pkg/restapi/v1/util"
	"github.com/laysakura/vc-issuer-mock/pkg/service/issuecredential"
)

const (
	issueRequestSchemaID = "https://github.com/laysakura/vc-issuer-mock/schemas/issue-credential-request.json"

	jsonParseErrorTitle = "JSON parse error"
)

//go:embed issue_credential_request.schema.json
var issueRequestSchema []byte

var logger = log.New("issuer-controller")

var _ ServerInterface = (*Controller)(nil) // make sure Controller implements ServerInterface

type issueCredentialService interface {
	IssueCredential(
		ctx context.Context,
		credential *vc.Credential,
		opts *issuecredential.Options,
	) (*vc.Credential, error)
}

type schemaValidator interface {
	ValidateRaw(data []byte, schemaID string, schema []byte) error
}

type Config struct {
	IssueCredentialService issueCredentialService
	SchemaValidator        schemaValidator
	DefaultIssuer          string
}

// Controller for the VC-API issuer endpoints.
type Controller struct {
	issueCredentialService issueCredentialService
	schemaValidator        schemaValidator
	defaultIssuer          string
}

// NewController creates a new controller for the VC-API issuer endpoints.
func NewController(config *Config) *Controller {
	return &Controller{
		issueCredentialService: config.IssueCredentialService,
		schemaValidator:        config.SchemaValidator,
		defaultIssuer:          config.DefaultIssuer,
	}
}

// PostCredentialsIssue issues a credential.
// POST /credentials/issue.
func (c *Controller) PostCredentialsIssue(ctx echo.Context) error {
	raw, err := util.ReadRawBody(ctx)
	if err != nil {
		return err
	}

	return util.WriteOutputWithCode(http.StatusCreated, ctx)(c.issueCredential(ctx.Request().Context(), raw))
}

func (c *Controller) issueCredential(ctx context.Context, raw []byte) (*vc.Credential, error) {
	credential, opts, err := c.parseIssueRequest(raw)
	if err != nil {
		return nil, err
	}

	logger.Debugc(ctx, "Issue credential request accepted",
		logfields.WithIssuer(credential.Issuer()),
		logfields.WithMandatoryPointers(opts.MandatoryPointers),
	)

	return c.issueCredentialService.IssueCredential(ctx, credential, opts)
}

func (c *Controller) parseIssueRequest(raw []byte) (*vc.Credential, *issuecredential.Options, error) {
	if err := c.schemaValidator.ValidateRaw(raw, issueRequestSchemaID, issueRequestSchema); err != nil {
		return nil, nil, parsingError(err)
	}

	var body IssueCredentialRequest

	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, nil, parsingError(err)
	}

	credential, err := vc.ParseCredential(body.Credential)
	if err != nil {
		return nil, nil, parsingError(err)
	}

	if credential.Proof().Exists() {
		return nil, nil, parsingError(errors.New("credential must not contain a proof"))
	}

	if !credential.HasIssuer() {
		credential, err = credential.WithIssuer(c.defaultIssuer)
		if err != nil {
			return nil, nil, resterr.NewUnknownError(err)
		}
	}

	opts, err := validateIssueCredOptions(body.Options)
	if err != nil {
		return nil, nil, err
	}

	return credential, opts, nil
}

func validateIssueCredOptions(options *IssueCredentialOptions) (*issuecredential.Options, error) {
	opts := &issuecredential.Options{MandatoryPointers: []string{}}

	if options == nil {
		return opts, nil
	}

	for _, pointer := range lo.FromPtr(options.MandatoryPointers) {
		if _, err := gojsonpointer.NewJsonPointer(pointer); err != nil {
			return nil, parsingError(fmt.Errorf("options.mandatoryPointers: invalid JSON pointer %q: %w", pointer, err))
		}

		opts.MandatoryPointers = append(opts.MandatoryPointers, pointer)
	}

	opts.CredentialID = lo.FromPtr(options.CredentialId)

	return opts, nil
}

func parsingError(err error) *resterr.ProblemDetails {
	return resterr.NewParsingError(jsonParseErrorTitle, err).WithComponent(resterr.IssuerControllerComponent)
}
