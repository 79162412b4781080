/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonschema

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/xeipuuv/gojsonschema"

	"github.com/laysakura/vc-issuer-mock/internal/logfields"
)

var logger = log.New("jsonschema")

// Violation is a single schema violation. Field is "(root)" for the document itself.
type Violation struct {
	Field       string
	Description string
}

// ValidationError lists the schema violations of a document.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := lo.Map(e.Violations, func(v Violation, _ int) string {
		return v.Field + ": " + v.Description
	})

	return fmt.Sprintf("validation error: [%s]", strings.Join(msgs, "; "))
}

type schemaCompiler func(schema []byte) (*gojsonschema.Schema, error)

// CachingValidator validates raw JSON documents. A schema is compiled on first use and cached by its $id.
type CachingValidator struct {
	mutex   sync.RWMutex
	schemas map[string]*gojsonschema.Schema
	compile schemaCompiler
}

// NewCachingValidator returns a new caching JSON schema validator.
func NewCachingValidator() *CachingValidator {
	return &CachingValidator{
		schemas: make(map[string]*gojsonschema.Schema),
		compile: compileSchema,
	}
}

// ValidateRaw validates a JSON document against the schema identified by schemaID. The schema document must
// declare the same $id. Violations are returned as *ValidationError.
func (c *CachingValidator) ValidateRaw(data []byte, schemaID string, schema []byte) error {
	s, err := c.get(schemaID, schema)
	if err != nil {
		return fmt.Errorf("get schema validator from cache: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("loader error: %w", err)
	}

	if result.Valid() {
		return nil
	}

	return &ValidationError{
		Violations: lo.Map(result.Errors(), func(e gojsonschema.ResultError, _ int) Violation {
			return Violation{Field: e.Field(), Description: e.Description()}
		}),
	}
}

func (c *CachingValidator) get(schemaID string, schema []byte) (*gojsonschema.Schema, error) {
	c.mutex.RLock()
	s, ok := c.schemas[schemaID]
	c.mutex.RUnlock()

	if ok {
		return s, nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if s, ok = c.schemas[schemaID]; ok {
		return s, nil
	}

	if err := checkSchemaID(schemaID, schema); err != nil {
		return nil, err
	}

	s, err := c.compile(schema)
	if err != nil {
		return nil, fmt.Errorf("create validator [%s]: %w", schemaID, err)
	}

	c.schemas[schemaID] = s

	logger.Debug("Compiled JSON schema", logfields.WithJSONSchemaID(schemaID))

	return s, nil
}

func checkSchemaID(schemaID string, schema []byte) error {
	if !gjson.ValidBytes(schema) {
		return errors.New("JSON schema is not valid JSON")
	}

	id := gjson.GetBytes(schema, "$id")

	switch {
	case !id.Exists():
		return errors.New("field '$id' not found in JSON schema")
	case id.Type != gjson.String:
		return fmt.Errorf("field '$id' in JSON schema must be a string, got %s", id.Type)
	case id.Str != schemaID:
		return fmt.Errorf("field '$id' in JSON schema [%s] does not match schema ID [%s]", id.Str, schemaID)
	}

	return nil
}

func compileSchema(schema []byte) (*gojsonschema.Schema, error) {
	s, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewBytesLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile JSON schema: %w", err)
	}

	return s, nil
}
