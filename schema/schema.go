// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

// Package schema validates a policy document's gross JSON shape (field
// names, required keys, scalar-or-list fields) ahead of the stricter
// semantic parsing aspen.ParsePolicy performs. It exists so a CLI or
// service boundary can reject a malformed document with a structural
// error before touching the evaluator, grounded on the teacher's
// sync.Once-compiled jsonschema pattern in internal/plugin/schema.go.
package schema

import (
	"encoding/json"
	"sync"

	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/samber/oops"
)

// policyDocumentSchema is the JSON Schema for the wire format described
// in spec §6: Version/Id/Statement at the policy level, and the
// scalar-or-list convention for Action/NotAction/Resource/NotResource.
const policyDocumentSchema = `{
  "$id": "https://aspen-iam.dev/schemas/policy.schema.json",
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Aspen access policy document",
  "type": "object",
  "required": ["Statement"],
  "additionalProperties": false,
  "properties": {
    "Version": {"type": "string", "enum": ["2008-10-17", "2012-10-17"]},
    "Id": {"type": "string"},
    "Statement": {
      "oneOf": [
        {"$ref": "#/$defs/statement"},
        {"type": "array", "items": {"$ref": "#/$defs/statement"}}
      ]
    }
  },
  "$defs": {
    "stringOrList": {
      "oneOf": [
        {"type": "string"},
        {"type": "array", "items": {"type": "string"}}
      ]
    },
    "statement": {
      "type": "object",
      "required": ["Effect"],
      "additionalProperties": false,
      "properties": {
        "Sid": {"type": "string"},
        "Effect": {"type": "string", "enum": ["Allow", "Deny"]},
        "Action": {"$ref": "#/$defs/stringOrList"},
        "NotAction": {"$ref": "#/$defs/stringOrList"},
        "Resource": {"$ref": "#/$defs/stringOrList"},
        "NotResource": {"$ref": "#/$defs/stringOrList"},
        "Principal": {"$ref": "#/$defs/principal"},
        "NotPrincipal": {"$ref": "#/$defs/principal"},
        "Condition": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "additionalProperties": {"$ref": "#/$defs/stringOrList"}
          }
        }
      }
    },
    "principal": {
      "oneOf": [
        {"type": "string", "const": "*"},
        {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "AWS": {"$ref": "#/$defs/stringOrList"},
            "CanonicalUser": {"$ref": "#/$defs/stringOrList"},
            "Federated": {"$ref": "#/$defs/stringOrList"},
            "Service": {"$ref": "#/$defs/stringOrList"}
          }
        }
      ]
    }
  }
}`

type schemaState struct {
	once   sync.Once
	schema *jschema.Schema
	err    error
}

var globalSchemaState = &schemaState{}

// Validate checks data's gross JSON shape against the policy document
// schema, independent of aspen's own semantic validation.
func Validate(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return oops.In("schema").Code("invalid_json").Hint("invalid JSON").Wrap(err)
	}

	sch, err := getCompiledSchema()
	if err != nil {
		return oops.In("schema").Code("schema_compile_failed").Hint("failed to compile policy schema").Wrap(err)
	}

	if err := sch.Validate(doc); err != nil {
		return oops.In("schema").Code("schema_validation_failed").Hint("policy document failed schema validation").Wrap(err)
	}
	return nil
}

func getCompiledSchema() (*jschema.Schema, error) {
	globalSchemaState.once.Do(func() {
		globalSchemaState.schema, globalSchemaState.err = compileSchema()
	})
	return globalSchemaState.schema, globalSchemaState.err
}

func compileSchema() (*jschema.Schema, error) {
	var schemaData any
	if err := json.Unmarshal([]byte(policyDocumentSchema), &schemaData); err != nil {
		return nil, oops.In("schema").Hint("failed to parse embedded schema JSON").Wrap(err)
	}

	c := jschema.NewCompiler()
	if err := c.AddResource("policy.schema.json", schemaData); err != nil {
		return nil, oops.In("schema").Code("schema_compile_failed").Hint("failed to add schema resource").Wrap(err)
	}

	sch, err := c.Compile("policy.schema.json")
	if err != nil {
		return nil, oops.In("schema").Code("schema_compile_failed").Hint("failed to compile policy schema").Wrap(err)
	}
	return sch, nil
}
