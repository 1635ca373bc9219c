// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package content

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// SchemaID is the $id of the generated manifest schema.
const SchemaID = "https://holomush.dev/schemas/content-types.schema.json"

var (
	schemaOnce     sync.Once
	schemaCompiled *jschema.Schema
	errSchema      error
)

// GenerateSchema generates the JSON Schema of the content types manifest.
func GenerateSchema() ([]byte, error) {
	r := jsonschema.Reflector{
		DoNotReference: true,
		FieldNameTag:   "yaml",
	}
	s := r.Reflect(&Manifest{})

	s.ID = jsonschema.ID(SchemaID)
	s.Title = "Content Types Manifest"
	s.Description = "Schema for content type declarations and their property sheets"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, oops.Code("SCHEMA_GENERATE_FAILED").Wrap(err)
	}
	return data, nil
}

// ValidateSchema validates YAML manifest data against the manifest schema.
func ValidateSchema(data []byte) error {
	if len(data) == 0 {
		return oops.Code("MANIFEST_EMPTY").Errorf("manifest data is empty")
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return oops.Wrapf(err, "invalid YAML")
	}

	sch, err := compiledSchema()
	if err != nil {
		return err
	}

	if err := sch.Validate(toJSONTypes(doc)); err != nil {
		return oops.Wrapf(err, "schema validation failed")
	}
	return nil
}

func compiledSchema() (*jschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := GenerateSchema()
		if err != nil {
			errSchema = err
			return
		}

		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			errSchema = oops.Wrapf(err, "parse schema JSON")
			return
		}

		c := jschema.NewCompiler()
		if err := c.AddResource("content-types.schema.json", doc); err != nil {
			errSchema = oops.Wrapf(err, "add schema resource")
			return
		}
		schemaCompiled, errSchema = c.Compile("content-types.schema.json")
		if errSchema != nil {
			errSchema = oops.Wrapf(errSchema, "compile schema")
		}
	})
	return schemaCompiled, errSchema
}

// toJSONTypes normalizes YAML-decoded values into the shapes the validator
// expects: string-keyed maps and float64 numbers.
func toJSONTypes(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = toJSONTypes(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toJSONTypes(item)
		}
		return out
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	default:
		return val
	}
}

// FormatSchemaError trims the wrapping added by ValidateSchema so the
// validator's own message can be shown to operators.
func FormatSchemaError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if idx := strings.Index(msg, "schema validation failed: "); idx >= 0 {
		msg = msg[idx+len("schema validation failed: "):]
	}
	return msg
}
