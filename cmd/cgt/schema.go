package main

import (
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// snortSchemaJSON describes the JSON position file accepted by the snort
// subcommand.
const snortSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["vertices", "edges"],
  "additionalProperties": false,
  "properties": {
    "vertices": {
      "type": "array",
      "items": {"enum": ["empty", "left", "right", "taken"]}
    },
    "edges": {
      "type": "array",
      "items": {
        "type": "array",
        "items": {"type": "integer", "minimum": 0},
        "minItems": 2,
        "maxItems": 2
      }
    }
  }
}`

var (
	snortSchemaOnce     sync.Once
	snortSchemaCompiled *jsonschema.Schema
)

// snortSchema returns the compiled position schema, compiling it once.
func snortSchema() *jsonschema.Schema {
	snortSchemaOnce.Do(func() {
		snortSchemaCompiled = jsonschema.MustCompileString("snort-position.json", snortSchemaJSON)
	})
	return snortSchemaCompiled
}
