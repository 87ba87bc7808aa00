package layoutfile

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// layoutSchema describes the on-disk layout format. Load validates incoming
// documents against it before unmarshalling, so a malformed file is rejected
// without touching the caller's in-memory layout.
const layoutSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "objects"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "meta": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "created": {"type": "string"}
      }
    },
    "objects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["position", "width", "height"],
        "properties": {
          "id": {"type": "string"},
          "position": {
            "type": "object",
            "required": ["x", "y"],
            "properties": {
              "x": {"type": "integer"},
              "y": {"type": "integer"}
            }
          },
          "width": {"type": "number", "exclusiveMinimum": 0},
          "height": {"type": "number", "exclusiveMinimum": 0},
          "radius": {"type": "number", "minimum": 0},
          "color": {
            "type": "object",
            "properties": {
              "r": {"type": "integer", "minimum": 0, "maximum": 255},
              "g": {"type": "integer", "minimum": 0, "maximum": 255},
              "b": {"type": "integer", "minimum": 0, "maximum": 255},
              "a": {"type": "integer", "minimum": 0, "maximum": 255}
            }
          },
          "label": {"type": "string"},
          "icon": {"type": "string"}
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("layout.schema.json", layoutSchema)

// validate checks raw layout JSON against the embedded schema.
func validate(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
