package dataset

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema describes the expected input shape: an object of
// suffix -> {x, y, ticks, title?} entries with numeric sequences.
const documentSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"required": ["x", "y", "ticks"],
		"properties": {
			"x":     {"type": "array", "items": {"type": "number"}, "minItems": 1},
			"y":     {"type": "array", "items": {"type": "number"}, "minItems": 1},
			"ticks": {"type": "array", "items": {"type": "number"}},
			"title": {"type": "string"}
		},
		"additionalProperties": false
	}
}`

func validateDocument(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate histogram input: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid histogram input: %s", strings.Join(msgs, "; "))
	}
	return nil
}
