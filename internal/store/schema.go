package store

import (
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// storeSchema describes the backing file: user id -> list of birthday
// records. Compiled once per process.
const storeSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "array",
		"items": {
			"type": "object",
			"required": ["name", "day", "month"],
			"properties": {
				"name": {"type": "string"},
				"day": {"type": "integer"},
				"month": {"type": "integer"}
			}
		}
	}
}`

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// validateDocument checks raw backing-file bytes against the store schema.
func validateDocument(data []byte) error {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(storeSchema))
	})
	if schemaErr != nil {
		return fmt.Errorf("compile store schema: %w", schemaErr)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate store document: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		return fmt.Errorf("store document invalid: %s", errs[0].String())
	}
	return nil
}
