// internal/gateway/schemas.go
package gateway

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "womenrisehub/internal/common/errors"
)

// Schemas are deliberately lenient: they pin down the fields the mapping
// layer relies on and leave everything else open, so additive backend
// changes don't break decoding.
var (
	projectSchema = map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"id", "title"},
		"properties": map[string]interface{}{
			"id":                   map[string]interface{}{"type": "string"},
			"title":                map[string]interface{}{"type": "string"},
			"short_description":    map[string]interface{}{"type": "string"},
			"detailed_description": map[string]interface{}{"type": "string"},
			"category":             map[string]interface{}{"type": "string"},
			"project_type":         map[string]interface{}{"type": "string"},
			"location":             map[string]interface{}{"type": []interface{}{"string", "null"}},
			"image_url":            map[string]interface{}{"type": []interface{}{"string", "null"}},
			"skills_needed": map[string]interface{}{
				"type":  []interface{}{"array", "null"},
				"items": map[string]interface{}{"type": "string"},
			},
			"start_date": map[string]interface{}{"type": "string"},
			"end_date":   map[string]interface{}{"type": "string"},
			"owner":      map[string]interface{}{"type": []interface{}{"object", "null"}},
			"events":     map[string]interface{}{"type": []interface{}{"array", "null"}},
		},
	}

	applicationSchema = map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"id", "project_id"},
		"properties": map[string]interface{}{
			"id":              map[string]interface{}{"type": "string"},
			"project_id":      map[string]interface{}{"type": "string"},
			"volunteer_id":    map[string]interface{}{"type": []interface{}{"string", "null"}},
			"volunteer_name":  map[string]interface{}{"type": []interface{}{"string", "null"}},
			"volunteer_email": map[string]interface{}{"type": []interface{}{"string", "null"}},
			"volunteer_phone": map[string]interface{}{"type": []interface{}{"string", "null"}},
			"skills": map[string]interface{}{
				"type":  []interface{}{"array", "null"},
				"items": map[string]interface{}{"type": "string"},
			},
			"message":    map[string]interface{}{"type": []interface{}{"string", "null"}},
			"status":     map[string]interface{}{"type": []interface{}{"string", "null"}},
			"applied_at": map[string]interface{}{"type": []interface{}{"string", "null"}},
		},
	}

	volunteerSchema = map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"volunteer_id"},
		"properties": map[string]interface{}{
			"volunteer_id": map[string]interface{}{"type": "string"},
			"name":         map[string]interface{}{"type": []interface{}{"string", "null"}},
			"email":        map[string]interface{}{"type": []interface{}{"string", "null"}},
			"skills": map[string]interface{}{
				"type":  []interface{}{"array", "null"},
				"items": map[string]interface{}{"type": "string"},
			},
			"status": map[string]interface{}{"type": []interface{}{"string", "null"}},
		},
	}

	uploadSchema = map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"image_url"},
		"properties": map[string]interface{}{
			"image_url": map[string]interface{}{"type": "string"},
		},
	}
)

// validateShape checks one decoded remote record against its schema and
// turns violations into DECODE_FAILED errors.
func validateShape(kind string, schema map[string]interface{}, doc interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apperrors.NewDecodeError(kind, err.Error())
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return apperrors.NewDecodeError(kind, strings.Join(msgs, "; "))
	}
	return nil
}
