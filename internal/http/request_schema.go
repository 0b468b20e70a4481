package http

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// predictRequestSchema solo valida la forma del cuerpo. Los campos faltantes o
// vacíos los reporta el validador de service como errores por campo.
const predictRequestSchema = `{
  "type": "object",
  "properties": {
    "name":                {"type": ["string", "null"]},
    "fullName":            {"type": ["string", "null"]},
    "occupation":          {"type": ["string", "null"]},
    "monthly_income":      {"type": ["string", "number", "null"]},
    "monthlyIncome":       {"type": ["string", "number", "null"]},
    "monthlySalary":       {"type": ["string", "number", "null"]},
    "education_level":     {"type": ["string", "null"]},
    "educationLevel":      {"type": ["string", "null"]},
    "complexion_category": {"type": ["string", "null"]},
    "complexionCategory":  {"type": ["string", "null"]},
    "complexion":          {"type": ["string", "null"]},
    "asset_count":         {"type": ["string", "number", "null"]},
    "assetCount":          {"type": ["string", "number", "null"]},
    "buffaloes":           {"type": ["string", "number", "null"]},
    "owns_property":       {"type": ["boolean", "null"]},
    "ownsProperty":        {"type": ["boolean", "null"]},
    "ownsHouse":           {"type": ["boolean", "null"]}
  }
}`

var predictSchema = gojsonschema.NewStringLoader(predictRequestSchema)

// validateShape comprueba que el documento tenga la forma esperada.
func validateShape(doc map[string]any) error {
	result, err := gojsonschema.Validate(predictSchema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("request shape invalid: %s", strings.Join(errs, "; "))
	}
	return nil
}
