package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"dowry-calculator/internal/domain"
)

const (
	FieldName          = "name"
	FieldOccupation    = "occupation"
	FieldMonthlyIncome = "monthly_income"
	FieldEducation     = "education_level"
	FieldComplexion    = "complexion_category"
	FieldAssetCount    = "asset_count"
	FieldOwnsProperty  = "owns_property"

	CodeRequired      = "required"
	CodeInvalidNumber = "invalid_number"
)

// Cotas de magnitud para los campos numéricos. Con estos topes la fórmula
// siempre da un monto finito y el conteo de búfalos entra en un int de 32 bits.
const (
	MaxMonthlyIncome = 1e15
	MaxAssetCount    = math.MaxInt32
)

// fieldAliases acepta los nombres que manda el formulario original y la variante camelCase.
var fieldAliases = map[string][]string{
	FieldName:          {"fullName", "full_name"},
	FieldOccupation:    {},
	FieldMonthlyIncome: {"monthlyIncome", "monthlySalary", "monthly_salary"},
	FieldEducation:     {"educationLevel"},
	FieldComplexion:    {"complexionCategory", "complexion"},
	FieldAssetCount:    {"assetCount", "buffaloes"},
	FieldOwnsProperty:  {"ownsProperty", "ownsHouse", "owns_house"},
}

var educationTokens = map[string]domain.EducationLevel{
	"secondary":   domain.EducationSecondary,
	"high-school": domain.EducationSecondary,
	"bachelor":    domain.EducationBachelor,
	"bachelors":   domain.EducationBachelor,
	"master":      domain.EducationMaster,
	"masters":     domain.EducationMaster,
	"doctorate":   domain.EducationDoctorate,
	"phd":         domain.EducationDoctorate,
	"other":       domain.EducationOther,
}

var complexionTokens = map[string]domain.ComplexionCategory{
	"light":    domain.ComplexionLight,
	"fair":     domain.ComplexionLight,
	"medium":   domain.ComplexionMedium,
	"wheatish": domain.ComplexionMedium,
	"dark":     domain.ComplexionDark,
}

type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError junta todas las fallas por campo, no solo la primera.
type ValidationError struct {
	Fields map[string]FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

func (e *ValidationError) add(field, code, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]FieldError)
	}
	e.Fields[field] = FieldError{Code: code, Message: message}
}

// ValidateSubmission convierte el mapa crudo del formulario en un SubmissionInput.
// No hace I/O ni modifica raw. Devuelve *ValidationError con todos los campos inválidos.
func ValidateSubmission(raw map[string]any) (domain.SubmissionInput, error) {
	var (
		input domain.SubmissionInput
		verr  ValidationError
	)

	input.Name = strings.TrimSpace(stringField(raw, FieldName))
	if input.Name == "" {
		verr.add(FieldName, CodeRequired, "Name is required")
	}

	input.Occupation = strings.TrimSpace(stringField(raw, FieldOccupation))
	if input.Occupation == "" {
		verr.add(FieldOccupation, CodeRequired, "Occupation is required")
	}

	if income, ok := numberField(raw, FieldMonthlyIncome, MaxMonthlyIncome); ok {
		input.MonthlyIncome = income
	} else {
		verr.add(FieldMonthlyIncome, CodeInvalidNumber, "Valid salary is required")
	}

	if level, ok := educationTokens[normalizeToken(stringField(raw, FieldEducation))]; ok {
		input.EducationLevel = level
	} else {
		verr.add(FieldEducation, CodeRequired, "Education level is required")
	}

	if complexion, ok := complexionTokens[normalizeToken(stringField(raw, FieldComplexion))]; ok {
		input.ComplexionCategory = complexion
	} else {
		verr.add(FieldComplexion, CodeRequired, "Complexion is required")
	}

	if count, ok := numberField(raw, FieldAssetCount, MaxAssetCount); ok {
		// Se cuentan búfalos enteros.
		input.AssetCount = int(math.Trunc(count))
	} else {
		verr.add(FieldAssetCount, CodeInvalidNumber, "Number of buffaloes is required")
	}

	input.OwnsProperty = boolField(raw, FieldOwnsProperty)

	if len(verr.Fields) > 0 {
		return domain.SubmissionInput{}, &verr
	}
	return input, nil
}

func lookup(raw map[string]any, field string) (any, bool) {
	if v, ok := raw[field]; ok && v != nil {
		return v, true
	}
	for _, alias := range fieldAliases[field] {
		if v, ok := raw[alias]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(raw map[string]any, field string) string {
	v, ok := lookup(raw, field)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// numberField rechaza valores no finitos y los que superan limit en valor absoluto.
func numberField(raw map[string]any, field string, limit float64) (float64, bool) {
	v, ok := lookup(raw, field)
	if !ok {
		return 0, false
	}
	var n float64
	switch val := v.(type) {
	case float64:
		n = val
	case int:
		n = float64(val)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || math.Abs(n) > limit {
		return 0, false
	}
	return n, true
}

func boolField(raw map[string]any, field string) bool {
	v, ok := lookup(raw, field)
	if !ok {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return err == nil && b
	default:
		return false
	}
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
