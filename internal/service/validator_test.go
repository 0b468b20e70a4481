package service

import (
	"errors"
	"testing"

	"dowry-calculator/internal/domain"
)

func validRaw() map[string]any {
	return map[string]any{
		"name":                "Test",
		"occupation":          "doctor",
		"monthly_income":      "100000",
		"education_level":     "phd",
		"complexion_category": "fair",
		"asset_count":         "2",
		"owns_property":       true,
	}
}

func TestValidateSubmission_Valid(t *testing.T) {
	input, err := ValidateSubmission(validRaw())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.SubmissionInput{
		Name:               "Test",
		Occupation:         "doctor",
		MonthlyIncome:      100000,
		EducationLevel:     domain.EducationDoctorate,
		ComplexionCategory: domain.ComplexionLight,
		AssetCount:         2,
		OwnsProperty:       true,
	}
	if input != want {
		t.Fatalf("expected %+v, got %+v", want, input)
	}
}

func TestValidateSubmission_CollectsAllErrors(t *testing.T) {
	_, err := ValidateSubmission(map[string]any{
		"name":       "   ",
		"occupation": "",
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	want := map[string]string{
		FieldName:          CodeRequired,
		FieldOccupation:    CodeRequired,
		FieldMonthlyIncome: CodeInvalidNumber,
		FieldEducation:     CodeRequired,
		FieldComplexion:    CodeRequired,
		FieldAssetCount:    CodeInvalidNumber,
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("expected %d field errors, got %+v", len(want), verr.Fields)
	}
	for field, code := range want {
		fe, ok := verr.Fields[field]
		if !ok {
			t.Fatalf("missing error for %s", field)
		}
		if fe.Code != code {
			t.Fatalf("field %s: expected code %s, got %s", field, code, fe.Code)
		}
		if fe.Message == "" {
			t.Fatalf("field %s: expected human readable message", field)
		}
	}
	if _, ok := verr.Fields[FieldOwnsProperty]; ok {
		t.Fatalf("owns_property must not be an error when absent")
	}
}

func TestValidateSubmission_RejectsNonNumeric(t *testing.T) {
	for _, bad := range []any{"abc", "12abc", "NaN", "Inf", "", "  ", true} {
		raw := validRaw()
		raw["monthly_income"] = bad
		raw["asset_count"] = bad
		_, err := ValidateSubmission(raw)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("value %v: expected ValidationError, got %v", bad, err)
		}
		if verr.Fields[FieldMonthlyIncome].Code != CodeInvalidNumber || verr.Fields[FieldAssetCount].Code != CodeInvalidNumber {
			t.Fatalf("value %v: expected invalid_number for both numeric fields, got %+v", bad, verr.Fields)
		}
		if len(verr.Fields) != 2 {
			t.Fatalf("value %v: expected only numeric fields to fail, got %+v", bad, verr.Fields)
		}
	}
}

func TestValidateSubmission_RejectsOutOfRangeNumbers(t *testing.T) {
	cases := []struct {
		field string
		value any
	}{
		{"monthly_income", "1e308"},
		{"monthly_income", -1e16},
		{"monthly_income", "1000000000000001"},
		{"asset_count", "1e19"},
		{"asset_count", -1e10},
		{"asset_count", 2147483648.0},
	}
	for _, tc := range cases {
		raw := validRaw()
		raw[tc.field] = tc.value
		_, err := ValidateSubmission(raw)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s=%v: expected ValidationError, got %v", tc.field, tc.value, err)
		}
		if len(verr.Fields) != 1 || verr.Fields[tc.field].Code != CodeInvalidNumber {
			t.Fatalf("%s=%v: expected only invalid_number on %s, got %+v", tc.field, tc.value, tc.field, verr.Fields)
		}
	}
}

func TestValidateSubmission_AcceptsBounds(t *testing.T) {
	raw := validRaw()
	raw["monthly_income"] = MaxMonthlyIncome
	raw["asset_count"] = float64(MaxAssetCount)
	input, err := ValidateSubmission(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.AssetCount != MaxAssetCount {
		t.Fatalf("expected asset count %d, got %d", MaxAssetCount, input.AssetCount)
	}
}

func TestValidateSubmission_NumericForms(t *testing.T) {
	raw := validRaw()
	raw["monthly_income"] = 2500.5
	raw["asset_count"] = " 3.9 "
	input, err := ValidateSubmission(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.MonthlyIncome != 2500.5 {
		t.Fatalf("expected JSON number to be accepted, got %v", input.MonthlyIncome)
	}
	if input.AssetCount != 3 {
		t.Fatalf("expected asset count truncated to 3, got %d", input.AssetCount)
	}
}

func TestValidateSubmission_TokensAndAliases(t *testing.T) {
	raw := map[string]any{
		"fullName":       " Priya ",
		"occupation":     "Software Engineer",
		"monthlySalary":  "50000",
		"educationLevel": "MASTERS",
		"complexion":     " Wheatish",
		"buffaloes":      "0",
		"ownsHouse":      "true",
	}
	input, err := ValidateSubmission(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Name != "Priya" {
		t.Fatalf("expected trimmed name, got %q", input.Name)
	}
	if input.EducationLevel != domain.EducationMaster {
		t.Fatalf("expected master, got %q", input.EducationLevel)
	}
	if input.ComplexionCategory != domain.ComplexionMedium {
		t.Fatalf("expected medium, got %q", input.ComplexionCategory)
	}
	if !input.OwnsProperty {
		t.Fatalf("expected owns property from string flag")
	}
}

func TestValidateSubmission_UnknownTokens(t *testing.T) {
	raw := validRaw()
	raw["education_level"] = "kindergarten"
	raw["complexion_category"] = "green"
	_, err := ValidateSubmission(raw)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Fields[FieldEducation].Code != CodeRequired || verr.Fields[FieldComplexion].Code != CodeRequired {
		t.Fatalf("expected required errors for unknown tokens, got %+v", verr.Fields)
	}
}

func TestValidateSubmission_OwnsPropertyDefaultsFalse(t *testing.T) {
	raw := validRaw()
	delete(raw, "owns_property")
	input, err := ValidateSubmission(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.OwnsProperty {
		t.Fatalf("expected owns_property to default to false")
	}
}

func TestValidateSubmission_DoesNotMutateInput(t *testing.T) {
	raw := validRaw()
	raw["name"] = "  Test  "
	_, _ = ValidateSubmission(raw)
	if raw["name"] != "  Test  " {
		t.Fatalf("validator must not mutate the caller's map")
	}
}

func TestValidationError_Message(t *testing.T) {
	verr := &ValidationError{}
	verr.add(FieldOccupation, CodeRequired, "Occupation is required")
	verr.add(FieldName, CodeRequired, "Name is required")
	if got := verr.Error(); got != "validation failed: name, occupation" {
		t.Fatalf("unexpected error string %q", got)
	}
}
