package domain

type EducationLevel string

const (
	EducationSecondary EducationLevel = "secondary"
	EducationBachelor  EducationLevel = "bachelor"
	EducationMaster    EducationLevel = "master"
	EducationDoctorate EducationLevel = "doctorate"
	EducationOther     EducationLevel = "other"
)

type ComplexionCategory string

const (
	ComplexionLight  ComplexionCategory = "light"
	ComplexionMedium ComplexionCategory = "medium"
	ComplexionDark   ComplexionCategory = "dark"
)

// SubmissionInput es el formulario ya validado; nunca llega al scoring a medio parsear.
type SubmissionInput struct {
	Name               string             `json:"name"`
	Occupation         string             `json:"occupation"`
	MonthlyIncome      float64            `json:"monthly_income"`
	EducationLevel     EducationLevel     `json:"education_level"`
	ComplexionCategory ComplexionCategory `json:"complexion_category"`
	AssetCount         int                `json:"asset_count"` // Búfalos
	OwnsProperty       bool               `json:"owns_property"`
}

// ValuationResult es la "tasación" satírica devuelta al cliente.
type ValuationResult struct {
	Amount        float64  `json:"amount"`
	DisplayAmount string   `json:"display_amount"`
	Items         []string `json:"items"`
	Message       string   `json:"message"`
	IsZero        bool     `json:"is_zero"`
}
