package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"dowry-calculator/internal/domain"
)

// RandSource elige un índice uniforme en [0, n). *rand.Rand de math/rand/v2 lo cumple.
type RandSource interface {
	IntN(n int) int
}

type runtimeRand struct{}

func (runtimeRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRandSource usa el generador global del runtime, seguro entre goroutines y sin semilla compartida.
var DefaultRandSource RandSource = runtimeRand{}

const (
	PricelessDisplay = "₹0 (You're Priceless!)"
	PricelessMessage = "Congratulations! You believe in equality and reject the dowry system. You're worth more than any material possession!"
	RealityCheckItem = "A Reality Check"
)

var pricelessItems = []string{"Respect", "Equality", "Love"}

var educationFactors = map[domain.EducationLevel]float64{
	domain.EducationSecondary: 0.5,
	domain.EducationBachelor:  1.0,
	domain.EducationMaster:    1.5,
	domain.EducationDoctorate: 2.0,
	domain.EducationOther:     0.8,
}

var complexionFactors = map[domain.ComplexionCategory]float64{
	domain.ComplexionLight:  1.2,
	domain.ComplexionMedium: 1.0,
	domain.ComplexionDark:   0.8,
}

type occupationBonus struct {
	keyword string
	bonus   float64
}

// occupationBonuses se recorre en orden y gana la primera coincidencia:
// "software engineer" nunca se alcanza porque "engineer" va antes.
var occupationBonuses = []occupationBonus{
	{"doctor", 500000},
	{"engineer", 300000},
	{"software engineer", 400000},
	{"government", 200000},
	{"teacher", 50000},
	{"unemployed", -100000},
}

type valuationTier struct {
	above float64
	items []string
}

// De mayor a menor; solo aplica el primero que se supere.
var valuationTiers = []valuationTier{
	{500000, []string{"Gold Jewelry Set", "LED TV", "Refrigerator"}},
	{200000, []string{"Gold Ring", "Mixer Grinder"}},
	{50000, []string{"Pressure Cooker"}},
}

var valuationMessages = []string{
	"Congratulations! You're officially overpriced in the marriage market!",
	"Your parents can now retire early with this dowry estimate!",
	"Warning: May cause excessive WhatsApp forwards in family groups!",
	"You seem like a government job person. Enjoy the loot!",
	"Your complexion just added/subtracted from your 'value'. How progressive!",
	"The buffalo count is impressive. Very traditional!",
	"Your education finally pays off... in dowry demands!",
}

const (
	incomeShare       = 0.1
	perAssetValue     = 50000.0
	propertyBonus     = 200000.0
	defaultMultiplier = 1.0
)

// ScoringEngine calcula la tasación satírica. No guarda estado.
type ScoringEngine struct{}

// DefaultScoringEngine permite uso directo sin instanciar.
var DefaultScoringEngine = ScoringEngine{}

// EducationFactor devuelve el multiplicador por nivel educativo (1.0 si no se reconoce).
func (ScoringEngine) EducationFactor(level domain.EducationLevel) float64 {
	if f, ok := educationFactors[level]; ok {
		return f
	}
	return defaultMultiplier
}

// ComplexionFactor devuelve el "ajuste" por tez, que es justo lo que la sátira denuncia.
func (ScoringEngine) ComplexionFactor(c domain.ComplexionCategory) float64 {
	if f, ok := complexionFactors[c]; ok {
		return f
	}
	return defaultMultiplier
}

// OccupationBonus busca por substring, sin distinguir mayúsculas, la primera palabra clave de la tabla.
func (ScoringEngine) OccupationBonus(occupation string) float64 {
	o := strings.ToLower(occupation)
	for _, entry := range occupationBonuses {
		if strings.Contains(o, entry.keyword) {
			return entry.bonus
		}
	}
	return 0
}

// BaseAmount es el monto antes del bono por propiedad.
func (e ScoringEngine) BaseAmount(input domain.SubmissionInput) float64 {
	base := input.MonthlyIncome*12*incomeShare +
		e.OccupationBonus(input.Occupation) +
		float64(input.AssetCount)*perAssetValue
	base *= e.EducationFactor(input.EducationLevel)
	base *= e.ComplexionFactor(input.ComplexionCategory)
	return base
}

// Score calcula el resultado para un input ya validado. Nunca falla.
func (e ScoringEngine) Score(input domain.SubmissionInput, rnd RandSource) domain.ValuationResult {
	base := e.BaseAmount(input)
	items := []string{}

	if input.OwnsProperty {
		base += propertyBonus
		items = append(items, "House Keys")
	}

	for _, tier := range valuationTiers {
		if base > tier.above {
			items = append(items, tier.items...)
			break
		}
	}

	if input.AssetCount > 0 {
		items = append(items, buffaloItem(input.AssetCount))
	}

	if base <= 0 {
		return PricelessResult()
	}

	if rnd == nil {
		rnd = DefaultRandSource
	}
	if len(items) == 0 {
		items = []string{RealityCheckItem}
	}
	return domain.ValuationResult{
		Amount:        base,
		DisplayAmount: FormatRupees(base),
		Items:         items,
		Message:       valuationMessages[rnd.IntN(len(valuationMessages))],
		IsZero:        false,
	}
}

// PricelessResult es la rama cero: descarta ítems y mensajes calculados.
func PricelessResult() domain.ValuationResult {
	return domain.ValuationResult{
		Amount:        0,
		DisplayAmount: PricelessDisplay,
		Items:         append([]string(nil), pricelessItems...),
		Message:       PricelessMessage,
		IsZero:        true,
	}
}

// ValuationMessages expone una copia del pool de mensajes.
func ValuationMessages() []string {
	return append([]string(nil), valuationMessages...)
}

func buffaloItem(n int) string {
	if n == 1 {
		return "1 Buffalo"
	}
	return fmt.Sprintf("%d Buffaloes", n)
}
