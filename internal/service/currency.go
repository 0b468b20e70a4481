package service

import (
	"math"
	"strconv"
	"strings"
)

const rupeeSymbol = "₹"

// FormatRupees formatea un monto con agrupación india (lakh/crore): 1928000 -> ₹19,28,000.
// Conserva hasta tres decimales y recorta los ceros sobrantes.
func FormatRupees(amount float64) string {
	// El validador acota los montos; esto solo cubre llamadas directas.
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	digits := groupIndian(amount)
	if rest, ok := strings.CutPrefix(digits, "-"); ok {
		return "-" + rupeeSymbol + rest
	}
	return rupeeSymbol + digits
}

func groupIndian(amount float64) string {
	raw := strconv.FormatFloat(math.Abs(amount), 'f', 3, 64)
	intPart, fracPart, _ := strings.Cut(raw, ".")
	fracPart = strings.TrimRight(fracPart, "0")

	groups := []string{}
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		// Por encima de los miles se agrupa de a dos dígitos.
		if first := len(head) % 2; first > 0 {
			groups = append(groups, head[:first])
			head = head[first:]
		}
		for len(head) > 0 {
			groups = append(groups, head[:2])
			head = head[2:]
		}
		intPart = intPart[len(intPart)-3:]
	}
	groups = append(groups, intPart)

	out := strings.Join(groups, ",")
	if fracPart != "" {
		out += "." + fracPart
	}
	if amount < 0 && strings.Trim(out, "0,.") != "" {
		out = "-" + out
	}
	return out
}
