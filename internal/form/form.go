// Package form coerces raw form-field text into typed values with per-field
// fallback semantics. Coercion never fails a request: malformed or missing
// input silently stores the field's documented fallback instead.
//
// The fallback is NOT uniform across fields, and the asymmetry is deliberate:
//
//	cantidad_disponible          → 0
//	anio                         → NULL
//	precio, salario              → NULL
//	total, costo_servicio        → 0.0
//	fecha_* (YYYY-MM-DD)         → NULL (absent == malformed)
//
// Each (type, fallback) pair gets its own named helper so the policy is
// visible at every call site rather than hidden behind a generic coercer.
package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FechaISO is the calendar-date wire format (HTML <input type="date">).
const FechaISO = "2006-01-02"

// EnteroCero parses an integer, falling back to 0.
func EnteroCero(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// EnteroNulo parses an integer, falling back to NULL.
func EnteroNulo(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}

// DecimalCero parses a decimal, falling back to 0.0.
func DecimalCero(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DecimalNulo parses a decimal, falling back to NULL.
func DecimalNulo(raw string) *decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &d
}

// FechaNula parses a YYYY-MM-DD date, falling back to NULL. An empty field
// and a malformed one are treated identically.
func FechaNula(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(FechaISO, raw)
	if err != nil {
		return nil
	}
	return &t
}
