package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearEmpleadoRequest is bound from the employee form (POST and PUT).
// FechaContratacion and Salario are coerced with a NULL fallback; on update an
// omitted field clears the stored value, it is never left untouched.
type CrearEmpleadoRequest struct {
	Nombre            string `json:"nombre"             form:"nombre"`
	Apellido          string `json:"apellido"           form:"apellido"`
	Puesto            string `json:"puesto"             form:"puesto"`
	Telefono          string `json:"telefono"           form:"telefono"`
	Email             string `json:"email"              form:"email"`
	FechaContratacion string `json:"fecha_contratacion" form:"fecha_contratacion"` // YYYY-MM-DD, fallback NULL
	Salario           string `json:"salario"            form:"salario"`            // fallback NULL
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EmpleadoResponse struct {
	ID                string           `json:"id"`
	Nombre            string           `json:"nombre"`
	Apellido          string           `json:"apellido"`
	Puesto            string           `json:"puesto"`
	Telefono          string           `json:"telefono"`
	Email             string           `json:"email"`
	FechaContratacion *string          `json:"fecha_contratacion"`
	Salario           *decimal.Decimal `json:"salario"`
}
