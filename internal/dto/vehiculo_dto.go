package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearVehiculoRequest is bound from the vehicle form (POST and PUT — updates
// are a full replace of every field). Numeric fields arrive as raw strings:
// malformed input substitutes the field's fallback (internal/form), it never
// rejects the request.
type CrearVehiculoRequest struct {
	Marca              string `json:"marca"               form:"marca"`
	Modelo             string `json:"modelo"              form:"modelo"`
	Anio               string `json:"anio"                form:"anio"`                // fallback NULL
	Precio             string `json:"precio"              form:"precio"`              // fallback NULL
	CantidadDisponible string `json:"cantidad_disponible" form:"cantidad_disponible"` // fallback 0
	NumeroSerie        string `json:"numero_serie"        form:"numero_serie"`
	Color              string `json:"color"               form:"color"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VehiculoResponse struct {
	ID                 string           `json:"id"`
	Marca              string           `json:"marca"`
	Modelo             string           `json:"modelo"`
	Anio               *int             `json:"anio"`
	Precio             *decimal.Decimal `json:"precio"`
	CantidadDisponible int              `json:"cantidad_disponible"`
	NumeroSerie        string           `json:"numero_serie"`
	Color              string           `json:"color"`
}

// ConsultaVehiculoResponse is the public serial-number price check payload.
type ConsultaVehiculoResponse struct {
	Marca              string           `json:"marca"`
	Modelo             string           `json:"modelo"`
	Anio               *int             `json:"anio"`
	Color              string           `json:"color"`
	Precio             *decimal.Decimal `json:"precio"`
	CantidadDisponible int              `json:"cantidad_disponible"`
}
