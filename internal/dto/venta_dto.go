package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearVentaRequest is bound from the sale form (POST and PUT — full replace).
// EmpleadoID is optional-if-blank: empty stores NULL, non-empty must resolve.
// There is deliberately no fecha field: the sale date is always the server
// date at creation and is never rewritten afterwards.
type CrearVentaRequest struct {
	VehiculoID      string `json:"vehiculo"         form:"vehiculo"`
	EmpleadoID      string `json:"empleado"         form:"empleado"`
	ClienteNombre   string `json:"cliente_nombre"   form:"cliente_nombre"`
	ClienteTelefono string `json:"cliente_telefono" form:"cliente_telefono"`
	Total           string `json:"total"            form:"total"` // fallback 0.0
	MetodoPago      string `json:"metodo_pago"      form:"metodo_pago"`
	Folio           string `json:"folio"            form:"folio"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// VentaResponse carries the sale plus its eagerly resolved references so the
// listing view needs no per-record follow-up fetches.
type VentaResponse struct {
	ID              string            `json:"id"`
	VehiculoID      string            `json:"vehiculo_id"`
	Vehiculo        *VehiculoResponse `json:"vehiculo,omitempty"`
	EmpleadoID      *string           `json:"empleado_id"`
	Empleado        *EmpleadoResponse `json:"empleado,omitempty"`
	ClienteNombre   string            `json:"cliente_nombre"`
	ClienteTelefono string            `json:"cliente_telefono"`
	Total           decimal.Decimal   `json:"total"`
	MetodoPago      string            `json:"metodo_pago"`
	Folio           string            `json:"folio"`
	FechaVenta      string            `json:"fecha_venta"` // YYYY-MM-DD
}
