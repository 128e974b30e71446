package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearServicioRequest is bound from the maintenance-service form (POST and
// PUT — full replace). VehiculoID is required; ClienteID and ProveedorID are
// optional-if-blank. CostoServicio falls back to 0.0, FechaServicio to NULL.
type CrearServicioRequest struct {
	VehiculoID    string `json:"vehiculo"       form:"vehiculo"`
	ClienteID     string `json:"cliente"        form:"cliente"`
	ProveedorID   string `json:"proveedor"      form:"proveedor"`
	TipoServicio  string `json:"tipo_servicio"  form:"tipo_servicio"`
	FechaServicio string `json:"fecha_servicio" form:"fecha_servicio"` // YYYY-MM-DD, fallback NULL
	CostoServicio string `json:"costo_servicio" form:"costo_servicio"` // fallback 0.0
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ServicioResponse struct {
	ID            string             `json:"id"`
	VehiculoID    string             `json:"vehiculo_id"`
	Vehiculo      *VehiculoResponse  `json:"vehiculo,omitempty"`
	ClienteID     *string            `json:"cliente_id"`
	Cliente       *ClienteResponse   `json:"cliente,omitempty"`
	ProveedorID   *string            `json:"proveedor_id"`
	Proveedor     *ProveedorResponse `json:"proveedor,omitempty"`
	TipoServicio  string             `json:"tipo_servicio"`
	FechaServicio *string            `json:"fecha_servicio"`
	CostoServicio decimal.Decimal    `json:"costo_servicio"`
}
