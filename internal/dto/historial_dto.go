package dto

import "github.com/shopspring/decimal"

// HistorialPrecioItem is one row in a vehicle's price-change history.
type HistorialPrecioItem struct {
	ID            string           `json:"id"`
	VehiculoID    string           `json:"vehiculo_id"`
	PrecioAntes   *decimal.Decimal `json:"precio_antes"`
	PrecioDespues *decimal.Decimal `json:"precio_despues"`
	Motivo        string           `json:"motivo"`
	CreatedAt     string           `json:"created_at"`
}

// HistorialPrecioListResponse is returned by GET /v1/vehiculos/:id/historial-precios.
type HistorialPrecioListResponse struct {
	Data  []HistorialPrecioItem `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
