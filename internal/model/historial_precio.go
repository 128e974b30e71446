package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistorialPrecio registra cada cambio de precio de un vehículo.
// Los registros son inmutables — nunca se eliminan ni modifican.
// A row is appended (in the same transaction as the vehicle update) whenever
// an update changes Precio, including changes to or from NULL.
type HistorialPrecio struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehiculoID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	PrecioAntes   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PrecioDespues *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Motivo        string           `gorm:"not null;default:'actualizacion'"`
	CreatedAt     time.Time

	Vehiculo Vehiculo `gorm:"foreignKey:VehiculoID"`
}
