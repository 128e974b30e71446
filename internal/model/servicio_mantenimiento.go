package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServicioMantenimiento is a maintenance service performed on a vehicle,
// optionally tied to a customer and to the supplier that provided parts.
// It has no stock side effects.
type ServicioMantenimiento struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehiculoID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClienteID      *uuid.UUID `gorm:"type:uuid;index"`
	ProveedorID    *uuid.UUID `gorm:"type:uuid;index"`
	TipoServicio   string
	FechaServicio  *time.Time      `gorm:"type:date"`
	CostoServicio  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Vehiculo  *Vehiculo  `gorm:"foreignKey:VehiculoID"`
	Cliente   *Cliente   `gorm:"foreignKey:ClienteID"`
	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

// TableName overrides GORM's default pluralization (servicio_mantenimientos
// → servicios_mantenimiento).
func (ServicioMantenimiento) TableName() string { return "servicios_mantenimiento" }
