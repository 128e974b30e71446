package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is a completed vehicle sale. Creating one decrements the vehicle's
// CantidadDisponible by exactly 1; deleting one returns the unit to stock.
// Both writes happen in the same transaction (see ventaservice).
//
// FechaVenta is always the server date at creation time — never taken from
// the request — and is not rewritten on update.
type Venta struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehiculoID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmpleadoID      *uuid.UUID `gorm:"type:uuid;index"`
	ClienteNombre   string
	ClienteTelefono string
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MetodoPago      string
	Folio           string
	FechaVenta      time.Time `gorm:"type:date;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Vehiculo *Vehiculo `gorm:"foreignKey:VehiculoID"`
	Empleado *Empleado `gorm:"foreignKey:EmpleadoID"`
}

func (Venta) TableName() string { return "ventas" }
