package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vehiculo is a vehicle in dealership inventory. Anio and Precio are nullable:
// malformed form input stores NULL rather than rejecting the request.
// CantidadDisponible is the stock counter kept in sync by the venta flow and
// must never go negative through it (direct updates may set any value >= 0).
type Vehiculo struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Marca              string    `gorm:"index;not null"`
	Modelo             string    `gorm:"not null"`
	Anio               *int
	Precio             *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CantidadDisponible int              `gorm:"not null;default:0"`
	NumeroSerie        string           `gorm:"index"`
	Color              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Vehiculo) TableName() string { return "vehiculos" }
