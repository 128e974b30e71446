package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Empleado is a dealership employee.
type Empleado struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre            string    `gorm:"not null"`
	Apellido          string    `gorm:"not null"`
	Puesto            string
	Telefono          string
	Email             string
	FechaContratacion *time.Time       `gorm:"type:date"`
	Salario           *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Empleado) TableName() string { return "empleados" }
