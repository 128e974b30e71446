package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor represents a parts/services supplier with commercial data.
type Proveedor struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreProveedor string    `gorm:"not null"`
	Telefono        string
	Direccion       string
	Email           string
	Producto        string // product line supplied (free text)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Proveedor) TableName() string { return "proveedores" }
