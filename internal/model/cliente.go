package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a registered customer. Note: a Venta captures its buyer as free
// text (nombre/telefono), not as a reference to this table — only
// ServicioMantenimiento references Cliente.
type Cliente struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre            string    `gorm:"not null"`
	Apellido          string    `gorm:"not null"`
	CorreoElectronico string
	Telefono          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Cliente) TableName() string { return "clientes" }
