package repository

import (
	"context"

	"concesionaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VentaRepository persists sales. The mutating methods take a tx because a
// sale write and its vehicle stock adjustment must commit together.
type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context) ([]model.Venta, error)
	UpdateTx(tx *gorm.DB, v *model.Venta) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).Preload("Vehiculo").Preload("Empleado").First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns all sales with their vehicle and employee eagerly resolved, so
// the listing view needs no per-record re-fetching.
func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).Preload("Vehiculo").Preload("Empleado").
		Order("created_at ASC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) UpdateTx(tx *gorm.DB, v *model.Venta) error {
	// Save writes every column — updates are a full replace, including
	// clearing EmpleadoID to NULL when the payload omitted it.
	return tx.Omit("Vehiculo", "Empleado").Save(v).Error
}

func (r *ventaRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Venta{}, "id = ?", id).Error
}
