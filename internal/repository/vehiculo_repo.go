package repository

import (
	"context"

	"concesionaria/internal/apierror"
	"concesionaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehiculoRepository defines the data access contract for vehicles.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type VehiculoRepository interface {
	Create(ctx context.Context, v *model.Vehiculo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error)
	FindByNumeroSerie(ctx context.Context, numeroSerie string) (*model.Vehiculo, error)
	List(ctx context.Context) ([]model.Vehiculo, error)
	Update(ctx context.Context, v *model.Vehiculo) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance.
	UpdateTx(tx *gorm.DB, v *model.Vehiculo) error

	// DescontarStockTx atomically decrements cantidad_disponible by 1 with a
	// cantidad_disponible > 0 guard, so concurrent sales against the same
	// vehicle can never drive stock negative. Returns apierror.ErrSinStock
	// when the guard matched no row.
	DescontarStockTx(tx *gorm.DB, id uuid.UUID) error

	// ReponerStockTx increments cantidad_disponible by 1 unconditionally
	// (sale deletion / vehicle reassignment; no upper bound is enforced).
	ReponerStockTx(tx *gorm.DB, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type vehiculoRepo struct{ db *gorm.DB }

func NewVehiculoRepository(db *gorm.DB) VehiculoRepository { return &vehiculoRepo{db: db} }

func (r *vehiculoRepo) Create(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehiculoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehiculoRepo) FindByNumeroSerie(ctx context.Context, numeroSerie string) (*model.Vehiculo, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).Where("numero_serie = ?", numeroSerie).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehiculoRepo) List(ctx context.Context) ([]model.Vehiculo, error) {
	var vehiculos []model.Vehiculo
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&vehiculos).Error
	return vehiculos, err
}

func (r *vehiculoRepo) Update(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vehiculoRepo) UpdateTx(tx *gorm.DB, v *model.Vehiculo) error {
	return tx.Save(v).Error
}

func (r *vehiculoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Vehiculo{}, "id = ?", id).Error
}

func (r *vehiculoRepo) DescontarStockTx(tx *gorm.DB, id uuid.UUID) error {
	res := tx.Model(&model.Vehiculo{}).
		Where("id = ? AND cantidad_disponible > 0", id).
		Update("cantidad_disponible", gorm.Expr("cantidad_disponible - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apierror.ErrSinStock
	}
	return nil
}

func (r *vehiculoRepo) ReponerStockTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.Vehiculo{}).Where("id = ?", id).
		Update("cantidad_disponible", gorm.Expr("cantidad_disponible + 1")).Error
}

func (r *vehiculoRepo) DB() *gorm.DB { return r.db }
