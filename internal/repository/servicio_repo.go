package repository

import (
	"context"

	"concesionaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicioRepository interface {
	Create(ctx context.Context, s *model.ServicioMantenimiento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ServicioMantenimiento, error)
	List(ctx context.Context) ([]model.ServicioMantenimiento, error)
	Update(ctx context.Context, s *model.ServicioMantenimiento) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type servicioRepo struct{ db *gorm.DB }

func NewServicioRepository(db *gorm.DB) ServicioRepository { return &servicioRepo{db: db} }

func (r *servicioRepo) Create(ctx context.Context, s *model.ServicioMantenimiento) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ServicioMantenimiento, error) {
	var s model.ServicioMantenimiento
	err := r.db.WithContext(ctx).
		Preload("Vehiculo").Preload("Cliente").Preload("Proveedor").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List eagerly resolves all three references in one call.
func (r *servicioRepo) List(ctx context.Context) ([]model.ServicioMantenimiento, error) {
	var servicios []model.ServicioMantenimiento
	err := r.db.WithContext(ctx).
		Preload("Vehiculo").Preload("Cliente").Preload("Proveedor").
		Order("created_at ASC").Find(&servicios).Error
	return servicios, err
}

func (r *servicioRepo) Update(ctx context.Context, s *model.ServicioMantenimiento) error {
	return r.db.WithContext(ctx).Omit("Vehiculo", "Cliente", "Proveedor").Save(s).Error
}

func (r *servicioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ServicioMantenimiento{}, "id = ?", id).Error
}
