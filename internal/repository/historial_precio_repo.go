package repository

import (
	"context"

	"concesionaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HistorialPrecioRepository interface {
	// CreateTx appends a price-change record inside the vehicle update tx.
	CreateTx(tx *gorm.DB, h *model.HistorialPrecio) error
	ListByVehiculo(ctx context.Context, vehiculoID uuid.UUID, page, limit int) ([]model.HistorialPrecio, int64, error)
}

type historialPrecioRepo struct{ db *gorm.DB }

func NewHistorialPrecioRepository(db *gorm.DB) HistorialPrecioRepository {
	return &historialPrecioRepo{db: db}
}

func (r *historialPrecioRepo) CreateTx(tx *gorm.DB, h *model.HistorialPrecio) error {
	return tx.Create(h).Error
}

// ListByVehiculo returns paginated price-change records for one vehicle,
// ordered newest-first (append-only table, so this reflects natural insert order).
func (r *historialPrecioRepo) ListByVehiculo(
	ctx context.Context,
	vehiculoID uuid.UUID,
	page, limit int,
) ([]model.HistorialPrecio, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.HistorialPrecio{}).
		Where("vehiculo_id = ?", vehiculoID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.HistorialPrecio
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Where("vehiculo_id = ?", vehiculoID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
