package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"concesionaria/internal/apierror"
	"concesionaria/internal/dto"
	"concesionaria/internal/form"
	"concesionaria/internal/model"
	"concesionaria/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaService interface {
	Crear(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error)
	Listar(ctx context.Context) ([]dto.VentaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearVentaRequest) (*dto.VentaResponse, error)
	Borrar(ctx context.Context, id uuid.UUID) error
}

type ventaService struct {
	repo         repository.VentaRepository
	vehiculoRepo repository.VehiculoRepository
	empleadoRepo repository.EmpleadoRepository
}

func NewVentaService(
	repo repository.VentaRepository,
	vehiculoRepo repository.VehiculoRepository,
	empleadoRepo repository.EmpleadoRepository,
) VentaService {
	return &ventaService{repo: repo, vehiculoRepo: vehiculoRepo, empleadoRepo: empleadoRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// hoy returns the server's current calendar date (midnight UTC). The sale
// date is always this value — a submitted date is ignored.
func hoy() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// resolverEmpleado applies the optional-if-blank rule: a blank id stores
// NULL; a non-blank id must resolve or the whole operation fails.
func (s *ventaService) resolverEmpleado(ctx context.Context, raw string) (*model.Empleado, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	empleado, err := s.empleadoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	return empleado, nil
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Stock rule: the target vehicle must have at least one available unit; the
// sale row and the stock decrement commit in one transaction. The decrement
// itself is conditional (cantidad_disponible > 0) so two concurrent sales of
// the last unit cannot both succeed.

func (s *ventaService) Crear(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	vehiculoID, err := uuid.Parse(req.VehiculoID)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	vehiculo, err := s.vehiculoRepo.FindByID(ctx, vehiculoID)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	if vehiculo.CantidadDisponible <= 0 {
		return nil, &apierror.SinStockError{Marca: vehiculo.Marca, Modelo: vehiculo.Modelo}
	}

	empleado, err := s.resolverEmpleado(ctx, req.EmpleadoID)
	if err != nil {
		return nil, err
	}

	venta := model.Venta{
		VehiculoID:      vehiculo.ID,
		ClienteNombre:   req.ClienteNombre,
		ClienteTelefono: req.ClienteTelefono,
		Total:           form.DecimalCero(req.Total),
		MetodoPago:      req.MetodoPago,
		Folio:           req.Folio,
		FechaVenta:      hoy(),
	}
	if empleado != nil {
		venta.EmpleadoID = &empleado.ID
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &venta); err != nil {
			return err
		}
		return s.vehiculoRepo.DescontarStockTx(tx, vehiculo.ID)
	})
	if txErr != nil {
		if errors.Is(txErr, apierror.ErrSinStock) {
			// Lost the race for the last unit — the rollback discarded the row.
			return nil, &apierror.SinStockError{Marca: vehiculo.Marca, Modelo: vehiculo.Modelo}
		}
		return nil, txErr
	}

	venta.Vehiculo = vehiculo
	venta.Empleado = empleado
	return ventaToResponse(&venta), nil
}

func (s *ventaService) Listar(ctx context.Context) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, *ventaToResponse(&ventas[i]))
	}
	return out, nil
}

func (s *ventaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	return ventaToResponse(venta), nil
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// Full replace of the sale's fields. When the vehicle reference changes A→B,
// B must have stock: on success A gains the unit back and B loses one, all in
// the same transaction as the rewrite; on failure A, B and the sale are left
// untouched. An unchanged vehicle means no stock movement at all.
// FechaVenta is never rewritten.

func (s *ventaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}

	vehiculoNuevoID, err := uuid.Parse(req.VehiculoID)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	vehiculoNuevo, err := s.vehiculoRepo.FindByID(ctx, vehiculoNuevoID)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}

	vehiculoAnteriorID := venta.VehiculoID
	cambiaVehiculo := vehiculoAnteriorID != vehiculoNuevo.ID
	if cambiaVehiculo && vehiculoNuevo.CantidadDisponible <= 0 {
		return nil, &apierror.SinStockError{Marca: vehiculoNuevo.Marca, Modelo: vehiculoNuevo.Modelo}
	}

	empleado, err := s.resolverEmpleado(ctx, req.EmpleadoID)
	if err != nil {
		return nil, err
	}

	venta.VehiculoID = vehiculoNuevo.ID
	venta.EmpleadoID = nil
	if empleado != nil {
		venta.EmpleadoID = &empleado.ID
	}
	venta.ClienteNombre = req.ClienteNombre
	venta.ClienteTelefono = req.ClienteTelefono
	venta.Total = form.DecimalCero(req.Total)
	venta.MetodoPago = req.MetodoPago
	venta.Folio = req.Folio

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if cambiaVehiculo {
			if err := s.vehiculoRepo.ReponerStockTx(tx, vehiculoAnteriorID); err != nil {
				return err
			}
			if err := s.vehiculoRepo.DescontarStockTx(tx, vehiculoNuevo.ID); err != nil {
				return err
			}
		}
		return s.repo.UpdateTx(tx, venta)
	})
	if txErr != nil {
		if errors.Is(txErr, apierror.ErrSinStock) {
			return nil, &apierror.SinStockError{Marca: vehiculoNuevo.Marca, Modelo: vehiculoNuevo.Modelo}
		}
		return nil, txErr
	}

	venta.Vehiculo = vehiculoNuevo
	venta.Empleado = empleado
	return ventaToResponse(venta), nil
}

// ── Borrar ────────────────────────────────────────────────────────────────────

// Borrar removes the sale and returns the unit to its vehicle's stock,
// unconditionally — deletes only ever increment, with no upper bound.
func (s *ventaService) Borrar(ctx context.Context, id uuid.UUID) error {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.ErrNoEncontrado
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteTx(tx, venta.ID); err != nil {
			return err
		}
		return s.vehiculoRepo.ReponerStockTx(tx, venta.VehiculoID)
	})
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:              v.ID.String(),
		VehiculoID:      v.VehiculoID.String(),
		ClienteNombre:   v.ClienteNombre,
		ClienteTelefono: v.ClienteTelefono,
		Total:           v.Total,
		MetodoPago:      v.MetodoPago,
		Folio:           v.Folio,
		FechaVenta:      v.FechaVenta.Format(form.FechaISO),
	}
	if v.EmpleadoID != nil {
		s := v.EmpleadoID.String()
		resp.EmpleadoID = &s
	}
	if v.Vehiculo != nil {
		resp.Vehiculo = vehiculoToResponse(v.Vehiculo)
	}
	if v.Empleado != nil {
		resp.Empleado = empleadoToResponse(v.Empleado)
	}
	return resp
}
