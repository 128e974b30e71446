package service

import (
	"context"

	"concesionaria/internal/apierror"
	"concesionaria/internal/dto"
	"concesionaria/internal/form"
	"concesionaria/internal/model"
	"concesionaria/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VehiculoService interface {
	Crear(ctx context.Context, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error)
	Listar(ctx context.Context) ([]dto.VehiculoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VehiculoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error)
	Borrar(ctx context.Context, id uuid.UUID) error
}

type vehiculoService struct {
	repo          repository.VehiculoRepository
	historialRepo repository.HistorialPrecioRepository
	rdb           *redis.Client
}

// NewVehiculoService builds the vehicle CRUD service. rdb may be nil (unit
// tests); it is only used to invalidate the serial-number consulta cache.
func NewVehiculoService(
	repo repository.VehiculoRepository,
	historialRepo repository.HistorialPrecioRepository,
	rdb *redis.Client,
) VehiculoService {
	return &vehiculoService{repo: repo, historialRepo: historialRepo, rdb: rdb}
}

// ConsultaCacheKey is the redis key for the public serial-number lookup.
func ConsultaCacheKey(numeroSerie string) string { return "consulta:" + numeroSerie }

func (s *vehiculoService) invalidarConsulta(ctx context.Context, numeroSerie string) {
	if s.rdb == nil || numeroSerie == "" {
		return
	}
	// Best effort — a stale cache entry expires on its own TTL anyway.
	_ = s.rdb.Del(ctx, ConsultaCacheKey(numeroSerie)).Err()
}

func (s *vehiculoService) Crear(ctx context.Context, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error) {
	vehiculo := model.Vehiculo{
		Marca:              req.Marca,
		Modelo:             req.Modelo,
		Anio:               form.EnteroNulo(req.Anio),
		Precio:             form.DecimalNulo(req.Precio),
		CantidadDisponible: form.EnteroCero(req.CantidadDisponible),
		NumeroSerie:        req.NumeroSerie,
		Color:              req.Color,
	}
	if err := s.repo.Create(ctx, &vehiculo); err != nil {
		return nil, err
	}
	return vehiculoToResponse(&vehiculo), nil
}

func (s *vehiculoService) Listar(ctx context.Context) ([]dto.VehiculoResponse, error) {
	vehiculos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VehiculoResponse, 0, len(vehiculos))
	for i := range vehiculos {
		out = append(out, *vehiculoToResponse(&vehiculos[i]))
	}
	return out, nil
}

func (s *vehiculoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VehiculoResponse, error) {
	vehiculo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	return vehiculoToResponse(vehiculo), nil
}

// Actualizar is a full replace: every column is rewritten from the payload,
// so a malformed anio or precio clears the stored value to NULL. A price
// change additionally appends an immutable HistorialPrecio row in the same
// transaction.
func (s *vehiculoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error) {
	vehiculo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}

	serieAnterior := vehiculo.NumeroSerie
	precioAntes := vehiculo.Precio
	precioDespues := form.DecimalNulo(req.Precio)

	vehiculo.Marca = req.Marca
	vehiculo.Modelo = req.Modelo
	vehiculo.Anio = form.EnteroNulo(req.Anio)
	vehiculo.Precio = precioDespues
	vehiculo.CantidadDisponible = form.EnteroCero(req.CantidadDisponible)
	vehiculo.NumeroSerie = req.NumeroSerie
	vehiculo.Color = req.Color

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, vehiculo); err != nil {
			return err
		}
		if !decimalPtrEq(precioAntes, precioDespues) {
			return s.historialRepo.CreateTx(tx, &model.HistorialPrecio{
				VehiculoID:    vehiculo.ID,
				PrecioAntes:   precioAntes,
				PrecioDespues: precioDespues,
				Motivo:        "actualizacion",
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.invalidarConsulta(ctx, serieAnterior)
	if vehiculo.NumeroSerie != serieAnterior {
		s.invalidarConsulta(ctx, vehiculo.NumeroSerie)
	}
	return vehiculoToResponse(vehiculo), nil
}

// Borrar removes the vehicle outright. Sales or services still referencing it
// are not guarded here — that is left to the store's referential policy.
func (s *vehiculoService) Borrar(ctx context.Context, id uuid.UUID) error {
	vehiculo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.ErrNoEncontrado
	}
	if err := s.repo.Delete(ctx, vehiculo.ID); err != nil {
		return err
	}
	s.invalidarConsulta(ctx, vehiculo.NumeroSerie)
	return nil
}

func decimalPtrEq(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func vehiculoToResponse(v *model.Vehiculo) *dto.VehiculoResponse {
	return &dto.VehiculoResponse{
		ID:                 v.ID.String(),
		Marca:              v.Marca,
		Modelo:             v.Modelo,
		Anio:               v.Anio,
		Precio:             v.Precio,
		CantidadDisponible: v.CantidadDisponible,
		NumeroSerie:        v.NumeroSerie,
		Color:              v.Color,
	}
}
