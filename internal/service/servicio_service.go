package service

import (
	"context"
	"strings"

	"concesionaria/internal/apierror"
	"concesionaria/internal/dto"
	"concesionaria/internal/form"
	"concesionaria/internal/model"
	"concesionaria/internal/repository"

	"github.com/google/uuid"
)

// ServicioService handles maintenance services. Structurally the same CRUD as
// the other entities, with three references: Vehiculo required, Cliente and
// Proveedor optional-if-blank. No stock side effects.
type ServicioService interface {
	Crear(ctx context.Context, req dto.CrearServicioRequest) (*dto.ServicioResponse, error)
	Listar(ctx context.Context) ([]dto.ServicioResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearServicioRequest) (*dto.ServicioResponse, error)
	Borrar(ctx context.Context, id uuid.UUID) error
}

type servicioService struct {
	repo          repository.ServicioRepository
	vehiculoRepo  repository.VehiculoRepository
	clienteRepo   repository.ClienteRepository
	proveedorRepo repository.ProveedorRepository
}

func NewServicioService(
	repo repository.ServicioRepository,
	vehiculoRepo repository.VehiculoRepository,
	clienteRepo repository.ClienteRepository,
	proveedorRepo repository.ProveedorRepository,
) ServicioService {
	return &servicioService{
		repo:          repo,
		vehiculoRepo:  vehiculoRepo,
		clienteRepo:   clienteRepo,
		proveedorRepo: proveedorRepo,
	}
}

// resolverReferencias resolves the three form references. A blank optional id
// stores NULL; any non-blank id that does not resolve fails the operation
// with no partial persistence.
func (s *servicioService) resolverReferencias(ctx context.Context, req dto.CrearServicioRequest) (*model.Vehiculo, *model.Cliente, *model.Proveedor, error) {
	vehiculoID, err := uuid.Parse(req.VehiculoID)
	if err != nil {
		return nil, nil, nil, apierror.ErrNoEncontrado
	}
	vehiculo, err := s.vehiculoRepo.FindByID(ctx, vehiculoID)
	if err != nil {
		return nil, nil, nil, apierror.ErrNoEncontrado
	}

	var cliente *model.Cliente
	if strings.TrimSpace(req.ClienteID) != "" {
		clienteID, err := uuid.Parse(req.ClienteID)
		if err != nil {
			return nil, nil, nil, apierror.ErrNoEncontrado
		}
		if cliente, err = s.clienteRepo.FindByID(ctx, clienteID); err != nil {
			return nil, nil, nil, apierror.ErrNoEncontrado
		}
	}

	var proveedor *model.Proveedor
	if strings.TrimSpace(req.ProveedorID) != "" {
		proveedorID, err := uuid.Parse(req.ProveedorID)
		if err != nil {
			return nil, nil, nil, apierror.ErrNoEncontrado
		}
		if proveedor, err = s.proveedorRepo.FindByID(ctx, proveedorID); err != nil {
			return nil, nil, nil, apierror.ErrNoEncontrado
		}
	}

	return vehiculo, cliente, proveedor, nil
}

func (s *servicioService) Crear(ctx context.Context, req dto.CrearServicioRequest) (*dto.ServicioResponse, error) {
	vehiculo, cliente, proveedor, err := s.resolverReferencias(ctx, req)
	if err != nil {
		return nil, err
	}

	servicio := model.ServicioMantenimiento{
		VehiculoID:    vehiculo.ID,
		TipoServicio:  req.TipoServicio,
		FechaServicio: form.FechaNula(req.FechaServicio),
		CostoServicio: form.DecimalCero(req.CostoServicio),
	}
	if cliente != nil {
		servicio.ClienteID = &cliente.ID
	}
	if proveedor != nil {
		servicio.ProveedorID = &proveedor.ID
	}

	if err := s.repo.Create(ctx, &servicio); err != nil {
		return nil, err
	}

	servicio.Vehiculo = vehiculo
	servicio.Cliente = cliente
	servicio.Proveedor = proveedor
	return servicioToResponse(&servicio), nil
}

func (s *servicioService) Listar(ctx context.Context) ([]dto.ServicioResponse, error) {
	servicios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServicioResponse, 0, len(servicios))
	for i := range servicios {
		out = append(out, *servicioToResponse(&servicios[i]))
	}
	return out, nil
}

func (s *servicioService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error) {
	servicio, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	return servicioToResponse(servicio), nil
}

// Actualizar rewrites every field. A blank cliente or proveedor clears the
// reference to NULL; a blank or malformed fecha_servicio clears the date.
func (s *servicioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearServicioRequest) (*dto.ServicioResponse, error) {
	servicio, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}

	vehiculo, cliente, proveedor, err := s.resolverReferencias(ctx, req)
	if err != nil {
		return nil, err
	}

	servicio.VehiculoID = vehiculo.ID
	servicio.ClienteID = nil
	if cliente != nil {
		servicio.ClienteID = &cliente.ID
	}
	servicio.ProveedorID = nil
	if proveedor != nil {
		servicio.ProveedorID = &proveedor.ID
	}
	servicio.TipoServicio = req.TipoServicio
	servicio.FechaServicio = form.FechaNula(req.FechaServicio)
	servicio.CostoServicio = form.DecimalCero(req.CostoServicio)

	if err := s.repo.Update(ctx, servicio); err != nil {
		return nil, err
	}

	servicio.Vehiculo = vehiculo
	servicio.Cliente = cliente
	servicio.Proveedor = proveedor
	return servicioToResponse(servicio), nil
}

func (s *servicioService) Borrar(ctx context.Context, id uuid.UUID) error {
	servicio, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.ErrNoEncontrado
	}
	return s.repo.Delete(ctx, servicio.ID)
}

func servicioToResponse(sv *model.ServicioMantenimiento) *dto.ServicioResponse {
	resp := &dto.ServicioResponse{
		ID:            sv.ID.String(),
		VehiculoID:    sv.VehiculoID.String(),
		TipoServicio:  sv.TipoServicio,
		CostoServicio: sv.CostoServicio,
	}
	if sv.ClienteID != nil {
		s := sv.ClienteID.String()
		resp.ClienteID = &s
	}
	if sv.ProveedorID != nil {
		s := sv.ProveedorID.String()
		resp.ProveedorID = &s
	}
	if sv.FechaServicio != nil {
		f := sv.FechaServicio.Format(form.FechaISO)
		resp.FechaServicio = &f
	}
	if sv.Vehiculo != nil {
		resp.Vehiculo = vehiculoToResponse(sv.Vehiculo)
	}
	if sv.Cliente != nil {
		resp.Cliente = clienteToResponse(sv.Cliente)
	}
	if sv.Proveedor != nil {
		resp.Proveedor = proveedorToResponse(sv.Proveedor)
	}
	return resp
}
