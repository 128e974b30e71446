package service

import (
	"context"

	"concesionaria/internal/apierror"
	"concesionaria/internal/dto"
	"concesionaria/internal/model"
	"concesionaria/internal/repository"

	"github.com/google/uuid"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	Borrar(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor := model.Proveedor{
		NombreProveedor: req.NombreProveedor,
		Telefono:        req.Telefono,
		Direccion:       req.Direccion,
		Email:           req.Email,
		Producto:        req.Producto,
	}
	if err := s.repo.Create(ctx, &proveedor); err != nil {
		return nil, err
	}
	return proveedorToResponse(&proveedor), nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, *proveedorToResponse(&proveedores[i]))
	}
	return out, nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	proveedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}

	proveedor.NombreProveedor = req.NombreProveedor
	proveedor.Telefono = req.Telefono
	proveedor.Direccion = req.Direccion
	proveedor.Email = req.Email
	proveedor.Producto = req.Producto

	if err := s.repo.Update(ctx, proveedor); err != nil {
		return nil, err
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) Borrar(ctx context.Context, id uuid.UUID) error {
	proveedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.ErrNoEncontrado
	}
	return s.repo.Delete(ctx, proveedor.ID)
}

func proveedorToResponse(p *model.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:              p.ID.String(),
		NombreProveedor: p.NombreProveedor,
		Telefono:        p.Telefono,
		Direccion:       p.Direccion,
		Email:           p.Email,
		Producto:        p.Producto,
	}
}
