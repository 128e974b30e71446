package service

import (
	"context"

	"concesionaria/internal/apierror"
	"concesionaria/internal/dto"
	"concesionaria/internal/model"
	"concesionaria/internal/repository"

	"github.com/google/uuid"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Borrar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	cliente := model.Cliente{
		Nombre:            req.Nombre,
		Apellido:          req.Apellido,
		CorreoElectronico: req.CorreoElectronico,
		Telefono:          req.Telefono,
	}
	if err := s.repo.Create(ctx, &cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(&cliente), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out, nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}

	cliente.Nombre = req.Nombre
	cliente.Apellido = req.Apellido
	cliente.CorreoElectronico = req.CorreoElectronico
	cliente.Telefono = req.Telefono

	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Borrar(ctx context.Context, id uuid.UUID) error {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.ErrNoEncontrado
	}
	return s.repo.Delete(ctx, cliente.ID)
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:                c.ID.String(),
		Nombre:            c.Nombre,
		Apellido:          c.Apellido,
		CorreoElectronico: c.CorreoElectronico,
		Telefono:          c.Telefono,
	}
}
