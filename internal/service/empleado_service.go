package service

import (
	"context"

	"concesionaria/internal/apierror"
	"concesionaria/internal/dto"
	"concesionaria/internal/form"
	"concesionaria/internal/model"
	"concesionaria/internal/repository"

	"github.com/google/uuid"
)

type EmpleadoService interface {
	Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error)
	Listar(ctx context.Context) ([]dto.EmpleadoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EmpleadoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error)
	Borrar(ctx context.Context, id uuid.UUID) error
}

type empleadoService struct {
	repo repository.EmpleadoRepository
}

func NewEmpleadoService(repo repository.EmpleadoRepository) EmpleadoService {
	return &empleadoService{repo: repo}
}

func (s *empleadoService) Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	empleado := model.Empleado{
		Nombre:            req.Nombre,
		Apellido:          req.Apellido,
		Puesto:            req.Puesto,
		Telefono:          req.Telefono,
		Email:             req.Email,
		FechaContratacion: form.FechaNula(req.FechaContratacion),
		Salario:           form.DecimalNulo(req.Salario),
	}
	if err := s.repo.Create(ctx, &empleado); err != nil {
		return nil, err
	}
	return empleadoToResponse(&empleado), nil
}

func (s *empleadoService) Listar(ctx context.Context) ([]dto.EmpleadoResponse, error) {
	empleados, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpleadoResponse, 0, len(empleados))
	for i := range empleados {
		out = append(out, *empleadoToResponse(&empleados[i]))
	}
	return out, nil
}

func (s *empleadoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EmpleadoResponse, error) {
	empleado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	return empleadoToResponse(empleado), nil
}

// Actualizar rewrites every field from the payload. An omitted or malformed
// fecha_contratacion or salario clears the stored value to NULL — fields are
// never left untouched on update.
func (s *empleadoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	empleado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}

	empleado.Nombre = req.Nombre
	empleado.Apellido = req.Apellido
	empleado.Puesto = req.Puesto
	empleado.Telefono = req.Telefono
	empleado.Email = req.Email
	empleado.FechaContratacion = form.FechaNula(req.FechaContratacion)
	empleado.Salario = form.DecimalNulo(req.Salario)

	if err := s.repo.Update(ctx, empleado); err != nil {
		return nil, err
	}
	return empleadoToResponse(empleado), nil
}

func (s *empleadoService) Borrar(ctx context.Context, id uuid.UUID) error {
	empleado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.ErrNoEncontrado
	}
	return s.repo.Delete(ctx, empleado.ID)
}

func empleadoToResponse(e *model.Empleado) *dto.EmpleadoResponse {
	resp := &dto.EmpleadoResponse{
		ID:       e.ID.String(),
		Nombre:   e.Nombre,
		Apellido: e.Apellido,
		Puesto:   e.Puesto,
		Telefono: e.Telefono,
		Email:    e.Email,
		Salario:  e.Salario,
	}
	if e.FechaContratacion != nil {
		f := e.FechaContratacion.Format(form.FechaISO)
		resp.FechaContratacion = &f
	}
	return resp
}
