package service_test

import (
	"context"
	"errors"

	"concesionaria/internal/apierror"
	"concesionaria/internal/model"
	"concesionaria/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────
// In-memory repositories. DB() returns nil, so the services run transactional
// closures directly against the stubs — no rollback semantics, which is fine
// because every guarded path is rejected before any stub mutation.

var errStubNotFound = errors.New("not found")

// stubVehiculoRepo is an in-memory VehiculoRepository.
type stubVehiculoRepo struct {
	vehiculos map[uuid.UUID]*model.Vehiculo
}

func newStubVehiculoRepo() *stubVehiculoRepo {
	return &stubVehiculoRepo{vehiculos: make(map[uuid.UUID]*model.Vehiculo)}
}

func (r *stubVehiculoRepo) Create(_ context.Context, v *model.Vehiculo) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vehiculos[v.ID] = v
	return nil
}

func (r *stubVehiculoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	v, ok := r.vehiculos[id]
	if !ok {
		return nil, errStubNotFound
	}
	return v, nil
}

func (r *stubVehiculoRepo) FindByNumeroSerie(_ context.Context, numeroSerie string) (*model.Vehiculo, error) {
	for _, v := range r.vehiculos {
		if v.NumeroSerie == numeroSerie {
			return v, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubVehiculoRepo) List(_ context.Context) ([]model.Vehiculo, error) {
	out := make([]model.Vehiculo, 0, len(r.vehiculos))
	for _, v := range r.vehiculos {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVehiculoRepo) Update(_ context.Context, v *model.Vehiculo) error {
	r.vehiculos[v.ID] = v
	return nil
}

func (r *stubVehiculoRepo) UpdateTx(_ *gorm.DB, v *model.Vehiculo) error {
	r.vehiculos[v.ID] = v
	return nil
}

func (r *stubVehiculoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.vehiculos, id)
	return nil
}

func (r *stubVehiculoRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID) error {
	v, ok := r.vehiculos[id]
	if !ok {
		return errStubNotFound
	}
	if v.CantidadDisponible <= 0 {
		return apierror.ErrSinStock
	}
	v.CantidadDisponible--
	return nil
}

func (r *stubVehiculoRepo) ReponerStockTx(_ *gorm.DB, id uuid.UUID) error {
	v, ok := r.vehiculos[id]
	if !ok {
		return errStubNotFound
	}
	v.CantidadDisponible++
	return nil
}

func (r *stubVehiculoRepo) DB() *gorm.DB { return nil }

var _ repository.VehiculoRepository = (*stubVehiculoRepo)(nil)

// stubVentaRepo is an in-memory VentaRepository.
type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, errStubNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context) ([]model.Venta, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) UpdateTx(_ *gorm.DB, v *model.Venta) error {
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.ventas, id)
	return nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// stubEmpleadoRepo is an in-memory EmpleadoRepository.
type stubEmpleadoRepo struct {
	empleados map[uuid.UUID]*model.Empleado
}

func newStubEmpleadoRepo() *stubEmpleadoRepo {
	return &stubEmpleadoRepo{empleados: make(map[uuid.UUID]*model.Empleado)}
}

func (r *stubEmpleadoRepo) Create(_ context.Context, e *model.Empleado) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.empleados[e.ID] = e
	return nil
}

func (r *stubEmpleadoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Empleado, error) {
	e, ok := r.empleados[id]
	if !ok {
		return nil, errStubNotFound
	}
	return e, nil
}

func (r *stubEmpleadoRepo) List(_ context.Context) ([]model.Empleado, error) {
	out := make([]model.Empleado, 0, len(r.empleados))
	for _, e := range r.empleados {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmpleadoRepo) Update(_ context.Context, e *model.Empleado) error {
	r.empleados[e.ID] = e
	return nil
}

func (r *stubEmpleadoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.empleados, id)
	return nil
}

var _ repository.EmpleadoRepository = (*stubEmpleadoRepo)(nil)

// stubClienteRepo is an in-memory ClienteRepository.
type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errStubNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// stubProveedorRepo is an in-memory ProveedorRepository.
type stubProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, errStubNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) List(_ context.Context) ([]model.Proveedor, error) {
	out := make([]model.Proveedor, 0, len(r.proveedores))
	for _, p := range r.proveedores {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.proveedores, id)
	return nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// stubServicioRepo is an in-memory ServicioRepository.
type stubServicioRepo struct {
	servicios map[uuid.UUID]*model.ServicioMantenimiento
}

func newStubServicioRepo() *stubServicioRepo {
	return &stubServicioRepo{servicios: make(map[uuid.UUID]*model.ServicioMantenimiento)}
}

func (r *stubServicioRepo) Create(_ context.Context, s *model.ServicioMantenimiento) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ServicioMantenimiento, error) {
	s, ok := r.servicios[id]
	if !ok {
		return nil, errStubNotFound
	}
	return s, nil
}

func (r *stubServicioRepo) List(_ context.Context) ([]model.ServicioMantenimiento, error) {
	out := make([]model.ServicioMantenimiento, 0, len(r.servicios))
	for _, s := range r.servicios {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubServicioRepo) Update(_ context.Context, s *model.ServicioMantenimiento) error {
	r.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.servicios, id)
	return nil
}

var _ repository.ServicioRepository = (*stubServicioRepo)(nil)

// stubHistorialRepo records price-change rows appended by the vehicle service.
type stubHistorialRepo struct {
	rows []*model.HistorialPrecio
}

func newStubHistorialRepo() *stubHistorialRepo { return &stubHistorialRepo{} }

func (r *stubHistorialRepo) CreateTx(_ *gorm.DB, h *model.HistorialPrecio) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.rows = append(r.rows, h)
	return nil
}

func (r *stubHistorialRepo) ListByVehiculo(_ context.Context, vehiculoID uuid.UUID, page, limit int) ([]model.HistorialPrecio, int64, error) {
	var out []model.HistorialPrecio
	for _, h := range r.rows {
		if h.VehiculoID == vehiculoID {
			out = append(out, *h)
		}
	}
	return out, int64(len(out)), nil
}

var _ repository.HistorialPrecioRepository = (*stubHistorialRepo)(nil)
