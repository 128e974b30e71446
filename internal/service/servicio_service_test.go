package service_test

import (
	"context"
	"testing"

	"concesionaria/internal/apierror"
	"concesionaria/internal/dto"
	"concesionaria/internal/model"
	"concesionaria/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type servicioFixture struct {
	svc           service.ServicioService
	servicioRepo  *stubServicioRepo
	vehiculoRepo  *stubVehiculoRepo
	clienteRepo   *stubClienteRepo
	proveedorRepo *stubProveedorRepo
}

func newServicioFixture() *servicioFixture {
	f := &servicioFixture{
		servicioRepo:  newStubServicioRepo(),
		vehiculoRepo:  newStubVehiculoRepo(),
		clienteRepo:   newStubClienteRepo(),
		proveedorRepo: newStubProveedorRepo(),
	}
	f.svc = service.NewServicioService(f.servicioRepo, f.vehiculoRepo, f.clienteRepo, f.proveedorRepo)
	return f
}

func TestCrearServicioReferenciasOpcionales(t *testing.T) {
	f := newServicioFixture()
	ctx := context.Background()
	vehiculo := seedVehiculo(t, f.vehiculoRepo, "Ford", "Ranger", 1)

	// Blank cliente and proveedor store NULL
	resp, err := f.svc.Crear(ctx, dto.CrearServicioRequest{
		VehiculoID:    vehiculo.ID.String(),
		TipoServicio:  "Cambio de aceite",
		FechaServicio: "2026-08-20",
		CostoServicio: "850.00",
	})
	require.NoError(t, err)

	assert.Nil(t, resp.ClienteID)
	assert.Nil(t, resp.ProveedorID)
	require.NotNil(t, resp.FechaServicio)
	assert.Equal(t, "2026-08-20", *resp.FechaServicio)
	assert.True(t, resp.CostoServicio.Equal(decimal.RequireFromString("850.00")))
	require.NotNil(t, resp.Vehiculo)
	assert.Equal(t, "Ranger", resp.Vehiculo.Modelo)
}

func TestCrearServicioConTodasLasReferencias(t *testing.T) {
	f := newServicioFixture()
	ctx := context.Background()
	vehiculo := seedVehiculo(t, f.vehiculoRepo, "Ford", "Focus", 1)

	cliente := &model.Cliente{Nombre: "Ana", Apellido: "Torres"}
	require.NoError(t, f.clienteRepo.Create(ctx, cliente))
	proveedor := &model.Proveedor{NombreProveedor: "Lubricantes Premium"}
	require.NoError(t, f.proveedorRepo.Create(ctx, proveedor))

	resp, err := f.svc.Crear(ctx, dto.CrearServicioRequest{
		VehiculoID:   vehiculo.ID.String(),
		ClienteID:    cliente.ID.String(),
		ProveedorID:  proveedor.ID.String(),
		TipoServicio: "Afinacion",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ClienteID)
	assert.Equal(t, cliente.ID.String(), *resp.ClienteID)
	require.NotNil(t, resp.Proveedor)
	assert.Equal(t, "Lubricantes Premium", resp.Proveedor.NombreProveedor)
}

func TestCrearServicioVehiculoRequerido(t *testing.T) {
	f := newServicioFixture()
	ctx := context.Background()

	// Blank vehiculo is not optional
	_, err := f.svc.Crear(ctx, dto.CrearServicioRequest{TipoServicio: "Frenos"})
	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)

	// Unresolvable vehiculo fails too
	_, err = f.svc.Crear(ctx, dto.CrearServicioRequest{VehiculoID: uuid.NewString()})
	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)

	assert.Empty(t, f.servicioRepo.servicios)
}

func TestCrearServicioClienteNoResuelve(t *testing.T) {
	f := newServicioFixture()
	ctx := context.Background()
	vehiculo := seedVehiculo(t, f.vehiculoRepo, "Ford", "Escape", 1)

	// A non-blank cliente must resolve — nothing is persisted otherwise
	_, err := f.svc.Crear(ctx, dto.CrearServicioRequest{
		VehiculoID: vehiculo.ID.String(),
		ClienteID:  uuid.NewString(),
	})
	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)
	assert.Empty(t, f.servicioRepo.servicios)
}

func TestCrearServicioCostoNoNumerico(t *testing.T) {
	f := newServicioFixture()
	vehiculo := seedVehiculo(t, f.vehiculoRepo, "Ford", "Bronco", 1)

	resp, err := f.svc.Crear(context.Background(), dto.CrearServicioRequest{
		VehiculoID:    vehiculo.ID.String(),
		CostoServicio: "gratis",
	})
	require.NoError(t, err)
	assert.True(t, resp.CostoServicio.IsZero())
}

func TestActualizarServicioLimpiaReferencias(t *testing.T) {
	f := newServicioFixture()
	ctx := context.Background()
	vehiculo := seedVehiculo(t, f.vehiculoRepo, "Ford", "Mustang", 1)

	cliente := &model.Cliente{Nombre: "Miguel"}
	require.NoError(t, f.clienteRepo.Create(ctx, cliente))

	resp, err := f.svc.Crear(ctx, dto.CrearServicioRequest{
		VehiculoID:    vehiculo.ID.String(),
		ClienteID:     cliente.ID.String(),
		FechaServicio: "2026-08-01",
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	// Full replace: blank cliente and fecha clear the stored values
	updated, err := f.svc.Actualizar(ctx, id, dto.CrearServicioRequest{
		VehiculoID:   vehiculo.ID.String(),
		TipoServicio: "Suspension",
	})
	require.NoError(t, err)

	assert.Nil(t, updated.ClienteID)
	assert.Nil(t, updated.FechaServicio)
	assert.Equal(t, "Suspension", updated.TipoServicio)
	assert.Nil(t, f.servicioRepo.servicios[id].ClienteID)
	assert.Nil(t, f.servicioRepo.servicios[id].FechaServicio)
}

func TestBorrarServicio(t *testing.T) {
	f := newServicioFixture()
	ctx := context.Background()
	vehiculo := seedVehiculo(t, f.vehiculoRepo, "Ford", "F-150", 1)

	resp, err := f.svc.Crear(ctx, dto.CrearServicioRequest{VehiculoID: vehiculo.ID.String()})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	require.NoError(t, f.svc.Borrar(ctx, id))
	assert.Empty(t, f.servicioRepo.servicios)
	assert.ErrorIs(t, f.svc.Borrar(ctx, id), apierror.ErrNoEncontrado)

	// Maintenance services never touch stock
	assert.Equal(t, 1, vehiculo.CantidadDisponible)
}
