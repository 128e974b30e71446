package service_test

import (
	"context"
	"testing"

	"concesionaria/internal/apierror"
	"concesionaria/internal/dto"
	"concesionaria/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVehiculoFixture() (service.VehiculoService, *stubVehiculoRepo, *stubHistorialRepo) {
	repo := newStubVehiculoRepo()
	historial := newStubHistorialRepo()
	svc := service.NewVehiculoService(repo, historial, nil)
	return svc, repo, historial
}

func TestCrearVehiculoConFallbacks(t *testing.T) {
	svc, _, _ := newVehiculoFixture()

	resp, err := svc.Crear(context.Background(), dto.CrearVehiculoRequest{
		Marca:              "Ford",
		Modelo:             "Mustang",
		Anio:               "no-es-anio",
		Precio:             "",
		CantidadDisponible: "xyz",
		NumeroSerie:        "VIN-001",
	})
	require.NoError(t, err)

	// Malformed anio/precio fall back to NULL, cantidad to 0
	assert.Nil(t, resp.Anio)
	assert.Nil(t, resp.Precio)
	assert.Equal(t, 0, resp.CantidadDisponible)
	assert.Equal(t, "Mustang", resp.Modelo)
}

func TestCrearVehiculoCamposValidos(t *testing.T) {
	svc, _, _ := newVehiculoFixture()

	resp, err := svc.Crear(context.Background(), dto.CrearVehiculoRequest{
		Marca:              "Ford",
		Modelo:             "F-150",
		Anio:               "2023",
		Precio:             "64200.00",
		CantidadDisponible: "5",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Anio)
	assert.Equal(t, 2023, *resp.Anio)
	require.NotNil(t, resp.Precio)
	assert.True(t, resp.Precio.Equal(decimal.RequireFromString("64200.00")))
	assert.Equal(t, 5, resp.CantidadDisponible)
}

func TestActualizarVehiculoReemplazaTodo(t *testing.T) {
	svc, repo, _ := newVehiculoFixture()
	ctx := context.Background()

	resp, err := svc.Crear(ctx, dto.CrearVehiculoRequest{
		Marca: "Ford", Modelo: "Bronco", Anio: "2024", Precio: "38900.00", CantidadDisponible: "2",
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	// Omitted anio clears the stored value — fields are never left untouched
	updated, err := svc.Actualizar(ctx, id, dto.CrearVehiculoRequest{
		Marca: "Ford", Modelo: "Bronco Sport", Precio: "38900.00", CantidadDisponible: "2",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Anio)
	assert.Equal(t, "Bronco Sport", updated.Modelo)
	assert.Nil(t, repo.vehiculos[id].Anio)
}

func TestActualizarVehiculoRegistraCambioDePrecio(t *testing.T) {
	svc, _, historial := newVehiculoFixture()
	ctx := context.Background()

	resp, err := svc.Crear(ctx, dto.CrearVehiculoRequest{
		Marca: "Ford", Modelo: "Escape", Precio: "33450.00", CantidadDisponible: "1",
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	// Same price: no history row
	_, err = svc.Actualizar(ctx, id, dto.CrearVehiculoRequest{
		Marca: "Ford", Modelo: "Escape", Precio: "33450.00", CantidadDisponible: "1",
	})
	require.NoError(t, err)
	assert.Empty(t, historial.rows)

	// Price change appends exactly one immutable row
	_, err = svc.Actualizar(ctx, id, dto.CrearVehiculoRequest{
		Marca: "Ford", Modelo: "Escape", Precio: "31999.00", CantidadDisponible: "1",
	})
	require.NoError(t, err)
	require.Len(t, historial.rows, 1)

	row := historial.rows[0]
	assert.Equal(t, id, row.VehiculoID)
	assert.True(t, row.PrecioAntes.Equal(decimal.RequireFromString("33450.00")))
	assert.True(t, row.PrecioDespues.Equal(decimal.RequireFromString("31999.00")))
	assert.Equal(t, "actualizacion", row.Motivo)
}

func TestObtenerVehiculoInexistente(t *testing.T) {
	svc, _, _ := newVehiculoFixture()
	_, err := svc.ObtenerPorID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)
}

func TestBorrarVehiculo(t *testing.T) {
	svc, repo, _ := newVehiculoFixture()
	ctx := context.Background()

	resp, err := svc.Crear(ctx, dto.CrearVehiculoRequest{Marca: "Ford", Modelo: "Focus"})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	require.NoError(t, svc.Borrar(ctx, id))
	assert.Empty(t, repo.vehiculos)

	assert.ErrorIs(t, svc.Borrar(ctx, id), apierror.ErrNoEncontrado)
}

func TestListarVehiculos(t *testing.T) {
	svc, repo, _ := newVehiculoFixture()
	ctx := context.Background()

	for _, modelo := range []string{"Mustang", "F-150", "Bronco"} {
		_, err := svc.Crear(ctx, dto.CrearVehiculoRequest{Marca: "Ford", Modelo: modelo})
		require.NoError(t, err)
	}
	require.Len(t, repo.vehiculos, 3)

	out, err := svc.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}
