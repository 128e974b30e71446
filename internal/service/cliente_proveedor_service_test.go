package service_test

import (
	"context"
	"testing"

	"concesionaria/internal/apierror"
	"concesionaria/internal/dto"
	"concesionaria/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClienteCRUD(t *testing.T) {
	repo := newStubClienteRepo()
	svc := service.NewClienteService(repo)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, dto.CrearClienteRequest{
		Nombre:            "Ana",
		Apellido:          "Torres",
		CorreoElectronico: "ana.torres@example.com",
		Telefono:          "555-0201",
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	// Full replace: omitted correo comes back empty
	updated, err := svc.Actualizar(ctx, id, dto.CrearClienteRequest{Nombre: "Ana", Apellido: "Soto"})
	require.NoError(t, err)
	assert.Equal(t, "Soto", updated.Apellido)
	assert.Empty(t, updated.CorreoElectronico)

	out, err := svc.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	require.NoError(t, svc.Borrar(ctx, id))
	assert.ErrorIs(t, svc.Borrar(ctx, id), apierror.ErrNoEncontrado)
}

func TestProveedorCRUD(t *testing.T) {
	repo := newStubProveedorRepo()
	svc := service.NewProveedorService(repo)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, dto.CrearProveedorRequest{
		NombreProveedor: "AutoPartes del Norte",
		Telefono:        "555-0301",
		Producto:        "Refacciones",
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	got, err := svc.ObtenerPorID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "AutoPartes del Norte", got.NombreProveedor)

	updated, err := svc.Actualizar(ctx, id, dto.CrearProveedorRequest{
		NombreProveedor: "AutoPartes del Norte",
		Producto:        "Aceites y filtros",
	})
	require.NoError(t, err)
	assert.Equal(t, "Aceites y filtros", updated.Producto)
	assert.Empty(t, updated.Telefono)

	_, err = svc.ObtenerPorID(ctx, uuid.New())
	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)
}
