// Command seed loads a small demo dataset (vehicles, employees, customers,
// suppliers) into the configured database. Intended for local development.
package main

import (
	"context"
	"os"
	"time"

	"concesionaria/internal/config"
	"concesionaria/internal/infra"
	"concesionaria/internal/model"
	"concesionaria/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatal().Err(err).Str("fecha", s).Msg("bad seed date")
	}
	return &t
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	ctx := context.Background()

	vehiculoRepo := repository.NewVehiculoRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)

	vehiculos := []model.Vehiculo{
		{Marca: "Ford", Modelo: "Mustang GT", Anio: intPtr(2024), Precio: decPtr("55999.00"), CantidadDisponible: 3, NumeroSerie: "1FA6P8CF5R5100001", Color: "Rojo"},
		{Marca: "Ford", Modelo: "F-150 Lariat", Anio: intPtr(2023), Precio: decPtr("64200.00"), CantidadDisponible: 5, NumeroSerie: "1FTFW1E85PFA00002", Color: "Negro"},
		{Marca: "Ford", Modelo: "Bronco Sport", Anio: intPtr(2024), Precio: decPtr("38900.00"), CantidadDisponible: 2, NumeroSerie: "3FMCR9B69RRE00003", Color: "Azul"},
		{Marca: "Ford", Modelo: "Escape Hybrid", Anio: intPtr(2022), Precio: decPtr("33450.00"), CantidadDisponible: 0, NumeroSerie: "1FMCU9CZ4NUA00004", Color: "Blanco"},
	}
	for i := range vehiculos {
		if err := vehiculoRepo.Create(ctx, &vehiculos[i]); err != nil {
			log.Fatal().Err(err).Str("modelo", vehiculos[i].Modelo).Msg("seed vehiculo")
		}
	}

	empleados := []model.Empleado{
		{Nombre: "Laura", Apellido: "Mendoza", Puesto: "Vendedora", Telefono: "555-0101", Email: "laura.mendoza@concesionaria.test", FechaContratacion: datePtr("2021-03-15"), Salario: decPtr("28000.00")},
		{Nombre: "Carlos", Apellido: "Rivas", Puesto: "Gerente de ventas", Telefono: "555-0102", Email: "carlos.rivas@concesionaria.test", FechaContratacion: datePtr("2019-08-01"), Salario: decPtr("42000.00")},
	}
	for i := range empleados {
		if err := empleadoRepo.Create(ctx, &empleados[i]); err != nil {
			log.Fatal().Err(err).Str("nombre", empleados[i].Nombre).Msg("seed empleado")
		}
	}

	clientes := []model.Cliente{
		{Nombre: "Ana", Apellido: "Torres", CorreoElectronico: "ana.torres@example.com", Telefono: "555-0201"},
		{Nombre: "Miguel", Apellido: "Soto", CorreoElectronico: "miguel.soto@example.com", Telefono: "555-0202"},
	}
	for i := range clientes {
		if err := clienteRepo.Create(ctx, &clientes[i]); err != nil {
			log.Fatal().Err(err).Str("nombre", clientes[i].Nombre).Msg("seed cliente")
		}
	}

	proveedores := []model.Proveedor{
		{NombreProveedor: "AutoPartes del Norte", Telefono: "555-0301", Direccion: "Av. Industrial 450", Email: "ventas@apnorte.test", Producto: "Refacciones"},
		{NombreProveedor: "Lubricantes Premium", Telefono: "555-0302", Direccion: "Calle Taller 12", Email: "contacto@lubpremium.test", Producto: "Aceites y filtros"},
	}
	for i := range proveedores {
		if err := proveedorRepo.Create(ctx, &proveedores[i]); err != nil {
			log.Fatal().Err(err).Str("nombre", proveedores[i].NombreProveedor).Msg("seed proveedor")
		}
	}

	log.Info().
		Int("vehiculos", len(vehiculos)).
		Int("empleados", len(empleados)).
		Int("clientes", len(clientes)).
		Int("proveedores", len(proveedores)).
		Msg("seed completed")
}
