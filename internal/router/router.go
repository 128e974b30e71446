package router

import (
	"concesionaria/internal/config"
	"concesionaria/internal/handler"
	"concesionaria/internal/middleware"
	"concesionaria/internal/repository"
	"concesionaria/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitWindow()))

	// ── Repositories ─────────────────────────────────────────────────────────
	vehiculoRepo := repository.NewVehiculoRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	historialPrecioRepo := repository.NewHistorialPrecioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	vehiculoSvc := service.NewVehiculoService(vehiculoRepo, historialPrecioRepo, rdb)
	empleadoSvc := service.NewEmpleadoService(empleadoRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	ventaSvc := service.NewVentaService(ventaRepo, vehiculoRepo, empleadoRepo)
	servicioSvc := service.NewServicioService(servicioRepo, vehiculoRepo, clienteRepo, proveedorRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	vehiculosH := handler.NewVehiculosHandler(vehiculoSvc)
	empleadosH := handler.NewEmpleadosHandler(empleadoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	ventasH := handler.NewVentasHandler(ventaSvc, ventaRepo, cfg.PDFStoragePath)
	serviciosH := handler.NewServiciosHandler(servicioSvc)
	consultaH := handler.NewConsultaVehiculosHandler(vehiculoRepo, rdb)
	historialPreciosH := handler.NewHistorialPreciosHandler(historialPrecioRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Public serial-number lookup — read only
	r.GET("/v1/consulta/:numero_serie", consultaH.GetPorNumeroSerie)

	v1 := r.Group("/v1")
	{
		vehiculos := v1.Group("/vehiculos")
		{
			vehiculos.POST("", vehiculosH.Crear)
			vehiculos.GET("", vehiculosH.Listar)
			vehiculos.GET("/:id", vehiculosH.ObtenerPorID)
			vehiculos.PUT("/:id", vehiculosH.Actualizar)
			vehiculos.DELETE("/:id", vehiculosH.Borrar)
			vehiculos.GET("/:id/historial-precios", historialPreciosH.ListarPorVehiculo)
		}

		empleados := v1.Group("/empleados")
		{
			empleados.POST("", empleadosH.Crear)
			empleados.GET("", empleadosH.Listar)
			empleados.GET("/:id", empleadosH.ObtenerPorID)
			empleados.PUT("/:id", empleadosH.Actualizar)
			empleados.DELETE("/:id", empleadosH.Borrar)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Borrar)
		}

		proveedores := v1.Group("/proveedores")
		{
			proveedores.POST("", proveedoresH.Crear)
			proveedores.GET("", proveedoresH.Listar)
			proveedores.GET("/:id", proveedoresH.ObtenerPorID)
			proveedores.PUT("/:id", proveedoresH.Actualizar)
			proveedores.DELETE("/:id", proveedoresH.Borrar)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", ventasH.Crear)
			ventas.GET("", ventasH.Listar)
			ventas.GET("/:id", ventasH.ObtenerPorID)
			ventas.PUT("/:id", ventasH.Actualizar)
			ventas.DELETE("/:id", ventasH.Borrar)
			ventas.GET("/:id/recibo", ventasH.Recibo)
		}

		servicios := v1.Group("/servicios")
		{
			servicios.POST("", serviciosH.Crear)
			servicios.GET("", serviciosH.Listar)
			servicios.GET("/:id", serviciosH.ObtenerPorID)
			servicios.PUT("/:id", serviciosH.Actualizar)
			servicios.DELETE("/:id", serviciosH.Borrar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
