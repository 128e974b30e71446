package handler

import (
	"net/http"

	"concesionaria/internal/apierror"
	"concesionaria/internal/dto"
	"concesionaria/internal/infra"
	"concesionaria/internal/repository"
	"concesionaria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VentasHandler struct {
	svc service.VentaService

	// repo and storagePath are only used by the receipt endpoint, which needs
	// the persisted row with its references preloaded.
	repo        repository.VentaRepository
	storagePath string
}

func NewVentasHandler(svc service.VentaService, repo repository.VentaRepository, storagePath string) *VentasHandler {
	return &VentasHandler{svc: svc, repo: repo, storagePath: storagePath}
}

// Crear godoc
// @Summary      Registrar una venta
// @Description  Crea la venta y descuenta una unidad del stock del vehiculo en la misma transaccion. Sin stock disponible la operacion se rechaza completa.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearVentaRequest true "Detalle de la venta"
// @Success      201  {object} dto.VentaResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/ventas [post]
func (h *VentasHandler) Crear(c *gin.Context) {
	var req dto.CrearVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VentasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Venta no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar una venta
// @Description  Reescribe todos los campos de la venta. Si cambia el vehiculo, el anterior recupera su unidad y el nuevo pierde una, en la misma transaccion. La fecha de venta nunca se modifica.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id   path string                true "UUID de la venta"
// @Param        body body dto.CrearVentaRequest true "Detalle de la venta"
// @Success      200  {object} dto.VentaResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/ventas/{id} [put]
func (h *VentasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CrearVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Borrar godoc
// @Summary      Eliminar una venta
// @Description  Borra la venta y devuelve la unidad al stock del vehiculo.
// @Tags         ventas
// @Param        id path string true "UUID de la venta"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ventas/{id} [delete]
func (h *VentasHandler) Borrar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Borrar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Recibo godoc
// @Summary      Descargar recibo PDF de una venta
// @Tags         ventas
// @Produce      application/pdf
// @Param        id path string true "UUID de la venta"
// @Success      200 {file} file
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ventas/{id}/recibo [get]
func (h *VentasHandler) Recibo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	venta, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Venta no encontrada"))
		return
	}
	path, err := infra.GenerateReciboPDF(venta, h.storagePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el recibo"))
		return
	}
	c.FileAttachment(path, "recibo_"+venta.ID.String()+".pdf")
}
