package handler

import (
	"net/http"
	"strconv"

	"concesionaria/internal/apierror"
	"concesionaria/internal/dto"
	"concesionaria/internal/model"
	"concesionaria/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HistorialPreciosHandler serves the immutable price-change history per vehicle.
type HistorialPreciosHandler struct {
	repo repository.HistorialPrecioRepository
}

func NewHistorialPreciosHandler(repo repository.HistorialPrecioRepository) *HistorialPreciosHandler {
	return &HistorialPreciosHandler{repo: repo}
}

// ListarPorVehiculo godoc
// @Summary      Historial de precios de un vehiculo
// @Description  Retorna el historial inmutable de cambios de precio de un vehiculo, ordenado por fecha descendente.
// @Tags         vehiculos
// @Param        id    path     string  true  "UUID del vehiculo"
// @Param        page  query    int     false "Pagina (default 1)"
// @Param        limit query    int     false "Registros por pagina (default 50, max 200)"
// @Success      200   {object} dto.HistorialPrecioListResponse
// @Failure      400   {object} apierror.APIError
// @Router       /v1/vehiculos/{id}/historial-precios [get]
func (h *HistorialPreciosHandler) ListarPorVehiculo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	rows, total, err := h.repo.ListByVehiculo(c.Request.Context(), id, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener historial de precios"))
		return
	}

	data := make([]dto.HistorialPrecioItem, 0, len(rows))
	for i := range rows {
		data = append(data, historialToDTO(&rows[i]))
	}

	c.JSON(http.StatusOK, dto.HistorialPrecioListResponse{
		Data:  data,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func historialToDTO(h *model.HistorialPrecio) dto.HistorialPrecioItem {
	return dto.HistorialPrecioItem{
		ID:            h.ID.String(),
		VehiculoID:    h.VehiculoID.String(),
		PrecioAntes:   h.PrecioAntes,
		PrecioDespues: h.PrecioDespues,
		Motivo:        h.Motivo,
		CreatedAt:     h.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
