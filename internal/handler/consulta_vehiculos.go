package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"concesionaria/internal/apierror"
	"concesionaria/internal/dto"
	"concesionaria/internal/repository"
	"concesionaria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const consultaCacheTTL = 4 * time.Hour

// ConsultaVehiculosHandler serves the public serial-number lookup.
// Read-only, no side effects on the inventory.
type ConsultaVehiculosHandler struct {
	repo repository.VehiculoRepository
	rdb  *redis.Client
}

func NewConsultaVehiculosHandler(repo repository.VehiculoRepository, rdb *redis.Client) *ConsultaVehiculosHandler {
	return &ConsultaVehiculosHandler{repo: repo, rdb: rdb}
}

// GetPorNumeroSerie godoc
// @Summary Consulta de vehiculo por numero de serie
// @Tags consulta
// @Produce json
// @Param numero_serie path string true "Numero de serie"
// @Success 200 {object} dto.ConsultaVehiculoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/consulta/{numero_serie} [get]
func (h *ConsultaVehiculosHandler) GetPorNumeroSerie(c *gin.Context) {
	numeroSerie := c.Param("numero_serie")
	ctx := c.Request.Context()
	cacheKey := service.ConsultaCacheKey(numeroSerie)

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.ConsultaVehiculoResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	vehiculo, err := h.repo.FindByNumeroSerie(ctx, numeroSerie)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Vehiculo no encontrado"))
		return
	}

	resp := dto.ConsultaVehiculoResponse{
		Marca:              vehiculo.Marca,
		Modelo:             vehiculo.Modelo,
		Anio:               vehiculo.Anio,
		Color:              vehiculo.Color,
		Precio:             vehiculo.Precio,
		CantidadDisponible: vehiculo.CantidadDisponible,
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, consultaCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
