package handler

import (
	"errors"
	"net/http"

	"concesionaria/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds the request body (form-encoded or JSON) and runs
// go-playground/validator tags. Returns false and writes the error response
// if binding fails — the caller should return immediately without writing
// another response.
//
// Field *coercion* does not happen here: numeric and date fields are bound as
// raw strings and coerced in the services via internal/form, because a
// malformed value must fall back, never reject the request.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Payload invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError maps domain errors to HTTP statuses:
//
//	ErrNoEncontrado → 404 (fatal, nothing was persisted)
//	SinStockError   → 409 (recoverable at the form: message carries marca y modelo)
//	anything else   → 400
func writeServiceError(c *gin.Context, err error) {
	var sinStock *apierror.SinStockError
	switch {
	case errors.Is(err, apierror.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &sinStock):
		c.JSON(http.StatusConflict, apierror.New(sinStock.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}
