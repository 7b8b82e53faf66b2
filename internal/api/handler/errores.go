package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/pkg/apperrors"
	"github.com/matiashmuller/ep-api-tp/pkg/response"
)

// responderAlError mapea un error de servicio al código y cuerpo HTTP.
// El orden importa: unicidad antes que autorización, autorización antes
// que no-encontrado, no-encontrado antes que clave foránea.
func responderAlError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrYaExiste):
		response.BadRequest(c, "Bad request: Ya existe en la base de datos.")
		return
	case errors.Is(err, apperrors.ErrAtributosInvalidos):
		response.BadRequest(c, "Atributos ingresados incorrectos.")
		return
	case errors.Is(err, apperrors.ErrContraseñaIncorrecta):
		response.NoAutorizadoTexto(c, "Error: Contraseña incorrecta.")
		return
	case errors.Is(err, apperrors.ErrEmailInvalido):
		response.NoAutorizadoTexto(c, "Error: email con formato inválido.")
		return
	}
	if nf, ok := apperrors.EsNotFound(err); ok {
		response.NoEncontrado(c, nf.Entidad, nf.ID)
		return
	}
	if fk, ok := apperrors.EsForeignKey(err); ok {
		response.BadRequest(c, fmt.Sprintf("Bad request: no existe %s con id %d.", fk.Entidad, fk.ID))
		return
	}
	response.ErrorInterno(c)
}

// parseID toma el parámetro :id de la ruta. Un id no numérico se trata
// como inexistente para la entidad dada.
func parseID(c *gin.Context, entidad string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NoEncontradoTexto(c, fmt.Sprintf("Error: %s con id %s no encontrado.", entidad, c.Param("id")))
		return 0, false
	}
	return uint(id), true
}
