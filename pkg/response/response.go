package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
)

// Pagina es el sobre de respuesta para listados paginados.
type Pagina struct {
	TotalElementos int64       `json:"totalElementos"`
	TotalPaginas   int         `json:"totalPaginas"`
	PaginaNro      int         `json:"paginaNro"`
	Elementos      interface{} `json:"elementos"`
}

// OK responde 200 con el cuerpo JSON dado.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// OKPaginado responde 200 con el sobre de paginación.
func OKPaginado(c *gin.Context, elementos interface{}, total int64, params paginacion.Parametros) {
	c.JSON(http.StatusOK, Pagina{
		TotalElementos: total,
		TotalPaginas:   params.TotalPaginas(total),
		PaginaNro:      params.Pagina,
		Elementos:      elementos,
	})
}

// Creado responde 201 con el estado y el id del registro nuevo.
func Creado(c *gin.Context, entidad string, id uint) {
	c.JSON(http.StatusCreated, gin.H{
		"estado": fmt.Sprintf("Éxito al crear %s", entidad),
		"id":     id,
	})
}

// Actualizado responde 200 con el estado y el registro actualizado.
func Actualizado(c *gin.Context, entidad string, actualizado interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"estado":      fmt.Sprintf("Éxito al actualizar %s.", entidad),
		"actualizado": actualizado,
	})
}

// Eliminado responde 200 con confirmación en texto plano.
func Eliminado(c *gin.Context, entidad string) {
	c.String(http.StatusOK, "Éxito al eliminar %s.", entidad)
}

// BadRequest responde 400 con mensaje en texto plano.
func BadRequest(c *gin.Context, mensaje string) {
	c.String(http.StatusBadRequest, mensaje)
}

// NoAutorizado responde 401 con el JSON de autenticación fallida.
func NoAutorizado(c *gin.Context, mensaje string) {
	c.JSON(http.StatusUnauthorized, gin.H{"auth": false, "message": mensaje})
}

// NoAutorizadoTexto responde 401 con mensaje en texto plano.
func NoAutorizadoTexto(c *gin.Context, mensaje string) {
	c.String(http.StatusUnauthorized, mensaje)
}

// NoEncontrado responde 404 nombrando entidad e id en texto plano.
func NoEncontrado(c *gin.Context, entidad string, id uint) {
	c.String(http.StatusNotFound, "Error: %s con id %d no encontrado.", entidad, id)
}

// NoEncontradoTexto responde 404 con mensaje en texto plano.
func NoEncontradoTexto(c *gin.Context, mensaje string) {
	c.String(http.StatusNotFound, mensaje)
}

// ErrorInterno responde 500 con cuerpo genérico, sin filtrar detalles.
func ErrorInterno(c *gin.Context) {
	c.String(http.StatusInternalServerError, "Error interno del servidor.")
}
