package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/service"
	"github.com/matiashmuller/ep-api-tp/internal/validar"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
	"github.com/matiashmuller/ep-api-tp/pkg/response"
)

const entidadCarrera = "carrera"

// CarreraHandler manejador HTTP del módulo carreras.
type CarreraHandler struct {
	carreraSvc service.CarreraService
}

// NewCarreraHandler crea un CarreraHandler.
func NewCarreraHandler(carreraSvc service.CarreraService) *CarreraHandler {
	return &CarreraHandler{carreraSvc: carreraSvc}
}

// ListarCarreras GET /car
func (h *CarreraHandler) ListarCarreras(c *gin.Context) {
	params := paginacion.Parsear(c.Query("pagina"), c.Query("cantPorPag"))

	detalles, total, err := h.carreraSvc.List(c.Request.Context(), params)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OKPaginado(c, detalles, total, params)
}

// ObtenerCarrera GET /car/:id
func (h *CarreraHandler) ObtenerCarrera(c *gin.Context) {
	id, ok := parseID(c, entidadCarrera)
	if !ok {
		return
	}
	detalle, err := h.carreraSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OK(c, detalle)
}

// RegistrarCarrera POST /car
func (h *CarreraHandler) RegistrarCarrera(c *gin.Context) {
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosCarrera, validar.Claves(cuerpo), false); err != nil {
		responderAlError(c, err)
		return
	}

	var req dto.CrearCarreraRequest
	if err := decodificarEn(cuerpo, &req); err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	id, err := h.carreraSvc.Create(c.Request.Context(), &req)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Creado(c, entidadCarrera, id)
}

// ActualizarCarrera PUT /car/:id
func (h *CarreraHandler) ActualizarCarrera(c *gin.Context) {
	id, ok := parseID(c, entidadCarrera)
	if !ok {
		return
	}
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosCarrera, validar.Claves(cuerpo), true); err != nil {
		responderAlError(c, err)
		return
	}
	campos, err := aMapa(cuerpo)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}

	if err := h.carreraSvc.Update(c.Request.Context(), id, campos); err != nil {
		responderAlError(c, err)
		return
	}
	actualizado, err := h.carreraSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Actualizado(c, entidadCarrera, actualizado)
}

// BorrarCarrera DELETE /car/:id
func (h *CarreraHandler) BorrarCarrera(c *gin.Context) {
	id, ok := parseID(c, entidadCarrera)
	if !ok {
		return
	}
	if err := h.carreraSvc.Delete(c.Request.Context(), id); err != nil {
		responderAlError(c, err)
		return
	}
	response.Eliminado(c, entidadCarrera)
}
