package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/service"
	"github.com/matiashmuller/ep-api-tp/internal/validar"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
	"github.com/matiashmuller/ep-api-tp/pkg/response"
)

const entidadCarreraMateria = "carrera_materia"

// CarreraMateriaHandler manejador HTTP de las incumbencias carrera-materia.
type CarreraMateriaHandler struct {
	carreraMateriaSvc service.CarreraMateriaService
}

// NewCarreraMateriaHandler crea un CarreraMateriaHandler.
func NewCarreraMateriaHandler(carreraMateriaSvc service.CarreraMateriaService) *CarreraMateriaHandler {
	return &CarreraMateriaHandler{carreraMateriaSvc: carreraMateriaSvc}
}

// ListarCarreraMateria GET /carmat
func (h *CarreraMateriaHandler) ListarCarreraMateria(c *gin.Context) {
	params := paginacion.Parsear(c.Query("pagina"), c.Query("cantPorPag"))

	detalles, total, err := h.carreraMateriaSvc.List(c.Request.Context(), params)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OKPaginado(c, detalles, total, params)
}

// ObtenerCarreraMateria GET /carmat/:id
func (h *CarreraMateriaHandler) ObtenerCarreraMateria(c *gin.Context) {
	id, ok := parseID(c, entidadCarreraMateria)
	if !ok {
		return
	}
	detalle, err := h.carreraMateriaSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OK(c, detalle)
}

// RegistrarCarreraMateria POST /carmat
func (h *CarreraMateriaHandler) RegistrarCarreraMateria(c *gin.Context) {
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosCarreraMateria, validar.Claves(cuerpo), false); err != nil {
		responderAlError(c, err)
		return
	}

	var req dto.CrearCarreraMateriaRequest
	if err := decodificarEn(cuerpo, &req); err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	id, err := h.carreraMateriaSvc.Create(c.Request.Context(), &req)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Creado(c, entidadCarreraMateria, id)
}

// ActualizarCarreraMateria PUT /carmat/:id
func (h *CarreraMateriaHandler) ActualizarCarreraMateria(c *gin.Context) {
	id, ok := parseID(c, entidadCarreraMateria)
	if !ok {
		return
	}
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosCarreraMateria, validar.Claves(cuerpo), true); err != nil {
		responderAlError(c, err)
		return
	}
	campos, err := aMapa(cuerpo)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}

	if err := h.carreraMateriaSvc.Update(c.Request.Context(), id, campos); err != nil {
		responderAlError(c, err)
		return
	}
	actualizado, err := h.carreraMateriaSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Actualizado(c, entidadCarreraMateria, actualizado)
}

// BorrarCarreraMateria DELETE /carmat/:id
func (h *CarreraMateriaHandler) BorrarCarreraMateria(c *gin.Context) {
	id, ok := parseID(c, entidadCarreraMateria)
	if !ok {
		return
	}
	if err := h.carreraMateriaSvc.Delete(c.Request.Context(), id); err != nil {
		responderAlError(c, err)
		return
	}
	response.Eliminado(c, entidadCarreraMateria)
}
