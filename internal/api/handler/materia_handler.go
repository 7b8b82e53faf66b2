package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/service"
	"github.com/matiashmuller/ep-api-tp/internal/validar"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
	"github.com/matiashmuller/ep-api-tp/pkg/response"
)

const entidadMateria = "materia"

// MateriaHandler manejador HTTP del módulo materias.
type MateriaHandler struct {
	materiaSvc service.MateriaService
}

// NewMateriaHandler crea un MateriaHandler.
func NewMateriaHandler(materiaSvc service.MateriaService) *MateriaHandler {
	return &MateriaHandler{materiaSvc: materiaSvc}
}

// ListarMaterias GET /mat
func (h *MateriaHandler) ListarMaterias(c *gin.Context) {
	params := paginacion.Parsear(c.Query("pagina"), c.Query("cantPorPag"))

	detalles, total, err := h.materiaSvc.List(c.Request.Context(), params)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OKPaginado(c, detalles, total, params)
}

// ObtenerMateria GET /mat/:id
func (h *MateriaHandler) ObtenerMateria(c *gin.Context) {
	id, ok := parseID(c, entidadMateria)
	if !ok {
		return
	}
	detalle, err := h.materiaSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OK(c, detalle)
}

// RegistrarMateria POST /mat
func (h *MateriaHandler) RegistrarMateria(c *gin.Context) {
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosMateria, validar.Claves(cuerpo), false); err != nil {
		responderAlError(c, err)
		return
	}

	var req dto.CrearMateriaRequest
	if err := decodificarEn(cuerpo, &req); err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	id, err := h.materiaSvc.Create(c.Request.Context(), &req)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Creado(c, entidadMateria, id)
}

// ActualizarMateria PUT /mat/:id
func (h *MateriaHandler) ActualizarMateria(c *gin.Context) {
	id, ok := parseID(c, entidadMateria)
	if !ok {
		return
	}
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosMateria, validar.Claves(cuerpo), true); err != nil {
		responderAlError(c, err)
		return
	}
	campos, err := aMapa(cuerpo)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}

	if err := h.materiaSvc.Update(c.Request.Context(), id, campos); err != nil {
		responderAlError(c, err)
		return
	}
	actualizado, err := h.materiaSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Actualizado(c, entidadMateria, actualizado)
}

// BorrarMateria DELETE /mat/:id
func (h *MateriaHandler) BorrarMateria(c *gin.Context) {
	id, ok := parseID(c, entidadMateria)
	if !ok {
		return
	}
	if err := h.materiaSvc.Delete(c.Request.Context(), id); err != nil {
		responderAlError(c, err)
		return
	}
	response.Eliminado(c, entidadMateria)
}
