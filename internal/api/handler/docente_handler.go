package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/service"
	"github.com/matiashmuller/ep-api-tp/internal/validar"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
	"github.com/matiashmuller/ep-api-tp/pkg/response"
)

const entidadDocente = "docente"

// DocenteHandler manejador HTTP del módulo docentes.
type DocenteHandler struct {
	docenteSvc service.DocenteService
}

// NewDocenteHandler crea un DocenteHandler.
func NewDocenteHandler(docenteSvc service.DocenteService) *DocenteHandler {
	return &DocenteHandler{docenteSvc: docenteSvc}
}

// ListarDocentes GET /doc
func (h *DocenteHandler) ListarDocentes(c *gin.Context) {
	params := paginacion.Parsear(c.Query("pagina"), c.Query("cantPorPag"))

	detalles, total, err := h.docenteSvc.List(c.Request.Context(), params)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OKPaginado(c, detalles, total, params)
}

// ObtenerDocente GET /doc/:id
func (h *DocenteHandler) ObtenerDocente(c *gin.Context) {
	id, ok := parseID(c, entidadDocente)
	if !ok {
		return
	}
	detalle, err := h.docenteSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OK(c, detalle)
}

// RegistrarDocente POST /doc
func (h *DocenteHandler) RegistrarDocente(c *gin.Context) {
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosDocente, validar.Claves(cuerpo), false); err != nil {
		responderAlError(c, err)
		return
	}

	var req dto.CrearDocenteRequest
	if err := decodificarEn(cuerpo, &req); err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	id, err := h.docenteSvc.Create(c.Request.Context(), &req)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Creado(c, entidadDocente, id)
}

// ActualizarDocente PUT /doc/:id
func (h *DocenteHandler) ActualizarDocente(c *gin.Context) {
	id, ok := parseID(c, entidadDocente)
	if !ok {
		return
	}
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosDocente, validar.Claves(cuerpo), true); err != nil {
		responderAlError(c, err)
		return
	}
	campos, err := aMapa(cuerpo)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}

	if err := h.docenteSvc.Update(c.Request.Context(), id, campos); err != nil {
		responderAlError(c, err)
		return
	}
	actualizado, err := h.docenteSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Actualizado(c, entidadDocente, actualizado)
}

// BorrarDocente DELETE /doc/:id
func (h *DocenteHandler) BorrarDocente(c *gin.Context) {
	id, ok := parseID(c, entidadDocente)
	if !ok {
		return
	}
	if err := h.docenteSvc.Delete(c.Request.Context(), id); err != nil {
		responderAlError(c, err)
		return
	}
	response.Eliminado(c, entidadDocente)
}
