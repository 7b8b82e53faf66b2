package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/service"
	"github.com/matiashmuller/ep-api-tp/internal/validar"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
	"github.com/matiashmuller/ep-api-tp/pkg/response"
)

const entidadComision = "comision"

// ComisionHandler manejador HTTP del módulo comisiones.
type ComisionHandler struct {
	comisionSvc service.ComisionService
}

// NewComisionHandler crea un ComisionHandler.
func NewComisionHandler(comisionSvc service.ComisionService) *ComisionHandler {
	return &ComisionHandler{comisionSvc: comisionSvc}
}

// ListarComisiones GET /com
func (h *ComisionHandler) ListarComisiones(c *gin.Context) {
	params := paginacion.Parsear(c.Query("pagina"), c.Query("cantPorPag"))

	detalles, total, err := h.comisionSvc.List(c.Request.Context(), params)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OKPaginado(c, detalles, total, params)
}

// ObtenerComision GET /com/:id
func (h *ComisionHandler) ObtenerComision(c *gin.Context) {
	id, ok := parseID(c, entidadComision)
	if !ok {
		return
	}
	detalle, err := h.comisionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OK(c, detalle)
}

// RegistrarComision POST /com
func (h *ComisionHandler) RegistrarComision(c *gin.Context) {
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosComision, validar.Claves(cuerpo), false); err != nil {
		responderAlError(c, err)
		return
	}

	var req dto.CrearComisionRequest
	if err := decodificarEn(cuerpo, &req); err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	id, err := h.comisionSvc.Create(c.Request.Context(), &req)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Creado(c, entidadComision, id)
}

// ActualizarComision PUT /com/:id
func (h *ComisionHandler) ActualizarComision(c *gin.Context) {
	id, ok := parseID(c, entidadComision)
	if !ok {
		return
	}
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosComision, validar.Claves(cuerpo), true); err != nil {
		responderAlError(c, err)
		return
	}
	campos, err := aMapa(cuerpo)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}

	if err := h.comisionSvc.Update(c.Request.Context(), id, campos); err != nil {
		responderAlError(c, err)
		return
	}
	actualizado, err := h.comisionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Actualizado(c, entidadComision, actualizado)
}

// BorrarComision DELETE /com/:id
func (h *ComisionHandler) BorrarComision(c *gin.Context) {
	id, ok := parseID(c, entidadComision)
	if !ok {
		return
	}
	if err := h.comisionSvc.Delete(c.Request.Context(), id); err != nil {
		responderAlError(c, err)
		return
	}
	response.Eliminado(c, entidadComision)
}
