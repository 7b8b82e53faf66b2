package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/service"
	"github.com/matiashmuller/ep-api-tp/internal/validar"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
	"github.com/matiashmuller/ep-api-tp/pkg/response"
)

const entidadAlumno = "alumno"

// AlumnoHandler manejador HTTP del módulo alumnos.
type AlumnoHandler struct {
	alumnoSvc service.AlumnoService
}

// NewAlumnoHandler crea un AlumnoHandler.
func NewAlumnoHandler(alumnoSvc service.AlumnoService) *AlumnoHandler {
	return &AlumnoHandler{alumnoSvc: alumnoSvc}
}

// ListarAlumnos GET /alum
func (h *AlumnoHandler) ListarAlumnos(c *gin.Context) {
	params := paginacion.Parsear(c.Query("pagina"), c.Query("cantPorPag"))

	detalles, total, err := h.alumnoSvc.List(c.Request.Context(), params)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OKPaginado(c, detalles, total, params)
}

// ObtenerAlumno GET /alum/:id
func (h *AlumnoHandler) ObtenerAlumno(c *gin.Context) {
	id, ok := parseID(c, entidadAlumno)
	if !ok {
		return
	}
	detalle, err := h.alumnoSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OK(c, detalle)
}

// RegistrarAlumno POST /alum
func (h *AlumnoHandler) RegistrarAlumno(c *gin.Context) {
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosAlumno, validar.Claves(cuerpo), false); err != nil {
		responderAlError(c, err)
		return
	}

	var req dto.CrearAlumnoRequest
	if err := decodificarEn(cuerpo, &req); err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	id, err := h.alumnoSvc.Create(c.Request.Context(), &req)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Creado(c, entidadAlumno, id)
}

// ActualizarAlumno PUT /alum/:id
func (h *AlumnoHandler) ActualizarAlumno(c *gin.Context) {
	id, ok := parseID(c, entidadAlumno)
	if !ok {
		return
	}
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosAlumno, validar.Claves(cuerpo), true); err != nil {
		responderAlError(c, err)
		return
	}
	campos, err := aMapa(cuerpo)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}

	if err := h.alumnoSvc.Update(c.Request.Context(), id, campos); err != nil {
		responderAlError(c, err)
		return
	}
	actualizado, err := h.alumnoSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Actualizado(c, entidadAlumno, actualizado)
}

// BorrarAlumno DELETE /alum/:id
func (h *AlumnoHandler) BorrarAlumno(c *gin.Context) {
	id, ok := parseID(c, entidadAlumno)
	if !ok {
		return
	}
	if err := h.alumnoSvc.Delete(c.Request.Context(), id); err != nil {
		responderAlError(c, err)
		return
	}
	response.Eliminado(c, entidadAlumno)
}
