package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/service"
	"github.com/matiashmuller/ep-api-tp/internal/validar"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
	"github.com/matiashmuller/ep-api-tp/pkg/response"
)

const entidadAlumnoMateria = "alumno_materia"

// AlumnoMateriaHandler manejador HTTP de las inscripciones alumno-materia.
type AlumnoMateriaHandler struct {
	alumnoMateriaSvc service.AlumnoMateriaService
}

// NewAlumnoMateriaHandler crea un AlumnoMateriaHandler.
func NewAlumnoMateriaHandler(alumnoMateriaSvc service.AlumnoMateriaService) *AlumnoMateriaHandler {
	return &AlumnoMateriaHandler{alumnoMateriaSvc: alumnoMateriaSvc}
}

// ListarAlumnoMateria GET /almat
func (h *AlumnoMateriaHandler) ListarAlumnoMateria(c *gin.Context) {
	params := paginacion.Parsear(c.Query("pagina"), c.Query("cantPorPag"))

	detalles, total, err := h.alumnoMateriaSvc.List(c.Request.Context(), params)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OKPaginado(c, detalles, total, params)
}

// ObtenerAlumnoMateria GET /almat/:id
func (h *AlumnoMateriaHandler) ObtenerAlumnoMateria(c *gin.Context) {
	id, ok := parseID(c, entidadAlumnoMateria)
	if !ok {
		return
	}
	detalle, err := h.alumnoMateriaSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.OK(c, detalle)
}

// RegistrarAlumnoMateria POST /almat
func (h *AlumnoMateriaHandler) RegistrarAlumnoMateria(c *gin.Context) {
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosAlumnoMateria, validar.Claves(cuerpo), false); err != nil {
		responderAlError(c, err)
		return
	}

	var req dto.CrearAlumnoMateriaRequest
	if err := decodificarEn(cuerpo, &req); err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	id, err := h.alumnoMateriaSvc.Create(c.Request.Context(), &req)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Creado(c, entidadAlumnoMateria, id)
}

// ActualizarAlumnoMateria PUT /almat/:id
func (h *AlumnoMateriaHandler) ActualizarAlumnoMateria(c *gin.Context) {
	id, ok := parseID(c, entidadAlumnoMateria)
	if !ok {
		return
	}
	cuerpo, err := leerCuerpo(c)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}
	if err := validar.Atributos(dto.AtributosAlumnoMateria, validar.Claves(cuerpo), true); err != nil {
		responderAlError(c, err)
		return
	}
	campos, err := aMapa(cuerpo)
	if err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}

	if err := h.alumnoMateriaSvc.Update(c.Request.Context(), id, campos); err != nil {
		responderAlError(c, err)
		return
	}
	actualizado, err := h.alumnoMateriaSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		responderAlError(c, err)
		return
	}
	response.Actualizado(c, entidadAlumnoMateria, actualizado)
}

// BorrarAlumnoMateria DELETE /almat/:id
func (h *AlumnoMateriaHandler) BorrarAlumnoMateria(c *gin.Context) {
	id, ok := parseID(c, entidadAlumnoMateria)
	if !ok {
		return
	}
	if err := h.alumnoMateriaSvc.Delete(c.Request.Context(), id); err != nil {
		responderAlError(c, err)
		return
	}
	response.Eliminado(c, entidadAlumnoMateria)
}
