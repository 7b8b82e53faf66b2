package handler

import "github.com/matiashmuller/ep-api-tp/internal/service"

// Handler agrupa todos los manejadores HTTP.
type Handler struct {
	Alumno         *AlumnoHandler
	Docente        *DocenteHandler
	Carrera        *CarreraHandler
	Materia        *MateriaHandler
	Comision       *ComisionHandler
	AlumnoMateria  *AlumnoMateriaHandler
	CarreraMateria *CarreraMateriaHandler
	Auth           *AuthHandler
	Export         *ExportHandler
}

// NewHandler crea el agregado de manejadores sobre los servicios.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Alumno:         NewAlumnoHandler(svc.Alumno),
		Docente:        NewDocenteHandler(svc.Docente),
		Carrera:        NewCarreraHandler(svc.Carrera),
		Materia:        NewMateriaHandler(svc.Materia),
		Comision:       NewComisionHandler(svc.Comision),
		AlumnoMateria:  NewAlumnoMateriaHandler(svc.AlumnoMateria),
		CarreraMateria: NewCarreraMateriaHandler(svc.CarreraMateria),
		Auth:           NewAuthHandler(svc.Auth),
		Export:         NewExportHandler(svc.Export),
	}
}
