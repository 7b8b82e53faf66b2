package service

import (
	"go.uber.org/zap"

	"github.com/matiashmuller/ep-api-tp/internal/repository"
	"github.com/matiashmuller/ep-api-tp/pkg/jwt"
)

// Service agrupa todos los servicios de la aplicación.
type Service struct {
	Alumno         AlumnoService
	Docente        DocenteService
	Carrera        CarreraService
	Materia        MateriaService
	Comision       ComisionService
	AlumnoMateria  AlumnoMateriaService
	CarreraMateria CarreraMateriaService
	Auth           AuthService
	Export         ExportService
}

// NewService crea el agregado de servicios con sus dependencias.
func NewService(repo *repository.Repository, jwtManager *jwt.Manager, logger *zap.Logger) *Service {
	return &Service{
		Alumno:         NewAlumnoService(repo, logger),
		Docente:        NewDocenteService(repo, logger),
		Carrera:        NewCarreraService(repo, logger),
		Materia:        NewMateriaService(repo, logger),
		Comision:       NewComisionService(repo, logger),
		AlumnoMateria:  NewAlumnoMateriaService(repo, logger),
		CarreraMateria: NewCarreraMateriaService(repo, logger),
		Auth:           NewAuthService(repo, jwtManager, logger),
		Export:         NewExportService(repo, logger),
	}
}
