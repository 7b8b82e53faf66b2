package repository

import "gorm.io/gorm"

// Repository agrupa todos los repositorios de entidades.
type Repository struct {
	Alumno         AlumnoRepository
	Docente        DocenteRepository
	Carrera        CarreraRepository
	Materia        MateriaRepository
	Comision       ComisionRepository
	AlumnoMateria  AlumnoMateriaRepository
	CarreraMateria CarreraMateriaRepository
	Usuario        UsuarioRepository
}

// NewRepository crea el agregado de repositorios sobre la conexión dada.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Alumno:         NewAlumnoRepo(db),
		Docente:        NewDocenteRepo(db),
		Carrera:        NewCarreraRepo(db),
		Materia:        NewMateriaRepo(db),
		Comision:       NewComisionRepo(db),
		AlumnoMateria:  NewAlumnoMateriaRepo(db),
		CarreraMateria: NewCarreraMateriaRepo(db),
		Usuario:        NewUsuarioRepo(db),
	}
}
