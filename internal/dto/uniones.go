package dto

import "github.com/matiashmuller/ep-api-tp/internal/model"

// ── alumno_materia ──

// AtributosAlumnoMateria campos admitidos al crear o actualizar la relación.
var AtributosAlumnoMateria = []string{"id_alumno", "id_materia"}

// CrearAlumnoMateriaRequest cuerpo de POST /almat.
type CrearAlumnoMateriaRequest struct {
	IDAlumno  uint `json:"id_alumno"`
	IDMateria uint `json:"id_materia"`
}

// AlumnoMateriaDetalle respuesta de detalle y de listado de la relación.
type AlumnoMateriaDetalle struct {
	ID      uint            `json:"id"`
	Alumno  *AlumnoResumen  `json:"alumno"`
	Materia *MateriaResumen `json:"materia"`
}

// NuevoAlumnoMateriaDetalle proyecta un modelo precargado al DTO.
func NuevoAlumnoMateriaDetalle(am *model.AlumnoMateria) *AlumnoMateriaDetalle {
	d := &AlumnoMateriaDetalle{ID: am.ID}
	if am.Alumno != nil {
		d.Alumno = &AlumnoResumen{ID: am.Alumno.ID, Nombre: am.Alumno.Nombre, Apellido: am.Alumno.Apellido}
	}
	if am.Materia != nil {
		d.Materia = &MateriaResumen{ID: am.Materia.ID, Nombre: am.Materia.Nombre}
	}
	return d
}

// ── carrera_materia ──

// AtributosCarreraMateria campos admitidos al crear o actualizar la relación.
var AtributosCarreraMateria = []string{"id_carrera", "id_materia"}

// CrearCarreraMateriaRequest cuerpo de POST /carmat.
type CrearCarreraMateriaRequest struct {
	IDCarrera uint `json:"id_carrera"`
	IDMateria uint `json:"id_materia"`
}

// CarreraMateriaDetalle respuesta de detalle y de listado de la relación.
type CarreraMateriaDetalle struct {
	ID      uint            `json:"id"`
	Carrera *MateriaResumen `json:"carrera"`
	Materia *MateriaResumen `json:"materia"`
}

// NuevoCarreraMateriaDetalle proyecta un modelo precargado al DTO.
func NuevoCarreraMateriaDetalle(cm *model.CarreraMateria) *CarreraMateriaDetalle {
	d := &CarreraMateriaDetalle{ID: cm.ID}
	if cm.Carrera != nil {
		d.Carrera = &MateriaResumen{ID: cm.Carrera.ID, Nombre: cm.Carrera.Nombre}
	}
	if cm.Materia != nil {
		d.Materia = &MateriaResumen{ID: cm.Materia.ID, Nombre: cm.Materia.Nombre}
	}
	return d
}
