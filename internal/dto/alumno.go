package dto

import "github.com/matiashmuller/ep-api-tp/internal/model"

// AtributosAlumno campos admitidos al crear o actualizar un alumno.
var AtributosAlumno = []string{"dni", "nombre", "apellido", "fecha_nac", "id_carrera"}

// CrearAlumnoRequest cuerpo de POST /alum.
type CrearAlumnoRequest struct {
	DNI       int64       `json:"dni"`
	Nombre    string      `json:"nombre"`
	Apellido  string      `json:"apellido"`
	FechaNac  model.Fecha `json:"fecha_nac"`
	IDCarrera *uint       `json:"id_carrera"`
}

// MateriaCursada elemento de materiasQueCursa: la fila de unión con la
// materia anidada.
type MateriaCursada struct {
	ID      uint            `json:"id"`
	Materia MateriaConCarga `json:"materia"`
}

// AlumnoDetalle respuesta de detalle y de listado de alumnos.
type AlumnoDetalle struct {
	ID               uint             `json:"id"`
	DNI              int64            `json:"dni"`
	Nombre           string           `json:"nombre"`
	Apellido         string           `json:"apellido"`
	FechaNac         model.Fecha      `json:"fecha_nac"`
	CarreraQueCursa  *CarreraResumen  `json:"carreraQueEstudia"`
	MateriasQueCursa []MateriaCursada `json:"materiasQueCursa"`
}

// NuevoAlumnoDetalle proyecta un modelo precargado al DTO de respuesta.
func NuevoAlumnoDetalle(a *model.Alumno) *AlumnoDetalle {
	d := &AlumnoDetalle{
		ID:               a.ID,
		DNI:              a.DNI,
		Nombre:           a.Nombre,
		Apellido:         a.Apellido,
		FechaNac:         a.FechaNac,
		MateriasQueCursa: make([]MateriaCursada, 0, len(a.Materias)),
	}
	if a.Carrera != nil {
		d.CarreraQueCursa = &CarreraResumen{Nombre: a.Carrera.Nombre}
	}
	for _, am := range a.Materias {
		mc := MateriaCursada{ID: am.ID}
		if am.Materia != nil {
			mc.Materia = MateriaConCarga{Nombre: am.Materia.Nombre, CargaHoraria: am.Materia.CargaHoraria}
		}
		d.MateriasQueCursa = append(d.MateriasQueCursa, mc)
	}
	return d
}
