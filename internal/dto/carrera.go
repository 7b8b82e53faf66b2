package dto

import "github.com/matiashmuller/ep-api-tp/internal/model"

// AtributosCarrera campos admitidos al crear o actualizar una carrera.
var AtributosCarrera = []string{"nombre"}

// CrearCarreraRequest cuerpo de POST /car.
type CrearCarreraRequest struct {
	Nombre string `json:"nombre"`
}

// MateriaIncluida elemento de materiasIncluidas: fila de unión con la
// materia anidada.
type MateriaIncluida struct {
	IDMateria uint           `json:"id_materia"`
	Materia   CarreraResumen `json:"materia"`
}

// AlumnoInscripto elemento de alumnosInscriptos.
type AlumnoInscripto struct {
	DNI      int64  `json:"dni"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// CarreraDetalle respuesta de detalle y de listado de carreras.
type CarreraDetalle struct {
	ID                uint              `json:"id"`
	Nombre            string            `json:"nombre"`
	MateriasIncluidas []MateriaIncluida `json:"materiasIncluidas"`
	AlumnosInscriptos []AlumnoInscripto `json:"alumnosInscriptos"`
}

// NuevaCarreraDetalle proyecta un modelo precargado al DTO de respuesta.
func NuevaCarreraDetalle(c *model.Carrera) *CarreraDetalle {
	d := &CarreraDetalle{
		ID:                c.ID,
		Nombre:            c.Nombre,
		MateriasIncluidas: make([]MateriaIncluida, 0, len(c.Materias)),
		AlumnosInscriptos: make([]AlumnoInscripto, 0, len(c.Alumnos)),
	}
	for _, cm := range c.Materias {
		mi := MateriaIncluida{IDMateria: cm.IDMateria}
		if cm.Materia != nil {
			mi.Materia = CarreraResumen{Nombre: cm.Materia.Nombre}
		}
		d.MateriasIncluidas = append(d.MateriasIncluidas, mi)
	}
	for _, a := range c.Alumnos {
		d.AlumnosInscriptos = append(d.AlumnosInscriptos, AlumnoInscripto{
			DNI:      a.DNI,
			Nombre:   a.Nombre,
			Apellido: a.Apellido,
		})
	}
	return d
}
