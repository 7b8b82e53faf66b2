package dto

import "github.com/matiashmuller/ep-api-tp/internal/model"

// AtributosDocente campos admitidos al crear o actualizar un docente.
var AtributosDocente = []string{"dni", "nombre", "apellido", "titulo", "fecha_nac"}

// CrearDocenteRequest cuerpo de POST /doc.
type CrearDocenteRequest struct {
	DNI      int64       `json:"dni"`
	Nombre   string      `json:"nombre"`
	Apellido string      `json:"apellido"`
	Titulo   string      `json:"titulo"`
	FechaNac model.Fecha `json:"fecha_nac"`
}

// ComisionAsignada elemento de comisionesAsignadas de un docente.
type ComisionAsignada struct {
	Letra   string         `json:"letra"`
	Dias    string         `json:"dias"`
	Turno   string         `json:"turno"`
	Materia MateriaResumen `json:"materia"`
}

// DocenteDetalle respuesta de detalle y de listado de docentes.
type DocenteDetalle struct {
	ID                  uint               `json:"id"`
	DNI                 int64              `json:"dni"`
	Nombre              string             `json:"nombre"`
	Apellido            string             `json:"apellido"`
	Titulo              string             `json:"titulo"`
	FechaNac            model.Fecha        `json:"fecha_nac"`
	ComisionesAsignadas []ComisionAsignada `json:"comisionesAsignadas"`
}

// NuevoDocenteDetalle proyecta un modelo precargado al DTO de respuesta.
func NuevoDocenteDetalle(d *model.Docente) *DocenteDetalle {
	det := &DocenteDetalle{
		ID:                  d.ID,
		DNI:                 d.DNI,
		Nombre:              d.Nombre,
		Apellido:            d.Apellido,
		Titulo:              d.Titulo,
		FechaNac:            d.FechaNac,
		ComisionesAsignadas: make([]ComisionAsignada, 0, len(d.Comisiones)),
	}
	for _, c := range d.Comisiones {
		ca := ComisionAsignada{Letra: c.Letra, Dias: c.Dias, Turno: c.Turno}
		if c.Materia != nil {
			ca.Materia = MateriaResumen{ID: c.Materia.ID, Nombre: c.Materia.Nombre}
		}
		det.ComisionesAsignadas = append(det.ComisionesAsignadas, ca)
	}
	return det
}
