package dto

import "github.com/matiashmuller/ep-api-tp/internal/model"

// AtributosComision campos admitidos al crear o actualizar una comisión.
var AtributosComision = []string{"letra", "dias", "turno", "id_materia", "id_docente"}

// CrearComisionRequest cuerpo de POST /com.
type CrearComisionRequest struct {
	Letra     string `json:"letra"`
	Dias      string `json:"dias"`
	Turno     string `json:"turno"`
	IDMateria uint   `json:"id_materia"`
	IDDocente uint   `json:"id_docente"`
}

// ComisionDetalle respuesta de detalle y de listado de comisiones.
// No expone las claves foráneas crudas: van anidadas en sus entidades.
type ComisionDetalle struct {
	ID      uint            `json:"id"`
	Letra   string          `json:"letra"`
	Dias    string          `json:"dias"`
	Turno   string          `json:"turno"`
	Materia *MateriaResumen `json:"materia"`
	Docente *DocenteResumen `json:"docente"`
}

// NuevaComisionDetalle proyecta un modelo precargado al DTO de respuesta.
func NuevaComisionDetalle(c *model.Comision) *ComisionDetalle {
	d := &ComisionDetalle{
		ID:    c.ID,
		Letra: c.Letra,
		Dias:  c.Dias,
		Turno: c.Turno,
	}
	if c.Materia != nil {
		d.Materia = &MateriaResumen{ID: c.Materia.ID, Nombre: c.Materia.Nombre}
	}
	if c.Docente != nil {
		d.Docente = &DocenteResumen{ID: c.Docente.ID, Nombre: c.Docente.Nombre, Apellido: c.Docente.Apellido}
	}
	return d
}
