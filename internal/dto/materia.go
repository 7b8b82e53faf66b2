package dto

import "github.com/matiashmuller/ep-api-tp/internal/model"

// AtributosMateria campos admitidos al crear o actualizar una materia.
var AtributosMateria = []string{"nombre", "carga_horaria"}

// CrearMateriaRequest cuerpo de POST /mat.
type CrearMateriaRequest struct {
	Nombre       string `json:"nombre"`
	CargaHoraria int    `json:"carga_horaria"`
}

// ComisionDeMateria elemento de comisiones de una materia.
type ComisionDeMateria struct {
	Letra   string         `json:"letra"`
	Dias    string         `json:"dias"`
	Turno   string         `json:"turno"`
	Docente DocenteResumen `json:"docente"`
}

// MateriaDetalle respuesta de detalle y de listado de materias.
type MateriaDetalle struct {
	ID                    uint                `json:"id"`
	Nombre                string              `json:"nombre"`
	CargaHoraria          int                 `json:"carga_horaria"`
	CarrerasQueLaIncluyen []CarreraResumen    `json:"carrerasQueLaIncluyen"`
	Comisiones            []ComisionDeMateria `json:"comisiones"`
}

// NuevaMateriaDetalle proyecta un modelo precargado al DTO de respuesta.
func NuevaMateriaDetalle(m *model.Materia) *MateriaDetalle {
	d := &MateriaDetalle{
		ID:                    m.ID,
		Nombre:                m.Nombre,
		CargaHoraria:          m.CargaHoraria,
		CarrerasQueLaIncluyen: make([]CarreraResumen, 0, len(m.Carreras)),
		Comisiones:            make([]ComisionDeMateria, 0, len(m.Comisiones)),
	}
	for _, cm := range m.Carreras {
		if cm.Carrera != nil {
			d.CarrerasQueLaIncluyen = append(d.CarrerasQueLaIncluyen, CarreraResumen{Nombre: cm.Carrera.Nombre})
		}
	}
	for _, c := range m.Comisiones {
		com := ComisionDeMateria{Letra: c.Letra, Dias: c.Dias, Turno: c.Turno}
		if c.Docente != nil {
			com.Docente = DocenteResumen{ID: c.Docente.ID, Nombre: c.Docente.Nombre, Apellido: c.Docente.Apellido}
		}
		d.Comisiones = append(d.Comisiones, com)
	}
	return d
}
