package dto

// Proyecciones reducidas de entidades asociadas, para anidar en las
// respuestas de detalle sin exponer la fila completa.

// CarreraResumen proyección mínima de una carrera.
type CarreraResumen struct {
	Nombre string `json:"nombre"`
}

// MateriaResumen proyección de una materia con id.
type MateriaResumen struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

// MateriaConCarga proyección de una materia con su carga horaria.
type MateriaConCarga struct {
	Nombre       string `json:"nombre"`
	CargaHoraria int    `json:"carga_horaria"`
}

// DocenteResumen proyección de un docente.
type DocenteResumen struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// AlumnoResumen proyección de un alumno.
type AlumnoResumen struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}
