package model

// Carrera tabla carreras.
type Carrera struct {
	ID     uint   `gorm:"primaryKey"                 json:"id"`
	Nombre string `gorm:"type:varchar(255);not null" json:"nombre"`
	Registro

	// Asociaciones
	Materias []CarreraMateria `gorm:"foreignKey:IDCarrera" json:"materiasIncluidas,omitempty"`
	Alumnos  []Alumno         `gorm:"foreignKey:IDCarrera" json:"alumnosInscriptos,omitempty"`
}

// TableName nombre de tabla.
func (Carrera) TableName() string { return "carreras" }
