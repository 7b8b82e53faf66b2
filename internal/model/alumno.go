package model

// Alumno tabla alumnos.
type Alumno struct {
	ID        uint   `gorm:"primaryKey"                      json:"id"`
	DNI       int64  `gorm:"column:dni;not null;uniqueIndex" json:"dni"`
	Nombre    string `gorm:"type:varchar(255);not null"      json:"nombre"`
	Apellido  string `gorm:"type:varchar(255);not null"      json:"apellido"`
	FechaNac  Fecha  `gorm:"column:fecha_nac;type:date"      json:"fecha_nac"`
	IDCarrera *uint  `gorm:"column:id_carrera"               json:"id_carrera,omitempty"`
	Registro

	// Asociaciones
	Carrera  *Carrera        `gorm:"foreignKey:IDCarrera" json:"carreraQueEstudia,omitempty"`
	Materias []AlumnoMateria `gorm:"foreignKey:IDAlumno"  json:"materiasQueCursa,omitempty"`
}

// TableName nombre de tabla.
func (Alumno) TableName() string { return "alumnos" }
