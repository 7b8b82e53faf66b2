package model

// AlumnoMateria tabla intermedia alumno_materia: qué materias cursa cada alumno.
// Cada par (id_alumno, id_materia) es único.
type AlumnoMateria struct {
	ID        uint `gorm:"primaryKey"                 json:"id"`
	IDAlumno  uint `gorm:"column:id_alumno;not null"  json:"id_alumno,omitempty"`
	IDMateria uint `gorm:"column:id_materia;not null" json:"id_materia,omitempty"`
	Registro

	Alumno  *Alumno  `gorm:"foreignKey:IDAlumno"  json:"alumno,omitempty"`
	Materia *Materia `gorm:"foreignKey:IDMateria" json:"materia,omitempty"`
}

// TableName nombre de tabla.
func (AlumnoMateria) TableName() string { return "alumno_materia" }

// CarreraMateria tabla intermedia carrera_materia: qué materias incluye cada carrera.
// Cada par (id_carrera, id_materia) es único.
type CarreraMateria struct {
	ID        uint `gorm:"primaryKey"                 json:"id"`
	IDCarrera uint `gorm:"column:id_carrera;not null" json:"id_carrera,omitempty"`
	IDMateria uint `gorm:"column:id_materia;not null" json:"id_materia,omitempty"`
	Registro

	Carrera *Carrera `gorm:"foreignKey:IDCarrera" json:"carrera,omitempty"`
	Materia *Materia `gorm:"foreignKey:IDMateria" json:"materia,omitempty"`
}

// TableName nombre de tabla.
func (CarreraMateria) TableName() string { return "carrera_materia" }
