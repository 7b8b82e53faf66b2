package model

// Docente tabla docentes.
type Docente struct {
	ID       uint   `gorm:"primaryKey"                      json:"id"`
	DNI      int64  `gorm:"column:dni;not null;uniqueIndex" json:"dni"`
	Nombre   string `gorm:"type:varchar(255);not null"      json:"nombre"`
	Apellido string `gorm:"type:varchar(255);not null"      json:"apellido"`
	Titulo   string `gorm:"type:varchar(255)"               json:"titulo"`
	FechaNac Fecha  `gorm:"column:fecha_nac;type:date"      json:"fecha_nac"`
	Registro

	// Relación muchos a muchos con materia, simulada uno a muchos vía comisión.
	Comisiones []Comision `gorm:"foreignKey:IDDocente" json:"comisionesAsignadas,omitempty"`
}

// TableName nombre de tabla.
func (Docente) TableName() string { return "docentes" }
