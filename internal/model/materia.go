package model

// Materia tabla materias.
type Materia struct {
	ID           uint   `gorm:"primaryKey"                 json:"id"`
	Nombre       string `gorm:"type:varchar(255);not null" json:"nombre"`
	CargaHoraria int    `gorm:"column:carga_horaria"       json:"carga_horaria"`
	Registro

	// Asociaciones
	Carreras   []CarreraMateria `gorm:"foreignKey:IDMateria" json:"carrerasQueLaIncluyen,omitempty"`
	Comisiones []Comision       `gorm:"foreignKey:IDMateria" json:"comisiones,omitempty"`
}

// TableName nombre de tabla.
func (Materia) TableName() string { return "materias" }
