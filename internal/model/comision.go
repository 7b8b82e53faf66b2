package model

// Comision tabla comisiones. Una comisión es el dictado de una materia
// por un docente en una franja (letra, días, turno).
// Unicidad: (letra, id_materia) y (id_docente, dias, turno); un docente
// no puede dictar dos comisiones en la misma franja.
type Comision struct {
	ID        uint   `gorm:"primaryKey"                  json:"id"`
	Letra     string `gorm:"type:varchar(5);not null"    json:"letra"`
	Dias      string `gorm:"type:varchar(255);not null"  json:"dias"`
	Turno     string `gorm:"type:varchar(50);not null"   json:"turno"`
	IDMateria uint   `gorm:"column:id_materia;not null"  json:"id_materia"`
	IDDocente uint   `gorm:"column:id_docente;not null"  json:"id_docente"`
	Registro

	// Asociaciones
	Materia *Materia `gorm:"foreignKey:IDMateria" json:"materia,omitempty"`
	Docente *Docente `gorm:"foreignKey:IDDocente" json:"docente,omitempty"`
}

// TableName nombre de tabla.
func (Comision) TableName() string { return "comisiones" }
