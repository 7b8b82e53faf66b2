package model

// Usuario tabla usuarios. Cuenta de acceso a la API, sin relación con
// las entidades académicas.
type Usuario struct {
	ID         uint   `gorm:"primaryKey"                             json:"id"`
	Nombre     string `gorm:"type:varchar(255);not null;uniqueIndex" json:"nombre"`
	Email      string `gorm:"type:varchar(255)"                      json:"email"`
	Contraseña string `gorm:"column:contraseña;type:varchar(255);not null" json:"-"`
	Registro
}

// TableName nombre de tabla.
func (Usuario) TableName() string { return "usuarios" }
