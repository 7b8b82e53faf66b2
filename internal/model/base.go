package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ── Tipo fecha (solo día, sin hora) ──

// Fecha corresponde al tipo DATE de PostgreSQL y serializa como "2006-01-02".
// Implementa Scanner/Valuer de GORM y Marshaler/Unmarshaler de JSON.
type Fecha string

const formatoFecha = "2006-01-02"

// Scan convierte el valor devuelto por el driver en Fecha.
func (f *Fecha) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = ""
	case time.Time:
		*f = Fecha(v.Format(formatoFecha))
	case string:
		*f = Fecha(v)
	case []byte:
		*f = Fecha(v)
	default:
		return fmt.Errorf("Fecha.Scan: tipo no soportado %T", src)
	}
	return nil
}

// Value serializa la fecha para el driver.
func (f Fecha) Value() (driver.Value, error) {
	if f == "" {
		return nil, nil
	}
	t, err := time.Parse(formatoFecha, string(f))
	if err != nil {
		return nil, fmt.Errorf("Fecha.Value: fecha inválida %q: %w", string(f), err)
	}
	return t, nil
}

// Registro agrega los campos de auditoría comunes a todas las tablas.
// Las columnas conservan el nombre camelCase del esquema original.
type Registro struct {
	CreatedAt time.Time `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt;not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}
