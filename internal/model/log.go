package model

import "time"

// Log tabla logs. Una fila por resultado de petición, de solo escritura:
// la aplicación nunca la consulta.
type Log struct {
	ID        uint      `gorm:"primaryKey"        json:"id"`
	Nivel     string    `gorm:"type:varchar(20)"  json:"nivel"`
	Mensaje   string    `gorm:"type:varchar(255)" json:"mensaje"`
	Metadata  string    `gorm:"type:jsonb"        json:"metadata"`
	CreatedAt time.Time `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName nombre de tabla.
func (Log) TableName() string { return "logs" }
