package logger

import (
	"encoding/json"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"github.com/matiashmuller/ep-api-tp/internal/model"
)

// dbCore es un zapcore.Core que persiste cada entrada como una fila de la
// tabla logs (nivel, mensaje, metadata). La escritura es fire-and-forget:
// corre en una goroutine propia y nunca bloquea la respuesta HTTP.
type dbCore struct {
	zapcore.LevelEnabler
	db     *gorm.DB
	campos []zapcore.Field
}

// NewDBCore crea el core de persistencia de logs.
func NewDBCore(db *gorm.DB, enab zapcore.LevelEnabler) zapcore.Core {
	return &dbCore{LevelEnabler: enab, db: db}
}

// ConRegistroEnDB devuelve un logger que, además de los cores del logger
// base, escribe cada entrada en la tabla logs.
func ConRegistroEnDB(base *zap.Logger, db *gorm.DB) *zap.Logger {
	return base.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, NewDBCore(db, c))
	}))
}

func (c *dbCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &dbCore{
		LevelEnabler: c.LevelEnabler,
		db:           c.db,
		campos:       make([]zapcore.Field, 0, len(c.campos)+len(fields)),
	}
	clone.campos = append(clone.campos, c.campos...)
	clone.campos = append(clone.campos, fields...)
	return clone
}

func (c *dbCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

func (c *dbCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.campos {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	metadata, err := json.Marshal(enc.Fields)
	if err != nil {
		metadata = []byte("{}")
	}

	fila := model.Log{
		Nivel:    entry.Level.String(),
		Mensaje:  entry.Message,
		Metadata: string(metadata),
	}

	// Inserción asíncrona: un fallo al loguear no debe afectar la petición.
	db := c.db
	go func() {
		_ = db.Create(&fila).Error
	}()

	return nil
}

func (c *dbCore) Sync() error { return nil }
