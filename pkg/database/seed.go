package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/matiashmuller/ep-api-tp/internal/model"
)

// Seed carga datos de ejemplo si las tablas académicas están vacías.
// Solo corre cuando db.seed es true en la configuración.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	var cuenta int64
	if err := db.Model(&model.Carrera{}).Count(&cuenta).Error; err != nil {
		return err
	}
	if cuenta > 0 {
		logger.Info("seed omitido: ya hay datos cargados")
		return nil
	}

	carreras := []model.Carrera{
		{Nombre: "Tecnicatura en programación"},
		{Nombre: "Licenciatura en informática"},
		{Nombre: "Ingeniería en sistemas"},
	}
	if err := db.Create(&carreras).Error; err != nil {
		return err
	}

	materias := []model.Materia{
		{Nombre: "Matemática I", CargaHoraria: 6},
		{Nombre: "Organización de computadoras", CargaHoraria: 8},
		{Nombre: "Programación I", CargaHoraria: 8},
	}
	if err := db.Create(&materias).Error; err != nil {
		return err
	}

	docentes := []model.Docente{
		{DNI: 28756986, Nombre: "Mónica", Apellido: "Villalba", Titulo: "Lic. en informática", FechaNac: "1982-07-06"},
		{DNI: 25321654, Nombre: "Héctor", Apellido: "Ruiz", Titulo: "Ing. en sistemas", FechaNac: "1979-03-21"},
	}
	if err := db.Create(&docentes).Error; err != nil {
		return err
	}

	idCarrera := carreras[0].ID
	alumnos := []model.Alumno{
		{DNI: 39666777, Nombre: "Ezequiel", Apellido: "Agüero", FechaNac: "1995-07-06", IDCarrera: &idCarrera},
	}
	if err := db.Create(&alumnos).Error; err != nil {
		return err
	}

	logger.Info("datos de ejemplo cargados",
		zap.Int("carreras", len(carreras)),
		zap.Int("materias", len(materias)),
		zap.Int("docentes", len(docentes)),
		zap.Int("alumnos", len(alumnos)),
	)
	return nil
}
