package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/matiashmuller/ep-api-tp/internal/repository"
)

// ErrExportacionFallida indica que no se pudo generar la planilla.
var ErrExportacionFallida = errors.New("error al generar la planilla")

// ExportService genera planillas xlsx con los datos académicos.
type ExportService interface {
	Alumnos(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService crea un ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// Alumnos arma una planilla con todos los alumnos, su carrera y la
// cantidad de materias que cursan. Devuelve el buffer y el nombre de
// archivo sugerido.
func (s *exportService) Alumnos(ctx context.Context) (*bytes.Buffer, string, error) {
	// Limit -1 desactiva el LIMIT: la planilla lleva el padrón completo.
	alumnos, _, err := s.repo.Alumno.List(ctx, 0, -1)
	if err != nil {
		s.logger.Error("error al leer alumnos para exportar", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	hoja := "Alumnos"
	idx, err := f.NewSheet(hoja)
	if err != nil {
		return nil, "", ErrExportacionFallida
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(hoja, "A", "A", 6)
	f.SetColWidth(hoja, "B", "B", 12)
	f.SetColWidth(hoja, "C", "D", 18)
	f.SetColWidth(hoja, "E", "F", 24)

	estiloCabecera, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	cabeceras := []string{"ID", "DNI", "Nombre", "Apellido", "Fecha de nacimiento", "Carrera", "Materias que cursa"}
	for i, c := range cabeceras {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(hoja, celda, c)
		f.SetCellStyle(hoja, celda, celda, estiloCabecera)
	}

	for fila, a := range alumnos {
		valores := []interface{}{
			a.ID, a.DNI, a.Nombre, a.Apellido, string(a.FechaNac), "", len(a.Materias),
		}
		if a.Carrera != nil {
			valores[5] = a.Carrera.Nombre
		}
		for col, v := range valores {
			celda, _ := excelize.CoordinatesToCellName(col+1, fila+2)
			f.SetCellValue(hoja, celda, v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("error al escribir planilla", zap.Error(err))
		return nil, "", ErrExportacionFallida
	}

	nombre := fmt.Sprintf("alumnos_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, nombre, nil
}
