package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/model"
	"github.com/matiashmuller/ep-api-tp/internal/repository"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
)

// DocenteService reglas de negocio de docentes.
type DocenteService interface {
	List(ctx context.Context, params paginacion.Parametros) ([]*dto.DocenteDetalle, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.DocenteDetalle, error)
	Create(ctx context.Context, req *dto.CrearDocenteRequest) (uint, error)
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type docenteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDocenteService crea un DocenteService.
func NewDocenteService(repo *repository.Repository, logger *zap.Logger) DocenteService {
	return &docenteService{repo: repo, logger: logger}
}

func (s *docenteService) List(ctx context.Context, params paginacion.Parametros) ([]*dto.DocenteDetalle, int64, error) {
	docentes, total, err := s.repo.Docente.List(ctx, params.Offset(), params.CantPorPag)
	if err != nil {
		s.logger.Error("error al listar docentes", zap.Error(err))
		return nil, 0, err
	}
	detalles := make([]*dto.DocenteDetalle, 0, len(docentes))
	for i := range docentes {
		detalles = append(detalles, dto.NuevoDocenteDetalle(&docentes[i]))
	}
	return detalles, total, nil
}

func (s *docenteService) GetByID(ctx context.Context, id uint) (*dto.DocenteDetalle, error) {
	docente, err := s.repo.Docente.GetByID(ctx, id)
	if err != nil {
		return nil, clasificar(err, "docente", id)
	}
	return dto.NuevoDocenteDetalle(docente), nil
}

func (s *docenteService) Create(ctx context.Context, req *dto.CrearDocenteRequest) (uint, error) {
	docente := &model.Docente{
		DNI:      req.DNI,
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Titulo:   req.Titulo,
		FechaNac: req.FechaNac,
	}
	if err := s.repo.Docente.Create(ctx, docente); err != nil {
		s.logger.Error("error al crear docente", zap.Error(err))
		return 0, clasificar(err, "docente", 0)
	}
	return docente.ID, nil
}

func (s *docenteService) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	if _, err := s.repo.Docente.GetByID(ctx, id); err != nil {
		return clasificar(err, "docente", id)
	}
	if err := s.repo.Docente.Update(ctx, id, campos); err != nil {
		s.logger.Error("error al actualizar docente", zap.Uint("id", id), zap.Error(err))
		return clasificar(err, "docente", id)
	}
	return nil
}

func (s *docenteService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Docente.GetByID(ctx, id); err != nil {
		return clasificar(err, "docente", id)
	}
	if err := s.repo.Docente.Delete(ctx, id); err != nil {
		s.logger.Error("error al eliminar docente", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
