package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/model"
	"github.com/matiashmuller/ep-api-tp/internal/repository"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
)

// MateriaService reglas de negocio de materias.
type MateriaService interface {
	List(ctx context.Context, params paginacion.Parametros) ([]*dto.MateriaDetalle, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.MateriaDetalle, error)
	Create(ctx context.Context, req *dto.CrearMateriaRequest) (uint, error)
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type materiaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMateriaService crea un MateriaService.
func NewMateriaService(repo *repository.Repository, logger *zap.Logger) MateriaService {
	return &materiaService{repo: repo, logger: logger}
}

func (s *materiaService) List(ctx context.Context, params paginacion.Parametros) ([]*dto.MateriaDetalle, int64, error) {
	materias, total, err := s.repo.Materia.List(ctx, params.Offset(), params.CantPorPag)
	if err != nil {
		s.logger.Error("error al listar materias", zap.Error(err))
		return nil, 0, err
	}
	detalles := make([]*dto.MateriaDetalle, 0, len(materias))
	for i := range materias {
		detalles = append(detalles, dto.NuevaMateriaDetalle(&materias[i]))
	}
	return detalles, total, nil
}

func (s *materiaService) GetByID(ctx context.Context, id uint) (*dto.MateriaDetalle, error) {
	materia, err := s.repo.Materia.GetByID(ctx, id)
	if err != nil {
		return nil, clasificar(err, "materia", id)
	}
	return dto.NuevaMateriaDetalle(materia), nil
}

func (s *materiaService) Create(ctx context.Context, req *dto.CrearMateriaRequest) (uint, error) {
	materia := &model.Materia{Nombre: req.Nombre, CargaHoraria: req.CargaHoraria}
	if err := s.repo.Materia.Create(ctx, materia); err != nil {
		s.logger.Error("error al crear materia", zap.Error(err))
		return 0, clasificar(err, "materia", 0)
	}
	return materia.ID, nil
}

func (s *materiaService) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	if _, err := s.repo.Materia.GetByID(ctx, id); err != nil {
		return clasificar(err, "materia", id)
	}
	if err := s.repo.Materia.Update(ctx, id, campos); err != nil {
		s.logger.Error("error al actualizar materia", zap.Uint("id", id), zap.Error(err))
		return clasificar(err, "materia", id)
	}
	return nil
}

func (s *materiaService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Materia.GetByID(ctx, id); err != nil {
		return clasificar(err, "materia", id)
	}
	if err := s.repo.Materia.Delete(ctx, id); err != nil {
		s.logger.Error("error al eliminar materia", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
