package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/model"
	"github.com/matiashmuller/ep-api-tp/internal/repository"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
)

// CarreraService reglas de negocio de carreras.
type CarreraService interface {
	List(ctx context.Context, params paginacion.Parametros) ([]*dto.CarreraDetalle, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.CarreraDetalle, error)
	Create(ctx context.Context, req *dto.CrearCarreraRequest) (uint, error)
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type carreraService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCarreraService crea un CarreraService.
func NewCarreraService(repo *repository.Repository, logger *zap.Logger) CarreraService {
	return &carreraService{repo: repo, logger: logger}
}

func (s *carreraService) List(ctx context.Context, params paginacion.Parametros) ([]*dto.CarreraDetalle, int64, error) {
	carreras, total, err := s.repo.Carrera.List(ctx, params.Offset(), params.CantPorPag)
	if err != nil {
		s.logger.Error("error al listar carreras", zap.Error(err))
		return nil, 0, err
	}
	detalles := make([]*dto.CarreraDetalle, 0, len(carreras))
	for i := range carreras {
		detalles = append(detalles, dto.NuevaCarreraDetalle(&carreras[i]))
	}
	return detalles, total, nil
}

func (s *carreraService) GetByID(ctx context.Context, id uint) (*dto.CarreraDetalle, error) {
	carrera, err := s.repo.Carrera.GetByID(ctx, id)
	if err != nil {
		return nil, clasificar(err, "carrera", id)
	}
	return dto.NuevaCarreraDetalle(carrera), nil
}

func (s *carreraService) Create(ctx context.Context, req *dto.CrearCarreraRequest) (uint, error) {
	carrera := &model.Carrera{Nombre: req.Nombre}
	if err := s.repo.Carrera.Create(ctx, carrera); err != nil {
		s.logger.Error("error al crear carrera", zap.Error(err))
		return 0, clasificar(err, "carrera", 0)
	}
	return carrera.ID, nil
}

func (s *carreraService) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	if _, err := s.repo.Carrera.GetByID(ctx, id); err != nil {
		return clasificar(err, "carrera", id)
	}
	if err := s.repo.Carrera.Update(ctx, id, campos); err != nil {
		s.logger.Error("error al actualizar carrera", zap.Uint("id", id), zap.Error(err))
		return clasificar(err, "carrera", id)
	}
	return nil
}

func (s *carreraService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Carrera.GetByID(ctx, id); err != nil {
		return clasificar(err, "carrera", id)
	}
	if err := s.repo.Carrera.Delete(ctx, id); err != nil {
		s.logger.Error("error al eliminar carrera", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
