package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/model"
	"github.com/matiashmuller/ep-api-tp/internal/repository"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
)

// ComisionService reglas de negocio de comisiones.
type ComisionService interface {
	List(ctx context.Context, params paginacion.Parametros) ([]*dto.ComisionDetalle, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.ComisionDetalle, error)
	Create(ctx context.Context, req *dto.CrearComisionRequest) (uint, error)
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type comisionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewComisionService crea un ComisionService.
func NewComisionService(repo *repository.Repository, logger *zap.Logger) ComisionService {
	return &comisionService{repo: repo, logger: logger}
}

func (s *comisionService) List(ctx context.Context, params paginacion.Parametros) ([]*dto.ComisionDetalle, int64, error) {
	comisiones, total, err := s.repo.Comision.List(ctx, params.Offset(), params.CantPorPag)
	if err != nil {
		s.logger.Error("error al listar comisiones", zap.Error(err))
		return nil, 0, err
	}
	detalles := make([]*dto.ComisionDetalle, 0, len(comisiones))
	for i := range comisiones {
		detalles = append(detalles, dto.NuevaComisionDetalle(&comisiones[i]))
	}
	return detalles, total, nil
}

func (s *comisionService) GetByID(ctx context.Context, id uint) (*dto.ComisionDetalle, error) {
	comision, err := s.repo.Comision.GetByID(ctx, id)
	if err != nil {
		return nil, clasificar(err, "comision", id)
	}
	return dto.NuevaComisionDetalle(comision), nil
}

func (s *comisionService) Create(ctx context.Context, req *dto.CrearComisionRequest) (uint, error) {
	if err := verificarReferencia(ctx, s.repo.Materia.Existe, "materia", req.IDMateria); err != nil {
		return 0, err
	}
	if err := verificarReferencia(ctx, s.repo.Docente.Existe, "docente", req.IDDocente); err != nil {
		return 0, err
	}
	comision := &model.Comision{
		Letra:     req.Letra,
		Dias:      req.Dias,
		Turno:     req.Turno,
		IDMateria: req.IDMateria,
		IDDocente: req.IDDocente,
	}
	if err := s.repo.Comision.Create(ctx, comision); err != nil {
		s.logger.Error("error al crear comisión", zap.Error(err))
		return 0, clasificar(err, "comision", 0)
	}
	return comision.ID, nil
}

func (s *comisionService) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	if _, err := s.repo.Comision.GetByID(ctx, id); err != nil {
		return clasificar(err, "comision", id)
	}
	if err := verificarReferenciaEnCampos(ctx, s.repo.Materia.Existe, "materia", "id_materia", campos); err != nil {
		return err
	}
	if err := verificarReferenciaEnCampos(ctx, s.repo.Docente.Existe, "docente", "id_docente", campos); err != nil {
		return err
	}
	if err := s.repo.Comision.Update(ctx, id, campos); err != nil {
		s.logger.Error("error al actualizar comisión", zap.Uint("id", id), zap.Error(err))
		return clasificar(err, "comision", id)
	}
	return nil
}

func (s *comisionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Comision.GetByID(ctx, id); err != nil {
		return clasificar(err, "comision", id)
	}
	if err := s.repo.Comision.Delete(ctx, id); err != nil {
		s.logger.Error("error al eliminar comisión", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
