package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/model"
	"github.com/matiashmuller/ep-api-tp/internal/repository"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
)

// AlumnoService reglas de negocio de alumnos.
type AlumnoService interface {
	List(ctx context.Context, params paginacion.Parametros) ([]*dto.AlumnoDetalle, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.AlumnoDetalle, error)
	Create(ctx context.Context, req *dto.CrearAlumnoRequest) (uint, error)
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type alumnoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAlumnoService crea un AlumnoService.
func NewAlumnoService(repo *repository.Repository, logger *zap.Logger) AlumnoService {
	return &alumnoService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *alumnoService) List(ctx context.Context, params paginacion.Parametros) ([]*dto.AlumnoDetalle, int64, error) {
	alumnos, total, err := s.repo.Alumno.List(ctx, params.Offset(), params.CantPorPag)
	if err != nil {
		s.logger.Error("error al listar alumnos", zap.Error(err))
		return nil, 0, err
	}
	detalles := make([]*dto.AlumnoDetalle, 0, len(alumnos))
	for i := range alumnos {
		detalles = append(detalles, dto.NuevoAlumnoDetalle(&alumnos[i]))
	}
	return detalles, total, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *alumnoService) GetByID(ctx context.Context, id uint) (*dto.AlumnoDetalle, error) {
	alumno, err := s.repo.Alumno.GetByID(ctx, id)
	if err != nil {
		return nil, clasificar(err, "alumno", id)
	}
	return dto.NuevoAlumnoDetalle(alumno), nil
}

// ────────────────────── Create ──────────────────────

func (s *alumnoService) Create(ctx context.Context, req *dto.CrearAlumnoRequest) (uint, error) {
	if req.IDCarrera != nil {
		if err := verificarReferencia(ctx, s.repo.Carrera.Existe, "carrera", *req.IDCarrera); err != nil {
			return 0, err
		}
	}
	alumno := &model.Alumno{
		DNI:       req.DNI,
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		FechaNac:  req.FechaNac,
		IDCarrera: req.IDCarrera,
	}
	if err := s.repo.Alumno.Create(ctx, alumno); err != nil {
		s.logger.Error("error al crear alumno", zap.Error(err))
		return 0, clasificar(err, "alumno", 0)
	}
	return alumno.ID, nil
}

// ────────────────────── Update ──────────────────────

func (s *alumnoService) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	if _, err := s.repo.Alumno.GetByID(ctx, id); err != nil {
		return clasificar(err, "alumno", id)
	}
	if err := verificarReferenciaEnCampos(ctx, s.repo.Carrera.Existe, "carrera", "id_carrera", campos); err != nil {
		return err
	}
	if err := s.repo.Alumno.Update(ctx, id, campos); err != nil {
		s.logger.Error("error al actualizar alumno", zap.Uint("id", id), zap.Error(err))
		return clasificar(err, "alumno", id)
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *alumnoService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Alumno.GetByID(ctx, id); err != nil {
		return clasificar(err, "alumno", id)
	}
	if err := s.repo.Alumno.Delete(ctx, id); err != nil {
		s.logger.Error("error al eliminar alumno", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
