package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/model"
	"github.com/matiashmuller/ep-api-tp/internal/repository"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
)

// AlumnoMateriaService reglas de negocio de inscripciones alumno-materia.
type AlumnoMateriaService interface {
	List(ctx context.Context, params paginacion.Parametros) ([]*dto.AlumnoMateriaDetalle, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.AlumnoMateriaDetalle, error)
	Create(ctx context.Context, req *dto.CrearAlumnoMateriaRequest) (uint, error)
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type alumnoMateriaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAlumnoMateriaService crea un AlumnoMateriaService.
func NewAlumnoMateriaService(repo *repository.Repository, logger *zap.Logger) AlumnoMateriaService {
	return &alumnoMateriaService{repo: repo, logger: logger}
}

func (s *alumnoMateriaService) List(ctx context.Context, params paginacion.Parametros) ([]*dto.AlumnoMateriaDetalle, int64, error) {
	registros, total, err := s.repo.AlumnoMateria.List(ctx, params.Offset(), params.CantPorPag)
	if err != nil {
		s.logger.Error("error al listar alumno_materia", zap.Error(err))
		return nil, 0, err
	}
	detalles := make([]*dto.AlumnoMateriaDetalle, 0, len(registros))
	for i := range registros {
		detalles = append(detalles, dto.NuevoAlumnoMateriaDetalle(&registros[i]))
	}
	return detalles, total, nil
}

func (s *alumnoMateriaService) GetByID(ctx context.Context, id uint) (*dto.AlumnoMateriaDetalle, error) {
	registro, err := s.repo.AlumnoMateria.GetByID(ctx, id)
	if err != nil {
		return nil, clasificar(err, "alumno_materia", id)
	}
	return dto.NuevoAlumnoMateriaDetalle(registro), nil
}

func (s *alumnoMateriaService) Create(ctx context.Context, req *dto.CrearAlumnoMateriaRequest) (uint, error) {
	if err := verificarReferencia(ctx, s.repo.Alumno.Existe, "alumno", req.IDAlumno); err != nil {
		return 0, err
	}
	if err := verificarReferencia(ctx, s.repo.Materia.Existe, "materia", req.IDMateria); err != nil {
		return 0, err
	}
	registro := &model.AlumnoMateria{IDAlumno: req.IDAlumno, IDMateria: req.IDMateria}
	if err := s.repo.AlumnoMateria.Create(ctx, registro); err != nil {
		s.logger.Error("error al crear alumno_materia", zap.Error(err))
		return 0, clasificar(err, "alumno_materia", 0)
	}
	return registro.ID, nil
}

func (s *alumnoMateriaService) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	if _, err := s.repo.AlumnoMateria.GetByID(ctx, id); err != nil {
		return clasificar(err, "alumno_materia", id)
	}
	if err := verificarReferenciaEnCampos(ctx, s.repo.Alumno.Existe, "alumno", "id_alumno", campos); err != nil {
		return err
	}
	if err := verificarReferenciaEnCampos(ctx, s.repo.Materia.Existe, "materia", "id_materia", campos); err != nil {
		return err
	}
	if err := s.repo.AlumnoMateria.Update(ctx, id, campos); err != nil {
		s.logger.Error("error al actualizar alumno_materia", zap.Uint("id", id), zap.Error(err))
		return clasificar(err, "alumno_materia", id)
	}
	return nil
}

func (s *alumnoMateriaService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.AlumnoMateria.GetByID(ctx, id); err != nil {
		return clasificar(err, "alumno_materia", id)
	}
	if err := s.repo.AlumnoMateria.Delete(ctx, id); err != nil {
		s.logger.Error("error al eliminar alumno_materia", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// CarreraMateriaService reglas de negocio de incumbencias carrera-materia.
type CarreraMateriaService interface {
	List(ctx context.Context, params paginacion.Parametros) ([]*dto.CarreraMateriaDetalle, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.CarreraMateriaDetalle, error)
	Create(ctx context.Context, req *dto.CrearCarreraMateriaRequest) (uint, error)
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type carreraMateriaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCarreraMateriaService crea un CarreraMateriaService.
func NewCarreraMateriaService(repo *repository.Repository, logger *zap.Logger) CarreraMateriaService {
	return &carreraMateriaService{repo: repo, logger: logger}
}

func (s *carreraMateriaService) List(ctx context.Context, params paginacion.Parametros) ([]*dto.CarreraMateriaDetalle, int64, error) {
	registros, total, err := s.repo.CarreraMateria.List(ctx, params.Offset(), params.CantPorPag)
	if err != nil {
		s.logger.Error("error al listar carrera_materia", zap.Error(err))
		return nil, 0, err
	}
	detalles := make([]*dto.CarreraMateriaDetalle, 0, len(registros))
	for i := range registros {
		detalles = append(detalles, dto.NuevoCarreraMateriaDetalle(&registros[i]))
	}
	return detalles, total, nil
}

func (s *carreraMateriaService) GetByID(ctx context.Context, id uint) (*dto.CarreraMateriaDetalle, error) {
	registro, err := s.repo.CarreraMateria.GetByID(ctx, id)
	if err != nil {
		return nil, clasificar(err, "carrera_materia", id)
	}
	return dto.NuevoCarreraMateriaDetalle(registro), nil
}

func (s *carreraMateriaService) Create(ctx context.Context, req *dto.CrearCarreraMateriaRequest) (uint, error) {
	if err := verificarReferencia(ctx, s.repo.Carrera.Existe, "carrera", req.IDCarrera); err != nil {
		return 0, err
	}
	if err := verificarReferencia(ctx, s.repo.Materia.Existe, "materia", req.IDMateria); err != nil {
		return 0, err
	}
	registro := &model.CarreraMateria{IDCarrera: req.IDCarrera, IDMateria: req.IDMateria}
	if err := s.repo.CarreraMateria.Create(ctx, registro); err != nil {
		s.logger.Error("error al crear carrera_materia", zap.Error(err))
		return 0, clasificar(err, "carrera_materia", 0)
	}
	return registro.ID, nil
}

func (s *carreraMateriaService) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	if _, err := s.repo.CarreraMateria.GetByID(ctx, id); err != nil {
		return clasificar(err, "carrera_materia", id)
	}
	if err := verificarReferenciaEnCampos(ctx, s.repo.Carrera.Existe, "carrera", "id_carrera", campos); err != nil {
		return err
	}
	if err := verificarReferenciaEnCampos(ctx, s.repo.Materia.Existe, "materia", "id_materia", campos); err != nil {
		return err
	}
	if err := s.repo.CarreraMateria.Update(ctx, id, campos); err != nil {
		s.logger.Error("error al actualizar carrera_materia", zap.Uint("id", id), zap.Error(err))
		return clasificar(err, "carrera_materia", id)
	}
	return nil
}

func (s *carreraMateriaService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.CarreraMateria.GetByID(ctx, id); err != nil {
		return clasificar(err, "carrera_materia", id)
	}
	if err := s.repo.CarreraMateria.Delete(ctx, id); err != nil {
		s.logger.Error("error al eliminar carrera_materia", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
