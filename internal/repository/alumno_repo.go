package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/matiashmuller/ep-api-tp/internal/model"
)

// AlumnoRepository define el acceso a datos de alumnos.
type AlumnoRepository interface {
	List(ctx context.Context, offset, limit int) ([]model.Alumno, int64, error)
	GetByID(ctx context.Context, id uint) (*model.Alumno, error)
	Create(ctx context.Context, alumno *model.Alumno) error
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Existe(ctx context.Context, id uint) (bool, error)
}

type alumnoRepo struct {
	db *gorm.DB
}

func NewAlumnoRepo(db *gorm.DB) AlumnoRepository {
	return &alumnoRepo{db: db}
}

func (r *alumnoRepo) List(ctx context.Context, offset, limit int) ([]model.Alumno, int64, error) {
	var alumnos []model.Alumno
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Alumno{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Preload("Carrera").
		Preload("Materias.Materia").
		Order("id").
		Offset(offset).Limit(limit).
		Find(&alumnos).Error
	if err != nil {
		return nil, 0, err
	}
	return alumnos, total, nil
}

func (r *alumnoRepo) GetByID(ctx context.Context, id uint) (*model.Alumno, error) {
	var alumno model.Alumno
	err := r.db.WithContext(ctx).
		Preload("Carrera").
		Preload("Materias.Materia").
		First(&alumno, id).Error
	if err != nil {
		return nil, err
	}
	return &alumno, nil
}

func (r *alumnoRepo) Create(ctx context.Context, alumno *model.Alumno) error {
	return r.db.WithContext(ctx).Create(alumno).Error
}

func (r *alumnoRepo) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	// Un mapa vacío es una actualización sin cambios, no un error.
	if len(campos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Alumno{}).Where("id = ?", id).Updates(campos).Error
}

func (r *alumnoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Alumno{}, id).Error
}

func (r *alumnoRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var cuenta int64
	err := r.db.WithContext(ctx).Model(&model.Alumno{}).Where("id = ?", id).Count(&cuenta).Error
	if err != nil {
		return false, err
	}
	return cuenta > 0, nil
}
