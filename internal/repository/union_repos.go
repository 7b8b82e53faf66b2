package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/matiashmuller/ep-api-tp/internal/model"
)

// AlumnoMateriaRepository define el acceso a las inscripciones alumno-materia.
type AlumnoMateriaRepository interface {
	List(ctx context.Context, offset, limit int) ([]model.AlumnoMateria, int64, error)
	GetByID(ctx context.Context, id uint) (*model.AlumnoMateria, error)
	Create(ctx context.Context, registro *model.AlumnoMateria) error
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type alumnoMateriaRepo struct {
	db *gorm.DB
}

func NewAlumnoMateriaRepo(db *gorm.DB) AlumnoMateriaRepository {
	return &alumnoMateriaRepo{db: db}
}

func (r *alumnoMateriaRepo) List(ctx context.Context, offset, limit int) ([]model.AlumnoMateria, int64, error) {
	var registros []model.AlumnoMateria
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.AlumnoMateria{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Preload("Alumno").
		Preload("Materia").
		Order("id").
		Offset(offset).Limit(limit).
		Find(&registros).Error
	if err != nil {
		return nil, 0, err
	}
	return registros, total, nil
}

func (r *alumnoMateriaRepo) GetByID(ctx context.Context, id uint) (*model.AlumnoMateria, error) {
	var registro model.AlumnoMateria
	err := r.db.WithContext(ctx).
		Preload("Alumno").
		Preload("Materia").
		First(&registro, id).Error
	if err != nil {
		return nil, err
	}
	return &registro, nil
}

func (r *alumnoMateriaRepo) Create(ctx context.Context, registro *model.AlumnoMateria) error {
	return r.db.WithContext(ctx).Create(registro).Error
}

func (r *alumnoMateriaRepo) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	// Un mapa vacío es una actualización sin cambios, no un error.
	if len(campos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.AlumnoMateria{}).Where("id = ?", id).Updates(campos).Error
}

func (r *alumnoMateriaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.AlumnoMateria{}, id).Error
}

// CarreraMateriaRepository define el acceso a las incumbencias carrera-materia.
type CarreraMateriaRepository interface {
	List(ctx context.Context, offset, limit int) ([]model.CarreraMateria, int64, error)
	GetByID(ctx context.Context, id uint) (*model.CarreraMateria, error)
	Create(ctx context.Context, registro *model.CarreraMateria) error
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type carreraMateriaRepo struct {
	db *gorm.DB
}

func NewCarreraMateriaRepo(db *gorm.DB) CarreraMateriaRepository {
	return &carreraMateriaRepo{db: db}
}

func (r *carreraMateriaRepo) List(ctx context.Context, offset, limit int) ([]model.CarreraMateria, int64, error) {
	var registros []model.CarreraMateria
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.CarreraMateria{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Preload("Carrera").
		Preload("Materia").
		Order("id").
		Offset(offset).Limit(limit).
		Find(&registros).Error
	if err != nil {
		return nil, 0, err
	}
	return registros, total, nil
}

func (r *carreraMateriaRepo) GetByID(ctx context.Context, id uint) (*model.CarreraMateria, error) {
	var registro model.CarreraMateria
	err := r.db.WithContext(ctx).
		Preload("Carrera").
		Preload("Materia").
		First(&registro, id).Error
	if err != nil {
		return nil, err
	}
	return &registro, nil
}

func (r *carreraMateriaRepo) Create(ctx context.Context, registro *model.CarreraMateria) error {
	return r.db.WithContext(ctx).Create(registro).Error
}

func (r *carreraMateriaRepo) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	// Un mapa vacío es una actualización sin cambios, no un error.
	if len(campos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.CarreraMateria{}).Where("id = ?", id).Updates(campos).Error
}

func (r *carreraMateriaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.CarreraMateria{}, id).Error
}
