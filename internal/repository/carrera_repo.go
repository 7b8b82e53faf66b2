package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/matiashmuller/ep-api-tp/internal/model"
)

// CarreraRepository define el acceso a datos de carreras.
type CarreraRepository interface {
	List(ctx context.Context, offset, limit int) ([]model.Carrera, int64, error)
	GetByID(ctx context.Context, id uint) (*model.Carrera, error)
	Create(ctx context.Context, carrera *model.Carrera) error
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Existe(ctx context.Context, id uint) (bool, error)
}

type carreraRepo struct {
	db *gorm.DB
}

func NewCarreraRepo(db *gorm.DB) CarreraRepository {
	return &carreraRepo{db: db}
}

func (r *carreraRepo) List(ctx context.Context, offset, limit int) ([]model.Carrera, int64, error) {
	var carreras []model.Carrera
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Carrera{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Preload("Materias.Materia").
		Preload("Alumnos").
		Order("id").
		Offset(offset).Limit(limit).
		Find(&carreras).Error
	if err != nil {
		return nil, 0, err
	}
	return carreras, total, nil
}

func (r *carreraRepo) GetByID(ctx context.Context, id uint) (*model.Carrera, error) {
	var carrera model.Carrera
	err := r.db.WithContext(ctx).
		Preload("Materias.Materia").
		Preload("Alumnos").
		First(&carrera, id).Error
	if err != nil {
		return nil, err
	}
	return &carrera, nil
}

func (r *carreraRepo) Create(ctx context.Context, carrera *model.Carrera) error {
	return r.db.WithContext(ctx).Create(carrera).Error
}

func (r *carreraRepo) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	// Un mapa vacío es una actualización sin cambios, no un error.
	if len(campos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Carrera{}).Where("id = ?", id).Updates(campos).Error
}

func (r *carreraRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Carrera{}, id).Error
}

func (r *carreraRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var cuenta int64
	err := r.db.WithContext(ctx).Model(&model.Carrera{}).Where("id = ?", id).Count(&cuenta).Error
	if err != nil {
		return false, err
	}
	return cuenta > 0, nil
}
