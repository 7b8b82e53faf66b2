package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/matiashmuller/ep-api-tp/internal/model"
)

// MateriaRepository define el acceso a datos de materias.
type MateriaRepository interface {
	List(ctx context.Context, offset, limit int) ([]model.Materia, int64, error)
	GetByID(ctx context.Context, id uint) (*model.Materia, error)
	Create(ctx context.Context, materia *model.Materia) error
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Existe(ctx context.Context, id uint) (bool, error)
}

type materiaRepo struct {
	db *gorm.DB
}

func NewMateriaRepo(db *gorm.DB) MateriaRepository {
	return &materiaRepo{db: db}
}

func (r *materiaRepo) List(ctx context.Context, offset, limit int) ([]model.Materia, int64, error) {
	var materias []model.Materia
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Materia{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Preload("Carreras.Carrera").
		Preload("Comisiones.Docente").
		Order("id").
		Offset(offset).Limit(limit).
		Find(&materias).Error
	if err != nil {
		return nil, 0, err
	}
	return materias, total, nil
}

func (r *materiaRepo) GetByID(ctx context.Context, id uint) (*model.Materia, error) {
	var materia model.Materia
	err := r.db.WithContext(ctx).
		Preload("Carreras.Carrera").
		Preload("Comisiones.Docente").
		First(&materia, id).Error
	if err != nil {
		return nil, err
	}
	return &materia, nil
}

func (r *materiaRepo) Create(ctx context.Context, materia *model.Materia) error {
	return r.db.WithContext(ctx).Create(materia).Error
}

func (r *materiaRepo) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	// Un mapa vacío es una actualización sin cambios, no un error.
	if len(campos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Materia{}).Where("id = ?", id).Updates(campos).Error
}

func (r *materiaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Materia{}, id).Error
}

func (r *materiaRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var cuenta int64
	err := r.db.WithContext(ctx).Model(&model.Materia{}).Where("id = ?", id).Count(&cuenta).Error
	if err != nil {
		return false, err
	}
	return cuenta > 0, nil
}
