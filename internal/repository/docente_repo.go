package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/matiashmuller/ep-api-tp/internal/model"
)

// DocenteRepository define el acceso a datos de docentes.
type DocenteRepository interface {
	List(ctx context.Context, offset, limit int) ([]model.Docente, int64, error)
	GetByID(ctx context.Context, id uint) (*model.Docente, error)
	Create(ctx context.Context, docente *model.Docente) error
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Existe(ctx context.Context, id uint) (bool, error)
}

type docenteRepo struct {
	db *gorm.DB
}

func NewDocenteRepo(db *gorm.DB) DocenteRepository {
	return &docenteRepo{db: db}
}

func (r *docenteRepo) List(ctx context.Context, offset, limit int) ([]model.Docente, int64, error) {
	var docentes []model.Docente
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Docente{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Preload("Comisiones.Materia").
		Order("id").
		Offset(offset).Limit(limit).
		Find(&docentes).Error
	if err != nil {
		return nil, 0, err
	}
	return docentes, total, nil
}

func (r *docenteRepo) GetByID(ctx context.Context, id uint) (*model.Docente, error) {
	var docente model.Docente
	err := r.db.WithContext(ctx).
		Preload("Comisiones.Materia").
		First(&docente, id).Error
	if err != nil {
		return nil, err
	}
	return &docente, nil
}

func (r *docenteRepo) Create(ctx context.Context, docente *model.Docente) error {
	return r.db.WithContext(ctx).Create(docente).Error
}

func (r *docenteRepo) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	// Un mapa vacío es una actualización sin cambios, no un error.
	if len(campos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Docente{}).Where("id = ?", id).Updates(campos).Error
}

func (r *docenteRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Docente{}, id).Error
}

func (r *docenteRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var cuenta int64
	err := r.db.WithContext(ctx).Model(&model.Docente{}).Where("id = ?", id).Count(&cuenta).Error
	if err != nil {
		return false, err
	}
	return cuenta > 0, nil
}
