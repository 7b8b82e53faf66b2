package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/matiashmuller/ep-api-tp/internal/model"
)

// ComisionRepository define el acceso a datos de comisiones.
type ComisionRepository interface {
	List(ctx context.Context, offset, limit int) ([]model.Comision, int64, error)
	GetByID(ctx context.Context, id uint) (*model.Comision, error)
	Create(ctx context.Context, comision *model.Comision) error
	Update(ctx context.Context, id uint, campos map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Existe(ctx context.Context, id uint) (bool, error)
}

type comisionRepo struct {
	db *gorm.DB
}

func NewComisionRepo(db *gorm.DB) ComisionRepository {
	return &comisionRepo{db: db}
}

func (r *comisionRepo) List(ctx context.Context, offset, limit int) ([]model.Comision, int64, error) {
	var comisiones []model.Comision
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Comision{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Preload("Materia").
		Preload("Docente").
		Order("id").
		Offset(offset).Limit(limit).
		Find(&comisiones).Error
	if err != nil {
		return nil, 0, err
	}
	return comisiones, total, nil
}

func (r *comisionRepo) GetByID(ctx context.Context, id uint) (*model.Comision, error) {
	var comision model.Comision
	err := r.db.WithContext(ctx).
		Preload("Materia").
		Preload("Docente").
		First(&comision, id).Error
	if err != nil {
		return nil, err
	}
	return &comision, nil
}

func (r *comisionRepo) Create(ctx context.Context, comision *model.Comision) error {
	return r.db.WithContext(ctx).Create(comision).Error
}

func (r *comisionRepo) Update(ctx context.Context, id uint, campos map[string]interface{}) error {
	// Un mapa vacío es una actualización sin cambios, no un error.
	if len(campos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Comision{}).Where("id = ?", id).Updates(campos).Error
}

func (r *comisionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Comision{}, id).Error
}

func (r *comisionRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var cuenta int64
	err := r.db.WithContext(ctx).Model(&model.Comision{}).Where("id = ?", id).Count(&cuenta).Error
	if err != nil {
		return false, err
	}
	return cuenta > 0, nil
}
