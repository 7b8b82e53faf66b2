package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/matiashmuller/ep-api-tp/internal/model"
)

// UsuarioRepository define el acceso a datos de cuentas de usuario.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *model.Usuario) error
	GetByNombre(ctx context.Context, nombre string) (*model.Usuario, error)
	GetByNombreOEmail(ctx context.Context, nombre, email string) (*model.Usuario, error)
}

type usuarioRepo struct {
	db *gorm.DB
}

func NewUsuarioRepo(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) Create(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepo) GetByNombre(ctx context.Context, nombre string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) GetByNombreOEmail(ctx context.Context, nombre, email string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).Where("nombre = ? OR email = ?", nombre, email).First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}
