package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/matiashmuller/ep-api-tp/pkg/apperrors"
)

// clasificar mapea los errores traducidos de gorm a los errores de
// aplicación. Cualquier otro error pasa sin cambios.
func clasificar(err error, entidad string, id uint) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NuevoNotFound(entidad, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrYaExiste
	default:
		return err
	}
}
