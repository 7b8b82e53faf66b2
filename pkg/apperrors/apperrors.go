package apperrors

import (
	"errors"
	"fmt"
)

// Errores centinela compartidos por toda la aplicación.
var (
	// ErrAtributosInvalidos indica que las claves del cuerpo de la petición
	// no coinciden con los atributos esperados para la entidad.
	ErrAtributosInvalidos = errors.New("Atributos ingresados incorrectos.")

	// ErrYaExiste indica una violación de unicidad en la base de datos.
	ErrYaExiste = errors.New("ya existe en la base de datos")

	// ErrContraseñaIncorrecta indica que la contraseña no coincide con el hash almacenado.
	ErrContraseñaIncorrecta = errors.New("contraseña incorrecta")

	// ErrEmailInvalido indica un email con formato inválido al registrarse.
	ErrEmailInvalido = errors.New("email con formato inválido")

	// ErrTokenInvalido indica un token ausente, malformado, vencido o con firma inválida.
	ErrTokenInvalido = errors.New("token inválido")
)

// NotFoundError indica que no existe registro con el id buscado.
type NotFoundError struct {
	Entidad string
	ID      uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con id %d no encontrado", e.Entidad, e.ID)
}

// NuevoNotFound construye un NotFoundError para la entidad e id dados.
func NuevoNotFound(entidad string, id uint) *NotFoundError {
	return &NotFoundError{Entidad: entidad, ID: id}
}

// ForeignKeyError indica que una clave foránea del cuerpo de la petición
// referencia un registro inexistente.
type ForeignKeyError struct {
	Entidad string
	ID      uint
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("%s con id %d no existe", e.Entidad, e.ID)
}

// EsNotFound devuelve el NotFoundError envuelto en err, si lo hay.
func EsNotFound(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// EsForeignKey devuelve el ForeignKeyError envuelto en err, si lo hay.
func EsForeignKey(err error) (*ForeignKeyError, bool) {
	var fk *ForeignKeyError
	if errors.As(err, &fk) {
		return fk, true
	}
	return nil, false
}
