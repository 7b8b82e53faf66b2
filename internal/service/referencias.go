package service

import (
	"context"
	"encoding/json"

	"github.com/matiashmuller/ep-api-tp/pkg/apperrors"
)

// existeFn consulta si la entidad referenciada existe.
type existeFn func(ctx context.Context, id uint) (bool, error)

// valorUint interpreta un valor de campo como id entero positivo. Los
// números JSON llegan como float64; json.Number aparece solo si el
// decodificador se configuró con UseNumber.
func valorUint(v interface{}) (uint, bool) {
	switch n := v.(type) {
	case float64:
		if n < 1 || n != float64(uint(n)) {
			return 0, false
		}
		return uint(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < 1 {
			return 0, false
		}
		return uint(i), true
	case int:
		if n < 1 {
			return 0, false
		}
		return uint(n), true
	case uint:
		if n < 1 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// verificarReferencia falla con ForeignKeyError si el id apuntado no existe.
func verificarReferencia(ctx context.Context, existe existeFn, entidad string, id uint) error {
	ok, err := existe(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &apperrors.ForeignKeyError{Entidad: entidad, ID: id}
	}
	return nil
}

// verificarReferenciaEnCampos valida la clave foránea de un mapa de
// actualización parcial si viene presente y no nula. Un valor nulo se
// deja pasar: desasocia la referencia. Un valor presente que no sea un
// entero positivo no puede apuntar a ninguna fila y falla igual que un
// id inexistente, antes de llegar a la base.
func verificarReferenciaEnCampos(ctx context.Context, existe existeFn, entidad, clave string, campos map[string]interface{}) error {
	v, presente := campos[clave]
	if !presente || v == nil {
		return nil
	}
	id, ok := valorUint(v)
	if !ok {
		return &apperrors.ForeignKeyError{Entidad: entidad, ID: id}
	}
	return verificarReferencia(ctx, existe, entidad, id)
}
