// Package validar comprueba la forma del cuerpo de las peticiones de
// escritura contra la lista de atributos admitidos de cada entidad.
package validar

import (
	"encoding/json"

	"github.com/matiashmuller/ep-api-tp/pkg/apperrors"
)

// Atributos compara las claves presentes en el cuerpo contra las esperadas.
//
// En modo creación el conjunto de claves debe ser exactamente igual al
// esperado. En modo actualización alcanza con que sea un subconjunto: se
// admiten actualizaciones parciales, incluso vacías, pero ninguna clave
// desconocida. La comparación es por conjunto, no posicional: el orden de
// las claves de un JSON no está garantizado.
func Atributos(esperados []string, claves []string, actualizacion bool) error {
	admitidas := make(map[string]bool, len(esperados))
	for _, a := range esperados {
		admitidas[a] = true
	}

	if actualizacion {
		for _, c := range claves {
			if !admitidas[c] {
				return apperrors.ErrAtributosInvalidos
			}
		}
		return nil
	}

	if len(claves) != len(esperados) {
		return apperrors.ErrAtributosInvalidos
	}
	for _, c := range claves {
		if !admitidas[c] {
			return apperrors.ErrAtributosInvalidos
		}
	}
	return nil
}

// Claves devuelve las claves de un cuerpo JSON ya decodificado.
func Claves(cuerpo map[string]json.RawMessage) []string {
	claves := make([]string, 0, len(cuerpo))
	for k := range cuerpo {
		claves = append(claves, k)
	}
	return claves
}
