package handler

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// leerCuerpo decodifica el cuerpo JSON crudo conservando las claves tal
// como vinieron, para poder validarlas contra la lista de atributos.
// El binding directo a un struct descartaría las claves desconocidas.
func leerCuerpo(c *gin.Context) (map[string]json.RawMessage, error) {
	var cuerpo map[string]json.RawMessage
	if err := c.ShouldBindJSON(&cuerpo); err != nil {
		return nil, err
	}
	return cuerpo, nil
}

// decodificarEn re-serializa el cuerpo crudo dentro de un request tipado.
func decodificarEn(cuerpo map[string]json.RawMessage, destino interface{}) error {
	b, err := json.Marshal(cuerpo)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, destino)
}

// aMapa convierte el cuerpo crudo en un mapa genérico apto para una
// actualización parcial con gorm.
func aMapa(cuerpo map[string]json.RawMessage) (map[string]interface{}, error) {
	campos := make(map[string]interface{}, len(cuerpo))
	for k, v := range cuerpo {
		var valor interface{}
		if err := json.Unmarshal(v, &valor); err != nil {
			return nil, err
		}
		campos[k] = valor
	}
	return campos, nil
}
