package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const claveRequestID = "request_id"

// largoMaxRequestID limita el largo de un Request-ID externo para no
// contaminar los logs.
const largoMaxRequestID = 64

// RequestID lee X-Request-ID de la petición o genera un UUID si no
// viene, lo inyecta al contexto y lo devuelve en la respuesta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > largoMaxRequestID {
			rid = uuid.New().String()
		}

		c.Set(claveRequestID, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
