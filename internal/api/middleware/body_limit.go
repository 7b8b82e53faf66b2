package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit limita el tamaño del cuerpo de las peticiones.
// maxBytes en bytes, por ejemplo 1<<20 para 1 MiB.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				c.String(http.StatusRequestEntityTooLarge, "Error: cuerpo de la petición demasiado grande.")
				return
			}
		}
	}
}
