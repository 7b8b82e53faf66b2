package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/pkg/jwt"
	"github.com/matiashmuller/ep-api-tp/pkg/response"
)

// ClaveNombre clave del contexto gin donde queda el nombre de usuario
// autenticado.
const ClaveNombre = "nombre"

// ValidarToken exige un token firmado en la cabecera `token`.
// Ausente: 401 {auth:false, message:"No existe token"}. Inválido o
// vencido: 401 {auth:false, message:"Token inválido"}. Válido: inyecta
// el nombre de usuario en el contexto y sigue.
func ValidarToken(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("token")
		if tokenString == "" {
			response.NoAutorizado(c, "No existe token")
			c.Abort()
			return
		}

		claims, err := jwtManager.Verificar(tokenString)
		if err != nil {
			response.NoAutorizado(c, "Token inválido")
			c.Abort()
			return
		}

		c.Set(ClaveNombre, claims.Nombre)
		c.Next()
	}
}
