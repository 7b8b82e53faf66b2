package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger registra el desenlace de cada petición con zap. El logger que
// recibe lleva el núcleo con persistencia en la tabla logs, así cada
// petición deja exactamente una fila.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latencia := time.Since(inicio)
		status := c.Writer.Status()

		campos := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", latencia),
		}

		if len(c.Errors) > 0 {
			campos = append(campos, zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()))
		}

		switch {
		case status >= 500:
			logger.Error("error al procesar la petición", campos...)
		case status >= 400:
			logger.Warn("error del cliente", campos...)
		default:
			logger.Info("petición completada", campos...)
		}
	}
}
