package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/internal/service"
	"github.com/matiashmuller/ep-api-tp/pkg/response"
)

const tipoContenidoXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler manejador HTTP de exportación de planillas.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler crea un ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportarAlumnos GET /exportar/alumnos
func (h *ExportHandler) ExportarAlumnos(c *gin.Context) {
	buf, nombre, err := h.exportSvc.Alumnos(c.Request.Context())
	if err != nil {
		response.ErrorInterno(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, nombre))
	c.Data(http.StatusOK, tipoContenidoXLSX, buf.Bytes())
}
