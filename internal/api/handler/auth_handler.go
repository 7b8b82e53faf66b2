package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/internal/api/middleware"
	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/service"
	"github.com/matiashmuller/ep-api-tp/pkg/apperrors"
	"github.com/matiashmuller/ep-api-tp/pkg/response"
)

// AuthHandler manejador HTTP de registro, sesión y cuenta.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler crea un AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// RegistrarUsuario POST /auth/registro
func (h *AuthHandler) RegistrarUsuario(c *gin.Context) {
	var req dto.RegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}

	resp, err := h.authSvc.Registro(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrYaExiste) {
			response.BadRequest(c, "Error al registrar usuario: El nombre de usuario ya está en uso.")
			return
		}
		responderAlError(c, err)
		return
	}
	response.OK(c, resp)
}

// IniciarSesion POST /auth/login
func (h *AuthHandler) IniciarSesion(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Bad request: cuerpo JSON inválido.")
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNoEncontrado) {
			identidad := req.Nombre
			if identidad == "" {
				identidad = req.Email
			}
			response.NoEncontradoTexto(c, fmt.Sprintf("Error: Usuario '%s' no encontrado.", identidad))
			return
		}
		responderAlError(c, err)
		return
	}
	response.OK(c, resp)
}

// VerCuenta GET /auth/cuenta
func (h *AuthHandler) VerCuenta(c *gin.Context) {
	nombre := c.GetString(middleware.ClaveNombre)

	cuenta, err := h.authSvc.Cuenta(c.Request.Context(), nombre)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNoEncontrado) {
			response.NoEncontradoTexto(c, fmt.Sprintf("Error: Usuario '%s' no encontrado.", nombre))
			return
		}
		responderAlError(c, err)
		return
	}
	response.OK(c, cuenta)
}

// CerrarSesion GET /auth/logout
// El token se descarta del lado del cliente; acá solo se confirma.
func (h *AuthHandler) CerrarSesion(c *gin.Context) {
	c.String(http.StatusOK, "Éxito al cerrar sesión.")
}
