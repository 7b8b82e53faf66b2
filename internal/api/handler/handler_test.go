package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/pkg/paginacion"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock AlumnoService ──

type mockAlumnoService struct {
	listResult []*dto.AlumnoDetalle
	listTotal  int64
	listErr    error
	getResult  *dto.AlumnoDetalle
	getErr     error
	createID   uint
	createErr  error
	updateErr  error
	deleteErr  error
}

func (m *mockAlumnoService) List(_ context.Context, _ paginacion.Parametros) ([]*dto.AlumnoDetalle, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockAlumnoService) GetByID(_ context.Context, _ uint) (*dto.AlumnoDetalle, error) {
	return m.getResult, m.getErr
}
func (m *mockAlumnoService) Create(_ context.Context, _ *dto.CrearAlumnoRequest) (uint, error) {
	return m.createID, m.createErr
}
func (m *mockAlumnoService) Update(_ context.Context, _ uint, _ map[string]interface{}) error {
	return m.updateErr
}
func (m *mockAlumnoService) Delete(_ context.Context, _ uint) error {
	return m.deleteErr
}

// ── Mock AuthService ──

type mockAuthService struct {
	registroResult *dto.TokenResponse
	registroErr    error
	loginResult    *dto.TokenResponse
	loginErr       error
	cuentaResult   *dto.CuentaResponse
	cuentaErr      error
}

func (m *mockAuthService) Registro(_ context.Context, _ *dto.RegistroRequest) (*dto.TokenResponse, error) {
	return m.registroResult, m.registroErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Cuenta(_ context.Context, _ string) (*dto.CuentaResponse, error) {
	return m.cuentaResult, m.cuentaErr
}

// helper compartido por los tests de este paquete
func rutasAlumno(svc *mockAlumnoService) *gin.Engine {
	h := NewAlumnoHandler(svc)
	r := gin.New()
	r.GET("/alum", h.ListarAlumnos)
	r.GET("/alum/:id", h.ObtenerAlumno)
	r.POST("/alum", h.RegistrarAlumno)
	r.PUT("/alum/:id", h.ActualizarAlumno)
	r.DELETE("/alum/:id", h.BorrarAlumno)
	return r
}

func rutasAuth(svc *mockAuthService) *gin.Engine {
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/auth/registro", h.RegistrarUsuario)
	r.POST("/auth/login", h.IniciarSesion)
	r.GET("/auth/logout", h.CerrarSesion)
	r.GET("/auth/cuenta", h.VerCuenta)
	return r
}
