package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/service"
	"github.com/matiashmuller/ep-api-tp/pkg/apperrors"
)

func TestRegistrarUsuario(t *testing.T) {
	svc := &mockAuthService{
		registroResult: &dto.TokenResponse{
			Message: "Éxito al registrar usuario. Usuario nuevo: matias.",
			Token:   "tok-123",
		},
	}
	r := rutasAuth(svc)

	cuerpo := `{"nombre":"matias","email":"matias@example.com","contraseña":"secreta123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/registro", bytes.NewBufferString(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status esperado 200, llegó %d: %s", w.Code, w.Body.String())
	}
	var resp dto.TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta no decodificable: %v", err)
	}
	if resp.Token != "tok-123" {
		t.Errorf("token inesperado: %q", resp.Token)
	}
}

func TestRegistrarUsuario_NombreEnUso(t *testing.T) {
	svc := &mockAuthService{registroErr: apperrors.ErrYaExiste}
	r := rutasAuth(svc)

	cuerpo := `{"nombre":"matias","contraseña":"secreta123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/registro", bytes.NewBufferString(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status esperado 400, llegó %d", w.Code)
	}
	if w.Body.String() != "Error al registrar usuario: El nombre de usuario ya está en uso." {
		t.Errorf("cuerpo inesperado: %q", w.Body.String())
	}
}

func TestIniciarSesion_UsuarioNoEncontrado(t *testing.T) {
	svc := &mockAuthService{loginErr: service.ErrUsuarioNoEncontrado}
	r := rutasAuth(svc)

	cuerpo := `{"nombre":"nadie","contraseña":"loquesea"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status esperado 404, llegó %d", w.Code)
	}
	if w.Body.String() != "Error: Usuario 'nadie' no encontrado." {
		t.Errorf("cuerpo inesperado: %q", w.Body.String())
	}
}

func TestIniciarSesion_UsuarioNoEncontrado_PorEmail(t *testing.T) {
	svc := &mockAuthService{loginErr: service.ErrUsuarioNoEncontrado}
	r := rutasAuth(svc)

	// Sin nombre, el mensaje identifica al usuario por el email usado.
	cuerpo := `{"email":"nadie@ejemplo.com","contraseña":"loquesea"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status esperado 404, llegó %d", w.Code)
	}
	if w.Body.String() != "Error: Usuario 'nadie@ejemplo.com' no encontrado." {
		t.Errorf("cuerpo inesperado: %q", w.Body.String())
	}
}

func TestIniciarSesion_ContraseñaIncorrecta(t *testing.T) {
	svc := &mockAuthService{loginErr: apperrors.ErrContraseñaIncorrecta}
	r := rutasAuth(svc)

	cuerpo := `{"nombre":"matias","contraseña":"equivocada"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status esperado 401, llegó %d", w.Code)
	}
	if w.Body.String() != "Error: Contraseña incorrecta." {
		t.Errorf("cuerpo inesperado: %q", w.Body.String())
	}
}

func TestCerrarSesion(t *testing.T) {
	r := rutasAuth(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status esperado 200, llegó %d", w.Code)
	}
	if w.Body.String() != "Éxito al cerrar sesión." {
		t.Errorf("cuerpo inesperado: %q", w.Body.String())
	}
}
