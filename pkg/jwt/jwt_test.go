package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/matiashmuller/ep-api-tp/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "secreto-de-prueba-suficientemente-largo",
		TokenTTL:  ttl,
	})
}

func TestGenerarYVerificar(t *testing.T) {
	m := newTestManager(time.Hour)

	token, err := m.Generar("matias")
	if err != nil {
		t.Fatalf("Generar debería funcionar: %v", err)
	}

	claims, err := m.Verificar(token)
	if err != nil {
		t.Fatalf("Verificar debería funcionar: %v", err)
	}
	if claims.Nombre != "matias" {
		t.Errorf("claim nombre esperado matias, llegó %s", claims.Nombre)
	}
}

func TestVerificar_TokenVencido(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.Generar("matias")
	if err != nil {
		t.Fatalf("Generar debería funcionar: %v", err)
	}

	_, err = m.Verificar(token)
	if !errors.Is(err, ErrTokenVencido) {
		t.Errorf("se esperaba ErrTokenVencido, llegó: %v", err)
	}
}

func TestVerificar_FirmaAjena(t *testing.T) {
	m := newTestManager(time.Hour)
	otro := NewManager(&config.AuthConfig{
		JWTSecret: "otro-secreto-igualmente-largo-123",
		TokenTTL:  time.Hour,
	})

	token, err := otro.Generar("matias")
	if err != nil {
		t.Fatalf("Generar debería funcionar: %v", err)
	}

	if _, err := m.Verificar(token); !errors.Is(err, ErrTokenInvalido) {
		t.Errorf("se esperaba ErrTokenInvalido, llegó: %v", err)
	}
}

func TestVerificar_Basura(t *testing.T) {
	m := newTestManager(time.Hour)

	if _, err := m.Verificar("no.es.jwt"); !errors.Is(err, ErrTokenInvalido) {
		t.Errorf("se esperaba ErrTokenInvalido, llegó: %v", err)
	}
}
