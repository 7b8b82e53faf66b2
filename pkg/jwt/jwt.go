package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/matiashmuller/ep-api-tp/config"
)

var (
	ErrTokenVencido  = errors.New("token vencido")
	ErrTokenInvalido = errors.New("token inválido")
)

// Claims son las declaraciones propias del token de sesión.
// El nombre de usuario identifica la cuenta que hace la petición.
type Claims struct {
	Nombre string `json:"nombre"`
	jwtv5.RegisteredClaims
}

// Manager firma y verifica tokens de sesión.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager crea un Manager a partir de la configuración de autenticación.
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// TTL devuelve la vigencia configurada para los tokens emitidos.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Generar emite un token HS256 con vencimiento fijo para el usuario dado.
// No hay renovación: vencido el token, el cliente vuelve a iniciar sesión.
func (m *Manager) Generar(nombre string) (string, error) {
	now := time.Now()
	claims := Claims{
		Nombre: nombre,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "ep-api-tp",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verificar valida firma y vigencia, y devuelve las claims decodificadas.
func (m *Manager) Verificar(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenVencido
		}
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalido
	}

	return claims, nil
}
