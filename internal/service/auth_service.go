package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/matiashmuller/ep-api-tp/internal/dto"
	"github.com/matiashmuller/ep-api-tp/internal/model"
	"github.com/matiashmuller/ep-api-tp/internal/repository"
	"github.com/matiashmuller/ep-api-tp/pkg/apperrors"
	"github.com/matiashmuller/ep-api-tp/pkg/jwt"
)

// ErrUsuarioNoEncontrado indica un intento de login con un usuario inexistente.
var ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")

// costoBcrypt costo de hash de contraseñas.
const costoBcrypt = 10

// AuthService registro, login y consulta de cuenta.
type AuthService interface {
	Registro(ctx context.Context, req *dto.RegistroRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Cuenta(ctx context.Context, nombre string) (*dto.CuentaResponse, error)
}

type authService struct {
	repo   *repository.Repository
	jwt    *jwt.Manager
	logger *zap.Logger
}

// NewAuthService crea un AuthService.
func NewAuthService(repo *repository.Repository, jwtManager *jwt.Manager, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwt: jwtManager, logger: logger}
}

// ────────────────────── Registro ──────────────────────

func (s *authService) Registro(ctx context.Context, req *dto.RegistroRequest) (*dto.TokenResponse, error) {
	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return nil, apperrors.ErrEmailInvalido
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contraseña), costoBcrypt)
	if err != nil {
		s.logger.Error("error al hashear contraseña", zap.Error(err))
		return nil, err
	}
	usuario := &model.Usuario{
		Nombre:     req.Nombre,
		Email:      req.Email,
		Contraseña: string(hash),
	}
	if err := s.repo.Usuario.Create(ctx, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrYaExiste
		}
		s.logger.Error("error al crear usuario", zap.Error(err))
		return nil, err
	}

	token, err := s.jwt.Generar(usuario.Nombre)
	if err != nil {
		s.logger.Error("error al firmar token", zap.Error(err))
		return nil, err
	}
	return &dto.TokenResponse{
		Message: fmt.Sprintf("Éxito al registrar usuario. Usuario nuevo: %s.", usuario.Nombre),
		Token:   token,
	}, nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	usuario, err := s.repo.Usuario.GetByNombreOEmail(ctx, req.Nombre, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		s.logger.Error("error al buscar usuario", zap.Error(err))
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contraseña), []byte(req.Contraseña)); err != nil {
		return nil, apperrors.ErrContraseñaIncorrecta
	}

	token, err := s.jwt.Generar(usuario.Nombre)
	if err != nil {
		s.logger.Error("error al firmar token", zap.Error(err))
		return nil, err
	}
	return &dto.TokenResponse{
		Message: fmt.Sprintf("Éxito al iniciar sesión. Usuario autenticado: %s.", usuario.Nombre),
		Token:   token,
	}, nil
}

// ────────────────────── Cuenta ──────────────────────

func (s *authService) Cuenta(ctx context.Context, nombre string) (*dto.CuentaResponse, error) {
	usuario, err := s.repo.Usuario.GetByNombre(ctx, nombre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		s.logger.Error("error al buscar usuario", zap.String("nombre", nombre), zap.Error(err))
		return nil, err
	}
	return &dto.CuentaResponse{ID: usuario.ID, Nombre: usuario.Nombre, Email: usuario.Email}, nil
}
