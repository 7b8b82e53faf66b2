package dto

// RegistroRequest cuerpo de POST /auth/registro.
type RegistroRequest struct {
	Nombre     string `json:"nombre" binding:"required"`
	Email      string `json:"email"`
	Contraseña string `json:"contraseña" binding:"required"`
}

// LoginRequest cuerpo de POST /auth/login. Admite nombre o email como
// identificador; al menos uno debe estar presente.
type LoginRequest struct {
	Nombre     string `json:"nombre"`
	Email      string `json:"email"`
	Contraseña string `json:"contraseña" binding:"required"`
}

// TokenResponse respuesta de registro y de login.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// CuentaResponse respuesta de GET /auth/cuenta.
type CuentaResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}
