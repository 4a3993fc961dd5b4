package dto

// LoginRequest credenciales del operador administrador.
type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// TokenResponse token Bearer emitido tras el login.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
}
