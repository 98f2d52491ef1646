package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

// Session é o resultado de um login aceito pela API remota
type Session struct {
	Token     string     `json:"-"`
	Redirect  string     `json:"redirect,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Claims são os dados legíveis de um token JWT emitido pela API.
// A assinatura não é verificada aqui: quem valida o token é a própria API.
type Claims struct {
	Username string `json:"unique_name,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
