package authenticating

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	"github.com/vfg2006/bespoked-admin/internal/domain"
	"github.com/vfg2006/bespoked-admin/pkg/apiErrors"
	"github.com/vfg2006/bespoked-admin/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_authenticator.go -package=mocks

type Authenticator interface {
	Login(ctx context.Context, request domain.LoginRequest) (*domain.Session, error)
	ValidateToken(token string) (*domain.Claims, error)
}

type Service struct {
	client bespokedclient.Client
	now    func() time.Time
}

func NewService(client bespokedclient.Client) Authenticator {
	return &Service{
		client: client,
		now:    time.Now,
	}
}

// Login repassa as credenciais para a API; nenhuma senha é guardada ou verificada aqui
func (s *Service) Login(ctx context.Context, request domain.LoginRequest) (*domain.Session, error) {
	username := strings.TrimSpace(request.Username)
	if username == "" || request.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	resp, err := s.client.Login(ctx, username, request.Password)
	if err != nil {
		var apiErr *bespokedclient.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, apiErr.Message)
		}

		var authErr *bespokedclient.AuthenticationError
		if errors.As(err, &authErr) {
			return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, authErr.Reason)
		}

		return nil, err
	}

	session := &domain.Session{
		Token:    resp.Token,
		Redirect: resp.Redirect,
	}

	claims, err := s.ValidateToken(resp.Token)
	if err != nil {
		return nil, err
	}
	if claims != nil && claims.ExpiresAt != nil {
		expiresAt := claims.ExpiresAt.Time
		session.ExpiresAt = &expiresAt
	}

	log.ForContext(ctx).WithField("user_name", username).Info("Login realizado")

	return session, nil
}

// ValidateToken lê as claims de um token JWT sem verificar a assinatura e recusa tokens expirados.
// Tokens opacos (que não são JWT) devolvem claims nil sem erro; a API decide se são válidos.
func (s *Service) ValidateToken(token string) (*domain.Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token ausente")
	}

	claims := &domain.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, nil
	}

	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(s.now()) {
		return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
	}

	return claims, nil
}
