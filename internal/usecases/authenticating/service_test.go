package authenticating

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/mocks"
	"github.com/vfg2006/bespoked-admin/internal/domain"
	"github.com/vfg2006/bespoked-admin/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}).SignedString([]byte("chave-da-api"))
	require.NoError(t, err)
	return token
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		request domain.LoginRequest
		setup   func(client *mocks.MockClient)
		check   func(t *testing.T, session *domain.Session, err error)
	}{
		{
			name:    "token opaco",
			request: domain.LoginRequest{Username: " admin ", Password: "secret"},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Login(gomock.Any(), "admin", "secret").
					Return(&bespokeddomain.LoginResponse{Token: "opaque-token", Redirect: "/sales"}, nil)
			},
			check: func(t *testing.T, session *domain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, "opaque-token", session.Token)
				assert.Equal(t, "/sales", session.Redirect)
				assert.Nil(t, session.ExpiresAt)
			},
		},
		{
			name:    "JWT preenche a expiração",
			request: domain.LoginRequest{Username: "admin", Password: "secret"},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Login(gomock.Any(), "admin", "secret").
					Return(&bespokeddomain.LoginResponse{Token: signedToken(t, now.Add(time.Hour))}, nil)
			},
			check: func(t *testing.T, session *domain.Session, err error) {
				require.NoError(t, err)
				require.NotNil(t, session.ExpiresAt)
				assert.True(t, session.ExpiresAt.Equal(now.Add(time.Hour)))
			},
		},
		{
			name:    "campos obrigatórios",
			request: domain.LoginRequest{Username: "  ", Password: "secret"},
			setup:   func(client *mocks.MockClient) {},
			check: func(t *testing.T, session *domain.Session, err error) {
				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, apiErrors.ErrMissingRequiredData, authErr.Code)
			},
		},
		{
			name:    "API recusa as credenciais",
			request: domain.LoginRequest{Username: "admin", Password: "errada"},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Login(gomock.Any(), "admin", "errada").
					Return(nil, &bespokedclient.APIError{Operation: "login", StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"})
			},
			check: func(t *testing.T, session *domain.Session, err error) {
				assert.True(t, IsCredentialsError(err))
				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
				assert.Equal(t, "Invalid credentials", authErr.Details)
			},
		},
		{
			name:    "resposta sem token",
			request: domain.LoginRequest{Username: "admin", Password: "secret"},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Login(gomock.Any(), "admin", "secret").
					Return(nil, &bespokedclient.AuthenticationError{Reason: "sem token"})
			},
			check: func(t *testing.T, session *domain.Session, err error) {
				assert.True(t, IsTokenError(err))
			},
		},
		{
			name:    "erro de servidor é repassado",
			request: domain.LoginRequest{Username: "admin", Password: "secret"},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Login(gomock.Any(), "admin", "secret").
					Return(nil, &bespokedclient.APIError{Operation: "login", StatusCode: http.StatusInternalServerError, Message: "boom"})
			},
			check: func(t *testing.T, session *domain.Session, err error) {
				assert.Equal(t, http.StatusInternalServerError, bespokedclient.StatusCode(err))
				assert.False(t, IsCredentialsError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			service := &Service{client: client, now: func() time.Time { return now }}
			session, err := service.Login(ctx, tt.request)
			tt.check(t, session, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	service := &Service{now: func() time.Time { return now }}

	_, err := service.ValidateToken("")
	assert.True(t, errors.Is(err, ErrInvalidToken))

	claims, err := service.ValidateToken("opaque")
	require.NoError(t, err)
	assert.Nil(t, claims)

	claims, err = service.ValidateToken(signedToken(t, now.Add(time.Minute)))
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = service.ValidateToken(signedToken(t, now.Add(-time.Minute)))
	assert.True(t, errors.Is(err, ErrExpiredToken))
}
