package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bespokedmocks "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/mocks"
	"github.com/vfg2006/bespoked-admin/internal/config"
	"github.com/vfg2006/bespoked-admin/internal/domain"
	authmocks "github.com/vfg2006/bespoked-admin/internal/usecases/authenticating/mocks"
	reportmocks "github.com/vfg2006/bespoked-admin/internal/usecases/reporting/mocks"
	"github.com/vfg2006/bespoked-admin/pkg/credential"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Cors.AllowedOrigins = []string{"http://localhost:3000"}
	return cfg
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(testConfig(), Services{})
	assert.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := bespokedmocks.NewMockClient(ctrl)
	auth := authmocks.NewMockAuthenticator(ctrl)

	handler := NewHandler(testConfig(), Services{
		Client:        client,
		Integrator:    bespokedmocks.NewMockBespokedIntegrator(ctrl),
		Authenticator: auth,
		Reporter:      reportmocks.NewMockReporter(ctrl),
	})

	t.Run("healthcheck é público", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("rotas da API exigem sessão", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("o token do cookie chega ao cliente da API", func(t *testing.T) {
		auth.EXPECT().ValidateToken("abc").Return(nil, nil)
		client.EXPECT().GetProducts(gomock.Any()).
			DoAndReturn(func(ctx context.Context) ([]domain.Product, error) {
				token, ok := credential.FromContext(ctx)
				assert.True(t, ok)
				assert.Equal(t, "abc", token)
				return []domain.Product{}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.AddCookie(&http.Cookie{Name: credential.CookieName, Value: "abc"})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
