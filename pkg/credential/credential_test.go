package credential

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	_, ok = FromContext(NewContext(context.Background(), "  "))
	assert.False(t, ok)

	token, ok := FromContext(NewContext(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
}

func TestTransport(t *testing.T) {
	var received []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = append(received, r.Header.Get("Authorization"))
	}))
	defer server.Close()

	client := &http.Client{Transport: &Transport{}}

	tests := []struct {
		name     string
		ctx      context.Context
		header   string
		expected string
	}{
		{name: "com token no contexto", ctx: NewContext(context.Background(), "abc"), expected: "Bearer abc"},
		{name: "sem token", ctx: context.Background(), expected: ""},
		{name: "token em branco", ctx: NewContext(context.Background(), " "), expected: ""},
		{name: "cabeçalho existente é mantido", ctx: NewContext(context.Background(), "abc"), header: "Basic xyz", expected: "Basic xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			received = nil

			req, err := http.NewRequestWithContext(tt.ctx, http.MethodGet, server.URL, nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := client.Do(req)
			require.NoError(t, err)
			resp.Body.Close()

			require.Len(t, received, 1)
			assert.Equal(t, tt.expected, received[0])

			if tt.header == "" {
				assert.Empty(t, req.Header.Get("Authorization"), "a requisição original não pode ser alterada")
			}
		})
	}
}

func TestStore(t *testing.T) {
	t.Run("sessão sem lembrar", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "http://localhost/v1/login", nil)

		Store(w, r, "abc", false, time.Hour)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, CookieName, cookies[0].Name)
		assert.Equal(t, "abc", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.False(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
		assert.True(t, cookies[0].Expires.IsZero())
	})

	t.Run("lembrar define expiração", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "http://localhost/v1/login", nil)

		Store(w, r, "abc", true, 24*time.Hour)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), cookies[0].Expires, time.Minute)
	})

	t.Run("TLS marca o cookie como seguro", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "https://localhost/v1/login", nil)
		r.TLS = &tls.ConnectionState{}

		Store(w, r, "abc", false, 0)

		assert.True(t, w.Result().Cookies()[0].Secure)
	})

	t.Run("proxy com X-Forwarded-Proto https", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "http://localhost/v1/login", nil)
		r.Header.Set("X-Forwarded-Proto", "https")

		Store(w, r, "abc", false, 0)

		assert.True(t, w.Result().Cookies()[0].Secure)
	})
}

func TestFromRequestAndClear(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	_, ok := FromRequest(r)
	assert.False(t, ok)

	r.AddCookie(&http.Cookie{Name: CookieName, Value: "abc"})
	token, ok := FromRequest(r)
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	w := httptest.NewRecorder()
	Clear(w, r)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
