package credential

import "net/http"

// Transport anexa o token do contexto como Bearer em toda requisição que ainda não
// tenha cabeçalho Authorization. Sem token a requisição segue inalterada.
type Transport struct {
	Base http.RoundTripper
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") == "" {
		if token, ok := FromContext(req.Context()); ok {
			// RoundTripper não pode alterar a requisição original
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return t.base().RoundTrip(req)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
