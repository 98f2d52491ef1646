package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
	bespokedmocks "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/mocks"
	"github.com/vfg2006/bespoked-admin/internal/api/handler/router"
	"github.com/vfg2006/bespoked-admin/internal/domain"
	"github.com/vfg2006/bespoked-admin/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/bespoked-admin/internal/usecases/authenticating/mocks"
	reportmocks "github.com/vfg2006/bespoked-admin/internal/usecases/reporting/mocks"
	"github.com/vfg2006/bespoked-admin/pkg/apiErrors"
	"github.com/vfg2006/bespoked-admin/pkg/contact"
	"github.com/vfg2006/bespoked-admin/pkg/credential"
	"github.com/vfg2006/bespoked-admin/pkg/utils"
	"go.uber.org/mock/gomock"
)

type fakeReportJob struct {
	accept    bool
	triggered int
}

func (f *fakeReportJob) TriggerManualRun(ctx context.Context) bool {
	f.triggered++
	return f.accept
}

func (f *fakeReportJob) GetStatus() map[string]any {
	return map[string]any{"enabled": true, "running": false}
}

type testDeps struct {
	client     *bespokedmocks.MockClient
	integrator *bespokedmocks.MockBespokedIntegrator
	auth       *authmocks.MockAuthenticator
	reporter   *reportmocks.MockReporter
	job        *fakeReportJob
	handler    http.Handler
}

func newTestRouter(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		client:     bespokedmocks.NewMockClient(ctrl),
		integrator: bespokedmocks.NewMockBespokedIntegrator(ctrl),
		auth:       authmocks.NewMockAuthenticator(ctrl),
		reporter:   reportmocks.NewMockReporter(ctrl),
		job:        &fakeReportJob{accept: true},
	}

	deps.handler = router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Authentication(deps.auth, 24*time.Hour)...),
		router.WithRoutes(Products(deps.client)...),
		router.WithRoutes(Salespersons(deps.client)...),
		router.WithRoutes(Customers(deps.client)...),
		router.WithRoutes(Sales(deps.client, deps.integrator)...),
		router.WithRoutes(Reports(deps.reporter, deps.job)...),
	)

	return deps
}

func (d *testDeps) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	d.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestHealthcheck(t *testing.T) {
	deps := newTestRouter(t)

	rec := deps.do(http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_NotFound(t *testing.T) {
	deps := newTestRouter(t)

	rec := deps.do(http.MethodGet, "/v1/nada", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
}

func TestLogin(t *testing.T) {
	t.Run("sucesso grava o cookie e não devolve o token", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.auth.EXPECT().Login(gomock.Any(), domain.LoginRequest{Username: "admin", Password: "secret", Remember: true}).
			Return(&domain.Session{Token: "abc", Redirect: "/sales"}, nil)

		rec := deps.do(http.MethodPost, "/v1/login", `{"username":"admin","password":"secret","remember":true}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "abc")
		assert.Contains(t, rec.Body.String(), `"redirect":"/sales"`)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, credential.CookieName, cookies[0].Name)
		assert.Equal(t, "abc", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.False(t, cookies[0].Expires.IsZero())
	})

	t.Run("campos obrigatórios", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := deps.do(http.MethodPost, "/v1/login", `{"username":"admin"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidRequest, body.Code)
		assert.Contains(t, rec.Body.String(), `"field":"password"`)
	})

	t.Run("credenciais recusadas", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Invalid credentials"))

		rec := deps.do(http.MethodPost, "/v1/login", `{"username":"admin","password":"errada"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, body.Code)
		assert.Equal(t, "Invalid credentials", body.Message)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("corpo inválido", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := deps.do(http.MethodPost, "/v1/login", `{"username":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	deps := newTestRouter(t)

	rec := deps.do(http.MethodPost, "/v1/logout", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestProducts(t *testing.T) {
	t.Run("lista", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.client.EXPECT().GetProducts(gomock.Any()).Return([]domain.Product{
			{ID: 1, Name: "Roadster", SalePrice: decimal.RequireFromString("1250.50")},
		}, nil)

		rec := deps.do(http.MethodGet, "/v1/products", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"productId":1`)
		assert.Contains(t, rec.Body.String(), `"name":"Roadster"`)
	})

	t.Run("cria", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.client.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, product bespokeddomain.ProductUpsert) (*domain.Product, error) {
				assert.Equal(t, "Gravel X", product.Name)
				assert.Equal(t, 0, product.ProductID)
				assert.Equal(t, 0, product.ManufacturerID)
				assert.Equal(t, "899.9", product.SalePrice.String())
				return &domain.Product{ID: 7, Name: product.Name}, nil
			})

		rec := deps.do(http.MethodPost, "/v1/products", `{"name":"Gravel X","salePrice":899.90,"qtyOnHand":3}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"productId":7`)
	})

	t.Run("nome em branco", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := deps.do(http.MethodPost, "/v1/products", `{"name":"   "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"field":"name"`)
	})

	t.Run("atualiza com o id da rota", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.client.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, product domain.Product) error {
				assert.Equal(t, 42, product.ID)
				assert.Equal(t, "Roadster", product.Name)
				return nil
			})

		rec := deps.do(http.MethodPut, "/v1/products/42", `{"name":"Roadster"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("id inválido", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := deps.do(http.MethodPut, "/v1/products/abc", `{"name":"Roadster"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})
}

func TestSalespersons(t *testing.T) {
	t.Run("lista com endereço e telefone de exibição", func(t *testing.T) {
		deps := newTestRouter(t)

		var addresses contact.Fields
		require.NoError(t, json.Unmarshal([]byte(`[{"streetAddress1":"1 Main St","streetAddress2":null,"city":"Springfield","state":"IL","zip":"62701"}]`), &addresses))

		deps.client.EXPECT().GetSalespersons(gomock.Any()).Return([]domain.Salesperson{
			{
				ID:        3,
				FirstName: "Jane",
				LastName:  "Doe",
				StartDate: domain.NewDate(2024, time.January, 2),
				Addresses: addresses,
				Phones:    contact.FromStrings("555-1234"),
			},
		}, nil)

		rec := deps.do(http.MethodGet, "/v1/salespersons", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"salespersonId":3`)
		assert.Contains(t, body, `"startDate":"2024-01-02"`)
		assert.Contains(t, body, `"phone":"555-1234"`)
		assert.Contains(t, body, `"address":"1 Main St, Springfield, IL, 62701"`)
		assert.Contains(t, body, `"streetAddress1":"1 Main St"`)
	})

	t.Run("cria com data de início padrão", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.client.EXPECT().CreateSalesperson(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sp bespokeddomain.SalespersonUpsert) (*domain.Salesperson, error) {
				assert.Equal(t, "Mary", sp.FirstName)
				assert.Equal(t, domain.Today(), sp.StartDate)
				assert.Equal(t, []string{"555-0000"}, sp.Phones)
				return &domain.Salesperson{ID: 9, FirstName: "Mary"}, nil
			})

		rec := deps.do(http.MethodPost, "/v1/salespersons", `{"firstName":"Mary","lastName":"Smith","phones":["555-0000"]}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"salespersonId":9`)
	})

	t.Run("atualiza", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.client.EXPECT().UpdateSalesperson(gomock.Any(), 5, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, sp bespokeddomain.SalespersonUpsert) error {
				assert.Equal(t, "2023-03-01", sp.StartDate.String())
				return nil
			})

		rec := deps.do(http.MethodPut, "/v1/salespersons/5", `{"firstName":"Mary","startDate":"03/01/2023"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("remove e repassa o erro da API", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.client.EXPECT().DeleteSalesperson(gomock.Any(), 5).
			Return(&bespokedclient.APIError{Operation: "remover vendedor", StatusCode: http.StatusNotFound, Message: "Salesperson not found"})

		rec := deps.do(http.MethodDelete, "/v1/salespersons/5", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrUpstreamRefused, body.Code)
		assert.Equal(t, "Salesperson not found", body.Message)
	})
}

func TestCustomers(t *testing.T) {
	t.Run("lista", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.client.EXPECT().GetCustomers(gomock.Any()).Return([]domain.Customer{
			{ID: 2, FirstName: "Ana", LastName: "Silva", Phones: contact.FromStrings("555-9999")},
		}, nil)

		rec := deps.do(http.MethodGet, "/v1/customers", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"customerId":2`)
		assert.Contains(t, rec.Body.String(), `"phone":"555-9999"`)
		assert.Contains(t, rec.Body.String(), `"address":""`)
	})

	t.Run("e-mail inválido", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := deps.do(http.MethodPost, "/v1/customers", `{"firstName":"Ana","email":"nao-e-email"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"field":"email"`)
	})

	t.Run("cria", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.client.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c bespokeddomain.CustomerUpsert) (*domain.Customer, error) {
				assert.Equal(t, "ana@example.com", c.Email)
				require.NotNil(t, c.StartDate)
				assert.Equal(t, "2024-05-02", c.StartDate.String())
				return &domain.Customer{ID: 4, FirstName: "Ana"}, nil
			})

		rec := deps.do(http.MethodPost, "/v1/customers", `{"firstName":"Ana","email":"ana@example.com","startDate":"2024-05-02"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestSales(t *testing.T) {
	t.Run("lista com filtro de datas", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.client.EXPECT().GetSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter domain.SalesFilter) ([]domain.Sale, error) {
				require.NotNil(t, filter.Start)
				assert.Equal(t, "2024-01-01", filter.Start.String())
				assert.Nil(t, filter.End)
				return []domain.Sale{{
					ID:                   1,
					SalespersonFirstName: "Jane",
					SalespersonLastName:  "Doe",
					CommissionAmount:     decimal.Zero,
					Commission:           decimal.RequireFromString("12.5"),
				}}, nil
			})

		rec := deps.do(http.MethodGet, "/v1/sales?start=2024-01-01", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"salespersonName":"Jane Doe"`)
		assert.Contains(t, rec.Body.String(), `"effectiveCommission":"12.5"`)
	})

	t.Run("data inválida no filtro", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := deps.do(http.MethodGet, "/v1/sales?end=2024-13-45", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("cria resolvendo pelo nome", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.integrator.EXPECT().CreateSale(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input bespokeddomain.SaleInput) (*domain.Sale, error) {
				assert.Equal(t, "Roadster", input.ProductName)
				assert.Equal(t, 2, input.SalespersonID)
				assert.Equal(t, "Ana Silva", input.CustomerName)
				require.NotNil(t, input.UnitPrice)
				assert.Equal(t, "10.5", input.UnitPrice.String())
				return &domain.Sale{ID: 30}, nil
			})

		rec := deps.do(http.MethodPost, "/v1/sales",
			`{"productName":"Roadster","salespersonId":2,"customerName":"Ana Silva","quantity":1,"unitPrice":10.50}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"saleId":30`)
	})

	t.Run("sem id e sem nome falha na validação", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := deps.do(http.MethodPost, "/v1/sales", `{"productId":1,"customerId":3}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"field":"salespersonId"`)
	})

	t.Run("entidade não resolvida", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.integrator.EXPECT().CreateSale(gomock.Any(), gomock.Any()).
			Return(nil, &bespoked.ResolutionError{Entities: []string{"cliente"}})

		rec := deps.do(http.MethodPost, "/v1/sales", `{"productId":1,"salespersonId":2,"customerName":"x"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("falha de rede vira 502", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.integrator.EXPECT().CreateSale(gomock.Any(), gomock.Any()).
			Return(nil, &bespokedclient.TransportError{Operation: "criar venda", Err: errors.New("connection refused")})

		rec := deps.do(http.MethodPost, "/v1/sales", `{"productId":1,"salespersonId":2,"customerId":3}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, apiErrors.ErrExternalService, decodeError(t, rec).Code)
	})

	t.Run("data inválida no corpo", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := deps.do(http.MethodPost, "/v1/sales", `{"productId":1,"salespersonId":2,"customerId":3,"salesDate":"ontem"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidFormat, body.Code)
		assert.Equal(t, "Data inválida", body.Message)
	})

	t.Run("data inválida vinda da API vira 502", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.client.EXPECT().GetSales(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("listar vendas: %w", &utils.DateFormatError{Value: "ontem"}))

		rec := deps.do(http.MethodGet, "/v1/sales", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, apiErrors.ErrExternalService, decodeError(t, rec).Code)
	})
}

func TestReports(t *testing.T) {
	t.Run("parâmetros explícitos", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.reporter.EXPECT().QuarterlyCommissions(gomock.Any(), 2023, 4).
			Return(&domain.CommissionReport{Year: 2023, Quarter: 4, Rows: []domain.CommissionRow{}}, nil)

		rec := deps.do(http.MethodGet, "/v1/reports/commissions?year=2023&quarter=4", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"quarter":4`)
		assert.Contains(t, rec.Body.String(), `"rows":[]`)
	})

	t.Run("sem parâmetros usa o trimestre atual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)
		reporter.EXPECT().QuarterlyCommissions(gomock.Any(), 2024, 3).
			Return(&domain.CommissionReport{Year: 2024, Quarter: 3}, nil)

		fixed := func() time.Time { return time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC) }
		rec := httptest.NewRecorder()
		GetCommissionReport(reporter, fixed).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/commissions", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ano inválido", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := deps.do(http.MethodGet, "/v1/reports/commissions?year=abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("execução manual", func(t *testing.T) {
		deps := newTestRouter(t)

		rec := deps.do(http.MethodPost, "/v1/reports/commissions/run", "")
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, deps.job.triggered)

		deps.job.accept = false
		rec = deps.do(http.MethodPost, "/v1/reports/commissions/run", "")
		assert.Equal(t, http.StatusConflict, rec.Code)

		rec = deps.do(http.MethodGet, "/v1/reports/commissions/status", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"enabled":true`)
	})
}

func TestWriteServiceError_UpstreamUnauthorizedClearsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)

	writeServiceError(rec, req, &bespokedclient.APIError{Operation: "listar produtos", StatusCode: http.StatusUnauthorized, Message: "Unauthorized"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidToken, decodeError(t, rec).Code)
	require.Len(t, rec.Result().Cookies(), 1)
}
