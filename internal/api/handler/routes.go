package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	"github.com/vfg2006/bespoked-admin/internal/api/handler/router"
	"github.com/vfg2006/bespoked-admin/internal/usecases/authenticating"
	"github.com/vfg2006/bespoked-admin/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, rememberFor time.Duration) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service, rememberFor),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(),
		},
	}
}

func Products(client bespokedclient.Client) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(client),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(client),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(client),
		},
	}
}

func Salespersons(client bespokedclient.Client) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/salespersons",
			Method:  http.MethodGet,
			Handler: ListSalespersons(client),
		},
		{
			Path:    "/v1/salespersons",
			Method:  http.MethodPost,
			Handler: CreateSalesperson(client),
		},
		{
			Path:    "/v1/salespersons/:id",
			Method:  http.MethodPut,
			Handler: UpdateSalesperson(client),
		},
		{
			Path:    "/v1/salespersons/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSalesperson(client),
		},
	}
}

func Customers(client bespokedclient.Client) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(client),
		},
		{
			Path:    "/v1/customers",
			Method:  http.MethodPost,
			Handler: CreateCustomer(client),
		},
	}
}

func Sales(client bespokedclient.Client, integrator bespoked.BespokedIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(client),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(integrator),
		},
	}
}

func Reports(service reporting.Reporter, job ReportJob) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/commissions",
			Method:  http.MethodGet,
			Handler: GetCommissionReport(service, time.Now),
		},
		{
			Path:    "/v1/reports/commissions/run",
			Method:  http.MethodPost,
			Handler: RunCommissionReport(job),
		},
		{
			Path:    "/v1/reports/commissions/status",
			Method:  http.MethodGet,
			Handler: GetCommissionReportStatus(job),
		},
	}
}
