package bespokedclient

import (
	"context"
	"net/http"
	"net/url"

	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
	"github.com/vfg2006/bespoked-admin/internal/domain"
)

// GetSales envia start/end apenas quando informados, sempre como yyyy-MM-dd
func (c *BespokedClient) GetSales(ctx context.Context, filter domain.SalesFilter) ([]domain.Sale, error) {
	const operation = "listar vendas"

	query := url.Values{}
	if filter.Start != nil {
		query.Set("start", filter.Start.String())
	}
	if filter.End != nil {
		query.Set("end", filter.End.String())
	}

	body, err := c.do(ctx, call{operation: operation, method: http.MethodGet, path: "api/sales", query: query})
	if err != nil {
		return nil, err
	}

	return decodeList[domain.Sale](c, operation, body)
}

func (c *BespokedClient) CreateSale(ctx context.Context, sale bespokeddomain.SaleCreate) (*domain.Sale, error) {
	const operation = "criar venda"

	body, err := c.do(ctx, call{operation: operation, method: http.MethodPost, path: "api/sales", body: sale})
	if err != nil {
		return nil, err
	}

	return decodeCreated[domain.Sale](c, operation, body)
}
