package handler

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
	"github.com/vfg2006/bespoked-admin/internal/domain"
	"github.com/vfg2006/bespoked-admin/pkg/apiErrors"
)

type SaleView struct {
	domain.Sale
	SalespersonName     string          `json:"salespersonName"`
	CustomerName        string          `json:"customerName"`
	EffectiveCommission decimal.Decimal `json:"effectiveCommission"`
}

func newSaleView(sale domain.Sale) SaleView {
	return SaleView{
		Sale:                sale,
		SalespersonName:     sale.SalespersonName(),
		CustomerName:        sale.CustomerName(),
		EffectiveCommission: sale.EffectiveCommission(),
	}
}

// ListSales aceita start e end (inclusivos) em qualquer formato de data reconhecido
func ListSales(client bespokedclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.SalesFilter{}

		for param, target := range map[string]**domain.Date{"start": &filter.Start, "end": &filter.End} {
			raw := strings.TrimSpace(r.URL.Query().Get(param))
			if raw == "" {
				continue
			}

			date, err := domain.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), param)
				return
			}
			*target = &date
		}

		sales, err := client.GetSales(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		views := make([]SaleView, 0, len(sales))
		for _, sale := range sales {
			views = append(views, newSaleView(sale))
		}

		writeJSON(w, r, http.StatusOK, views)
	}
}

// CreateSale resolve produto, vendedor e cliente pelo nome quando o id não vem no formulário
func CreateSale(integrator bespoked.BespokedIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input bespokeddomain.SaleInput
		if !decodeJSON(w, r, &input) {
			return
		}

		sale, err := integrator.CreateSale(r.Context(), input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, newSaleView(*sale))
	}
}
