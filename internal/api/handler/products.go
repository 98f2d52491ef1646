package handler

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
	"github.com/vfg2006/bespoked-admin/internal/api/handler/router"
	"github.com/vfg2006/bespoked-admin/internal/domain"
	"github.com/vfg2006/bespoked-admin/pkg/apiErrors"
)

type ProductRequest struct {
	Name                 string          `json:"name" validate:"notblank"`
	ManufacturerID       *int            `json:"manufacturerId"`
	ManufacturerName     *string         `json:"manufacturerName"`
	StyleID              *int            `json:"styleId"`
	StyleName            *string         `json:"styleName"`
	PurchasePrice        decimal.Decimal `json:"purchasePrice"`
	SalePrice            decimal.Decimal `json:"salePrice"`
	QtyOnHand            int             `json:"qtyOnHand" validate:"gte=0"`
	CommissionPercentage decimal.Decimal `json:"commissionPercentage"`
	StatusID             *int            `json:"statusId"`
}

func (p ProductRequest) toDomain(id int) domain.Product {
	return domain.Product{
		ID:                   id,
		Name:                 p.Name,
		ManufacturerID:       p.ManufacturerID,
		ManufacturerName:     p.ManufacturerName,
		StyleID:              p.StyleID,
		StyleName:            p.StyleName,
		PurchasePrice:        p.PurchasePrice,
		SalePrice:            p.SalePrice,
		QtyOnHand:            p.QtyOnHand,
		CommissionPercentage: p.CommissionPercentage,
		StatusID:             p.StatusID,
	}
}

func ListProducts(client bespokedclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := client.GetProducts(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, products)
	}
}

func CreateProduct(client bespokedclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProductRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		product, err := client.CreateProduct(r.Context(), bespokeddomain.ProductFromDomain(req.toDomain(0)))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, product)
	}
}

func UpdateProduct(client bespokedclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req ProductRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := client.UpdateProduct(r.Context(), req.toDomain(id)); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// pathID lê o ":id" da rota; ids precisam ser inteiros positivos
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := router.Param(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", raw)
		return 0, false
	}
	return id, true
}
