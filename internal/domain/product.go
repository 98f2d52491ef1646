package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID                   int             `json:"productId"`
	Name                 string          `json:"name"`
	ManufacturerID       *int            `json:"manufacturerId"`
	ManufacturerName     *string         `json:"manufacturerName"`
	StyleID              *int            `json:"styleId"`
	StyleName            *string         `json:"styleName"`
	PurchasePrice        decimal.Decimal `json:"purchasePrice"`
	SalePrice            decimal.Decimal `json:"salePrice"`
	QtyOnHand            int             `json:"qtyOnHand"`
	CommissionPercentage decimal.Decimal `json:"commissionPercentage"`
	StatusID             *int            `json:"statusId"`
}
