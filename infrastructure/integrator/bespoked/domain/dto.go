package bespokeddomain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/bespoked-admin/internal/domain"
)

// Os nomes dos campos são o contrato com a API e não podem mudar.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Redirect string `json:"redirect,omitempty"`
}

// ProductUpsert é o corpo de criação/atualização de produto.
// manufacturerId não aceita null no servidor; quando desconhecido vai 0.
type ProductUpsert struct {
	ProductID            int         `json:"productId,omitempty"`
	Name                 string      `json:"name"`
	ManufacturerID       int         `json:"manufacturerId"`
	ManufacturerName     *string     `json:"manufacturerName"`
	StyleID              *int        `json:"styleId"`
	StyleName            *string     `json:"styleName"`
	PurchasePrice        json.Number `json:"purchasePrice"`
	SalePrice            json.Number `json:"salePrice"`
	QtyOnHand            int         `json:"qtyOnHand"`
	CommissionPercentage json.Number `json:"commissionPercentage"`
	StatusID             *int        `json:"statusId"`
}

type SalespersonUpsert struct {
	FirstName       string       `json:"firstName"`
	LastName        string       `json:"lastName"`
	StartDate       domain.Date  `json:"startDate"`
	TerminationDate *domain.Date `json:"terminationDate"`
	ManagerID       *int         `json:"managerId"`
	StatusID        *int         `json:"statusId"`
	Addresses       []string     `json:"addresses"`
	Phones          []string     `json:"phones"`
}

type CustomerUpsert struct {
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Email     string       `json:"email"`
	StartDate *domain.Date `json:"startDate"`
	Addresses []string     `json:"addresses"`
	Phones    []string     `json:"phones"`
	StatusID  *int         `json:"statusId"`
}

type SaleCreate struct {
	ProductID     int          `json:"productId"`
	SalespersonID int          `json:"salespersonId"`
	CustomerID    int          `json:"customerId"`
	SalesDate     domain.Date  `json:"salesDate"`
	Quantity      int          `json:"quantity"`
	UnitPrice     *json.Number `json:"unitPrice"`
}

// Money converte um decimal para número JSON sem perder precisão
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// OptionalMoney devolve nil quando o valor não foi informado
func OptionalMoney(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := Money(*d)
	return &n
}

// ProductFromDomain traduz um produto para o corpo de atualização (PUT envia o productId)
func ProductFromDomain(p domain.Product) ProductUpsert {
	manufacturerID := 0
	if p.ManufacturerID != nil {
		manufacturerID = *p.ManufacturerID
	}

	return ProductUpsert{
		ProductID:            p.ID,
		Name:                 p.Name,
		ManufacturerID:       manufacturerID,
		ManufacturerName:     p.ManufacturerName,
		StyleID:              p.StyleID,
		StyleName:            p.StyleName,
		PurchasePrice:        Money(p.PurchasePrice),
		SalePrice:            Money(p.SalePrice),
		QtyOnHand:            p.QtyOnHand,
		CommissionPercentage: Money(p.CommissionPercentage),
		StatusID:             p.StatusID,
	}
}
