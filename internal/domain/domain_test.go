package domain

import (
	stdjson "encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bespoked-admin/pkg/utils"
)

func TestDate_JSON(t *testing.T) {
	for _, raw := range []string{`"2024-03-15"`, `"03/15/2024"`, `"2024-03-15T00:00:00Z"`, `"2024-03-15T18:30:00.250"`} {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(raw), &d), raw)
		assert.Equal(t, NewDate(2024, time.March, 15), d, raw)

		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2024-03-15"`, string(out))
	}
}

func TestDate_JSONInvalid(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"ontem"`), &d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidDate))

	err = json.Unmarshal([]byte(`20240315`), &d)
	assert.True(t, errors.Is(err, utils.ErrInvalidDate))

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestSale_Decode(t *testing.T) {
	raw := `{
		"saleId": 9,
		"productId": 1,
		"salespersonId": 2,
		"customerId": 3,
		"productName": "Roadster",
		"salespersonFirstName": "Jane",
		"salespersonLastName": "Doe",
		"customerFirstName": "John",
		"customerLastName": "Smith",
		"salesDate": "2024-05-02T00:00:00",
		"quantity": 2,
		"unitPrice": 1250.10,
		"totalPrice": 2500.20,
		"commissionAmount": 0,
		"commission": 125.01,
		"statusId": 1,
		"createdDate": "2024-05-02T10:11:12",
		"modifiedDate": null
	}`

	var sale Sale
	require.NoError(t, json.Unmarshal([]byte(raw), &sale))

	assert.Equal(t, NewDate(2024, time.May, 2), sale.SalesDate)
	assert.True(t, decimal.RequireFromString("2500.20").Equal(sale.TotalPrice))
	assert.True(t, decimal.RequireFromString("125.01").Equal(sale.EffectiveCommission()))
	assert.Equal(t, "Jane Doe", sale.SalespersonName())
	assert.Equal(t, "John Smith", sale.CustomerName())
	assert.Equal(t, time.Date(2024, 5, 2, 10, 11, 12, 0, time.UTC), sale.CreatedDate.Time)
	assert.Nil(t, sale.ModifiedDate)
}

func TestSale_EffectiveCommissionPrefersAmount(t *testing.T) {
	sale := Sale{CommissionAmount: decimal.NewFromInt(10), Commission: decimal.NewFromInt(5)}
	assert.True(t, decimal.NewFromInt(10).Equal(sale.EffectiveCommission()))
}

func TestCustomer_ContactFields(t *testing.T) {
	raw := `{
		"customerId": 4,
		"firstName": "Ana",
		"lastName": "Silva",
		"startDate": null,
		"addresses": [{"streetAddress1":"1 Main St","city":"Austin"}],
		"phones": [{"phoneNumber":"555-1111","extension":"42"}]
	}`

	var customer Customer
	require.NoError(t, json.Unmarshal([]byte(raw), &customer))

	assert.Nil(t, customer.StartDate)
	assert.Equal(t, "1 Main St, Austin", customer.Address())
	assert.Equal(t, "555-1111 x42", customer.Phone())
	assert.Equal(t, "Ana Silva", customer.FullName())
}

func TestSalesperson_MissingContactFields(t *testing.T) {
	var sp Salesperson
	require.NoError(t, json.Unmarshal([]byte(`{"salespersonId":1,"firstName":"Jane","lastName":"Doe","startDate":"2023-01-10"}`), &sp))

	assert.Equal(t, "", sp.Address())
	assert.Equal(t, "", sp.Phone())
	assert.Equal(t, NewDate(2023, time.January, 10), sp.StartDate)
}

func TestDate_InvalidInsideStructAndList(t *testing.T) {
	var sales []Sale
	err := Unmarshal(json, []byte(`[{"saleId":1,"salesDate":"ontem"}]`), &sales)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidDate), err.Error())
	assert.Contains(t, err.Error(), "SalesDate")

	var sale Sale
	err = Unmarshal(json, []byte(`{"saleId":1,"createdDate":true}`), &sale)
	assert.True(t, errors.Is(err, utils.ErrInvalidDate), err.Error())

	var customer Customer
	require.NoError(t, Unmarshal(json, []byte(`{"customerId":2,"startDate":null}`), &customer))
	assert.Nil(t, customer.StartDate)

	err = Unmarshal(json, []byte(`{"saleId":1} x`), &sale)
	require.Error(t, err)
	assert.False(t, errors.Is(err, utils.ErrInvalidDate))
}

func TestDate_StandardLibraryDecode(t *testing.T) {
	var sale Sale
	err := stdjson.Unmarshal([]byte(`{"saleId":1,"salesDate":"03/15/2024"}`), &sale)
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 15), sale.SalesDate)

	err = stdjson.Unmarshal([]byte(`{"saleId":1,"salesDate":"ontem"}`), &sale)
	assert.True(t, errors.Is(err, utils.ErrInvalidDate))
}
