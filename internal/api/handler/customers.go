package handler

import (
	"net/http"

	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
	"github.com/vfg2006/bespoked-admin/internal/domain"
)

type CustomerRequest struct {
	FirstName string       `json:"firstName" validate:"notblank"`
	LastName  string       `json:"lastName"`
	Email     string       `json:"email" validate:"omitempty,email"`
	StartDate *domain.Date `json:"startDate"`
	StatusID  *int         `json:"statusId"`
	Addresses []string     `json:"addresses"`
	Phones    []string     `json:"phones"`
}

type CustomerView struct {
	domain.Customer
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func ListCustomers(client bespokedclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := client.GetCustomers(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		views := make([]CustomerView, 0, len(customers))
		for _, c := range customers {
			views = append(views, CustomerView{Customer: c, Address: c.Address(), Phone: c.Phone()})
		}

		writeJSON(w, r, http.StatusOK, views)
	}
}

func CreateCustomer(client bespokedclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CustomerRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		customer, err := client.CreateCustomer(r.Context(), bespokeddomain.CustomerUpsert{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			StartDate: req.StartDate,
			StatusID:  req.StatusID,
			Addresses: req.Addresses,
			Phones:    req.Phones,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, CustomerView{
			Customer: *customer,
			Address:  customer.Address(),
			Phone:    customer.Phone(),
		})
	}
}
