package handler

import (
	"net/http"

	"github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/bespokedclient"
	bespokeddomain "github.com/vfg2006/bespoked-admin/infrastructure/integrator/bespoked/domain"
	"github.com/vfg2006/bespoked-admin/internal/domain"
)

type SalespersonRequest struct {
	FirstName       string       `json:"firstName" validate:"notblank"`
	LastName        string       `json:"lastName"`
	StartDate       *domain.Date `json:"startDate"`
	TerminationDate *domain.Date `json:"terminationDate"`
	ManagerID       *int         `json:"managerId"`
	StatusID        *int         `json:"statusId"`
	Addresses       []string     `json:"addresses"`
	Phones          []string     `json:"phones"`
}

// toUpsert usa a data de hoje quando o início não foi informado
func (s SalespersonRequest) toUpsert() bespokeddomain.SalespersonUpsert {
	startDate := domain.Today()
	if s.StartDate != nil && !s.StartDate.IsZero() {
		startDate = *s.StartDate
	}

	return bespokeddomain.SalespersonUpsert{
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		StartDate:       startDate,
		TerminationDate: s.TerminationDate,
		ManagerID:       s.ManagerID,
		StatusID:        s.StatusID,
		Addresses:       s.Addresses,
		Phones:          s.Phones,
	}
}

// SalespersonView expõe os contatos brutos e os valores de exibição
type SalespersonView struct {
	domain.Salesperson
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func ListSalespersons(client bespokedclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		salespersons, err := client.GetSalespersons(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		views := make([]SalespersonView, 0, len(salespersons))
		for _, sp := range salespersons {
			views = append(views, SalespersonView{Salesperson: sp, Address: sp.Address(), Phone: sp.Phone()})
		}

		writeJSON(w, r, http.StatusOK, views)
	}
}

func CreateSalesperson(client bespokedclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SalespersonRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		salesperson, err := client.CreateSalesperson(r.Context(), req.toUpsert())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, SalespersonView{
			Salesperson: *salesperson,
			Address:     salesperson.Address(),
			Phone:       salesperson.Phone(),
		})
	}
}

func UpdateSalesperson(client bespokedclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req SalespersonRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := client.UpdateSalesperson(r.Context(), id, req.toUpsert()); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteSalesperson(client bespokedclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := client.DeleteSalesperson(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
