package domain

import (
	"strings"

	"github.com/vfg2006/bespoked-admin/pkg/contact"
)

type Customer struct {
	ID        int            `json:"customerId"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Email     string         `json:"email"`
	StartDate *Date          `json:"startDate"`
	StatusID  *int           `json:"statusId"`
	Addresses contact.Fields `json:"addresses"`
	Phones    contact.Fields `json:"phones"`
}

// Address devolve o endereço de exibição (primeiro da lista)
func (c Customer) Address() string {
	return contact.Address(c.Addresses)
}

// Phone devolve o telefone de exibição (primeiro da lista)
func (c Customer) Phone() string {
	return contact.Phone(c.Phones)
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
