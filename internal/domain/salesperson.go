package domain

import (
	"strings"

	"github.com/vfg2006/bespoked-admin/pkg/contact"
)

type Salesperson struct {
	ID              int            `json:"salespersonId"`
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	StartDate       Date           `json:"startDate"`
	TerminationDate *Date          `json:"terminationDate"`
	ManagerID       *int           `json:"managerId"`
	StatusID        *int           `json:"statusId"`
	Addresses       contact.Fields `json:"addresses"`
	Phones          contact.Fields `json:"phones"`
	CreatedDate     Timestamp      `json:"createdDate"`
	ModifiedDate    Timestamp      `json:"modifiedDate"`
}

func (s Salesperson) Address() string {
	return contact.Address(s.Addresses)
}

func (s Salesperson) Phone() string {
	return contact.Phone(s.Phones)
}

func (s Salesperson) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
