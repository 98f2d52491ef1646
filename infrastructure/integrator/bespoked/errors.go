package bespoked

import (
	"fmt"
	"strings"
)

// ResolutionError lista as entidades da venda que ficaram sem id após busca e criação
type ResolutionError struct {
	Entities []string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("não foi possível identificar: %s", strings.Join(e.Entities, ", "))
}
