package reporting

import (
	"time"

	"github.com/vfg2006/bespoked-admin/internal/domain"
)

// NormalizeQuarter troca qualquer valor fora de 1..4 pelo primeiro trimestre
func NormalizeQuarter(quarter int) int {
	if quarter < 1 || quarter > 4 {
		return 1
	}
	return quarter
}

// QuarterRange devolve o primeiro e o último dia do trimestre, inclusivos
func QuarterRange(year, quarter int) (domain.Date, domain.Date) {
	quarter = NormalizeQuarter(quarter)

	firstMonth := time.Month(3*(quarter-1) + 1)
	start := domain.NewDate(year, firstMonth, 1)
	// Dia zero do mês seguinte ao trimestre é o último dia do terceiro mês
	end := domain.NewDate(year, firstMonth+3, 0)

	return start, end
}

// CurrentQuarter devolve ano e trimestre de t
func CurrentQuarter(t time.Time) (int, int) {
	return t.Year(), (int(t.Month())-1)/3 + 1
}
