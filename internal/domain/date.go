package domain

import (
	"fmt"
	"time"

	"github.com/vfg2006/bespoked-admin/pkg/utils"
)

// Date é uma data de calendário, sem horário, sempre em UTC.
// Na leitura aceita vários formatos; na escrita usa sempre yyyy-MM-dd.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf descarta o horário de t, mantendo o dia no fuso de t
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today devolve a data atual em UTC
func Today() Date {
	return DateOf(time.Now().UTC())
}

func ParseDate(s string) (Date, error) {
	t, err := utils.ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return utils.FormatDate(d.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON atende quem usa encoding/json; o jsoniter vai direto em decodeDate
func (d *Date) UnmarshalJSON(data []byte) error {
	return Unmarshal(json, data, d)
}

// Timestamp é um instante lido com a mesma tolerância de Date (createdDate, modifiedDate)
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", t.Format(time.RFC3339Nano))), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	return Unmarshal(json, data, t)
}
