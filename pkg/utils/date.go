package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrInvalidDate é o erro base para datas que não puderam ser interpretadas
var ErrInvalidDate = errors.New("formato de data não suportado")

// DateFormatError carrega o texto original que falhou na conversão
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	if strings.TrimSpace(e.Value) == "" {
		return "data vazia"
	}
	return fmt.Sprintf("%s: %q", ErrInvalidDate.Error(), e.Value)
}

func (e *DateFormatError) Is(target error) bool {
	return target == ErrInvalidDate
}

// Formatos aceitos na leitura, na ordem em que são tentados
var dateLayouts = []string{
	time.DateOnly,
	"01/02/2006",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05.000",
}

// ParseDate interpreta uma data em vários formatos e devolve meia-noite UTC do dia encontrado.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := ParseTimestamp(dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseTimestamp aplica os mesmos formatos de ParseDate mas preserva o horário.
// Formatos sem fuso são tratados como UTC.
func ParseTimestamp(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, &DateFormatError{Value: value}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	// Último recurso: parser genérico, independente de locale
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, &DateFormatError{Value: value}
	}

	return t, nil
}

// FormatDate sempre escreve a forma canônica yyyy-MM-dd
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
