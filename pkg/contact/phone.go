package contact

import (
	"fmt"
	"strings"
)

// Phone devolve o valor de exibição do primeiro telefone da lista
func Phone(fields Fields) string {
	f, ok := fields.First()
	if !ok {
		return ""
	}
	return FormatPhone(f)
}

// FormatPhone procura o número em "number", "phone" e "phoneNumber", nessa ordem.
// A extensão só é considerada junto de "phoneNumber".
func FormatPhone(f Field) string {
	if text, ok := f.Text(); ok {
		return text
	}

	doc, ok := f.Document()
	if !ok {
		return f.Raw()
	}

	if number, ok := doc.String("number"); ok {
		return number
	}
	if phone, ok := doc.String("phone"); ok {
		return phone
	}
	if phoneNumber, ok := doc.String("phoneNumber"); ok {
		if ext, ok := doc.String("extension"); ok && strings.TrimSpace(ext) != "" {
			return fmt.Sprintf("%s x%s", phoneNumber, ext)
		}
		return phoneNumber
	}

	return doc.Raw()
}
