package contact

import "strings"

// Address devolve o valor de exibição do primeiro endereço da lista
func Address(fields Fields) string {
	f, ok := fields.First()
	if !ok {
		return ""
	}
	return FormatAddress(f)
}

// FormatAddress monta o texto de um endereço em qualquer um dos formatos conhecidos:
//
//	"855 Aspen Blvd"
//	{"streetAddress1":"855 Aspen Blvd","streetAddress2":null,"city":"San Diego","state":"CA","zip":"92101","country":"USA"}
//	{"line1":"855 Aspen Blvd"} ou {"address":"855 Aspen Blvd"}
func FormatAddress(f Field) string {
	if text, ok := f.Text(); ok {
		return text
	}

	doc, ok := f.Document()
	if !ok {
		return f.Raw()
	}

	if doc.Has("streetAddress1") {
		parts := make([]string, 0, 4)

		if street1, ok := doc.nonBlank("streetAddress1"); ok {
			parts = append(parts, street1)
		}
		if street2, ok := doc.nonBlank("streetAddress2"); ok {
			parts = append(parts, street2)
		}

		cityStateZip := make([]string, 0, 3)
		for _, key := range []string{"city", "state", "zip"} {
			if v, ok := doc.nonBlank(key); ok {
				cityStateZip = append(cityStateZip, v)
			}
		}
		if len(cityStateZip) > 0 {
			parts = append(parts, strings.Join(cityStateZip, ", "))
		}

		if country, ok := doc.nonBlank("country"); ok {
			parts = append(parts, country)
		}

		return strings.Join(parts, ", ")
	}

	// Formatos antigos, de uma linha só
	if line1, ok := doc.String("line1"); ok {
		return line1
	}
	if address, ok := doc.String("address"); ok {
		return address
	}

	return doc.Raw()
}
