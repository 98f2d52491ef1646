// Package contact normaliza campos de contato (endereços e telefones) que a API
// devolve ora como texto simples, ora como objeto com formato variável.
package contact

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Kind identifica a variante de um Field
type Kind int

const (
	KindText Kind = iota
	KindStructured
	KindOther
)

// Field é um valor de contato como veio no JSON: texto, documento ou qualquer outra coisa.
type Field struct {
	kind Kind
	text string
	doc  Document
	raw  []byte
}

// Fields é a lista de campos de um mesmo tipo (addresses, phones)
type Fields []Field

// Text cria um Field textual
func Text(s string) Field {
	return Field{kind: KindText, text: s}
}

// FromStrings monta uma lista de campos textuais, útil para formulários
func FromStrings(values ...string) Fields {
	fields := make(Fields, 0, len(values))
	for _, v := range values {
		fields = append(fields, Text(v))
	}
	return fields
}

// ParseField classifica um valor JSON bruto. Nunca falha: qualquer coisa que não seja
// string ou objeto vira KindOther com o texto original preservado.
func ParseField(raw []byte) Field {
	trimmed := bytes.TrimSpace(raw)
	kept := append([]byte(nil), trimmed...)

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return Field{kind: KindText, text: s, raw: kept}
		}
	}

	if doc, ok := ParseDocument(trimmed); ok {
		return Field{kind: KindStructured, doc: doc, raw: kept}
	}

	return Field{kind: KindOther, raw: kept}
}

func (f Field) Kind() Kind {
	return f.kind
}

// Text devolve o conteúdo quando o campo é textual
func (f Field) Text() (string, bool) {
	return f.text, f.kind == KindText
}

// Document devolve o documento quando o campo é estruturado
func (f Field) Document() (Document, bool) {
	return f.doc, f.kind == KindStructured
}

// Raw devolve a serialização textual original do valor. null vira string vazia.
func (f Field) Raw() string {
	if f.kind == KindText && len(f.raw) == 0 {
		return f.text
	}
	if bytes.Equal(f.raw, []byte("null")) {
		return ""
	}
	return string(f.raw)
}

func (f *Field) UnmarshalJSON(data []byte) error {
	*f = ParseField(data)
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if f.kind == KindText {
		return json.Marshal(f.text)
	}
	if len(f.raw) == 0 {
		return []byte("null"), nil
	}
	return f.raw, nil
}

// First devolve o primeiro campo da lista, que é o único exibido
func (fs Fields) First() (Field, bool) {
	if len(fs) == 0 {
		return Field{}, false
	}
	return fs[0], true
}

// Strings devolve o valor canônico de cada campo usando o normalizador informado
func (fs Fields) Strings(normalize func(Field) string) []string {
	if len(fs) == 0 {
		return nil
	}
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, normalize(f))
	}
	return out
}
