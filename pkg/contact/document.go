package contact

import (
	"bytes"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Member é um par chave/valor de um Document, com o valor em JSON bruto
type Member struct {
	Key   string
	Value []byte
}

// Document é um objeto JSON genérico que preserva a ordem das chaves
type Document struct {
	members []Member
	raw     []byte
}

// ParseDocument lê um objeto JSON mantendo a ordem original dos membros
func ParseDocument(raw []byte) (Document, bool) {
	iter := jsoniter.ParseBytes(jsoniter.ConfigCompatibleWithStandardLibrary, raw)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return Document{}, false
	}

	members := make([]Member, 0)
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		value := it.SkipAndReturnBytes()
		members = append(members, Member{Key: key, Value: append([]byte(nil), value...)})
		return it.Error == nil
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return Document{}, false
	}

	return Document{members: members, raw: append([]byte(nil), bytes.TrimSpace(raw)...)}, true
}

// Keys devolve as chaves na ordem do documento
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d.members))
	for _, m := range d.members {
		keys = append(keys, m.Key)
	}
	return keys
}

// Lookup devolve o valor bruto da primeira ocorrência da chave
func (d Document) Lookup(key string) ([]byte, bool) {
	for _, m := range d.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

func (d Document) Has(key string) bool {
	_, ok := d.Lookup(key)
	return ok
}

// String devolve o valor da chave somente quando ele é uma string JSON
func (d Document) String(key string) (string, bool) {
	value, ok := d.Lookup(key)
	if !ok {
		return "", false
	}

	iter := jsoniter.ParseBytes(jsoniter.ConfigCompatibleWithStandardLibrary, value)
	if iter.WhatIsNext() != jsoniter.StringValue {
		return "", false
	}
	s := iter.ReadString()
	if iter.Error != nil && iter.Error != io.EOF {
		return "", false
	}
	return s, true
}

// nonBlank devolve o valor string da chave quando ele tem conteúdo
func (d Document) nonBlank(key string) (string, bool) {
	s, ok := d.String(key)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// Raw devolve o texto original do documento
func (d Document) Raw() string {
	return string(d.raw)
}
