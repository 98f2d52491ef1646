package bespokeddomain

import (
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ExtractErrorMessage produz a mensagem de exibição a partir do corpo de uma resposta de erro.
//
// Ordem de preferência:
//   - "message" (string), com " Details: <details>" quando "details" for uma string não vazia
//   - "errors" (objeto de listas, formato de validação), achatado como "Campo: msg1 msg2"
//   - o corpo original, sem alteração
//
// Corpo vazio devolve reason (a frase de status HTTP).
func ExtractErrorMessage(body []byte, reason string) string {
	raw := string(body)
	if strings.TrimSpace(raw) == "" {
		return reason
	}

	iter := jsoniter.ParseBytes(jsoniter.ConfigCompatibleWithStandardLibrary, body)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return raw
	}

	var (
		message, details       string
		hasMessage, hasDetails bool
		flattened              []string
	)

	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		switch key {
		case "message":
			message, hasMessage = readString(it)
		case "details":
			details, hasDetails = readString(it)
		case "errors":
			flattened = readValidationErrors(it)
		default:
			it.Skip()
		}
		return it.Error == nil
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return raw
	}

	if hasMessage && strings.TrimSpace(message) != "" {
		if hasDetails && strings.TrimSpace(details) != "" {
			return message + " Details: " + details
		}
		return message
	}

	if len(flattened) > 0 {
		return strings.TrimSpace(strings.Join(flattened, " "))
	}

	return raw
}

func readString(it *jsoniter.Iterator) (string, bool) {
	if it.WhatIsNext() != jsoniter.StringValue {
		it.Skip()
		return "", false
	}
	return it.ReadString(), true
}

// readValidationErrors lê {"Campo":["msg", ...]} preservando a ordem das chaves
func readValidationErrors(it *jsoniter.Iterator) []string {
	if it.WhatIsNext() != jsoniter.ObjectValue {
		it.Skip()
		return nil
	}

	entries := make([]string, 0)
	it.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		parts := []string{field + ":"}

		if it.WhatIsNext() == jsoniter.ArrayValue {
			it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
				if msg, ok := readString(it); ok {
					parts = append(parts, msg)
				}
				return it.Error == nil
			})
		} else {
			it.Skip()
		}

		entries = append(entries, strings.TrimSpace(strings.Join(parts, " ")))
		return it.Error == nil
	})

	return entries
}
