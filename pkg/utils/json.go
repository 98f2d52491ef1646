package utils

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// PrettyJson serializa qualquer valor (ou bytes já em JSON) de forma indentada para logs.
// Em caso de erro devolve o melhor texto possível, nunca falha.
func PrettyJson(in any) string {
	var buffer []byte

	switch v := in.(type) {
	case []byte:
		buffer = v
	case json.RawMessage:
		buffer = v
	default:
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(in)
		if err != nil {
			return err.Error()
		}
		buffer = b
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		return string(buffer)
	}

	return out.String()
}
