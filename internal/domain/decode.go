package domain

import (
	"io"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/bespoked-admin/pkg/utils"
)

// Date e Timestamp são lidos por decoders registrados no jsoniter. Um UnmarshalJSON comum
// perderia o *utils.DateFormatError: structs e listas do jsoniter reescrevem o erro como texto.
func init() {
	jsoniter.RegisterTypeDecoderFunc("domain.Date", decodeDate)
	jsoniter.RegisterTypeDecoderFunc("domain.Timestamp", decodeTimestamp)
}

// decodeState acompanha uma chamada de Unmarshal pelo Attachment do iterator
type decodeState struct {
	dateErr error
}

// decodeError mantém a mensagem do jsoniter (com o caminho do campo) e o erro de data original
type decodeError struct {
	message string
	cause   error
}

func (e *decodeError) Error() string {
	return e.message
}

func (e *decodeError) Unwrap() error {
	return e.cause
}

// Unmarshal decodifica data em v com a configuração api. Quando a falha vem de uma data
// em qualquer nível do documento, o erro devolvido satisfaz errors.Is(err, utils.ErrInvalidDate).
func Unmarshal(api jsoniter.API, data []byte, v any) error {
	iter := api.BorrowIterator(data)
	defer api.ReturnIterator(iter)

	state := &decodeState{}
	iter.Attachment = state

	iter.ReadVal(v)
	if iter.Error == nil {
		iter.WhatIsNext()
		if iter.Error == nil {
			iter.ReportError("Unmarshal", "there are bytes left after unmarshal")
		}
	}

	err := iter.Error
	if err == io.EOF {
		return nil
	}
	if err != nil && state.dateErr != nil && err != state.dateErr {
		return &decodeError{message: err.Error(), cause: state.dateErr}
	}
	return err
}

func decodeDate(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	d := (*Date)(ptr)
	s, ok := readDateString(iter)
	if !ok {
		return
	}
	if s == nil {
		*d = Date{}
		return
	}

	parsed, err := ParseDate(*s)
	if err != nil {
		reportDateError(iter, err)
		return
	}
	*d = parsed
}

func decodeTimestamp(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	t := (*Timestamp)(ptr)
	s, ok := readDateString(iter)
	if !ok {
		return
	}
	if s == nil {
		*t = Timestamp{}
		return
	}

	parsed, err := utils.ParseTimestamp(*s)
	if err != nil {
		reportDateError(iter, err)
		return
	}
	*t = Timestamp{Time: parsed}
}

// readDateString devolve nil para null; qualquer valor que não seja string é uma data inválida
func readDateString(iter *jsoniter.Iterator) (*string, bool) {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return nil, true
	case jsoniter.StringValue:
		s := iter.ReadString()
		return &s, iter.Error == nil
	default:
		raw := iter.SkipAndReturnBytes()
		reportDateError(iter, &utils.DateFormatError{Value: string(raw)})
		return nil, false
	}
}

func reportDateError(iter *jsoniter.Iterator, err error) {
	if state, ok := iter.Attachment.(*decodeState); ok && state.dateErr == nil {
		state.dateErr = err
	}
	if iter.Error == nil || iter.Error == io.EOF {
		iter.Error = err
	}
}
