package outcome

import (
	"github.com/goccy/go-json"
)

type okJSON[T any] struct {
	Ok    bool `json:"ok"`
	Value T    `json:"value"`
}

type errJSON struct {
	Ok    bool    `json:"ok"`
	Error *string `json:"error"`
}

// MarshalJSON encodes Ok as {"ok":true,"value":...} and Err as
// {"ok":false,"error":"<message>"}. A nil failure encodes as "error":null.
func (o Outcome[T, E]) MarshalJSON() ([]byte, error) {
	if o.ok {
		return json.Marshal(okJSON[T]{Ok: true, Value: o.value})
	}

	var msg *string
	if !isNilError(o.err) {
		s := o.err.Error()
		msg = &s
	}
	return json.Marshal(errJSON{Ok: false, Error: msg})
}
