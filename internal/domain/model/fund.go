package model

import (
	"bytes"
	"encoding/json"
)

// Fund is a client supplied saved fund record. Only the "id" member is
// interpreted; every other field is stored and returned as is.
type Fund map[string]any

// FundIDField is the member used to identify fund records.
const FundIDField = "id"

// ID returns the record identifier and whether it is present.
func (f Fund) ID() (any, bool) {
	if f == nil {
		return nil, false
	}
	id, ok := f[FundIDField]
	if !ok || id == nil {
		return nil, false
	}
	return id, true
}

// MatchesID reports whether the record identifier equals id by JSON value.
// The string "1" and the number 1 are different identifiers.
func (f Fund) MatchesID(id any) bool {
	own, ok := f.ID()
	if !ok {
		return false
	}
	a, err := EncodeFundID(own)
	if err != nil {
		return false
	}
	b, err := EncodeFundID(id)
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}

// EncodeFundID renders id as canonical JSON.
func EncodeFundID(id any) ([]byte, error) {
	return json.Marshal(id)
}
