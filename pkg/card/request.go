package card

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cardsmith/pkg/schema"
)

// DecodeRequest validates a raw request body and fills in defaults.
// Present values, null included, are kept as decoded; numbers stay
// json.Number so they are echoed back unchanged.
func DecodeRequest(body []byte) (schema.CardRequest, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return schema.CardRequest{}, fmt.Errorf("%w: no JSON data provided", ErrInvalidRequest)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return schema.CardRequest{}, fmt.Errorf("%w: malformed JSON: %v", ErrInvalidRequest, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return schema.CardRequest{}, fmt.Errorf("%w: unexpected data after JSON body", ErrInvalidRequest)
	}

	obj, ok := raw.(map[string]any)
	switch {
	case raw == nil, ok && len(obj) == 0:
		return schema.CardRequest{}, fmt.Errorf("%w: no JSON data provided", ErrInvalidRequest)
	case !ok:
		return schema.CardRequest{}, fmt.Errorf("%w: body must be a JSON object", ErrInvalidRequest)
	}

	return schema.CardRequest{
		Name:           field(obj, "name", schema.DefaultName),
		Element:        field(obj, "element", schema.DefaultElement),
		Description:    field(obj, "description", ""),
		SpecialAbility: field(obj, "special_ability", ""),
		Weakness:       field(obj, "weakness", ""),
	}, nil
}

func field(obj map[string]any, key string, fallback any) any {
	if v, ok := obj[key]; ok {
		return v
	}
	return fallback
}
