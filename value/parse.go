package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Parse decodes a JSON text into a Value tree, preserving object key order
// exactly as encountered, including duplicate keys. It is built on
// encoding/json's streaming Token API (rather than Unmarshal into
// map[string]interface{}, which would lose both key order and duplicates).
func Parse(text []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("value: parse: %w", err)
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case json.Number:
		return numberFromJSON(t)
	case string:
		return NewString(t), nil
	case json.Delim:
		switch t {
		case '[':
			elems := []*Value{}
			for dec.More() {
				e, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				elems = append(elems, e)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return &Value{Kind: Array, Elems: elems}, nil
		case '{':
			pairs := []Pair{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("value: non-string object key %v", keyTok)
				}
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, Pair{Key: key, Val: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return &Value{Kind: Object, Pairs: pairs}, nil
		}
	}
	return nil, fmt.Errorf("value: unexpected token %v", tok)
}

func numberFromJSON(n json.Number) (*Value, error) {
	s := string(n)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewInt64(i), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return NewUint64(u), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// A json.Number is always a well-formed numeric literal, so this
		// only fails when its magnitude is beyond float64's range (1e400).
		return nil, fmt.Errorf("value: number %q out of float64 range", s)
	}
	return NewFloat64(f), nil
}
