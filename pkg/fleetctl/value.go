package fleetctl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// Value is an explicit tagged representation of a decoded JSON value, so
// that shape handling downstream can switch over kinds exhaustively instead
// of type-asserting an untyped interface at every step. Numbers keep their
// original literal to survive a round trip unchanged.
type Value struct {
	kind Kind
	str  string // String content, or the Number literal
	b    bool
	arr  []Value
	obj  map[string]Value
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// Array returns the elements of an Array value, nil for any other kind.
func (v Value) Array() []Value {
	if v.kind != Array {
		return nil
	}
	return v.arr
}

// Field looks up a key of an Object value.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	f, ok := v.obj[name]
	return f, ok
}

// Fields returns the key set of an Object value, nil otherwise.
func (v Value) Fields() map[string]Value {
	if v.kind != Object {
		return nil
	}
	return v.obj
}

// Text coerces scalar values to their string form. Strings return their
// content, numbers their literal, booleans "true"/"false". Null, arrays and
// objects coerce to the empty string.
func (v Value) Text() string {
	switch v.kind {
	case String, Number:
		return v.str
	case Bool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// MarshalJSON reproduces the original JSON shape of the value.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Null:
		return []byte("null"), nil
	case Bool:
		return []byte(strconv.FormatBool(v.b)), nil
	case Number:
		return []byte(v.str), nil
	case String:
		return json.Marshal(v.str)
	case Array:
		if v.arr == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.arr)
	case Object:
		var buf bytes.Buffer
		buf.WriteByte('{')
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			vb, err := v.obj[k].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			buf.Write(vb)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown value kind %d", v.kind)
}

// DecodeValue parses data as exactly one JSON value. Trailing non-space
// content is an error, matching strict whole-document decoding.
func DecodeValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, fmt.Errorf("unexpected content after JSON value")
	}
	return fromDecoded(raw), nil
}

// fromDecoded converts the encoding/json dynamic form into a tagged Value.
func fromDecoded(raw interface{}) Value {
	switch t := raw.(type) {
	case nil:
		return Value{kind: Null}
	case bool:
		return Value{kind: Bool, b: t}
	case json.Number:
		return Value{kind: Number, str: t.String()}
	case string:
		return Value{kind: String, str: t}
	case []interface{}:
		arr := make([]Value, len(t))
		for i, e := range t {
			arr[i] = fromDecoded(e)
		}
		return Value{kind: Array, arr: arr}
	case map[string]interface{}:
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			obj[k] = fromDecoded(e)
		}
		return Value{kind: Object, obj: obj}
	}
	// encoding/json never yields anything else
	return Value{kind: Null}
}

// ArrayValue builds an Array value from already-decoded elements.
func ArrayValue(elems []Value) Value {
	return Value{kind: Array, arr: elems}
}
