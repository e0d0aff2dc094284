package data

import (
	"fmt"
	"strconv"
)

// Value holds a typed flag value. Integer kinds share the Int payload and are
// range-checked when constructed through ParseValue.
type Value struct {
	Kind FlagKind `json:"kind"`
	Bool bool     `json:"bool,omitempty"`
	Int  int64    `json:"int,omitempty"`
	Str  string   `json:"str,omitempty"`
}

func BoolValue(v bool) Value {
	return Value{Kind: KindBoolean, Bool: v}
}

func Int8Value(v int8) Value {
	return Value{Kind: KindInt8, Int: int64(v)}
}

func Int16Value(v int16) Value {
	return Value{Kind: KindInt16, Int: int64(v)}
}

func Int32Value(v int32) Value {
	return Value{Kind: KindInt32, Int: int64(v)}
}

func Int64Value(v int64) Value {
	return Value{Kind: KindInt64, Int: v}
}

func StringValue(v string) Value {
	return Value{Kind: KindString, Str: v}
}

// ParseValue converts a bare token into a value of the given kind.
// Integers are decimal and must fit the bit size of the kind.
func ParseValue(kind FlagKind, token string) (Value, error) {
	switch kind {
	case KindBoolean:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case KindInt8, KindInt16, KindInt32, KindInt64:
		i, err := strconv.ParseInt(token, 10, kind.bitSize())
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: kind, Int: i}, nil
	case KindString:
		return StringValue(token), nil
	default:
		return Value{}, fmt.Errorf("unknown flag kind %d", kind)
	}
}

func (k FlagKind) bitSize() int {
	switch k {
	case KindInt8:
		return 8
	case KindInt16:
		return 16
	case KindInt32:
		return 32
	default:
		return 64
	}
}

// IsInteger reports whether the kind carries an integer payload.
func (k FlagKind) IsInteger() bool {
	return k >= KindInt8 && k <= KindInt64
}

func (v Value) Int8() int8 {
	return int8(v.Int)
}

func (v Value) Int16() int16 {
	return int16(v.Int)
}

func (v Value) Int32() int32 {
	return int32(v.Int)
}

func (v Value) Int64() int64 {
	return v.Int
}

// String renders the value the way it appears on the command line, without quoting.
func (v Value) String() string {
	switch {
	case v.Kind == KindBoolean:
		return strconv.FormatBool(v.Bool)
	case v.Kind.IsInteger():
		return strconv.FormatInt(v.Int, 10)
	default:
		return v.Str
	}
}
