package flog

import (
	"fmt"
	"time"
)

// Kind says which member of a Field holds the value.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt64
	KindUint64
	KindFloat64
	KindBool
	KindDuration
	KindTime
	KindError
	KindBytes
	KindAny
)

var kindNames = [...]string{
	KindString:   "string",
	KindInt64:    "int64",
	KindUint64:   "uint64",
	KindFloat64:  "float64",
	KindBool:     "bool",
	KindDuration: "duration",
	KindTime:     "time",
	KindError:    "error",
	KindBytes:    "bytes",
	KindAny:      "any",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Field is one key/value pair attached to a record. Only the member selected
// by Kind is meaningful; the rest stay zero. Keeping the common scalar types
// out of Any means building a field never allocates.
type Field struct {
	Key  string
	Kind Kind

	Str   string
	Int   int64
	Uint  uint64
	Float float64
	Bool  bool
	Dur   time.Duration
	Time  time.Time
	Err   error
	Bytes []byte
	Any   any
}

// Value returns the field's value boxed as an interface.
func (f Field) Value() any {
	switch f.Kind {
	case KindString:
		return f.Str
	case KindInt64:
		return f.Int
	case KindUint64:
		return f.Uint
	case KindFloat64:
		return f.Float
	case KindBool:
		return f.Bool
	case KindDuration:
		return f.Dur
	case KindTime:
		return f.Time
	case KindError:
		return f.Err
	case KindBytes:
		return f.Bytes
	default:
		return f.Any
	}
}

func FStr(k, v string) Field               { return Field{Key: k, Kind: KindString, Str: v} }
func FInt(k string, v int64) Field         { return Field{Key: k, Kind: KindInt64, Int: v} }
func FUint(k string, v uint64) Field       { return Field{Key: k, Kind: KindUint64, Uint: v} }
func FFloat(k string, v float64) Field     { return Field{Key: k, Kind: KindFloat64, Float: v} }
func FBool(k string, v bool) Field         { return Field{Key: k, Kind: KindBool, Bool: v} }
func FDur(k string, v time.Duration) Field { return Field{Key: k, Kind: KindDuration, Dur: v} }
func FTime(k string, v time.Time) Field    { return Field{Key: k, Kind: KindTime, Time: v} }
func FErr(k string, err error) Field       { return Field{Key: k, Kind: KindError, Err: err} }
func FBytes(k string, b []byte) Field      { return Field{Key: k, Kind: KindBytes, Bytes: b} }
func FAny(k string, v any) Field           { return Field{Key: k, Kind: KindAny, Any: v} }
