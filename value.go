package sqlkit

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Kind identifies the database type a Value carries.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindBytes
	KindInt
	KindFloat
	KindBool
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindTime:
		return "time"
	}

	return "unknown"
}

// Value is a single column value returned by Select. Drivers report columns
// as one of a small set of Go types; Value preserves that type and lets the
// caller convert explicitly instead of assuming every column is text.
type Value struct {
	kind  Kind
	text  string
	bytes []byte
	i     int64
	f     float64
	b     bool
	t     time.Time
}

// Row is one result row, positionally aligned with the requested field list.
type Row []Value

func newValue(src any) (Value, error) {
	switch v := src.(type) {
	case nil:
		return Value{kind: KindNull}, nil
	case string:
		return Value{kind: KindText, text: v}, nil
	case []byte:
		return Value{kind: KindBytes, bytes: v}, nil
	case int64:
		return Value{kind: KindInt, i: v}, nil
	case float64:
		return Value{kind: KindFloat, f: v}, nil
	case bool:
		return Value{kind: KindBool, b: v}, nil
	case time.Time:
		return Value{kind: KindTime, t: v}, nil
	}

	return Value{}, errors.Errorf("unsupported driver value type %T", src)
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Text returns the value as a string. Only text and bytes columns convert;
// any other kind is an error.
func (v Value) Text() (string, error) {
	switch v.kind {
	case KindText:
		return v.text, nil
	case KindBytes:
		return string(v.bytes), nil
	}

	return "", errors.Errorf("can not convert %s value to text", v.kind)
}

// Bytes returns the raw bytes of a bytes or text column.
func (v Value) Bytes() ([]byte, error) {
	switch v.kind {
	case KindBytes:
		return v.bytes, nil
	case KindText:
		return []byte(v.text), nil
	}

	return nil, errors.Errorf("can not convert %s value to bytes", v.kind)
}

// Int returns the value as an int64. Integer columns convert directly;
// text columns are parsed.
func (v Value) Int() (int64, error) {
	switch v.kind {
	case KindInt:
		return v.i, nil
	case KindText:
		n, err := strconv.ParseInt(v.text, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "can not parse %q as integer", v.text)
		}
		return n, nil
	}

	return 0, errors.Errorf("can not convert %s value to integer", v.kind)
}

// Float returns the value as a float64. Integer and float columns convert
// directly; text columns are parsed.
func (v Value) Float() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	case KindText:
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "can not parse %q as float", v.text)
		}
		return f, nil
	}

	return 0, errors.Errorf("can not convert %s value to float", v.kind)
}

// Bool returns the value as a bool. Integer columns map 0/1, which is how
// sqlite stores booleans.
func (v Value) Bool() (bool, error) {
	switch v.kind {
	case KindBool:
		return v.b, nil
	case KindInt:
		switch v.i {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return false, errors.Errorf("can not convert integer %d to boolean", v.i)
	}

	return false, errors.Errorf("can not convert %s value to boolean", v.kind)
}

// Time returns the value as a time.Time.
func (v Value) Time() (time.Time, error) {
	if v.kind == KindTime {
		return v.t, nil
	}

	return time.Time{}, errors.Errorf("can not convert %s value to time", v.kind)
}

// String renders the value for display. It never fails; null renders as
// "NULL" and every other kind uses its natural formatting.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindText:
		return v.text
	case KindBytes:
		return string(v.bytes)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return v.t.Format(time.RFC3339)
	}

	return fmt.Sprintf("<%s>", v.kind)
}
