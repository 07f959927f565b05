package cx

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/graphkit/cxport/errors"
)

// Kind identifies the closed set of value shapes a CX attribute can
// carry once decoded. Downstream stages switch on this tag instead of
// inspecting runtime types.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger // fits in int32
	KindLong
	KindDouble
	KindString
	KindList
)

// Value is a tagged CX attribute value, produced once at parse time.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
}

// Constructors for each kind

func Null() Value              { return Value{kind: KindNull} }
func Boolean(b bool) Value     { return Value{kind: KindBoolean, b: b} }
func Integer(i int64) Value    { return Value{kind: KindInteger, i: i} }
func Long(i int64) Value       { return Value{kind: KindLong, i: i} }
func Double(f float64) Value   { return Value{kind: KindDouble, f: f} }
func String(s string) Value    { return Value{kind: KindString, s: s} }
func List(items []Value) Value { return Value{kind: KindList, list: items} }

// Kind returns the value's tag
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null/absent
func (v Value) IsNull() bool { return v.kind == KindNull }

// Items returns the elements of a list value (nil for scalars)
func (v Value) Items() []Value { return v.list }

// UnmarshalJSON decodes a JSON value into its tagged representation.
// Numbers without a fraction or exponent become integers when they fit
// in int32 and longs otherwise; all other numbers become doubles.
func (v *Value) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" {
		return errors.New("empty JSON value")
	}

	switch s[0] {
	case 'n':
		*v = Null()
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Boolean(b)
		return nil
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*v = String(str)
		return nil
	case '[':
		var items []Value
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*v = List(items)
		return nil
	case '{':
		return errors.Newf("unsupported object value: %s", s)
	}

	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*v = Double(f)
		return nil
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Out-of-range integer literals still carry through as doubles
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return err
		}
		*v = Double(f)
		return nil
	}
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		*v = Integer(i)
	} else {
		*v = Long(i)
	}
	return nil
}

// Render returns the canonical string form of the value. List elements
// are joined with delim (GraphML has no native list type, so lists are
// carried as delimited strings).
func (v Value) Render(delim string) string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindInteger, KindLong:
		return strconv.FormatInt(v.i, 10)
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.Render(delim)
		}
		return strings.Join(parts, delim)
	}
	return ""
}

// String renders with the conventional "|" delimiter
func (v Value) String() string {
	return v.Render("|")
}

// CoerceDeclared reconciles the decoded value with an explicit CX
// declared-type token ("d"), so that e.g. a JSON 5 declared as "long"
// carries the long tag from parse time on. Values that cannot be
// reconciled pass through unchanged (data-quality condition, not an
// error).
func (v Value) CoerceDeclared(declared string) Value {
	switch declared {
	case "", "string":
		return v
	case "integer":
		if n, ok := v.asInt(); ok {
			return Integer(n)
		}
	case "long":
		if n, ok := v.asInt(); ok {
			return Long(n)
		}
	case "double":
		switch v.kind {
		case KindInteger, KindLong:
			return Double(float64(v.i))
		case KindDouble:
			return v
		}
	case "boolean":
		return v
	default:
		if elem, ok := strings.CutPrefix(declared, "list_of_"); ok && v.kind == KindList {
			items := make([]Value, len(v.list))
			for i, item := range v.list {
				items[i] = item.CoerceDeclared(elem)
			}
			return List(items)
		}
	}
	return v
}

func (v Value) asInt() (int64, bool) {
	switch v.kind {
	case KindInteger, KindLong:
		return v.i, true
	case KindDouble:
		return int64(v.f), true
	}
	return 0, false
}
