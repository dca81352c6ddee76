// Package value defines the generic JSON value tree the LD codec operates on.
//
// The tree supports the seven JSON-compatible variants: null, boolean,
// integer, float, string, array, and object. Objects preserve the insertion
// order of first-seen keys; setting an existing key overwrites its value in
// place without moving it.
package value

import "iter"

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindNull Kind = iota + 1
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is a node of the JSON value tree.
type Value interface {
	Kind() Kind
}

// Null is the JSON null value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// Bool is a JSON boolean.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Int is a JSON number without a decimal point or exponent.
type Int int64

func (Int) Kind() Kind { return KindInt }

// Float is a JSON number carrying a decimal point or exponent.
type Float float64

func (Float) Kind() Kind { return KindFloat }

// String is a JSON string.
type String string

func (String) Kind() Kind { return KindString }

// Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return KindArray }

// Member is a single key-value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered mapping from unique string keys to values.
// The zero Object is not usable; create one with NewObject.
type Object struct {
	members []Member
	index   map[string]int // key -> position in members
}

func (*Object) Kind() Kind { return KindObject }

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set inserts or overwrites the value stored under key.
// An existing key keeps its original position.
func (o *Object) Set(key string, v Value) {
	if idx, ok := o.index[key]; ok {
		o.members[idx].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	idx, ok := o.index[key]
	if !ok {
		return nil, false
	}

	return o.members[idx].Value, true
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// Keys returns the member keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}

	return keys
}

// All iterates over the members in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, m := range o.members {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Equal reports whether two values are structurally equal: same kinds, same
// scalar contents, same element order, and same member order. Int and Float
// never compare equal even when numerically identical.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case Int:
		return av == b.(Int)
	case Float:
		return av == b.(Float)
	case String:
		return av == b.(String)
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}

		return true
	case *Object:
		bv := b.(*Object)
		if av.Len() != bv.Len() {
			return false
		}
		for i, m := range av.members {
			bm := bv.members[i]
			if m.Key != bm.Key || !Equal(m.Value, bm.Value) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
