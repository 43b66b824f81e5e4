package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Object represents a value parsed from PDF syntax. The concrete types form
// a closed set so downstream stages can switch exhaustively.
type Object interface {
	Type() ObjectType
	String() string
}

// ObjectType identifies the concrete type of an Object.
type ObjectType int

const (
	ObjName ObjectType = iota
	ObjInt
	ObjReal
	ObjString
	ObjArray
	ObjDict
	ObjRef
	ObjRaw
)

// String returns the string representation of the object type.
func (t ObjectType) String() string {
	switch t {
	case ObjName:
		return "Name"
	case ObjInt:
		return "Int"
	case ObjReal:
		return "Real"
	case ObjString:
		return "String"
	case ObjArray:
		return "Array"
	case ObjDict:
		return "Dict"
	case ObjRef:
		return "Ref"
	case ObjRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Name represents a PDF name with the leading slash stripped (e.g. "Filter").
type Name string

func (n Name) Type() ObjectType { return ObjName }
func (n Name) String() string   { return "/" + string(n) }

// Int represents a PDF integer.
type Int int64

func (i Int) Type() ObjectType { return ObjInt }
func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }

// Real represents a PDF real number.
type Real float64

func (r Real) Type() ObjectType { return ObjReal }
func (r Real) String() string   { return strconv.FormatFloat(float64(r), 'f', -1, 64) }

// String represents a PDF literal string. The bytes are kept exactly as they
// appear between the parentheses; escape sequences are resolved later, after
// text decoding.
type String string

func (s String) Type() ObjectType { return ObjString }
func (s String) String() string   { return "(" + string(s) + ")" }

// Array represents a PDF array.
type Array []Object

func (a Array) Type() ObjectType { return ObjArray }
func (a Array) String() string {
	parts := make([]string, len(a))
	for i, obj := range a {
		parts[i] = obj.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Ref represents an indirect object reference (e.g. "3 0 R").
type Ref struct {
	Number     int
	Generation int
}

func (r Ref) Type() ObjectType { return ObjRef }
func (r Ref) String() string   { return fmt.Sprintf("%d %d R", r.Number, r.Generation) }

// Raw holds a token that no other variant claims. Composite or exotic values
// are carried through untouched for later stages to interpret contextually.
type Raw string

func (r Raw) Type() ObjectType { return ObjRaw }
func (r Raw) String() string   { return string(r) }

// Dict represents a PDF dictionary keyed by name (slash stripped).
type Dict map[string]Object

func (d Dict) Type() ObjectType { return ObjDict }
func (d Dict) String() string {
	parts := make([]string, 0, len(d))
	for key, val := range d {
		parts = append(parts, fmt.Sprintf("/%s %s", key, val.String()))
	}
	return "<<" + strings.Join(parts, " ") + ">>"
}

// Get retrieves a value from the dictionary.
func (d Dict) Get(key string) Object {
	return d[key]
}

// Has checks if a key exists in the dictionary.
func (d Dict) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// GetName retrieves a name value.
func (d Dict) GetName(key string) (Name, bool) {
	obj, ok := d[key]
	if !ok {
		return "", false
	}
	name, ok := obj.(Name)
	return name, ok
}

// GetInt retrieves an integer value.
func (d Dict) GetInt(key string) (Int, bool) {
	obj, ok := d[key]
	if !ok {
		return 0, false
	}
	i, ok := obj.(Int)
	return i, ok
}

// GetReal retrieves a real number value. Integers are widened.
func (d Dict) GetReal(key string) (Real, bool) {
	obj, ok := d[key]
	if !ok {
		return 0, false
	}
	switch v := obj.(type) {
	case Real:
		return v, true
	case Int:
		return Real(v), true
	}
	return 0, false
}

// GetRef retrieves an indirect reference.
func (d Dict) GetRef(key string) (Ref, bool) {
	obj, ok := d[key]
	if !ok {
		return Ref{}, false
	}
	ref, ok := obj.(Ref)
	return ref, ok
}
