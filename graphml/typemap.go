package graphml

import (
	"strings"

	"github.com/graphkit/cxport/cx"
)

// GraphML primitive attribute types
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeLong    = "long"
	TypeDouble  = "double"
	TypeBoolean = "boolean"
)

// CoerceDeclared maps a CX declared-type token to a GraphML primitive
// type. List-like declared types degrade to string — GraphML has no
// list type, so the writer renders those values as delimited strings.
// Unknown tokens pass through untouched.
func CoerceDeclared(declared string) string {
	switch declared {
	case "int":
		return TypeInteger
	case "str":
		return TypeString
	case "bool":
		return TypeBoolean
	case "float":
		return TypeDouble
	}
	if strings.HasPrefix(declared, "list_of_") {
		return TypeString
	}
	return declared
}

// InferType maps a value's tag to a GraphML primitive type. Null
// values infer no type at all: the key is still declared, but without
// an attr.type attribute.
func InferType(v cx.Value) string {
	switch v.Kind() {
	case cx.KindBoolean:
		return TypeBoolean
	case cx.KindInteger:
		return TypeInteger
	case cx.KindLong:
		return TypeLong
	case cx.KindDouble:
		return TypeDouble
	case cx.KindString:
		return TypeString
	case cx.KindList:
		return TypeString
	}
	return ""
}

// resolveType prefers an explicit declared type over runtime inference
func resolveType(declared string, v cx.Value) string {
	if declared != "" {
		return CoerceDeclared(declared)
	}
	return InferType(v)
}
