package graphml

import (
	"testing"

	"github.com/graphkit/cxport/cx"
)

// TestCoerceDeclared tests declared-type token mapping
func TestCoerceDeclared(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"int", "integer"},
		{"str", "string"},
		{"bool", "boolean"},
		{"float", "double"},
		{"integer", "integer"},
		{"long", "long"},
		{"double", "double"},
		{"boolean", "boolean"},
		{"string", "string"},
		{"list_of_string", "string"},
		{"list_of_integer", "string"},
		{"list_of_long", "string"},
	}

	for _, tt := range tests {
		result := CoerceDeclared(tt.input)
		if result != tt.expected {
			t.Errorf("CoerceDeclared(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

// TestInferType tests runtime tag inference
func TestInferType(t *testing.T) {
	tests := []struct {
		name     string
		value    cx.Value
		expected string
	}{
		{"integer", cx.Integer(5), "integer"},
		{"long", cx.Long(281474976710655), "long"},
		{"double", cx.Double(2.5), "double"},
		{"boolean", cx.Boolean(true), "boolean"},
		{"string", cx.String("x"), "string"},
		{"list degrades to string", cx.List([]cx.Value{cx.Integer(5)}), "string"},
		{"null infers no type", cx.Null(), ""},
	}

	for _, tt := range tests {
		result := InferType(tt.value)
		if result != tt.expected {
			t.Errorf("InferType(%s) = %q, want %q", tt.name, result, tt.expected)
		}
	}
}
