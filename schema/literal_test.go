package schema

import (
	"errors"
	"testing"
)

func TestDecodeLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"True", true},
		{"False", false},
		{"nullptr", "nullptr"},
		{"[]", "{}"},
		{"[1,1]", "{1,1}"},
		{"[0, 1]", "{0, 1}"},
		{"None", "nullopt"},
		{"Mean", "Reduction::Mean"},
		{"1", 1},
		{"-1", -1},
		{"1e-05", 1e-05},
		{"0.5", 0.5},
		{"reduction", "reduction"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := decodeLiteral(tt.in)
			if err != nil {
				t.Fatalf("decodeLiteral(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("decodeLiteral(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeLiteralDeprecated(t *testing.T) {
	for _, in := range []string{"true", "false"} {
		t.Run(in, func(t *testing.T) {
			_, err := decodeLiteral(in)
			if !errors.Is(err, ErrDeprecatedLiteral) {
				t.Errorf("decodeLiteral(%q) error = %v, want ErrDeprecatedLiteral", in, err)
			}
		})
	}
}

func TestTranslateType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tensor[]", "TensorList"},
		{"int[]", "IntList"},
		{"int", "int64_t"},
		{"float", "double"},
		{"Tensor", "Tensor"},
		{"Scalar", "Scalar"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := translateType(tt.in); got != tt.want {
				t.Errorf("translateType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeType(t *testing.T) {
	if got := sanitizeType("Generator*"); got != "Generator *" {
		t.Errorf("sanitizeType(Generator*) = %q, want %q", got, "Generator *")
	}
	if got := sanitizeType("Tensor"); got != "Tensor" {
		t.Errorf("sanitizeType(Tensor) = %q, want Tensor", got)
	}
}
