// Package schema compiles declarative operator signatures into normalized
// declaration records.
//
// An operator schema is a sequence of records, each carrying a signature of
// the form "name(arg-list) -> return-spec" plus optional sibling fields
// (variants, dispatch overrides, flags). Compile turns each record into a
// Declaration consumed by downstream dispatch-table, binding, and
// documentation generators.
package schema

import "strings"

// Namespace prefixes every schema string, giving each declaration a stable,
// fully qualified identity key.
const Namespace = "native::"

// Argument is one parameter of an operator signature after normalization.
type Argument struct {
	// Type is the normalized type token, after alias translation and
	// nullability stripping.
	Type string `json:"type"`
	Name string `json:"name"`

	// IsNullable records a trailing "?" on the surface type.
	IsNullable bool `json:"is_nullable"`

	// Default holds the decoded default literal, or nil when the signature
	// declared none. Decoded values are bool, int, float64, or string
	// sentinels such as "{}" and "nullopt".
	Default any `json:"default"`

	// Annotation is the alias/mutability tag from a Tensor(...) wrapper,
	// for example "a!". Empty when the type carried no annotation.
	Annotation string `json:"annotation,omitempty"`

	// IsOutput marks arguments bound to return slots of _out variants.
	IsOutput bool `json:"output,omitempty"`

	// IsKeywordOnly is set for every argument after a bare "*" separator.
	IsKeywordOnly bool `json:"kwarg_only,omitempty"`

	// FieldName is propagated from an explicitly named return slot onto the
	// positionally corresponding output argument of an _out variant.
	FieldName string `json:"field_name,omitempty"`

	// Size is the fixed length of an int[N] list type; zero when unsized.
	Size int `json:"size,omitempty"`
}

// Return is one return slot of an operator signature.
type Return struct {
	Type string `json:"type"`

	// Name is "result" (or "result0", "result1", ... for multiple unnamed
	// slots), "self" for the aliased receiver of an in-place operator, or
	// the explicit name when the signature named the slot.
	Name string `json:"name"`

	// FieldName is set only when the return slot was explicitly named.
	FieldName string `json:"field_name,omitempty"`

	Annotation string `json:"annotation,omitempty"`
}

// DispatchTable maps a backend key to the implementation symbol responsible
// for the operator on that backend. A schema record that gives a single bare
// string applies to every backend; it is stored under the empty key.
type DispatchTable map[string]string

// HasSparse reports whether any backend key names a sparse backend.
func (d DispatchTable) HasSparse() bool {
	for backend := range d {
		if strings.Contains(backend, "Sparse") {
			return true
		}
	}
	return false
}

// Declaration is one fully compiled operator record.
type Declaration struct {
	Name string `json:"name"`

	// SchemaString is the verbatim signature text prefixed with Namespace.
	// It is the declaration's identity key across the full schema set.
	SchemaString string `json:"schema_string"`

	// IsInplace is derived from the naming convention: a leading "__i" or a
	// trailing "_" not preceded by another "_".
	IsInplace bool `json:"inplace"`

	Arguments []Argument `json:"arguments"`
	Returns   []Return   `json:"returns"`

	// Variants lists the dispatch contexts the operator is exposed in.
	Variants []string `json:"variants"`

	RequiresTensor      bool `json:"requires_tensor"`
	MatchesJITSignature bool `json:"matches_jit_signature"`
	CPUHalf             bool `json:"cpu_half"`
	Deprecated          bool `json:"deprecated"`
	DeviceGuard         bool `json:"device_guard"`

	Dispatch DispatchTable `json:"dispatch"`

	// PythonModule groups the declaration for binding generation.
	PythonModule string `json:"python_module"`

	HasSparseDispatch bool `json:"has_sparse_dispatch"`
}

// OutputArguments returns the arguments bound to return slots, in order.
func (d *Declaration) OutputArguments() []Argument {
	var out []Argument
	for _, arg := range d.Arguments {
		if arg.IsOutput {
			out = append(out, arg)
		}
	}
	return out
}

// FunctionSpec is one raw operator record as read from a schema document.
// Func is the only required field; everything else defaults per Compile.
// Unrecognized sibling fields in the source document are ignored.
type FunctionSpec struct {
	// Func holds the literal signature text, "name(args) -> returns".
	Func string `json:"func"`

	// Name overrides the name derived from the signature.
	Name string `json:"name"`

	// Variants accepts either a scalar ("function, method") or a sequence
	// in the source document.
	Variants []string `json:"variants"`

	// Dispatch accepts either a bare implementation name or a mapping from
	// backend key to implementation name.
	Dispatch DispatchTable `json:"dispatch"`

	RequiresTensor      bool `json:"requires_tensor"`
	MatchesJITSignature bool `json:"matches_jit_signature"`
	CPUHalf             bool `json:"cpu_half"`
	Deprecated          bool `json:"deprecated"`

	// DeviceGuard defaults to true when absent.
	DeviceGuard *bool `json:"device_guard"`

	// Arguments, when present, replaces the parsed argument list verbatim.
	Arguments []Argument `json:"arguments"`

	PythonModule string `json:"python_module"`
}

// isInplaceName reports whether an operator name follows the in-place
// convention: a leading "__i", or a trailing "_" whose preceding character
// is not itself "_".
func isInplaceName(name string) bool {
	if strings.HasPrefix(name, "__i") {
		return true
	}
	return len(name) >= 2 && strings.HasSuffix(name, "_") && !strings.HasSuffix(name, "__")
}
