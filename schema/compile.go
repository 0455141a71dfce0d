package schema

import (
	"fmt"
	"strings"
)

// Compile turns raw operator records into declarations, in input order.
// Compilation is fail-fast: the first malformed record aborts the batch,
// and the returned error carries that record's signature text plus the
// partially assembled declaration (see Error).
func Compile(specs []FunctionSpec) ([]Declaration, error) {
	declarations := make([]Declaration, 0, len(specs))
	for _, spec := range specs {
		decl, err := compileRecord(spec)
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, decl)
	}
	return declarations, nil
}

func compileRecord(spec FunctionSpec) (Declaration, error) {
	decl := Declaration{SchemaString: Namespace + spec.Func}
	fail := func(err error) (Declaration, error) {
		partial := decl
		return Declaration{}, recordError(spec.Func, &partial, err)
	}

	if strings.Count(spec.Func, "->") != 1 {
		return fail(ErrMissingReturnArrow)
	}
	left, returnDecl, _ := strings.Cut(spec.Func, "->")
	left, returnDecl = strings.TrimSpace(left), strings.TrimSpace(returnDecl)

	name, argList, ok := strings.Cut(left, "(")
	if !ok || !strings.HasSuffix(argList, ")") {
		return fail(fmt.Errorf("%w: %q", ErrUnterminatedArgumentList, left))
	}
	argList = strings.TrimSuffix(argList, ")")

	decl.Name = name
	if spec.Name != "" {
		decl.Name = spec.Name
	}
	decl.IsInplace = isInplaceName(name)

	// Returns parse first: in-place validation needs both sides.
	returns, err := parseReturns(returnDecl, decl.IsInplace)
	if err != nil {
		return fail(err)
	}
	decl.Returns = returns

	arguments, err := parseArguments(argList, decl.Name, spec.Variants, returns, decl.IsInplace)
	if err != nil {
		return fail(err)
	}
	propagateFieldNames(arguments, returns)
	decl.Arguments = arguments
	if spec.Arguments != nil {
		// Explicit per-record override wins over the parsed list.
		decl.Arguments = spec.Arguments
	}

	decl.Variants = spec.Variants
	if len(decl.Variants) == 0 {
		decl.Variants = []string{"function"}
	}
	decl.RequiresTensor = spec.RequiresTensor
	decl.MatchesJITSignature = spec.MatchesJITSignature
	decl.CPUHalf = spec.CPUHalf
	decl.Deprecated = spec.Deprecated
	decl.DeviceGuard = spec.DeviceGuard == nil || *spec.DeviceGuard
	decl.Dispatch = spec.Dispatch
	if decl.Dispatch == nil {
		decl.Dispatch = DispatchTable{"": decl.Name}
	}
	decl.PythonModule = spec.PythonModule
	decl.HasSparseDispatch = decl.Dispatch.HasSparse()
	return decl, nil
}
