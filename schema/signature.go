package schema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// annotationRE matches a Tensor type wrapping an alias/mutability tag,
// e.g. "Tensor(a!)" or "Tensor(b)".
var annotationRE = regexp.MustCompile(`^(Tensor.*)\((.+)\)`)

// intListSizeRE matches a fixed-length integer list type, e.g. "int[2]".
var intListSizeRE = regexp.MustCompile(`^int\[(\d+)\]$`)

// splitAnnotation strips the alias/mutability tag from a type token.
// Unannotated types pass through with an empty annotation.
func splitAnnotation(typ string) (string, string) {
	if m := annotationRE.FindStringSubmatch(typ); m != nil {
		return m[1], m[2]
	}
	return typ, ""
}

// splitTopLevel splits s on commas that sit outside any (), [], or <>
// nesting, so composite types such as "std::array<bool, 2>" survive intact.
// Fields are space-trimmed.
func splitTopLevel(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var (
		fields []string
		depth  int
		start  int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '<':
			depth++
		case ')', ']', '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				fields = append(fields, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(fields, strings.TrimSpace(s[start:]))
}

// splitLastSpace splits a field on its final space, separating a possibly
// multi-word type (like "Generator *") from the trailing name.
func splitLastSpace(s string) (typ, name string, ok bool) {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return s, "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
}

// parseReturns parses the return specification to the right of "->".
// Parenthesized tuples are flattened; unnamed slots get positional names,
// except that the sole Tensor return of an in-place operator is named
// "self" and must carry a mutable annotation.
func parseReturns(text string, inplace bool) ([]Return, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		text = text[1 : len(text)-1]
	}
	fields := splitTopLevel(text)
	multiple := len(fields) > 1

	returns := make([]Return, 0, len(fields))
	for i, field := range fields {
		var ret Return
		typ, name, named := splitLastSpace(field)
		if named {
			ret.FieldName = name
			ret.Name = name
			typ, ret.Annotation = splitAnnotation(typ)
		} else {
			typ, ret.Annotation = splitAnnotation(typ)
			switch {
			case typ == "Tensor" && inplace:
				if !strings.HasSuffix(ret.Annotation, "!") {
					return nil, fmt.Errorf("%w: return slot %d is not annotated mutable", ErrInPlaceAnnotationMismatch, i)
				}
				ret.Name = "self"
			case multiple:
				ret.Name = "result" + strconv.Itoa(i)
			default:
				ret.Name = "result"
			}
		}
		ret.Type = translateType(sanitizeType(typ))
		returns = append(returns, ret)
	}
	return returns, nil
}

// parseArguments parses the argument list, marking keyword-only arguments
// after a bare "*" and binding the leading arguments of _out variants to
// return slots by position. The already-parsed return list and the in-place
// flag drive the self/return alias validation.
func parseArguments(text, declName string, variants []string, returns []Return, inplace bool) ([]Argument, error) {
	isOut := strings.HasSuffix(declName, "_out")
	if isOut && !functionOnlyVariants(variants) {
		// The out-parameter binding convention is undefined for method-style
		// dispatch; see the variants invariant on _out operators.
		return nil, fmt.Errorf("%w: %s declares variants %v", ErrOutVariantWrongVariant, declName, variants)
	}

	var arguments []Argument
	kwargOnly := false
	for idx, tok := range splitTopLevel(text) {
		if tok == "*" {
			if kwargOnly {
				return nil, ErrDuplicateKeywordMarker
			}
			kwargOnly = true
			continue
		}

		typ, name, ok := splitLastSpace(tok)
		if !ok {
			return nil, fmt.Errorf("argument %q is missing a name", tok)
		}
		typ, annotation := splitAnnotation(typ)

		// Generator? resolves to the legacy pointer spelling before default
		// decoding so that =None becomes the pointer null literal.
		if typ == "Generator?" {
			typ = "Generator*"
		}

		var def any
		if strings.Contains(name, "=") {
			var defText string
			name, defText, _ = strings.Cut(name, "=")
			// Tensor? x=None takes the empty-aggregate default, not the
			// no-value sentinel.
			if typ == "Tensor?" && defText == "None" {
				defText = "[]"
			}
			if typ == "Generator*" && defText == "None" {
				defText = "nullptr"
			}
			var err error
			if def, err = decodeLiteral(defText); err != nil {
				return nil, err
			}
		}

		typ = sanitizeType(typ)
		arg := Argument{
			Name:       name,
			IsNullable: strings.HasSuffix(typ, "?"),
			Default:    def,
			Annotation: annotation,
		}
		base := strings.TrimRight(typ, "?")
		if m := intListSizeRE.FindStringSubmatch(base); m != nil {
			base = "IntList"
			arg.Size, _ = strconv.Atoi(m[1])
		}
		arg.Type = translateType(base)
		if isOut && idx < len(returns) {
			arg.IsOutput = true
		}
		arg.IsKeywordOnly = kwargOnly
		arguments = append(arguments, arg)
	}

	if err := validateInplace(arguments, returns, inplace); err != nil {
		return nil, err
	}
	return arguments, nil
}

// functionOnlyVariants reports whether variants is empty or exactly
// {"function"}.
func functionOnlyVariants(variants []string) bool {
	return len(variants) == 0 || (len(variants) == 1 && variants[0] == "function")
}

// validateInplace enforces that an in-place operator with a non-void return
// has a mutable self argument aliasing its corresponding return slot.
func validateInplace(arguments []Argument, returns []Return, inplace bool) error {
	if !inplace || len(returns) == 0 || returns[0].Type == "void" {
		return nil
	}
	found := false
	for i, arg := range arguments {
		if arg.Name != "self" {
			continue
		}
		if !strings.HasSuffix(arg.Annotation, "!") {
			return fmt.Errorf("%w: self is not annotated mutable", ErrInPlaceSelfMissing)
		}
		found = true
		if i >= len(returns) {
			return fmt.Errorf("%w: self at position %d has no corresponding return slot", ErrInPlaceAnnotationMismatch, i)
		}
		ret := returns[i]
		if arg.Annotation != ret.Annotation {
			return fmt.Errorf("%w: self has %q, return has %q", ErrInPlaceAnnotationMismatch, arg.Annotation, ret.Annotation)
		}
		if arg.Name != ret.Name || arg.Type != ret.Type {
			return fmt.Errorf("%w: self (%s %s) must alias the return slot (%s %s)",
				ErrInPlaceAnnotationMismatch, arg.Type, arg.Name, ret.Type, ret.Name)
		}
	}
	if !found {
		return ErrInPlaceSelfMissing
	}
	return nil
}

// propagateFieldNames copies explicit return-slot names onto the
// positionally corresponding output arguments of an _out variant.
func propagateFieldNames(arguments []Argument, returns []Return) {
	i := 0
	for j := range arguments {
		if !arguments[j].IsOutput {
			continue
		}
		if i < len(returns) && returns[i].FieldName != "" {
			arguments[j].FieldName = returns[i].FieldName
		}
		i++
	}
}
