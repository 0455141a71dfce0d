package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// typeAliases resolves legacy surface spellings to the type tokens the
// downstream native generators expect.
var typeAliases = map[string]string{
	"Tensor[]": "TensorList",
	"int[]":    "IntList",
	"int":      "int64_t",
	"float":    "double",
}

func translateType(typ string) string {
	if t, ok := typeAliases[typ]; ok {
		return t
	}
	return typ
}

// sanitizeType normalizes pointer spacing on generator types.
func sanitizeType(typ string) string {
	if typ == "Generator*" {
		return "Generator *"
	}
	return typ
}

// decodeLiteral decodes a default-value literal from the signature text.
// Booleans use the capitalized spellings; lowercase true/false fail with
// ErrDeprecatedLiteral. Bracketed lists are rewritten to brace aggregates,
// None becomes the nullopt sentinel, and anything that is neither an integer
// nor a float passes through verbatim.
func decodeLiteral(s string) (any, error) {
	switch s {
	case "True":
		return true, nil
	case "False":
		return false, nil
	case "true", "false":
		return nil, fmt.Errorf("%w: %q", ErrDeprecatedLiteral, s)
	case "nullptr":
		return s, nil
	case "[]":
		return "{}", nil
	case "None":
		return "nullopt", nil
	case "Mean":
		// Legacy named constant for the reduction-mode enum.
		return "Reduction::Mean", nil
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return "{" + s[1:len(s)-1] + "}", nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return s, nil
}
