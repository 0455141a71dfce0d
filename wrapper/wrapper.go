// Package wrapper materializes per-kernel wrapper source files.
//
// Hand-written SIMD and assembly kernels can only compile on the
// architectures they target, but build systems that fan a fixed file list
// across every platform need one translation unit per kernel everywhere.
// Generate bridges the two: for every kernel file in a Table it writes a
// near-empty wrapper that includes the real kernel under a compile-time
// platform guard, so exactly one implementation per symbol survives
// preprocessing on any given target.
package wrapper

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Banner marks every generated wrapper. Downstream tooling must not
// hand-edit files carrying it.
const Banner = "/* Auto-generated by nativegen. Do not modify. */"

// Group pairs a preprocessor predicate with the kernel sources it guards.
// An empty predicate means the sources are included unconditionally. The
// predicate text is a boolean expression in the target compiler's
// preprocessor language; it is copied verbatim, never validated here.
type Group struct {
	Predicate string   `json:"predicate,omitempty" yaml:"predicate,omitempty"`
	Files     []string `json:"files" yaml:"files"`
}

// Table is the full kernel inventory fed to Generate. Groups are disjoint
// by construction: no two predicates in a realistic table hold on the same
// target, so group order has no observable effect beyond write ordering.
type Table []Group

// Generate writes one wrapper file per (predicate, file) pair under
// outputRoot, creating intermediate directories as needed. Re-running with
// the same table produces byte-identical output, which requires every file
// path to be unique within the table; colliding paths silently overwrite.
// The first I/O failure aborts the batch, leaving earlier files in place.
func Generate(table Table, outputRoot string) error {
	for _, group := range table {
		slog.Debug("generating wrappers",
			"predicate", group.Predicate, "files", len(group.Files))
		for _, file := range group.Files {
			if err := writeWrapper(group.Predicate, file, outputRoot); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeWrapper(predicate, file, outputRoot string) error {
	dest := filepath.Join(outputRoot, filepath.FromSlash(file))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(Banner)
	buf.WriteString("\n\n")
	if predicate == "" {
		fmt.Fprintf(&buf, "#include <%s>\n", file)
	} else {
		fmt.Fprintf(&buf, "#if %s\n", predicate)
		fmt.Fprintf(&buf, "#include <%s>\n", file)
		fmt.Fprintf(&buf, "#endif /* %s */\n", predicate)
	}
	return os.WriteFile(dest, buf.Bytes(), 0o644)
}

// LoadTable reads a kernel inventory from a YAML file: a sequence of groups,
// each with an optional predicate and a files list. Used to drive the
// generator for platform families outside the built-in inventory.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
