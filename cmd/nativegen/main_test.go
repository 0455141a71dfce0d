package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nativegen/nativegen/schema"
)

func TestDeclarationSummary(t *testing.T) {
	decls, err := schema.Compile([]schema.FunctionSpec{
		{Func: "conv_transpose2d(Tensor self, Tensor weight) -> Tensor"},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	out := declarationSummary(decls)
	if !strings.Contains(out, "Conv Transpose2D (conv_transpose2d)") &&
		!strings.Contains(out, "Conv Transpose2d (conv_transpose2d)") {
		t.Errorf("summary missing title line:\n%s", out)
	}
	if !strings.Contains(out, "native::conv_transpose2d") {
		t.Errorf("summary missing schema string:\n%s", out)
	}
	if !strings.Contains(out, "variants:  function") {
		t.Errorf("summary missing variants:\n%s", out)
	}
}

func TestCLIDeclarationsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	if err := os.WriteFile(path, []byte("- func: relu(Tensor self) -> Tensor\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cli := NewCLI()
	cli.SetOut(&buf)
	cli.SetErr(&buf)
	cli.SetArgs([]string{"declarations", path})
	if err := cli.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"name": "relu"`, `"schema_string": "native::relu(Tensor self) -> Tensor"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %q:\n%s", want, out)
		}
	}
}

func TestCLIWrappers(t *testing.T) {
	root := t.TempDir()
	cli := NewCLI()
	cli.SetOut(new(bytes.Buffer))
	cli.SetErr(new(bytes.Buffer))
	cli.SetArgs([]string{"wrappers", "--root", root})
	if err := cli.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "sgemm", "6x8-psimd.c"))
	if err != nil {
		t.Fatalf("expected wrapper missing: %v", err)
	}
	if !strings.Contains(string(data), "#include <sgemm/6x8-psimd.c>") {
		t.Errorf("wrapper content = %q", data)
	}
}

func TestCLIHostinfo(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLI()
	cli.SetOut(&buf)
	cli.SetErr(&buf)
	cli.SetArgs([]string{"hostinfo"})
	if err := cli.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(buf.String(), "Built-in wrapper groups") {
		t.Errorf("hostinfo output:\n%s", buf.String())
	}
}
