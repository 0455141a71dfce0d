package wrapper

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConditional(t *testing.T) {
	root := t.TempDir()
	table := Table{
		{Predicate: "defined(__arm__)", Files: []string{"q8conv/4x8-aarch32-neon.S"}},
	}
	require.NoError(t, Generate(table, root))

	got, err := os.ReadFile(filepath.Join(root, "q8conv", "4x8-aarch32-neon.S"))
	require.NoError(t, err)

	want := Banner + "\n" +
		"\n" +
		"#if defined(__arm__)\n" +
		"#include <q8conv/4x8-aarch32-neon.S>\n" +
		"#endif /* defined(__arm__) */\n"
	assert.Equal(t, want, string(got))
}

func TestGenerateUnconditional(t *testing.T) {
	root := t.TempDir()
	table := Table{
		{Files: []string{"requantization/fp32-scalar.c"}},
	}
	require.NoError(t, Generate(table, root))

	got, err := os.ReadFile(filepath.Join(root, "requantization", "fp32-scalar.c"))
	require.NoError(t, err)

	want := Banner + "\n" +
		"\n" +
		"#include <requantization/fp32-scalar.c>\n"
	assert.Equal(t, want, string(got))
	assert.NotContains(t, string(got), "#if")
}

// snapshotTree reads every file under root into a path -> content map.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tree[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return tree
}

func TestGenerateIdempotent(t *testing.T) {
	root := t.TempDir()
	table := KernelSources()

	require.NoError(t, Generate(table, root))
	first := snapshotTree(t, root)

	require.NoError(t, Generate(table, root))
	second := snapshotTree(t, root)

	assert.Equal(t, first, second, "re-running the generator must produce byte-identical files")
}

func TestGenerateCreatesNestedDirectories(t *testing.T) {
	root := t.TempDir()
	table := Table{
		{Predicate: "defined(__aarch64__)", Files: []string{"deep/nested/path/kernel.S"}},
	}
	require.NoError(t, Generate(table, root))

	_, err := os.Stat(filepath.Join(root, "deep", "nested", "path", "kernel.S"))
	assert.NoError(t, err)
}

func TestGenerateIOError(t *testing.T) {
	// Using a regular file as the output root makes directory creation fail.
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, nil, 0o644))

	table := Table{{Files: []string{"sub/file.c"}}}
	assert.Error(t, Generate(table, blocked))
}

func TestKernelSourcesUniquePaths(t *testing.T) {
	seen := map[string]string{}
	for _, group := range KernelSources() {
		for _, file := range group.Files {
			if prev, ok := seen[file]; ok {
				t.Errorf("file %q appears under both %q and %q; wrappers would silently overwrite", file, prev, group.Predicate)
			}
			seen[file] = group.Predicate
		}
	}
	if len(seen) == 0 {
		t.Fatal("built-in kernel inventory is empty")
	}
}

func TestKernelSourcesPredicates(t *testing.T) {
	var hasUnconditional bool
	for _, group := range KernelSources() {
		if group.Predicate == "" {
			hasUnconditional = true
			for _, file := range group.Files {
				assert.Truef(t, strings.HasSuffix(file, ".c"), "unconditional kernel %q should be portable C", file)
			}
		}
	}
	assert.True(t, hasUnconditional, "inventory needs an unconditional group")
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- files:
    - u8lut32norm/scalar.c
- predicate: defined(__aarch64__)
  files:
    - q8gemm/8x8-aarch64-neon.S
`), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Empty(t, table[0].Predicate)
	assert.Equal(t, "defined(__aarch64__)", table[1].Predicate)
	assert.Equal(t, []string{"q8gemm/8x8-aarch64-neon.S"}, table[1].Files)
}
