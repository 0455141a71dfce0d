// Copyright 2025 nativegen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command nativegen runs the operator-schema compiler and the conditional
// kernel wrapper generator.
package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nativegen/nativegen/internal/hostpred"
	"github.com/nativegen/nativegen/schema"
	"github.com/nativegen/nativegen/wrapper"
)

func main() {
	cobra.CheckErr(NewCLI().Execute())
}

// NewCLI builds the nativegen command tree.
func NewCLI() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "nativegen",
		Short:         "Build-time generators for native operator dispatch",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	var declOut string
	var declSummary bool
	declCmd := &cobra.Command{
		Use:   "declarations <schema.yaml>...",
		Short: "Compile operator schema files into declaration records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeclarations(cmd, args, declOut, declSummary)
		},
	}
	declCmd.Flags().StringVarP(&declOut, "out", "o", "", "write JSON to file instead of stdout")
	declCmd.Flags().BoolVar(&declSummary, "summary", false, "print a human-readable operator listing instead of JSON")

	var wrapRoot, wrapTable string
	wrapCmd := &cobra.Command{
		Use:   "wrappers",
		Short: "Generate conditional kernel wrapper files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrappers(wrapRoot, wrapTable)
		},
	}
	wrapCmd.Flags().StringVar(&wrapRoot, "root", "", "output directory for wrapper files")
	wrapCmd.Flags().StringVar(&wrapTable, "table", "", "YAML kernel table (default: built-in inventory)")
	_ = wrapCmd.MarkFlagRequired("root")

	hostCmd := &cobra.Command{
		Use:   "hostinfo",
		Short: "Report host CPU features and applicable wrapper groups",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runHostinfo(cmd)
		},
	}

	rootCmd.AddCommand(declCmd, wrapCmd, hostCmd)
	return rootCmd
}

func runDeclarations(cmd *cobra.Command, paths []string, out string, summary bool) error {
	specs, err := schema.LoadDocuments(paths...)
	if err != nil {
		return err
	}
	decls, err := schema.Compile(specs)
	if err != nil {
		return err
	}
	slog.Debug("compiled declarations", "records", len(specs), "files", len(paths))

	if summary {
		cmd.Print(declarationSummary(decls))
		return nil
	}

	data, err := json.MarshalIndent(decls, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if out != "" {
		return os.WriteFile(out, data, 0o644)
	}
	cmd.Print(string(data))
	return nil
}

func runWrappers(root, tablePath string) error {
	table := wrapper.KernelSources()
	if tablePath != "" {
		var err error
		if table, err = wrapper.LoadTable(tablePath); err != nil {
			return err
		}
	}
	return wrapper.Generate(table, root)
}

func runHostinfo(cmd *cobra.Command) {
	cmd.Printf("GOOS: %s\n", runtime.GOOS)
	cmd.Printf("GOARCH: %s\n", runtime.GOARCH)
	cmd.Printf("NumCPU: %d\n", runtime.NumCPU())
	cmd.Println()

	f := hostpred.Detect()
	cmd.Println("=== CPU features ===")
	cmd.Printf("  NEON:      %v\n", f.NEON)
	cmd.Printf("  FP16Arith: %v\n", f.FP16Arith)
	cmd.Printf("  SSE2:      %v\n", f.SSE2)
	cmd.Printf("  SSSE3:     %v\n", f.SSSE3)
	cmd.Printf("  SSE41:     %v\n", f.SSE41)
	cmd.Println()

	cmd.Println("=== Built-in wrapper groups ===")
	for _, group := range wrapper.KernelSources() {
		predicate := group.Predicate
		if predicate == "" {
			predicate = "(unconditional)"
		}
		cmd.Printf("  %-62s applies=%v files=%d\n", predicate, hostpred.Holds(group.Predicate), len(group.Files))
	}
}
