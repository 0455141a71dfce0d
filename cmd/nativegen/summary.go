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

package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nativegen/nativegen/schema"
)

// declarationSummary renders a human-readable operator listing, one block
// per declaration.
func declarationSummary(decls []schema.Declaration) string {
	caser := cases.Title(language.English)
	var sb strings.Builder
	for _, d := range decls {
		title := caser.String(strings.ReplaceAll(d.Name, "_", " "))
		fmt.Fprintf(&sb, "%s (%s)\n", strings.TrimSpace(title), d.Name)
		fmt.Fprintf(&sb, "  schema:    %s\n", d.SchemaString)
		fmt.Fprintf(&sb, "  variants:  %s\n", strings.Join(d.Variants, ", "))
		fmt.Fprintf(&sb, "  arguments: %d (%d output), returns: %d\n",
			len(d.Arguments), len(d.OutputArguments()), len(d.Returns))
		if d.IsInplace {
			sb.WriteString("  in-place:  yes\n")
		}
		if d.HasSparseDispatch {
			sb.WriteString("  sparse:    yes\n")
		}
	}
	return sb.String()
}
