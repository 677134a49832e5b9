// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"slices"
	"strings"
)

// Assemble joins declarations into one formatted source file.
//
// With namespaces removed every declaration is emitted at top level in the
// given order. Otherwise declarations without a namespace come first, followed
// by one exported namespace block per Avro namespace in sorted order; within a
// block the given order is kept.
func Assemble(decls []Declaration, opts Options) string {
	if opts.RemoveNamespace {
		return Format(joinCode(decls))
	}

	groups := make(map[string][]Declaration)
	for _, d := range decls {
		groups[d.Namespace] = append(groups[d.Namespace], d)
	}

	namespaces := make([]string, 0, len(groups))
	for ns := range groups {
		if ns != "" {
			namespaces = append(namespaces, ns)
		}
	}
	slices.Sort(namespaces)

	var blocks []string
	if top := groups[""]; len(top) > 0 {
		blocks = append(blocks, joinCode(top))
	}
	for _, ns := range namespaces {
		blocks = append(blocks, "export namespace "+ns+" {\n"+joinCode(groups[ns])+"\n}")
	}
	return Format(strings.Join(blocks, "\n\n"))
}

// Assemble joins the declarations rendered from d and appends the aliases its
// context handed out. Aliases follow every namespace block so the entities
// they name are initialized first.
func (d *SchemaData) Assemble(decls []Declaration) string {
	out := Assemble(decls, d.Context.Options)
	if aliases := d.Context.Aliases(); len(aliases) > 0 {
		out += "\n\n" + strings.Join(aliases, "\n")
	}
	return out
}

func joinCode(decls []Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = strings.TrimSpace(d.Code)
	}
	return strings.Join(parts, "\n\n")
}
