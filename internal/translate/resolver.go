// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"slices"
	"strings"

	"github.com/dacolabs/avrots/internal/avro"
)

// Naming controls the identifiers generated for named types.
type Naming struct {
	// InterfacePrefix is prepended to record names to form interface names.
	InterfacePrefix string
}

// InterfaceName returns the unqualified interface identifier of r.
func (n Naming) InterfaceName(r *avro.Record) string {
	return n.InterfacePrefix + r.Name
}

// ClassName returns the unqualified class identifier of r.
func (n Naming) ClassName(r *avro.Record) string {
	return r.Name
}

// EnumName returns the unqualified identifier of e.
func (n Naming) EnumName(e *avro.Enum) string {
	return e.Name
}

// In returns a view of c for code emitted inside the block of namespace.
// Views share the alias table of c.
func (c *Context) In(namespace string) *Context {
	view := *c
	view.scope = namespace
	return &view
}

// qualify returns the expression naming ident of namespace from the current
// scope. A path whose first segment is shadowed by a namespace or declaration
// nested in the scope is replaced with a top-level alias.
func (c *Context) qualify(namespace, ident string) string {
	if c.Options.RemoveNamespace {
		return ident
	}
	path := ident
	if namespace != "" {
		path = namespace + "." + ident
	}
	if c.scope == "" || c.refs == nil || !c.refs.shadowed(c.scope, path) {
		return path
	}
	return c.refs.alias(path)
}

// Aliases returns the import-equals declarations backing shadowed references,
// sorted by alias name.
func (c *Context) Aliases() []string {
	if c.refs == nil {
		return nil
	}
	decls := make([]string, 0, len(c.refs.aliases))
	for path, name := range c.refs.aliases {
		decls = append(decls, "import "+name+" = "+path+";")
	}
	slices.Sort(decls)
	return decls
}

// references tracks every dotted path the output declares and the aliases
// handed out for shadowed ones.
type references struct {
	paths   map[string]bool   // namespaces, their prefixes, and qualified declarations
	aliases map[string]string // path -> alias
	taken   map[string]bool   // top-level identifiers
}

func newReferences(types map[string]avro.Named, naming Naming) *references {
	refs := &references{
		paths:   make(map[string]bool),
		aliases: make(map[string]string),
		taken:   make(map[string]bool),
	}
	declare := func(namespace string, idents ...string) {
		for ns := namespace; ns != ""; ns = parent(ns) {
			refs.paths[ns] = true
		}
		for _, ident := range idents {
			path := ident
			if namespace != "" {
				path = namespace + "." + ident
			}
			refs.paths[path] = true
		}
	}
	for _, t := range types {
		switch n := t.(type) {
		case *avro.Record:
			declare(n.Namespace, naming.InterfaceName(n), naming.ClassName(n))
		case *avro.Enum:
			declare(n.Namespace, naming.EnumName(n))
		}
	}
	for path := range refs.paths {
		if !strings.Contains(path, ".") {
			refs.taken[path] = true
		}
	}
	return refs
}

// shadowed reports whether the first segment of path binds to something other
// than the top-level entity when looked up from inside scope.
func (r *references) shadowed(scope, path string) bool {
	head, _, _ := strings.Cut(path, ".")
	for ns := scope; ns != ""; ns = parent(ns) {
		if r.paths[ns+"."+head] {
			return true
		}
	}
	return false
}

func (r *references) alias(path string) string {
	if name, ok := r.aliases[path]; ok {
		return name
	}
	name := strings.ReplaceAll(path, ".", "_")
	for r.taken[name] {
		name += "_"
	}
	r.taken[name] = true
	r.aliases[path] = name
	return name
}

func parent(namespace string) string {
	i := strings.LastIndex(namespace, ".")
	if i < 0 {
		return ""
	}
	return namespace[:i]
}

// QInterfaceName returns the interface identifier of r as referenced from the current scope.
func (c *Context) QInterfaceName(r *avro.Record) string {
	return c.qualify(r.Namespace, c.Naming.InterfaceName(r))
}

// QClassName returns the class identifier of r as referenced from the current scope.
func (c *Context) QClassName(r *avro.Record) string {
	return c.qualify(r.Namespace, c.Naming.ClassName(r))
}

// QEnumName returns the enum identifier of e as referenced from the current scope.
func (c *Context) QEnumName(e *avro.Enum) string {
	return c.qualify(e.Namespace, c.Naming.EnumName(e))
}
