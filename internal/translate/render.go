// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/avro"
)

//go:embed enum.ts.tmpl interface.ts.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"join": strings.Join,
}

var tmpl = template.Must(template.New("translate").Funcs(funcMap).ParseFS(tmplFS, "*.ts.tmpl"))

type enumData struct {
	Name     string
	Style    string
	Symbols  []string
	Literals []string
}

type interfaceData struct {
	Name       string
	Properties []Property
}

// Execute runs a named template from t into a string.
func Execute(t *template.Template, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute template %s", name)
	}
	return strings.TrimSpace(buf.String()), nil
}

// EnumDeclaration renders e with the strategy selected by the context options.
func (c *Context) EnumDeclaration(e *avro.Enum) (Declaration, error) {
	literals := make([]string, len(e.Symbols))
	for i, s := range e.Symbols {
		literals[i] = Quote(s)
	}
	code, err := Execute(tmpl, "enum.ts.tmpl", enumData{
		Name:     c.Naming.EnumName(e),
		Style:    string(c.Options.EnumStyle()),
		Symbols:  e.Symbols,
		Literals: literals,
	})
	if err != nil {
		return Declaration{}, err
	}
	return Declaration{Namespace: e.Namespace, Code: code}, nil
}

// InterfaceDeclaration renders the interface describing the shape of r.
func (c *Context) InterfaceDeclaration(r *avro.Record) (Declaration, error) {
	props, err := c.In(r.Namespace).Properties(r)
	if err != nil {
		return Declaration{}, err
	}
	code, err := Execute(tmpl, "interface.ts.tmpl", interfaceData{
		Name:       c.Naming.InterfaceName(r),
		Properties: props,
	})
	if err != nil {
		return Declaration{}, err
	}
	return Declaration{Namespace: r.Namespace, Code: code}, nil
}

// EnumDeclarations renders every enum of data in order.
func EnumDeclarations(data *SchemaData) ([]Declaration, error) {
	decls := make([]Declaration, 0, len(data.Enums))
	for _, e := range data.Enums {
		d, err := data.Context.EnumDeclaration(e)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return decls, nil
}

// InterfaceDeclarations renders an interface for every record of data in order.
func InterfaceDeclarations(data *SchemaData) ([]Declaration, error) {
	decls := make([]Declaration, 0, len(data.Records))
	for _, r := range data.Records {
		d, err := data.Context.InterfaceDeclaration(r)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return decls, nil
}
