// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package classes

import (
	"embed"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/avro"
	"github.com/dacolabs/avrots/internal/translate"
)

//go:embed class.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "class.ts.tmpl"))

type classData struct {
	Name      string
	Interface string
	FQN       string
	Fields    []classField
}

type classField struct {
	translate.Property
	Deserialize string
	Serialize   string
}

func classDeclaration(ctx *translate.Context, r *avro.Record) (translate.Declaration, error) {
	ctx = ctx.In(r.Namespace)
	props, err := ctx.Properties(r)
	if err != nil {
		return translate.Declaration{}, err
	}

	de := deserializer{ctx: ctx}
	ser := serializer{ctx: ctx}
	fields := make([]classField, len(r.Fields))
	for i, f := range r.Fields {
		in := "input." + f.Name
		d, err := de.field(f, in)
		if err != nil {
			return translate.Declaration{}, errors.Wrapf(err, "record %s field %q", r.FullName(), f.Name)
		}
		s, err := ser.field(f, in)
		if err != nil {
			return translate.Declaration{}, errors.Wrapf(err, "record %s field %q", r.FullName(), f.Name)
		}
		fields[i] = classField{Property: props[i], Deserialize: d, Serialize: s}
	}

	code, err := translate.Execute(tmpl, "class.ts.tmpl", classData{
		Name:      ctx.Naming.ClassName(r),
		Interface: ctx.Naming.InterfaceName(r),
		FQN:       translate.Quote(r.FullName()),
		Fields:    fields,
	})
	if err != nil {
		return translate.Declaration{}, err
	}
	return translate.Declaration{Namespace: r.Namespace, Code: code}, nil
}
