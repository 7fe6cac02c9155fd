// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package urlrule

import "strings"

// Field identifies one structural part of a URL or URL pattern.
type Field int

const (
	FieldScheme Field = iota
	FieldUser
	FieldPassword
	FieldHostname
	FieldPort
	FieldPath
	FieldQuery
	FieldFragment

	numFields = int(FieldFragment) + 1
)

// Fields lists every part in URL order.
var Fields = [numFields]Field{
	FieldScheme,
	FieldUser,
	FieldPassword,
	FieldHostname,
	FieldPort,
	FieldPath,
	FieldQuery,
	FieldFragment,
}

// fieldSpec describes how a part is compared.
type fieldSpec struct {
	name string
	// sep is rewritten to '/' so that "*" stops at it and "**" crosses it.
	sep byte
	// anyWhenEmpty makes an empty pattern match every value. Only the
	// authority sub-parts use it, since the default extractor never fills them.
	anyWhenEmpty bool
}

var fieldSpecs = [numFields]fieldSpec{
	FieldScheme:   {name: "scheme"},
	FieldUser:     {name: "user", anyWhenEmpty: true},
	FieldPassword: {name: "password", anyWhenEmpty: true},
	FieldHostname: {name: "hostname", sep: '.'},
	FieldPort:     {name: "port", anyWhenEmpty: true},
	FieldPath:     {name: "path"},
	FieldQuery:    {name: "query", sep: '&'},
	FieldFragment: {name: "fragment"},
}

func (f Field) String() string {
	if f < 0 || int(f) >= numFields {
		return "unknown"
	}
	return fieldSpecs[f].name
}

// rewrite lowercases value and maps the field's separator onto '/'. It is
// applied identically to patterns and to URL values.
func (f Field) rewrite(value string) string {
	value = strings.ToLower(value)
	if sep := fieldSpecs[f].sep; sep != 0 {
		value = strings.ReplaceAll(value, string(sep), "/")
	}
	return value
}

// Parts holds the structural components of a URL or URL pattern.
type Parts struct {
	Scheme   string `json:"scheme"`
	User     string `json:"user"`
	Password string `json:"password"`
	Hostname string `json:"hostname"`
	Port     string `json:"port"`
	Path     string `json:"path"`
	Query    string `json:"query"`
	Fragment string `json:"fragment"`
}

// Get returns the value of field f.
func (p Parts) Get(f Field) string {
	switch f {
	case FieldScheme:
		return p.Scheme
	case FieldUser:
		return p.User
	case FieldPassword:
		return p.Password
	case FieldHostname:
		return p.Hostname
	case FieldPort:
		return p.Port
	case FieldPath:
		return p.Path
	case FieldQuery:
		return p.Query
	case FieldFragment:
		return p.Fragment
	}
	return ""
}

// Set assigns value to field f.
func (p *Parts) Set(f Field, value string) {
	switch f {
	case FieldScheme:
		p.Scheme = value
	case FieldUser:
		p.User = value
	case FieldPassword:
		p.Password = value
	case FieldHostname:
		p.Hostname = value
	case FieldPort:
		p.Port = value
	case FieldPath:
		p.Path = value
	case FieldQuery:
		p.Query = value
	case FieldFragment:
		p.Fragment = value
	}
}
