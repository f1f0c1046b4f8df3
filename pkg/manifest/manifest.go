// Package manifest describes an options record as YAML, for building
// buffers by hand and for printing decoded ones.
//
//	filepath: app/models/user.rb
//	encoding: UTF-8
//	line: 1
//	frozen_string_literal: true
//	version: "3.3.0"
//	scopes:
//	  - [foo, bar]
//	  - []
package manifest

import (
	"io"

	"github.com/agilira/go-errors"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/parseopts"
)

type Manifest struct {
	Filepath            string     `yaml:"filepath,omitempty"`
	Encoding            string     `yaml:"encoding,omitempty"`
	Line                *int32     `yaml:"line,omitempty"`
	FrozenStringLiteral bool       `yaml:"frozen_string_literal"`
	Version             string     `yaml:"version,omitempty"`
	Scopes              [][]string `yaml:"scopes,omitempty"`
}

// Load parses one YAML document. Unknown keys are rejected.
func Load(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if err == io.EOF {
			return &m, nil
		}
		return nil, errors.Wrap(err, parseopts.ErrCodeInvalidManifest, "cannot parse manifest")
	}
	return &m, nil
}

// Options builds a record from the manifest. A missing line means 1 and
// a missing version means latest. Filepath and encoding view the
// manifest's strings; locals are copied.
func (m *Manifest) Options() (*parseopts.Options, error) {
	o := parseopts.New()
	o.SetFilepath(m.Filepath)
	o.SetEncoding(m.Encoding)
	if m.Line != nil {
		o.SetLine(*m.Line)
	}
	o.SetFrozenStringLiteral(m.FrozenStringLiteral)

	var version []byte
	if m.Version != "" {
		version = []byte(m.Version)
	}
	if !o.SetVersion(version) {
		return nil, errors.New(parseopts.ErrCodeInvalidVersion, "unknown version selector").
			WithContext("version", m.Version)
	}

	if err := o.InitScopes(len(m.Scopes)); err != nil {
		return nil, err
	}
	for i, locals := range m.Scopes {
		scope := o.Scope(i)
		if err := scope.InitLocals(len(locals)); err != nil {
			return nil, err
		}
		for j, name := range locals {
			*scope.Local(j) = parseopts.OwnedString([]byte(name))
		}
	}
	return o, nil
}

// FromOptions copies a record into a manifest.
func FromOptions(o *parseopts.Options) *Manifest {
	line := o.Line()
	m := &Manifest{
		Filepath:            o.Filepath().String(),
		Encoding:            o.Encoding().String(),
		Line:                &line,
		FrozenStringLiteral: o.FrozenStringLiteral(),
		Version:             o.Version().String(),
	}
	if n := o.ScopesCount(); n > 0 {
		m.Scopes = make([][]string, n)
		for i := range m.Scopes {
			scope := o.Scope(i)
			locals := make([]string, scope.LocalsCount())
			for j := range locals {
				locals[j] = scope.Local(j).String()
			}
			m.Scopes[i] = locals
		}
	}
	return m
}

func (m *Manifest) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(err, parseopts.ErrCodeInvalidManifest, "cannot write manifest")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, parseopts.ErrCodeIO, "cannot write manifest")
	}
	return nil
}
