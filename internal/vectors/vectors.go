// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vectors loads ALU test vectors from YAML files and runs them.
//
// A vector file looks like this:
//
//	width: 4
//	vectors:
//	  - {op: add, a: 0b0011, b: 0b0001, want: 0b0100}
//	  - {op: sub, a: 3, b: 1, want: 2}
//	  - {op: slt, a: 1, b: 3, want: 1}
//	  - {op: "5", a: 1, b: 1}
//
// op is an operation name understood by alu.ParseOp. negate overrides the
// BNegate flag implied by op. want is optional.
//
package vectors

import (
	"os"

	"github.com/db47h/alusim/alu"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the content of a vector file.
//
type File struct {
	Width   int      `yaml:"width"`
	Vectors []Vector `yaml:"vectors"`
}

// Vector is a single ALU evaluation.
//
type Vector struct {
	Op     string  `yaml:"op"`
	A      uint64  `yaml:"a"`
	B      uint64  `yaml:"b"`
	Negate *bool   `yaml:"negate,omitempty"`
	Want   *uint64 `yaml:"want,omitempty"`
}

// Resolve returns the operation code and BNegate flag of v.
//
func (v *Vector) Resolve() (alu.Op, bool, error) {
	op, negate, err := alu.ParseOp(v.Op)
	if err != nil {
		return 0, false, err
	}
	if v.Negate != nil {
		negate = *v.Negate
	}
	return op, negate, nil
}

// Load reads and parses the vector file at path.
//
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read vector file")
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return f, nil
}

// Parse parses a vector file and checks that every vector has a valid
// operation.
//
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse vector file")
	}
	for i := range f.Vectors {
		if _, _, err := f.Vectors[i].Resolve(); err != nil {
			return nil, errors.Wrapf(err, "vector %d", i)
		}
	}
	return &f, nil
}

// Outcome is the result of running a Vector.
//
type Outcome struct {
	Vector
	Index  int
	OpCode alu.Op
	BNeg   bool
	Got    uint64
}

// Checked reports whether the vector had an expected value.
//
func (o *Outcome) Checked() bool { return o.Want != nil }

// Pass reports whether the result matches the expected value. Vectors without
// an expected value always pass.
//
func (o *Outcome) Pass() bool { return o.Want == nil || *o.Want == o.Got }

// Run builds an ALU of the file's width and evaluates every vector in order.
// The returned error's cause is alusim.ErrInvalidWidth if the file width is
// invalid.
//
func (f *File) Run() ([]Outcome, error) {
	u, err := alu.New(f.Width)
	if err != nil {
		return nil, err
	}
	out := make([]Outcome, 0, len(f.Vectors))
	for i, v := range f.Vectors {
		op, negate, err := v.Resolve()
		if err != nil {
			return nil, errors.Wrapf(err, "vector %d", i)
		}
		out = append(out, Outcome{
			Vector: v,
			Index:  i,
			OpCode: op,
			BNeg:   negate,
			Got:    u.Eval(op, negate, v.A, v.B),
		})
	}
	return out, nil
}
