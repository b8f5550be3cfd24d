// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable parts for alusim.
//
// Every part comes in two flavors: a pure function over boolean values
// (AndFn, FullAddFn, Mux8WayFn, ...) and a NewPartFn that mounts that
// function onto signals (And, FullAdder, Mux8Way, ...).
//
package hwlib

import (
	"github.com/db47h/alusim"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pSel = "sel"
	pOut = "out"
)

// NotFn returns !in.
//
func NotFn(in bool) bool { return !in }

// AndFn returns a && b.
//
func AndFn(a, b bool) bool { return a && b }

// OrFn returns a || b.
//
func OrFn(a, b bool) bool { return a || b }

// XorFn returns (a && !b) || (!a && b).
//
func XorFn(a, b bool) bool { return a && !b || !a && b }

var notGate = alusim.PartSpec{Name: "NOT", Inputs: []string{pIn}, Outputs: []string{pOut},
	Mount: func(s *alusim.Socket) []alusim.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		return []alusim.Component{
			func() { out.Set(NotFn(in.Get())) },
		}
	},
}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not(w alusim.W) alusim.Part {
	return notGate.NewPart(w)
}

// other gates
type gate func(a, b bool) bool

func (g gate) mount(s *alusim.Socket) []alusim.Component {
	a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
	return []alusim.Component{
		func() { out.Set(g(a.Get(), b.Get())) },
	}
}

func newGate(name string, fn func(a, b bool) bool) *alusim.PartSpec {
	return &alusim.PartSpec{
		Name:    name,
		Inputs:  gateIn,
		Outputs: gateOut,
		Mount:   gate(fn).mount,
	}
}

var (
	gateIn  = []string{pA, pB}
	gateOut = []string{pOut}

	and = newGate("AND", AndFn)
	or  = newGate("OR", OrFn)
	xor = newGate("XOR", XorFn)
)

// And returns a AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And(w alusim.W) alusim.Part { return and.NewPart(w) }

// Or returns a OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or(w alusim.W) alusim.Part { return or.NewPart(w) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
//
func Xor(w alusim.W) alusim.Part { return xor.NewPart(w) }
