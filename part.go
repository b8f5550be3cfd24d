// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alusim

import "github.com/pkg/errors"

// A Component is the update function of a mounted part. It reads the signals
// connected to the part inputs and sets the signals connected to its outputs.
//
type Component func()

// A MountFn mounts a part into socket s. MountFn's should query
// the socket for the signals connected to the part pins and return closures
// around these signals.
//
// For example, a Not gate can be defined like this:
//
//	not := &PartSpec{
//		Name: "Not",
//		Inputs: IO("in"),
//		Outputs: IO("out"),
//		Mount: func (s *Socket) []Component {
//			in, out := s.Pin("in"), s.Pin("out")
//			return []Component{
//				func () { out.Set(!in.Get()) },
//			}
//		}}
//
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint).
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct pin names.
	// Use the IO() function to expand an input description like
	// "a, b, bus[2]" to []string{"a", "b", "bus[0]", "bus[1]"}
	Inputs []string
	// Output pin names. Must be distinct pin names.
	Outputs []string

	// Mount function (see MountFn).
	Mount MountFn
}

// A NewPartFn is a function that takes a set of wires and returns a new Part.
//
type NewPartFn func(w W) Part

// A Part wraps a part specification together with its connections within a
// host circuit.
//
type Part struct {
	*PartSpec
	Wires W
}

// NewPart is a NewPartFn that wraps p with the given connections into a Part.
//
// Input pins missing from w are tied to a constant false signal. Output pins
// missing from w are connected to new signals private to the part.
//
// NewPart panics if w references a pin that p does not have.
//
func (p *PartSpec) NewPart(w W) Part {
	wires, err := p.wire(w)
	if err != nil {
		panic(err)
	}
	return Part{p, wires}
}

func (p *PartSpec) wire(w W) (W, error) {
	pins := make(map[string]struct{}, len(p.Inputs)+len(p.Outputs))
	for _, n := range p.Inputs {
		pins[n] = struct{}{}
	}
	for _, n := range p.Outputs {
		pins[n] = struct{}{}
	}
	r := make(W, len(pins))
	for k, s := range w {
		if _, ok := pins[k]; !ok {
			return nil, errors.New("invalid pin name " + k + " for part " + p.Name)
		}
		if s == nil {
			return nil, errors.New("pin " + p.Name + "." + k + " connected to a nil signal")
		}
		r[k] = s
	}

	var gnd *Signal
	for _, n := range p.Inputs {
		if _, ok := r[n]; !ok {
			if gnd == nil {
				gnd = NewSignal(False)
			}
			r[n] = gnd
		}
	}
	for _, n := range p.Outputs {
		if _, ok := r[n]; !ok {
			r[n] = NewSignal(p.Name + "." + n)
		}
	}
	return r, nil
}

// Mount mounts the part and returns its components.
//
func (p Part) Mount() []Component {
	return p.PartSpec.Mount(newSocket(p.Wires))
}

// Parts is a convenience wrapper for []Part.
//
type Parts []Part

// Mount mounts all parts in order and returns their components. Components
// are returned in the same order as the parts.
//
func (ps Parts) Mount() []Component {
	var cs []Component
	for _, p := range ps {
		cs = append(cs, p.Mount()...)
	}
	return cs
}

// Run runs the given components in sequence.
//
func Run(cs []Component) {
	for _, c := range cs {
		c()
	}
}

// False is the name of the constant signal unconnected inputs are tied to.
//
const False = "false"
