// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package alusim provides the building blocks of a gate-level, combinational
circuit simulator: signals (wires), buses, and an API to compose parts (logic
gates, adders, muxers, etc.) into larger ones by wiring their pins.

Sub-package hwlib provides the primitive parts and sub-package alu chains them
into 1-bit ALU slices and an N-bit ALU.

There is no clock and no propagation delay. A mounted part is a list of
Components: plain functions that read the signals wired to the part inputs
and set the signals wired to its outputs. Evaluation order is the caller's
business; for combinational circuits that simply means evaluating a part
after the parts driving its inputs.

A custom part is defined by a PartSpec:

	notSpec := &alusim.PartSpec{
		Name:    "Not",
		Inputs:  alusim.IO("in"),
		Outputs: alusim.IO("out"),
		Mount: func(s *alusim.Socket) []alusim.Component {
			in, out := s.Pin("in"), s.Pin("out")
			return []alusim.Component{
				func() { out.Set(!in.Get()) },
			}
		}}

and wired into a circuit with NewPart:

	a, na := alusim.NewSignal("a"), alusim.NewSignal("na")
	not := notSpec.NewPart(alusim.W{"in": a, "out": na})
	update := not.Mount()

*/
package alusim
