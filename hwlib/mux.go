// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/alusim"
)

// Mux8WayFn returns in[k] where k is the value of sel, least significant bit
// first.
//
// The selection is a sum of products: each data input is ANDed with the
// selector minterm for its index and the eight terms are ORed together.
//
func Mux8WayFn(in [8]bool, sel [3]bool) bool {
	c0, c1, c2 := sel[0], sel[1], sel[2]
	return in[0] && !c0 && !c1 && !c2 ||
		in[1] && c0 && !c1 && !c2 ||
		in[2] && !c0 && c1 && !c2 ||
		in[3] && c0 && c1 && !c2 ||
		in[4] && !c0 && !c1 && c2 ||
		in[5] && c0 && !c1 && c2 ||
		in[6] && !c0 && c1 && c2 ||
		in[7] && c0 && c1 && c2
}

var mux8Way = alusim.PartSpec{
	Name:    "Mux8Way",
	Inputs:  alusim.IO("in[8], sel[3]"),
	Outputs: []string{pOut},
	Mount: func(s *alusim.Socket) []alusim.Component {
		in, sel, out := s.Bus(pIn, 8), s.Bus(pSel, 3), s.Pin(pOut)
		return []alusim.Component{func() {
			var vi [8]bool
			var vs [3]bool
			for i, p := range in {
				vi[i] = p.Get()
			}
			for i, p := range sel {
				vs[i] = p.Get()
			}
			out.Set(Mux8WayFn(vi, vs))
		}}
	},
}

// Mux8Way returns a 8-way multiplexer.
//
// Unconnected data inputs are tied low, so selecting them yields false.
//
//	Inputs: in[8], sel[3]
//	Outputs: out
//	Function: out = in[sel]
//
func Mux8Way(w alusim.W) alusim.Part { return mux8Way.NewPart(w) }
