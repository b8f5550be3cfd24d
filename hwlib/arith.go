// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/alusim"
)

// FullAddFn adds a, b and cin.
//
//	s = a ^ b ^ cin
//	cout = a && b || cin && (a ^ b)
//
func FullAddFn(a, b, cin bool) (s, cout bool) {
	p := XorFn(a, b)
	return XorFn(p, cin), a && b || cin && p
}

var adder = &alusim.PartSpec{
	Name:    "FullAdder",
	Inputs:  []string{pA, pB, "cin"},
	Outputs: []string{"s", "cout"},
	Mount: func(s *alusim.Socket) []alusim.Component {
		a, b, cin := s.Pin(pA), s.Pin(pB), s.Pin("cin")
		sum, cout := s.Pin("s"), s.Pin("cout")
		return []alusim.Component{
			func() {
				vs, vc := FullAddFn(a.Get(), b.Get(), cin.Get())
				sum.Set(vs)
				cout.Set(vc)
			}}
	}}

// FullAdder returns a 3 bit adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(w alusim.W) alusim.Part {
	return adder.NewPart(w)
}

// AdderN returns a N-bits ripple carry adder.
//
//	Inputs: a[bits], b[bits], cin
//	Outputs: out[bits], cout
//	Function: out = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func AdderN(bits int) alusim.NewPartFn {
	io := "[" + strconv.Itoa(bits) + "]"
	adderN := &alusim.PartSpec{
		Name:    "Adder" + strconv.Itoa(bits),
		Inputs:  alusim.IO(pA + io + ", " + pB + io + ", cin"),
		Outputs: alusim.IO(pOut + io + ", cout"),
		Mount: func(s *alusim.Socket) []alusim.Component {
			a, b, cin := s.Bus(pA, bits), s.Bus(pB, bits), s.Pin("cin")
			out, cout := s.Bus(pOut, bits), s.Pin("cout")
			return []alusim.Component{
				func() {
					c := cin.Get()
					for i, o := range out {
						var v bool
						v, c = FullAddFn(a[i].Get(), b[i].Get(), c)
						o.Set(v)
					}
					cout.Set(c)
				}}
		}}
	return adderN.NewPart
}
