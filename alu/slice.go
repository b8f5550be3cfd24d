// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alu

import (
	"github.com/db47h/alusim"
	"github.com/db47h/alusim/hwlib"
)

// Slice pin names.
const (
	PinOp      = "op"
	PinBInvert = "binvert"
	PinA       = "a"
	PinB       = "b"
	PinCarryIn = "cin"
	PinLess    = "less"
	PinResult  = "result"
	PinAdd     = "add"
	PinCarry   = "cout"
)

// A Slice is a 1-bit ALU.
//
// It computes a AND b, a OR b, a + b + carryIn, and a XOR b, with b optionally
// inverted, and selects one of them, or its Less input, according to the
// operation code.
//
// Evaluation happens in two passes: Pass1 computes the add result and carry
// out, Pass2 selects the result. In a chain of slices, all slices must have
// completed Pass1 before the Less input of the first slice is known.
//
type Slice struct {
	// inputs
	Op      alusim.Bus
	BInvert *alusim.Signal
	A, B    *alusim.Signal
	CarryIn *alusim.Signal
	Less    *alusim.Signal

	// outputs
	Result    *alusim.Signal
	AddResult *alusim.Signal
	CarryOut  *alusim.Signal

	less  *alusim.Signal // mux input for OpSLT
	pass1 []alusim.Component
	pass2 []alusim.Component
}

// NewSlice builds a 1-bit ALU slice wired according to w:
//
//	Inputs: op[3], binvert, a, b, cin, less
//	Outputs: result, add, cout
//
// Pins missing from w are connected to new signals private to the slice. They
// can be reached through the Slice fields.
//
func NewSlice(name string, w alusim.W) *Slice {
	pin := func(n string) *alusim.Signal {
		if s := w[n]; s != nil {
			return s
		}
		return alusim.NewSignal(name + "." + n)
	}
	op := make(alusim.Bus, 3)
	for i := range op {
		op[i] = pin(alusim.BusPinName(PinOp, i))
	}
	for k := range w {
		if !slicePins[k] {
			panic("invalid pin name " + k + " for part " + name)
		}
	}

	s := &Slice{
		Op:        op,
		BInvert:   pin(PinBInvert),
		A:         pin(PinA),
		B:         pin(PinB),
		CarryIn:   pin(PinCarryIn),
		Less:      pin(PinLess),
		Result:    pin(PinResult),
		AddResult: pin(PinAdd),
		CarryOut:  pin(PinCarry),
		less:      alusim.NewSignal(name + ".mux.in[3]"),
	}

	finalB := alusim.NewSignal(name + ".finalB")
	in := alusim.NewBus(name+".mux.in", 5)
	in[2], in[3] = s.AddResult, s.less

	s.pass1 = alusim.Parts{
		hwlib.Xor(alusim.W{"a": s.B, "b": s.BInvert, "out": finalB}),
		hwlib.FullAdder(alusim.W{"a": s.A, "b": finalB, "cin": s.CarryIn, "s": s.AddResult, "cout": s.CarryOut}),
		hwlib.And(alusim.W{"a": s.A, "b": finalB, "out": in[0]}),
		hwlib.Or(alusim.W{"a": s.A, "b": finalB, "out": in[1]}),
		hwlib.Xor(alusim.W{"a": s.A, "b": finalB, "out": in[4]}),
	}.Mount()

	// mux inputs 5 to 7 are left unconnected, i.e. tied low.
	mux := hwlib.Mux8Way(alusim.W{"out": s.Result}.Bus("in", in).Bus("sel", s.Op))
	s.pass2 = append([]alusim.Component{
		func() { s.less.Set(s.Less.Get()) },
	}, mux.Mount()...)

	return s
}

var slicePins = func() map[string]bool {
	m := map[string]bool{
		PinBInvert: true, PinA: true, PinB: true, PinCarryIn: true, PinLess: true,
		PinResult: true, PinAdd: true, PinCarry: true,
	}
	for i := 0; i < 3; i++ {
		m[alusim.BusPinName(PinOp, i)] = true
	}
	return m
}()

// Pass1 computes b XOR bInvert, runs the adder and sets up the AND, OR, ADD
// and XOR multiplexer inputs. AddResult and CarryOut are valid once Pass1
// returns.
//
func (s *Slice) Pass1() { alusim.Run(s.pass1) }

// Pass2 latches the Less input into the multiplexer and selects the result
// according to Op.
//
func (s *Slice) Pass2() { alusim.Run(s.pass2) }
