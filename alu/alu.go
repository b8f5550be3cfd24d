// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package alu chains 1-bit ALU slices into an N-bit ALU.
//
// The ALU supports AND, OR, ADD, SLT (set less than) and XOR. With BNegate
// set, operand B is inverted and the carry chain starts with a carry in of 1,
// turning ADD into a two's complement subtraction and making SLT meaningful.
//
//	a, _ := alu.New(4)
//	a.SetOp(alu.OpAdd)
//	a.SetBNegate(true)
//	a.SetA(3)
//	a.SetB(1)
//	a.Execute()
//	a.ResultUint64() // 2
//
package alu

import (
	"strconv"

	"github.com/db47h/alusim"
	"github.com/pkg/errors"
)

// ALU is an N-bit ALU built from N Slices.
//
// Callers set the A, B, Op and BNegate signals, call Execute, then read
// Result. An ALU must not be used concurrently.
//
type ALU struct {
	// inputs. The slices are wired to these signals at construction: set
	// them, never replace the Bus elements.
	Op      alusim.Bus // 3 bits, shared by all slices
	A, B    alusim.Bus
	BNegate *alusim.Signal

	// output, valid after Execute.
	Result alusim.Bus

	slices []*Slice
}

// New returns a new ALU of the given width. It returns an error whose cause
// is alusim.ErrInvalidWidth if width < 1.
//
func New(width int) (*ALU, error) {
	if width < 1 {
		return nil, errors.Wrapf(alusim.ErrInvalidWidth, "ALU width %d", width)
	}
	u := &ALU{
		Op:      alusim.NewBus("op", 3),
		A:       alusim.NewBus("a", width),
		B:       alusim.NewBus("b", width),
		BNegate: alusim.NewSignal("bnegate"),
		Result:  alusim.NewBus("result", width),
		slices:  make([]*Slice, width),
	}

	// the carry chain starts with BNegate: a - b = a + ^b + 1.
	cin := u.BNegate
	for i := range u.slices {
		s := NewSlice("alu"+strconv.Itoa(i), alusim.W{
			PinBInvert: u.BNegate,
			PinA:       u.A[i],
			PinB:       u.B[i],
			PinCarryIn: cin,
			PinResult:  u.Result[i],
		}.Bus(PinOp, u.Op))
		s.Op = u.Op
		u.slices[i] = s
		cin = s.CarryOut
	}
	return u, nil
}

// Width returns the ALU width in bits.
//
func (u *ALU) Width() int { return len(u.slices) }

// Slice returns the i-th slice.
//
func (u *ALU) Slice(i int) *Slice { return u.slices[i] }

// Execute evaluates the ALU.
//
// All slices run their first pass in bit order, which resolves the carry
// chain. The add result of the last slice, the sign of a - b, is then fed
// back to the Less input of the first slice and all slices run their
// second pass.
//
func (u *ALU) Execute() {
	for i, s := range u.slices {
		if i > 0 {
			s.Less.Set(false)
		}
		s.Pass1()
	}
	u.slices[0].Less.Set(u.slices[len(u.slices)-1].AddResult.Get())
	for _, s := range u.slices {
		s.Pass2()
	}
}

// CarryOut returns the carry out of the last slice. Only valid after Execute.
//
func (u *ALU) CarryOut() bool {
	return u.slices[len(u.slices)-1].CarryOut.Get()
}

// SetOp sets the operation code.
//
func (u *ALU) SetOp(op Op) { u.Op.SetUint64(uint64(op)) }

// SetBNegate sets the BNegate flag.
//
func (u *ALU) SetBNegate(v bool) { u.BNegate.Set(v) }

// SetA sets operand A. Bits beyond the ALU width are ignored.
//
func (u *ALU) SetA(v uint64) { u.A.SetUint64(v) }

// SetB sets operand B. Bits beyond the ALU width are ignored.
//
func (u *ALU) SetB(v uint64) { u.B.SetUint64(v) }

// ResultUint64 returns the result as an unsigned integer.
//
func (u *ALU) ResultUint64() uint64 { return u.Result.Uint64() }

// ResultInt64 returns the result as a signed integer.
//
func (u *ALU) ResultInt64() int64 { return u.Result.Int64() }

// Eval sets all inputs, executes the ALU and returns the result.
//
func (u *ALU) Eval(op Op, negate bool, a, b uint64) uint64 {
	u.SetOp(op)
	u.SetBNegate(negate)
	u.SetA(a)
	u.SetB(b)
	u.Execute()
	return u.ResultUint64()
}
