// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"math/bits"
	"math/rand"
	"time"

	"github.com/db47h/alusim"
	"github.com/db47h/alusim/alu"
	"github.com/db47h/alusim/hwlib"
)

func mask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

// Reference computes at the integer level the result of a width-bit ALU.
//
// With negate set, b is inverted and a carry of 1 is injected into the adder.
// SLT returns the sign bit of a + ^b + 1, that is the sign of a - b. Operation
// codes above OpXor return 0.
//
// Operands are 64 bits wide. For widths above 64, the upper operand bits are
// zero and only the low 64 bits of the result are returned, as with
// alu.ALU.Eval.
//
func Reference(op alu.Op, negate bool, a, b uint64, width int) uint64 {
	m := mask(width)
	a &= m
	b &= m
	var cin uint64
	if negate {
		b = ^b & m
		cin = 1
	}
	switch op {
	case alu.OpAnd:
		return a & b
	case alu.OpOr:
		return a | b
	case alu.OpAdd:
		return (a + b + cin) & m
	case alu.OpSLT:
		if width <= 64 {
			return ((a + b + cin) & m) >> uint(width-1) & 1
		}
		return wideSign(a, b, cin, negate, width)
	case alu.OpXor:
		return a ^ b
	}
	return 0
}

// wideSign returns the sign bit of a width-bit sum when width > 64. Bits 64
// and above of b are all ones when negated, zero otherwise, and those of a are
// zero. Bit 64 is hb ^ c64, then the carry becomes hb & c64 and stays there.
//
func wideSign(a, b, cin uint64, negate bool, width int) uint64 {
	_, c := bits.Add64(a, b, cin)
	var hb uint64
	if negate {
		hb = 1
	}
	if width == 65 {
		return hb ^ c
	}
	return hb ^ hb&c
}

// adder is a structural ripple carry adder used as a second model for OpAdd.
//
type adder struct {
	a, b, out alusim.Bus
	cin, cout *alusim.Signal
	update    []alusim.Component
}

func newAdder(width int) *adder {
	d := &adder{
		a:    alusim.NewBus("a", width),
		b:    alusim.NewBus("b", width),
		out:  alusim.NewBus("out", width),
		cin:  alusim.NewSignal("cin"),
		cout: alusim.NewSignal("cout"),
	}
	p := hwlib.AdderN(width)(alusim.W{"cin": d.cin, "cout": d.cout}.
		Bus("a", d.a).Bus("b", d.b).Bus("out", d.out))
	d.update = p.Mount()
	return d
}

// eval computes a + b, or a + ^b + 1 when negate is set.
//
func (d *adder) eval(negate bool, a, b uint64) (uint64, bool) {
	d.a.SetUint64(a)
	d.b.SetUint64(b)
	if negate {
		for _, s := range d.b {
			s.Set(!s.Get())
		}
	}
	d.cin.Set(negate)
	alusim.Run(d.update)
	return d.out.Uint64(), d.cout.Get()
}

// TB is the subset of testing.TB used by CompareALU. It is also satisfied by
// ginkgo's GinkgoT().
//
type TB interface {
	Helper()
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
}

// CompareALU drives u with all zero, all one, and iter random operands for
// every operation code and BNegate value, and compares its result with
// Reference.
//
func CompareALU(t TB, u *alu.ALU, iter int) {
	t.Helper()

	seed := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(seed))
	w := u.Width()
	m := mask(w)
	add := newAdder(w)

	check := func(op alu.Op, negate bool, a, b uint64) {
		t.Helper()
		got := u.Eval(op, negate, a, b)
		if ex := Reference(op, negate, a, b, w); got != ex {
			t.Fatalf("width %d, seed %d: %v(a=%#x, b=%#x, negate=%v) = %#x, got %#x", w, seed, op, a, b, negate, ex, got)
		}
		if op != alu.OpAdd {
			return
		}
		if ex, c := add.eval(negate, a, b); got != ex || u.CarryOut() != c {
			t.Fatalf("width %d, seed %d: adder(a=%#x, b=%#x, negate=%v) = %#x carry %v, ALU %#x carry %v", w, seed, a, b, negate, ex, c, got, u.CarryOut())
		}
	}

	start := time.Now()
	for op := alu.Op(0); op <= alu.OpMax; op++ {
		for _, negate := range []bool{false, true} {
			check(op, negate, 0, 0)
			check(op, negate, m, m)
			check(op, negate, m, 0)
			check(op, negate, 0, m)
			for i := 0; i < iter; i++ {
				check(op, negate, rnd.Uint64()&m, rnd.Uint64()&m)
			}
		}
	}
	t.Logf("%d bits ALU: %d evaluations in %v", w, 16*(iter+4), time.Since(start))
}
