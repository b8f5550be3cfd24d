// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alusim

import (
	"strconv"
	"strings"
)

// A Bus is an ordered set of signals, least significant bit first.
//
type Bus []*Signal

// BusPinName returns the name of the i-th pin of a bus.
//
func BusPinName(bus string, i int) string {
	return bus + "[" + strconv.Itoa(i) + "]"
}

// NewBus returns a bus of width new signals named name[0], name[1], ...
// It panics if width is negative.
//
func NewBus(name string, width int) Bus {
	if width < 0 {
		panic("negative bus width for " + name)
	}
	b := make(Bus, width)
	for i := range b {
		b[i] = NewSignal(BusPinName(name, i))
	}
	return b
}

// Width returns the number of signals in the bus.
//
func (b Bus) Width() int { return len(b) }

// SetUint64 sets the bus signals to the bits of v. Bits beyond the width of
// the bus are ignored and bus signals beyond bit 63 are set to false.
//
func (b Bus) SetUint64(v uint64) {
	for i, s := range b {
		s.Set(i < 64 && v&(1<<uint(i)) != 0)
	}
}

// Uint64 returns the value on the bus as an unsigned integer. Only the low 64
// signals are read.
//
func (b Bus) Uint64() uint64 {
	var v uint64
	for i, s := range b {
		if i >= 64 {
			break
		}
		if s.Get() {
			v |= 1 << uint(i)
		}
	}
	return v
}

// Int64 returns the value on the bus as a two's complement signed integer,
// sign-extended from the bus width.
//
func (b Bus) Int64() int64 {
	v := b.Uint64()
	n := len(b)
	if n == 0 || n >= 64 {
		return int64(v)
	}
	if v&(1<<uint(n-1)) != 0 {
		v |= ^uint64(0) << uint(n)
	}
	return int64(v)
}

// Set sets the bus signals from bits. It panics if len(bits) differs from the
// bus width.
//
func (b Bus) Set(bits []bool) {
	if len(bits) != len(b) {
		panic("bus width mismatch: got " + strconv.Itoa(len(bits)) + " bits for a " + strconv.Itoa(len(b)) + " bits bus")
	}
	for i, s := range b {
		s.Set(bits[i])
	}
}

// Bits returns the values of the bus signals.
//
func (b Bus) Bits() []bool {
	r := make([]bool, len(b))
	for i, s := range b {
		r[i] = s.Get()
	}
	return r
}

// String returns the bus value in binary, most significant bit first.
//
func (b Bus) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for i := len(b) - 1; i >= 0; i-- {
		if b[i].Get() {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
