// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alu

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Op is a 3-bit ALU operation code.
//
type Op uint8

// Operation codes. Codes 5 through 7 select multiplexer inputs that are tied
// low: they are valid selectors whose result is always zero.
//
const (
	OpAnd Op = iota
	OpOr
	OpAdd
	OpSLT
	OpXor

	// OpMax is the largest valid selector value.
	OpMax Op = 7
)

var opNames = [...]string{
	OpAnd: "and",
	OpOr:  "or",
	OpAdd: "add",
	OpSLT: "slt",
	OpXor: "xor",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "op" + strconv.Itoa(int(o))
}

// ErrUnknownOp is returned by ParseOp for unknown operation names.
//
var ErrUnknownOp = errors.New("unknown operation")

// ParseOp parses an operation name (and, or, add, sub, slt, xor) or a
// selector value between 0 and 7, optionally prefixed with "op" as printed by
// Op.String.
//
// negate reports whether the operation implies negating operand B: it is
// true for sub and slt.
//
func ParseOp(s string) (op Op, negate bool, err error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "sub":
		return OpAdd, true, nil
	case "slt":
		return OpSLT, true, nil
	}
	for i, n := range opNames {
		if n == name {
			return Op(i), false, nil
		}
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(name, "op"), 0, 8)
	if err != nil || Op(v) > OpMax {
		return 0, false, errors.Wrapf(ErrUnknownOp, "%q", s)
	}
	return Op(v), false, nil
}
