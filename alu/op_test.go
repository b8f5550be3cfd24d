package alu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/db47h/alusim/alu"
)

var _ = Describe("Op", func() {
	DescribeTable("ParseOp",
		func(s string, op alu.Op, negate bool) {
			got, neg, err := alu.ParseOp(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(op))
			Expect(neg).To(Equal(negate))
		},
		Entry("and", "and", alu.OpAnd, false),
		Entry("or", "OR", alu.OpOr, false),
		Entry("add", "add", alu.OpAdd, false),
		Entry("sub", "sub", alu.OpAdd, true),
		Entry("slt", " slt ", alu.OpSLT, true),
		Entry("xor", "xor", alu.OpXor, false),
		Entry("selector", "2", alu.OpAdd, false),
		Entry("unused selector", "7", alu.Op(7), false),
		Entry("unused selector name", "op5", alu.Op(5), false),
	)

	It("should reject unknown operations", func() {
		for _, s := range []string{"nor", "8", "", "-1", "op", "op8"} {
			_, _, err := alu.ParseOp(s)
			Expect(errors.Cause(err)).To(Equal(alu.ErrUnknownOp), s)
		}
	})

	It("should name operations", func() {
		Expect(alu.OpSLT.String()).To(Equal("slt"))
		Expect(alu.Op(6).String()).To(Equal("op6"))
	})

	It("should parse the names it prints", func() {
		for op := alu.Op(0); op <= alu.OpMax; op++ {
			got, _, err := alu.ParseOp(op.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(op))
		}
	})
})
