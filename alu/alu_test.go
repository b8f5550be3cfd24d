package alu_test

import (
	"fmt"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/db47h/alusim"
	"github.com/db47h/alusim/alu"
	"github.com/db47h/alusim/hwtest"
)

var _ = Describe("ALU", func() {
	Describe("New", func() {
		It("should reject widths below 1", func() {
			for _, w := range []int{0, -1, -64} {
				u, err := alu.New(w)
				Expect(u).To(BeNil())
				Expect(errors.Cause(err)).To(Equal(alusim.ErrInvalidWidth))
			}
		})

		It("should allocate buses of the requested width", func() {
			u, err := alu.New(12)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Width()).To(Equal(12))
			Expect(u.A).To(HaveLen(12))
			Expect(u.B).To(HaveLen(12))
			Expect(u.Result).To(HaveLen(12))
			Expect(u.Op).To(HaveLen(3))
		})

		It("should share a single operation code and BNegate flag", func() {
			u, err := alu.New(4)
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < u.Width(); i++ {
				s := u.Slice(i)
				for j := range s.Op {
					Expect(s.Op[j]).To(BeIdenticalTo(u.Op[j]))
				}
				Expect(s.BInvert).To(BeIdenticalTo(u.BNegate))
				if i > 0 {
					Expect(s.CarryIn).To(BeIdenticalTo(u.Slice(i - 1).CarryOut))
				} else {
					Expect(s.CarryIn).To(BeIdenticalTo(u.BNegate))
				}
			}
		})

		It("should drive every slice from the ALU operation bus", func() {
			u, err := alu.New(5)
			Expect(err).NotTo(HaveOccurred())
			for op := alu.Op(0); op <= alu.OpMax; op++ {
				u.SetOp(op)
				for i := 0; i < u.Width(); i++ {
					s := u.Slice(i)
					Expect(&s.Op[0]).To(BeIdenticalTo(&u.Op[0]))
					Expect(s.Op.Uint64()).To(Equal(uint64(op)))
				}
			}
		})
	})

	Describe("Execute", func() {
		var u *alu.ALU

		BeforeEach(func() {
			var err error
			u, err = alu.New(4)
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("4 bits, a=0b0011, b=0b0001",
			func(op alu.Op, negate bool, ex uint64) {
				Expect(u.Eval(op, negate, 0x3, 0x1)).To(Equal(ex))
			},
			Entry("ADD", alu.OpAdd, false, uint64(0x4)),
			Entry("SUB", alu.OpAdd, true, uint64(0x2)),
			Entry("AND", alu.OpAnd, false, uint64(0x1)),
			Entry("OR", alu.OpOr, false, uint64(0x3)),
			Entry("XOR", alu.OpXor, false, uint64(0x2)),
			Entry("SLT", alu.OpSLT, true, uint64(0x0)),
		)

		It("should drive the result bus", func() {
			u.SetOp(alu.OpAdd)
			u.SetBNegate(false)
			u.SetA(0x3)
			u.SetB(0x1)
			u.Execute()
			Expect(u.Result.String()).To(Equal("0100"))
			Expect(u.Result.Bits()).To(Equal([]bool{false, false, true, false}))
		})

		It("should wrap around", func() {
			Expect(u.Eval(alu.OpAdd, false, 0xf, 0x1)).To(BeZero())
			Expect(u.CarryOut()).To(BeTrue())
			Expect(u.Eval(alu.OpAdd, true, 0x0, 0x1)).To(Equal(uint64(0xf)))
			Expect(u.ResultInt64()).To(Equal(int64(-1)))
			Expect(u.CarryOut()).To(BeFalse())
		})

		It("should be idempotent", func() {
			for op := alu.Op(0); op <= alu.OpMax; op++ {
				r1 := u.Eval(op, true, 0x9, 0x6)
				bits := u.Result.Bits()
				u.Execute()
				Expect(u.ResultUint64()).To(Equal(r1))
				Expect(u.Result.Bits()).To(Equal(bits))
			}
		})

		It("should not keep state between evaluations", func() {
			Expect(u.Eval(alu.OpSLT, true, 0x1, 0x3)).To(Equal(uint64(1)))
			Expect(u.Eval(alu.OpAnd, false, 0x0, 0x0)).To(BeZero())
			Expect(u.Eval(alu.OpSLT, true, 0x3, 0x1)).To(BeZero())
		})

		It("should yield zero for unused operation codes", func() {
			for op := alu.OpXor + 1; op <= alu.OpMax; op++ {
				for _, negate := range []bool{false, true} {
					Expect(u.Eval(op, negate, 0xf, 0xa)).To(BeZero(), "%v", op)
				}
			}
		})
	})

	Describe("arithmetic", func() {
		for _, w := range []int{1, 3, 8, 16, 33, 64, 65, 70} {
			w := w
			m := ^uint64(0)
			if w < 64 {
				m = 1<<uint(w) - 1
			}

			Context(fmt.Sprintf("%d bits", w), func() {
				var u *alu.ALU
				var rnd *rand.Rand

				BeforeEach(func() {
					var err error
					u, err = alu.New(w)
					Expect(err).NotTo(HaveOccurred())
					rnd = rand.New(rand.NewSource(int64(w)))
				})

				It("should add modulo 2^N", func() {
					for i := 0; i < 200; i++ {
						a, b := rnd.Uint64()&m, rnd.Uint64()&m
						Expect(u.Eval(alu.OpAdd, false, a, b)).To(Equal((a+b)&m), "width %d: %#x + %#x", w, a, b)
					}
				})

				It("should subtract modulo 2^N", func() {
					for i := 0; i < 200; i++ {
						a, b := rnd.Uint64()&m, rnd.Uint64()&m
						Expect(u.Eval(alu.OpAdd, true, a, b)).To(Equal((a-b)&m), "width %d: %#x - %#x", w, a, b)
					}
				})

				It("should set less than from the sign of a - b", func() {
					sext := func(v uint64) int64 {
						if w < 64 && v&(1<<uint(w-1)) != 0 {
							v |= ^m
						}
						return int64(v)
					}
					for i := 0; i < 200; i++ {
						a, b := rnd.Uint64()&m, rnd.Uint64()&m
						got := u.Eval(alu.OpSLT, true, a, b)
						Expect(got).To(Equal(hwtest.Reference(alu.OpSLT, true, a, b, w)))
						Expect(got &^ 1).To(BeZero())

						// without overflow, the sign of a - b is the signed comparison.
						sa, sb := sext(a), sext(b)
						d := sa - sb
						if w < 64 && d >= -(1<<uint(w-1)) && d < 1<<uint(w-1) {
							Expect(got == 1).To(Equal(sa < sb), "width %d: %d < %d", w, sa, sb)
						}
					}
				})

				It("should match the reference model", func() {
					hwtest.CompareALU(GinkgoT(), u, 50)
				})
			})
		}
	})

	Describe("width 70", func() {
		It("should compute SLT from the full width borrow", func() {
			u, err := alu.New(70)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Eval(alu.OpSLT, true, 1, 3)).To(Equal(uint64(1)))
			Expect(u.Eval(alu.OpSLT, true, 3, 1)).To(BeZero())
			Expect(u.Eval(alu.OpSLT, true, ^uint64(0), 0)).To(BeZero())
			Expect(u.Eval(alu.OpSLT, true, 0, ^uint64(0))).To(Equal(uint64(1)))
			Expect(u.Eval(alu.OpSLT, false, ^uint64(0), 1)).To(BeZero())
			for _, v := range [][2]uint64{{1, 3}, {3, 1}, {0, ^uint64(0)}} {
				Expect(u.Eval(alu.OpSLT, true, v[0], v[1])).To(Equal(hwtest.Reference(alu.OpSLT, true, v[0], v[1], 70)))
			}
		})
	})

	Describe("width 1", func() {
		It("should feed its own add result back for SLT", func() {
			u, err := alu.New(1)
			Expect(err).NotTo(HaveOccurred())
			// 0 - 1 = -1: sign set
			Expect(u.Eval(alu.OpSLT, true, 0, 1)).To(Equal(uint64(1)))
			// 1 - 0 = 1, which reads as -1 on one bit
			Expect(u.Eval(alu.OpSLT, true, 1, 0)).To(Equal(uint64(1)))
			Expect(u.Eval(alu.OpSLT, true, 1, 1)).To(BeZero())
			Expect(u.Eval(alu.OpAdd, false, 1, 1)).To(BeZero())
			Expect(u.CarryOut()).To(BeTrue())
		})
	})
})
