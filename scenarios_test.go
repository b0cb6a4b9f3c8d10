package logicsim_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	ls "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/netlist"
)

// simulate parses a bench netlist and runs rows through it.
func simulate(src string, opts *ls.Options, rows ...string) ([]string, error) {
	c, err := netlist.ParseBench(strings.NewReader(src), "scenario")
	if err != nil {
		return nil, err
	}
	var tr ls.Trace
	err = ls.Run(c, vecs(rows...), &tr, opts)
	return tr.Strings(";"), err
}

var _ = Describe("Simulation", func() {
	DescribeTable("single element circuits",
		func(src string, rows, want []string) {
			got, err := simulate(src, nil, rows...)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("AND with a dominating Lo",
			"INPUT(A)\nINPUT(B)\nOUTPUT(Y)\nY = AND(A, B)\n",
			[]string{"11", "10", "0X"}, []string{"1", "0", "0"}),
		Entry("OR with a dominating Hi",
			"INPUT(A)\nINPUT(B)\nOUTPUT(Y)\nY = OR(A, B)\n",
			[]string{"00", "1X", "0X"}, []string{"0", "1", "X"}),
		Entry("NOT",
			"INPUT(A)\nOUTPUT(Y)\nY = NOT(A)\n",
			[]string{"0", "1"}, []string{"1", "0"}),
		Entry("DFF with an explicit clock",
			"INPUT(C)\nINPUT(D)\nOUTPUT(Q)\nQ = DFF(C, D)\n",
			[]string{"11", "00", "10"}, []string{"1", "1", "0"}),
		Entry("DFF with the implicit CLOCK net",
			"INPUT(D)\nOUTPUT(Q)\nQ = DFF(D)\n",
			[]string{"11", "00", "10", "X1"}, []string{"1", "1", "0", "0"}),
	)

	Context("with a combinational loop", func() {
		const ring = "INPUT(EN)\nOUTPUT(Y)\nY = NOT(Z)\nZ = AND(EN, Y)\n"

		It("settles while the loop is disabled", func() {
			got, err := simulate(ring, nil, "0", "0")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]string{"1", "1"}))
		})

		It("fails to converge once enabled", func() {
			rec := new(counter)
			got, err := simulate(ring, &ls.Options{Metrics: rec}, "0", "1")
			Expect(errors.Cause(err)).To(Equal(ls.ErrNoConvergence))
			Expect(got).To(HaveLen(1))
			Expect(rec.fails).To(Equal(1))
		})

		It("stops at the configured sweep limit", func() {
			rec := new(counter)
			_, err := simulate(ring, &ls.Options{MaxSweeps: 7, Metrics: rec}, "0", "1")
			Expect(err).To(MatchError(ContainSubstring("7 sweeps")))
		})
	})

	Context("with a clocked feedback loop", func() {
		// toggle flip-flop: Q = DFF(T) with T = NOT(Q)
		const toggle = "INPUT(R)\nOUTPUT(Q)\nQ = DFF(T)\nT = NOR(Q, R)\n"

		It("toggles once per clocked step", func() {
			// columns: CLOCK, Q, R. The DFF restores its output after the
			// X applied to Q. R forces T low on the first step.
			got, err := simulate(toggle, nil, "0X1", "1X0", "1X0", "0X0", "1X0")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]string{"X", "0", "1", "1", "0"}))
		})
	})
})
