package forward_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/forward"
	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/phnum"
)

func values(res *phnum.Numbers, err error) []string {
	Expect(err).NotTo(HaveOccurred())
	return res.Values()
}

var _ = Describe("Registry", func() {
	var r *forward.Registry

	BeforeEach(func() {
		r = forward.New()
	})

	Context("with a single rule", func() {
		BeforeEach(func() {
			Expect(r.Add("17", "58")).To(Succeed())
		})

		It("rewrites numbers under the prefix", func() {
			Expect(r.Get("1700").Values()).To(Equal([]string{"5800"}))
		})

		It("lists the source before the identity", func() {
			Expect(values(r.Reverse("58"))).To(Equal([]string{"17", "58"}))
		})

		It("reverts to identity after removal", func() {
			r.Remove("17")
			Expect(r.Get("1700").Values()).To(Equal([]string{"1700"}))
			Expect(values(r.Reverse("58"))).To(Equal([]string{"58"}))
			Expect(r.State()).To(Equal(forward.StateEmpty))
		})
	})

	Context("with nested prefixes", func() {
		BeforeEach(func() {
			Expect(r.Add("1", "2")).To(Succeed())
			Expect(r.Add("12", "3")).To(Succeed())
		})

		It("applies the longest matching prefix", func() {
			Expect(r.Get("120").Values()).To(Equal([]string{"30"}))
			Expect(r.Get("130").Values()).To(Equal([]string{"230"}))
		})

		It("drops shadowed candidates from GetReverse", func() {
			Expect(values(r.Reverse("22"))).To(Equal([]string{"12", "22"}))
			Expect(values(r.GetReverse("22"))).To(Equal([]string{"22"}))
		})

		It("drops nested rules with their prefix", func() {
			r.Remove("1")
			Expect(r.Len()).To(BeZero())
			Expect(r.Get("120").Values()).To(Equal([]string{"120"}))
		})
	})

	It("treats malformed numbers as identity or empty", func() {
		Expect(r.Get("abc").Values()).To(Equal([]string{"abc"}))
		Expect(values(r.Reverse("abc"))).To(BeEmpty())
	})

	It("rejects invalid rules", func() {
		Expect(r.Add("12", "12")).To(MatchError(forward.ErrInvalidArgument))
		Expect(r.Add("1a", "2")).To(MatchError(forward.ErrInvalidArgument))
	})

	DescribeTable("limits",
		func(limits forward.Limits, source, replacement string) {
			r = forward.New(forward.WithLimits(limits))
			Expect(r.Add("9", "8")).To(Succeed())
			Expect(r.Add(source, replacement)).To(MatchError(forward.ErrOutOfMemory))
			Expect(r.Rules()).To(Equal([]forward.Rule{{Source: "9", Replacement: "8"}}))
		},
		Entry("forward trie full", forward.Limits{MaxNodes: 3}, "123", "4"),
		Entry("reverse trie full", forward.Limits{MaxNodes: 3}, "4", "123"),
	)

	It("survives destruction without a worklist", func() {
		r = forward.New(forward.WithLimits(forward.Limits{Worklist: -1}))
		Expect(r.Add("1234567890", "#")).To(Succeed())
		Expect(r.Add("12", "*")).To(Succeed())
		r.Clear()
		Expect(r.State()).To(Equal(forward.StateEmpty))
		Expect(r.Add("1", "2")).To(Succeed())
		Expect(r.Get("15").Values()).To(Equal([]string{"25"}))
	})
})
