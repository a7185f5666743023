package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pterm/pterm"

	"github.com/seipan/bst/bst"
)

func run(stdin io.Reader, args ...string) (string, error) {
	out := &bytes.Buffer{}
	c := newRootCmd()
	c.SetArgs(args)
	c.SetIn(stdin)
	c.SetOut(out)
	c.SetErr(io.Discard)
	err := c.Execute()
	return out.String(), err
}

func firstLine(s string) string {
	return strings.SplitN(s, "\n", 2)[0]
}

var _ = Describe("Root", func() {
	Context("When given integer arguments", func() {
		It("Should print them in order", func() {
			out, err := run(nil, "5", "3", "8", "3")
			Expect(err).ToNot(HaveOccurred())
			Expect(firstLine(out)).To(Equal("3 3 5 8"))
			Expect(out).To(ContainSubstring("in-order"))
		})

		It("Should honour --order", func() {
			out, err := run(nil, "--order", "pre-order", "5", "3", "8", "3")
			Expect(err).ToNot(HaveOccurred())
			Expect(firstLine(out)).To(Equal("5 3 3 8"))

			out, err = run(nil, "--order", "post-order", "5", "3", "8", "3")
			Expect(err).ToNot(HaveOccurred())
			Expect(firstLine(out)).To(Equal("3 3 8 5"))
		})

		It("Should print the debug view", func() {
			out, err := run(nil, "--debug", "5", "3", "8")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("Head: 5\n\tleft: 3\n\tright: 8"))
		})

		It("Should reject values that do not parse", func() {
			_, err := run(nil, "5", "five")
			Expect(err).To(MatchError(ContainSubstring(`parse "five" as int`)))
		})
	})

	Context("When reading stdin", func() {
		It("Should split on whitespace", func() {
			out, err := run(strings.NewReader("pear apple\nfig\n"), "--kind", "string")
			Expect(err).ToNot(HaveOccurred())
			Expect(firstLine(out)).To(Equal("apple fig pear"))
		})

		It("Should handle empty input", func() {
			out, err := run(strings.NewReader(""))
			Expect(err).ToNot(HaveOccurred())
			Expect(firstLine(out)).To(Equal(""))
			Expect(out).To(ContainSubstring("true"))
		})
	})

	Context("When the kind is auto", func() {
		It("Should lock the kind to the first value", func() {
			_, err := run(nil, "--kind", "auto", "1", "2", "x")
			Expect(err).To(HaveOccurred())
			Expect(err).To(MatchError(bst.ErrTypeMismatch))
		})

		It("Should accept values of one kind", func() {
			out, err := run(nil, "--kind", "auto", "2.5", "1.5")
			Expect(err).ToNot(HaveOccurred())
			Expect(firstLine(out)).To(Equal("1.5 2.5"))
		})
	})

	Context("When configured from the environment", func() {
		BeforeEach(func() {
			Expect(os.Setenv("BST_ORDER", "pre-order")).To(Succeed())
			DeferCleanup(os.Unsetenv, "BST_ORDER")
		})

		It("Should use BST_ORDER", func() {
			out, err := run(nil, "2", "1", "3")
			Expect(err).ToNot(HaveOccurred())
			Expect(firstLine(out)).To(Equal("2 1 3"))
		})

		It("Should prefer the flag", func() {
			out, err := run(nil, "--order", "in-order", "2", "1", "3")
			Expect(err).ToNot(HaveOccurred())
			Expect(firstLine(out)).To(Equal("1 2 3"))
		})
	})

	Context("When flags are invalid", func() {
		It("Should reject an unknown order", func() {
			_, err := run(nil, "--order", "level-order", "1")
			Expect(err).To(HaveOccurred())
		})

		It("Should reject an unknown kind", func() {
			_, err := run(nil, "--kind", "complex", "1")
			Expect(err).To(MatchError(ContainSubstring("unknown kind")))
		})
	})
})

var _ = Describe("Bench", func() {
	It("Should insert every key into both stores", func() {
		out, err := run(nil, "bench", "-N", "200", "--seed", "7")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("bst"))
		Expect(out).To(ContainSubstring("map"))
		Expect(out).To(ContainSubstring("200"))
	})

	It("Should reject a non-positive count", func() {
		_, err := run(nil, "bench", "-N", "0")
		Expect(err).To(MatchError(ContainSubstring("count must be positive")))
	})

	It("Should walk both stores to the same sum", func() {
		keys := []int{4, 1, 3, 0, 2}
		tree := bst.NewOrdered[int]()
		Expect(SetTree(keys, tree)).To(Succeed())
		mdp := newMapBaseline(len(keys))
		SetMap(keys, mdp)
		Expect(WalkTree(tree)).To(Equal(10))
		Expect(WalkMap(mdp)).To(Equal(10))
		Expect(mdp.ordered()).To(Equal([]int{0, 1, 2, 3, 4}))
		Expect(mdp.Len()).To(Equal(tree.Len()))
	})

	It("Should enable debug messages with --debug", func() {
		DeferCleanup(pterm.DisableDebugMessages)
		Expect(pterm.PrintDebugMessages).To(BeFalse())

		_, err := run(nil, "bench", "-N", "10", "--debug")
		Expect(err).ToNot(HaveOccurred())
		Expect(pterm.PrintDebugMessages).To(BeTrue())
	})
})
