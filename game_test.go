package dumbuno_test

import (
	"bytes"
	"strings"

	"github.com/mgnsk/dumbuno"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fixedSource deals hands in order and counts calls.
type fixedSource struct {
	hands []int
	calls int
}

func (s *fixedSource) IntRange(min, max int) int {
	defer func() { s.calls++ }()
	return s.hands[s.calls%len(s.hands)]
}

func outputLines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

var _ = Describe("creating a game", func() {
	Specify("defaults to five players", func() {
		g, err := dumbuno.New()
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Players()).To(Equal(dumbuno.DefaultPlayers))
		Expect(g.Hands()).To(Equal([]int{0, 0, 0, 0, 0}))
		Expect(g.ID()).NotTo(BeEmpty())
	})

	Specify("every game has a distinct ID", func() {
		a, err := dumbuno.New()
		Expect(err).NotTo(HaveOccurred())
		b, err := dumbuno.New()
		Expect(err).NotTo(HaveOccurred())
		Expect(a.ID()).NotTo(Equal(b.ID()))
	})

	DescribeTable(
		"invalid configuration is rejected",
		func(opt dumbuno.Option) {
			g, err := dumbuno.New(opt)
			Expect(err).To(MatchError(dumbuno.ErrInvalidConfig))
			Expect(g).To(BeNil())
		},
		Entry("no players", dumbuno.WithPlayers(0)),
		Entry("negative players", dumbuno.WithPlayers(-3)),
		Entry("empty hands", dumbuno.WithHandSize(0, 5)),
		Entry("inverted range", dumbuno.WithHandSize(7, 3)),
	)
})

var _ = Describe("dealing", func() {
	var (
		src *fixedSource
		out *bytes.Buffer
		g   *dumbuno.Game
	)

	BeforeEach(func() {
		src = &fixedSource{hands: []int{4, 7, 3, 12, 9}}
		out = &bytes.Buffer{}

		var err error
		g, err = dumbuno.New(
			dumbuno.WithSource(src),
			dumbuno.WithOutput(out),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	Specify("every player is dealt exactly once", func() {
		Expect(g.Deal()).To(Succeed())
		Expect(src.calls).To(Equal(5))
		Expect(g.Hands()).To(Equal([]int{4, 7, 3, 12, 9}))
	})

	Specify("the dealt circle is reported", func() {
		Expect(g.Deal()).To(Succeed())
		Expect(out.String()).To(Equal("deal: 4 -> 7 -> 3 -> 12 -> 9\n"))
	})

	Specify("the circle can be reported again", func() {
		Expect(g.Deal()).To(Succeed())
		out.Reset()

		Expect(g.Report()).To(Succeed())
		Expect(out.String()).To(Equal("hands: 4 -> 7 -> 3 -> 12 -> 9\n"))
	})

	Specify("hands are drawn from the configured range", func() {
		var ranges [][2]int
		g, err := dumbuno.New(
			dumbuno.WithPlayers(3),
			dumbuno.WithHandSize(2, 6),
			dumbuno.WithOutput(out),
			dumbuno.WithSource(dumbuno.SourceFunc(func(min, max int) int {
				ranges = append(ranges, [2]int{min, max})
				return max
			})),
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Deal()).To(Succeed())
		Expect(ranges).To(Equal([][2]int{{2, 6}, {2, 6}, {2, 6}}))
		Expect(g.Hands()).To(Equal([]int{6, 6, 6}))
	})
})

var _ = Describe("playing", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	When("every player holds three cards", func() {
		var (
			g   *dumbuno.Game
			res dumbuno.Result
		)

		BeforeEach(func() {
			var err error
			g, err = dumbuno.New(
				dumbuno.WithSource(&fixedSource{hands: []int{3}}),
				dumbuno.WithOutput(out),
			)
			Expect(err).NotTo(HaveOccurred())

			res, err = g.Run()
			Expect(err).NotTo(HaveOccurred())
		})

		Specify("the first player wins on the second round", func() {
			Expect(res).To(Equal(dumbuno.Result{
				Winner:     1,
				Turns:      6,
				FinalCalls: 1,
			}))
			Expect(g.Hands()).To(Equal([]int{1, 2, 2, 2, 2}))
		})

		Specify("every turn is reported", func() {
			Expect(outputLines(out)).To(Equal([]string{
				"deal: 3 -> 3 -> 3 -> 3 -> 3",
				"player 1: 2 -> 3 -> 3 -> 3 -> 3",
				"player 2: 2 -> 2 -> 3 -> 3 -> 3",
				"player 3: 2 -> 2 -> 2 -> 3 -> 3",
				"player 4: 2 -> 2 -> 2 -> 2 -> 3",
				"player 5: 2 -> 2 -> 2 -> 2 -> 2",
				"player 1: 1 -> 2 -> 2 -> 2 -> 2",
				"player 1: Uno!",
				"player 1: I win!",
			}))
		})
	})

	Specify("a game cannot be played before dealing", func() {
		g, err := dumbuno.New(dumbuno.WithOutput(out))
		Expect(err).NotTo(HaveOccurred())

		res, err := g.Play()
		Expect(err).To(MatchError(dumbuno.ErrNotDealt))
		Expect(res).To(Equal(dumbuno.Result{}))
		Expect(g.Hands()).To(Equal([]int{0, 0, 0, 0, 0}))
		Expect(out.String()).To(BeEmpty())
	})

	Specify("the player with the smallest hand wins", func() {
		g, err := dumbuno.New(
			dumbuno.WithSource(&fixedSource{hands: []int{5, 6, 3, 4, 7}}),
			dumbuno.WithOutput(out),
		)
		Expect(err).NotTo(HaveOccurred())

		res, err := g.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Winner).To(Equal(3))
		Expect(res.Turns).To(Equal(8))
		Expect(res.FinalCalls).To(Equal(1))
		Expect(g.Hands()).To(Equal([]int{3, 4, 1, 3, 6}))
	})

	Specify("the final call precedes the win", func() {
		g, err := dumbuno.New(
			dumbuno.WithSource(dumbuno.NewSeededSource(42)),
			dumbuno.WithOutput(out),
		)
		Expect(err).NotTo(HaveOccurred())

		res, err := g.Run()
		Expect(err).NotTo(HaveOccurred())

		lines := outputLines(out)
		Expect(lines).To(HaveLen(res.Turns + 3))
		Expect(lines[len(lines)-2]).To(HaveSuffix(": Uno!"))
		Expect(lines[len(lines)-1]).To(HaveSuffix(": I win!"))
		Expect(strings.Count(out.String(), "Uno!")).To(Equal(1))
	})

	Specify("a single card hand wins without a final call", func() {
		g, err := dumbuno.New(
			dumbuno.WithPlayers(2),
			dumbuno.WithHandSize(1, 1),
			dumbuno.WithOutput(out),
		)
		Expect(err).NotTo(HaveOccurred())

		res, err := g.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(Equal(dumbuno.Result{Winner: 1, Turns: 1}))
		Expect(outputLines(out)).To(Equal([]string{
			"deal: 1 -> 1",
			"player 1: 0 -> 1",
			"player 1: I win!",
		}))
	})

	Specify("a lone player plays against themselves", func() {
		g, err := dumbuno.New(
			dumbuno.WithPlayers(1),
			dumbuno.WithSource(&fixedSource{hands: []int{4}}),
			dumbuno.WithOutput(out),
		)
		Expect(err).NotTo(HaveOccurred())

		res, err := g.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(Equal(dumbuno.Result{Winner: 1, Turns: 3, FinalCalls: 1}))
	})
})

var _ = Describe("logging", func() {
	Specify("game events are logged with the game ID", func() {
		core, logs := observer.New(zap.DebugLevel)

		g, err := dumbuno.New(
			dumbuno.WithPlayers(2),
			dumbuno.WithSource(&fixedSource{hands: []int{2}}),
			dumbuno.WithOutput(&bytes.Buffer{}),
			dumbuno.WithLogger(zap.New(core)),
		)
		Expect(err).NotTo(HaveOccurred())

		_, err = g.Run()
		Expect(err).NotTo(HaveOccurred())

		Expect(logs.FilterMessage("dealt hand").Len()).To(Equal(2))
		Expect(logs.FilterMessage("turn").Len()).To(Equal(1))
		Expect(logs.FilterMessage("final call").Len()).To(Equal(1))
		Expect(logs.FilterMessage("winner").Len()).To(Equal(1))

		for _, entry := range logs.All() {
			Expect(entry.ContextMap()).To(HaveKeyWithValue("game_id", g.ID()))
		}
	})
})
