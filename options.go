package dumbuno

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// Default game configuration.
const (
	DefaultPlayers     = 5
	DefaultMinHandSize = 3
	DefaultMaxHandSize = 12
)

// Option is a game configuration option.
type Option interface {
	apply(*gameOptions)
}

type gameOptions struct {
	source  Source
	out     io.Writer
	logger  *zap.Logger
	players int
	minHand int
	maxHand int
}

func newDefaultGameOptions() gameOptions {
	return gameOptions{
		out:     os.Stdout,
		logger:  zap.NewNop(),
		players: DefaultPlayers,
		minHand: DefaultMinHandSize,
		maxHand: DefaultMaxHandSize,
	}
}

// WithPlayers option configures the number of players in the circle.
func WithPlayers(n int) Option {
	return funcOption(func(opts *gameOptions) {
		opts.players = n
	})
}

// WithHandSize option configures the inclusive range of initial hand sizes.
func WithHandSize(min, max int) Option {
	return funcOption(func(opts *gameOptions) {
		opts.minHand = min
		opts.maxHand = max
	})
}

// WithSource option configures the source of initial hand sizes.
//
// The nil value configures a randomly seeded source.
func WithSource(src Source) Option {
	return funcOption(func(opts *gameOptions) {
		opts.source = src
	})
}

// WithOutput option configures the writer the game is reported to.
func WithOutput(w io.Writer) Option {
	return funcOption(func(opts *gameOptions) {
		opts.out = w
	})
}

// WithLogger option configures the game logger.
func WithLogger(logger *zap.Logger) Option {
	return funcOption(func(opts *gameOptions) {
		if logger == nil {
			logger = zap.NewNop()
		}
		opts.logger = logger
	})
}

type funcOption func(*gameOptions)

func (o funcOption) apply(opts *gameOptions) {
	o(opts)
}
