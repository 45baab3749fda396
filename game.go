/*
Package dumbuno implements a token-depletion card game played by a fixed
circle of players.

Every player is dealt a hand of cards. Players take turns in circle order,
each turn discarding one card. The first player left with a single card
calls "Uno!" and wins.
*/
package dumbuno

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mgnsk/dumbuno/list"
	"github.com/mgnsk/dumbuno/ringlist"
)

// Result is the outcome of a game.
type Result struct {
	// Winner is the 1-based number of the winning player.
	Winner int
	// Turns is the number of turns played.
	Turns int
	// FinalCalls is the number of times a player called "Uno!".
	FinalCalls int
}

// Game is a circle of players, each holding a count of cards.
type Game struct {
	circle  *ringlist.Ring[int]
	source  Source
	out     io.Writer
	logger  *zap.Logger
	id      string
	minHand int
	maxHand int
	dealt   bool
}

// New creates a game with empty hands.
func New(opts ...Option) (*Game, error) {
	o := newDefaultGameOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	if o.players < 1 {
		return nil, fmt.Errorf("%w: need at least 1 player, got %d", ErrInvalidConfig, o.players)
	}

	if o.minHand < 1 || o.maxHand < o.minHand {
		return nil, fmt.Errorf("%w: hand size range [%d, %d]", ErrInvalidConfig, o.minHand, o.maxHand)
	}

	if o.source == nil {
		o.source = NewRandSource()
	}

	circle, err := ringlist.New[int](o.players)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()

	return &Game{
		circle:  circle,
		source:  o.source,
		out:     o.out,
		logger:  o.logger.With(zap.String("game_id", id)),
		id:      id,
		minHand: o.minHand,
		maxHand: o.maxHand,
	}, nil
}

// ID returns the unique game ID.
func (g *Game) ID() string {
	return g.id
}

// Players returns the number of players.
func (g *Game) Players() int {
	return g.circle.Len()
}

// Hands returns the card counts in circle order, starting at player 1.
func (g *Game) Hands() []int {
	return g.circle.Values()
}

// Run deals and plays a game.
func (g *Game) Run() (Result, error) {
	if err := g.Deal(); err != nil {
		return Result{}, err
	}

	return g.Play()
}

// Deal deals every player a hand and reports the circle.
func (g *Game) Deal() error {
	player := 0

	g.circle.Do(func(e *list.Element[int]) bool {
		player++
		e.Value = g.source.IntRange(g.minHand, g.maxHand)

		g.logger.Debug("dealt hand",
			zap.Int("player", player),
			zap.Int("hand", e.Value),
		)

		return true
	})

	g.dealt = true

	return g.report("deal")
}

// Play plays the dealt game to the end.
//
// On each turn the current player discards a card and the circle is
// reported. A player left with one card calls "Uno!" and wins.
// Deal must be called first, otherwise Play returns ErrNotDealt.
func (g *Game) Play() (Result, error) {
	var res Result

	if !g.dealt {
		return res, ErrNotDealt
	}

	current := g.circle.Front()
	player := 1

	for {
		current.Value--
		res.Turns++

		g.logger.Debug("turn",
			zap.Int("turn", res.Turns),
			zap.Int("player", player),
			zap.Int("hand", current.Value),
		)

		if err := g.report("player " + strconv.Itoa(player)); err != nil {
			return res, err
		}

		if current.Value == 1 {
			res.FinalCalls++

			g.logger.Debug("final call", zap.Int("player", player))

			if _, err := fmt.Fprintf(g.out, "player %d: Uno!\n", player); err != nil {
				return res, err
			}
		}

		if current.Value <= 1 {
			break
		}

		current = current.Next()
		if player++; player > g.circle.Len() {
			player = 1
		}
	}

	res.Winner = player

	g.logger.Debug("winner",
		zap.Int("player", player),
		zap.Int("turns", res.Turns),
	)

	if _, err := fmt.Fprintf(g.out, "player %d: I win!\n", player); err != nil {
		return res, err
	}

	return res, nil
}

// Report writes the card counts of every player in circle order.
func (g *Game) Report() error {
	return g.report("hands")
}

func (g *Game) report(label string) error {
	var b strings.Builder

	b.WriteString(label)
	b.WriteString(": ")

	g.circle.Do(func(e *list.Element[int]) bool {
		if e != g.circle.Front() {
			b.WriteString(" -> ")
		}
		b.WriteString(strconv.Itoa(e.Value))
		return true
	})

	b.WriteByte('\n')

	_, err := io.WriteString(g.out, b.String())
	return err
}
