package main

import (
	"github.com/mgnsk/dumbuno"
)

func main() {
	g, err := dumbuno.New(
		dumbuno.WithPlayers(5),
		dumbuno.WithHandSize(3, 12),
	)
	if err != nil {
		panic(err)
	}

	// Deals every player a hand and plays until someone calls "Uno!".
	result, err := g.Run()
	if err != nil {
		panic(err)
	}

	println("winner:", result.Winner, "turns:", result.Turns)
}
