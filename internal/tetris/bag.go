package tetris

import "math/rand"

// Generator deals piece kinds using the 7-bag policy: a bag is refilled
// with a uniform permutation of all seven kinds whenever it runs empty, so
// every kind appears exactly once per bag cycle. Two generators created
// with the same seed deal identical sequences.
type Generator struct {
	rng *rand.Rand
	bag []Kind
}

// NewGenerator creates a seeded 7-bag generator.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next deals the next kind, refilling the bag first if it is empty.
func (g *Generator) Next() Kind {
	if len(g.bag) == 0 {
		g.refill()
	}
	k := g.bag[0]
	g.bag = g.bag[1:]
	return k
}

// Peek returns the kind Next would deal, without consuming it.
func (g *Generator) Peek() Kind {
	if len(g.bag) == 0 {
		g.refill()
	}
	return g.bag[0]
}

// Reset discards the undealt remainder of the current bag. The next draw
// starts a fresh bag cycle.
func (g *Generator) Reset() {
	g.bag = nil
}

// Remaining returns the number of undealt kinds in the current bag.
func (g *Generator) Remaining() int {
	return len(g.bag)
}

func (g *Generator) refill() {
	g.bag = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
	// Fisher-Yates shuffle
	for i := len(g.bag) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
	}
}
