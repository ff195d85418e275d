package tetris

import (
	"fmt"
	"math/rand"
)

// Randomizer supplies the sequence of kinds to spawn.
type Randomizer interface {
	Next() Kind
}

// Randomizer names accepted by NewRandomizer.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// NewRandomizer builds a seeded randomizer by name.
func NewRandomizer(name string, seed int64) (Randomizer, error) {
	switch name {
	case "", RandomizerUniform:
		return NewUniform(seed), nil
	case RandomizerBag:
		return NewBag(seed), nil
	default:
		return nil, fmt.Errorf("tetris: unknown randomizer %q", name)
	}
}

// Uniform picks each kind independently with equal probability.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform creates a uniform randomizer.
func NewUniform(seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen kind.
func (u *Uniform) Next() Kind {
	return Kinds[u.rng.Intn(len(Kinds))]
}

// Bag deals all seven kinds in shuffled order before repeating any.
type Bag struct {
	rng  *rand.Rand
	bag  []Kind
	next int
}

// NewBag creates a 7-bag randomizer.
func NewBag(seed int64) *Bag {
	b := &Bag{rng: rand.New(rand.NewSource(seed))}
	b.refill()
	return b
}

// Next returns the next kind from the current bag.
func (b *Bag) Next() Kind {
	if b.next == len(b.bag) {
		b.refill()
	}
	k := b.bag[b.next]
	b.next++
	return k
}

func (b *Bag) refill() {
	b.bag = append(b.bag[:0], Kinds[:]...)
	b.rng.Shuffle(len(b.bag), func(i, j int) { b.bag[i], b.bag[j] = b.bag[j], b.bag[i] })
	b.next = 0
}
