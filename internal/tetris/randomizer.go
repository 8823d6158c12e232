package tetris

import (
	"fmt"
	"math/rand"
)

// Randomizer decides which shape spawns next.
type Randomizer interface {
	// Next consumes and returns the next shape.
	Next() Shape
	// Peek returns the next shape without consuming it.
	Peek() Shape
}

// Randomizer policy names accepted by NewRandomizer.
const (
	PolicyBag     = "bag"
	PolicyUniform = "random"
)

// NewRandomizer returns a seeded randomizer for the named policy.
func NewRandomizer(policy string, seed int64) (Randomizer, error) {
	switch policy {
	case PolicyBag, "":
		return NewBag(seed), nil
	case PolicyUniform:
		return NewUniform(seed), nil
	default:
		return nil, fmt.Errorf("tetris: unknown randomizer %q", policy)
	}
}

// Bag deals the seven shapes in shuffled groups of seven, so every shape
// appears exactly once per bag.
type Bag struct {
	rng *rand.Rand
	bag []Shape
}

// NewBag creates a seeded 7-bag randomizer.
func NewBag(seed int64) *Bag {
	return &Bag{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next shape from the bag, refilling it when empty.
func (b *Bag) Next() Shape {
	if len(b.bag) == 0 {
		b.refill()
	}
	s := b.bag[0]
	b.bag = b.bag[1:]
	return s
}

// Peek returns the upcoming shape without consuming it.
func (b *Bag) Peek() Shape {
	if len(b.bag) == 0 {
		b.refill()
	}
	return b.bag[0]
}

func (b *Bag) refill() {
	b.bag = append(b.bag[:0], Shapes[:]...)
	b.rng.Shuffle(len(b.bag), func(i, j int) {
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	})
}

// Uniform picks each shape independently with equal probability.
// Immediate repeats are allowed.
type Uniform struct {
	rng  *rand.Rand
	next Shape
}

// NewUniform creates a seeded uniform randomizer.
func NewUniform(seed int64) *Uniform {
	u := &Uniform{rng: rand.New(rand.NewSource(seed))}
	u.next = u.draw()
	return u
}

// Next returns the pending shape and draws a new one.
func (u *Uniform) Next() Shape {
	s := u.next
	u.next = u.draw()
	return s
}

// Peek returns the pending shape.
func (u *Uniform) Peek() Shape {
	return u.next
}

func (u *Uniform) draw() Shape {
	return Shapes[u.rng.Intn(len(Shapes))]
}

// Sequence replays a fixed list of shapes, cycling when exhausted.
// Useful for tests and scripted setups.
type Sequence struct {
	shapes []Shape
	pos    int
}

// NewSequence creates a cycling randomizer over shapes.
// Panics if shapes is empty.
func NewSequence(shapes ...Shape) *Sequence {
	if len(shapes) == 0 {
		panic("tetris: empty sequence")
	}
	return &Sequence{shapes: shapes}
}

// Next returns the next shape in the sequence.
func (s *Sequence) Next() Shape {
	shape := s.shapes[s.pos]
	s.pos = (s.pos + 1) % len(s.shapes)
	return shape
}

// Peek returns the upcoming shape.
func (s *Sequence) Peek() Shape {
	return s.shapes[s.pos]
}
