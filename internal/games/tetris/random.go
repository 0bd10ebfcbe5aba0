package tetris

import "math/rand"

// Randomizer supplies the type of each newly generated piece.
type Randomizer interface {
	Next() PieceType
}

// UniformRandomizer picks each piece independently and uniformly among the
// seven types. There is no bag, so droughts and repeats are possible.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer creates a seeded randomizer. Two randomizers with the
// same seed produce the same sequence.
func NewUniformRandomizer(seed int64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next piece type.
func (u *UniformRandomizer) Next() PieceType {
	return pieceTypes[u.rng.Intn(len(pieceTypes))]
}
