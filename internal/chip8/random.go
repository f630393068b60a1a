package chip8

import "math/rand/v2"

// RandomSource supplies the bytes used by the RND instruction.
type RandomSource interface {
	Byte() byte
}

// mathRandom is the default RandomSource backed by math/rand/v2.
type mathRandom struct{}

func (mathRandom) Byte() byte {
	return byte(rand.UintN(256))
}
