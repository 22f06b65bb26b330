package bitboard

import "math/bits"

// Constants describes a Size×Size board laid out one row after
// another: bit x+y*Size is the square at column x, row y.
type Constants struct {
	Size       uint
	L, R, T, B uint64
	Mask       uint64
}

func Precompute(size uint) Constants {
	var c Constants
	for i := uint(0); i < size; i++ {
		c.R |= 1 << (i * size)
	}
	c.Size = size
	c.L = c.R << (size - 1)
	c.T = ((1 << size) - 1) << (size * (size - 1))
	c.B = (1 << size) - 1
	c.Mask = 1<<(size*size) - 1
	return c
}

// Spread grows every set bit into its 3×3 block.
func Spread(c *Constants, seed uint64) uint64 {
	row := seed
	row |= (seed << 1) &^ c.R
	row |= (seed >> 1) &^ c.L
	out := row | (row << c.Size) | (row >> c.Size)
	return out & c.Mask
}

// Neighbors returns the squares adjacent (orthogonally or diagonally)
// to bit, which must be a single square.
func Neighbors(c *Constants, bit uint64) uint64 {
	return Spread(c, bit) &^ bit
}

func Popcount(x uint64) int {
	return bits.OnesCount64(x)
}

func TrailingZeros(x uint64) uint {
	return uint(bits.TrailingZeros64(x))
}
