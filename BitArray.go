package Go_Succ

import (
	"math/bits"
)

// New returns a BitArray able to hold at least size bits, rounded up to a
// whole number of words. All bits start cleared.
func New(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Fill sets the first n bits and clears every bit above them.
func (u BitArray) Fill(n int) {
	for i := range u.bits[:n/bits.UintSize] {
		u.bits[i] = ^uint(0)
	}
	for i := n / bits.UintSize; i < len(u.bits); i++ {
		u.bits[i] = 0
	}
	if r := n % bits.UintSize; r != 0 {
		u.bits[n/bits.UintSize] = 1<<r - 1
	}
}

// Word returns the whole word containing bit i.
func (u BitArray) Word(i int) uint {
	return u.bits[i/bits.UintSize]
}

// NextUp returns the index of the lowest set bit at or above i within i's
// word. The scan never crosses a word boundary; callers chain words
// themselves.
// Time: O(1), a single trailing-zeros instruction.
func (u BitArray) NextUp(i int) (int, bool) {
	w := u.bits[i/bits.UintSize] >> (i % bits.UintSize)
	if w == 0 {
		return 0, false
	}
	return i + bits.TrailingZeros(w), true
}
