package solver

import "math/bits"

// LetterSet is a bitset over the lowercase ASCII letters. Bytes outside
// a-z are never members and adding them is a no-op.
type LetterSet uint32

// Has reports whether c is in the set.
func (s LetterSet) Has(c byte) bool {
	if c < 'a' || c > 'z' {
		return false
	}
	return s&(1<<(c-'a')) != 0
}

// Add returns the set with c included.
func (s LetterSet) Add(c byte) LetterSet {
	if c < 'a' || c > 'z' {
		return s
	}
	return s | 1<<(c-'a')
}

// Len reports the number of letters in the set.
func (s LetterSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// WordLetters returns the set of distinct letters in word.
func WordLetters(word string) LetterSet {
	var s LetterSet
	for i := 0; i < len(word); i++ {
		s = s.Add(word[i])
	}
	return s
}
