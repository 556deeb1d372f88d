package solver

import "strings"

// Blank marks an unrevealed board slot.
const Blank = '.'

// Board is the masked view of a target word. Slots hold either a
// revealed letter or Blank; a revealed slot is never blanked again.
type Board string

// NewBoard returns a fully masked board of n slots.
func NewBoard(n int) Board {
	return Board(strings.Repeat(string(Blank), n))
}

// Revealed returns the letters currently visible on the board.
func (b Board) Revealed() LetterSet {
	var s LetterSet
	for i := 0; i < len(b); i++ {
		if b[i] != Blank {
			s = s.Add(b[i])
		}
	}
	return s
}

// Solved reports whether every slot is revealed.
func (b Board) Solved() bool {
	return strings.IndexByte(string(b), Blank) < 0
}

// reveal fills every slot where target holds guess. hit is false when
// the guess appears nowhere, leaving the board unchanged.
func (b Board) reveal(target string, guess byte) (Board, bool) {
	buf := []byte(b)
	hit := false
	for i := 0; i < len(target) && i < len(buf); i++ {
		if target[i] == guess {
			buf[i] = guess
			hit = true
		}
	}
	if !hit {
		return b, false
	}
	return Board(buf), true
}
