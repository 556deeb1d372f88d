package solver

// Filter narrows candidates to the words still consistent with the
// board and the accumulated wrong guesses. A word survives iff it has
// the board's length, matches every revealed slot, carries no revealed
// letter in a blank slot, and shares no letter with wrong. The input
// slice is never modified.
func Filter(candidates []string, board Board, wrong LetterSet) []string {
	revealed := board.Revealed()
	var out []string
	for _, w := range candidates {
		if consistent(w, board, revealed, wrong) {
			out = append(out, w)
		}
	}
	return out
}

func consistent(w string, board Board, revealed, wrong LetterSet) bool {
	if len(w) != len(board) {
		return false
	}
	for i := 0; i < len(w); i++ {
		c := w[i]
		if wrong.Has(c) {
			return false
		}
		if board[i] == Blank {
			// A known letter cannot hide in an unrevealed slot: every
			// occurrence was already exposed when it was guessed.
			if revealed.Has(c) {
				return false
			}
			continue
		}
		if c != board[i] {
			return false
		}
	}
	return true
}
