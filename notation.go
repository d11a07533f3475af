package cubeplay

import "strings"

// letterFaces maps every accepted move letter to its face. Lowercase
// r/l/u/d/f/b are wide moves; there is no lowercase m/s/e and no uppercase
// X/Y/Z.
var letterFaces = map[rune]Face{
	'R': FaceR, 'L': FaceL, 'U': FaceU, 'D': FaceD, 'F': FaceF, 'B': FaceB,
	'M': FaceM, 'S': FaceS, 'E': FaceE,
	'r': FaceWideR, 'l': FaceWideL, 'u': FaceWideU, 'd': FaceWideD, 'f': FaceWideF, 'b': FaceWideB,
	'x': FaceX, 'y': FaceY, 'z': FaceZ,
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// ParseMoves parses a move script.
//
// The script is free-form across lines; "//" starts a comment that runs to
// the end of the line. Each move is a letter followed by up to two
// modifiers: ' for prime, 2 for a half turn (2' and '2 are both accepted).
//
// Parsing is all-or-nothing: the first character that is not whitespace,
// a comment or part of a move fails the whole script with a *ParseError
// and no moves are returned.
func ParseMoves(text string) ([]Move, error) {
	moves := make([]Move, 0)

	for lineIdx, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		for i := 0; i < len(runes); i++ {
			ch := runes[i]

			if ch == '/' && i+1 < len(runes) && runes[i+1] == '/' {
				break
			}
			if isBlank(ch) {
				continue
			}

			face, ok := letterFaces[ch]
			if !ok {
				return nil, &ParseError{Line: lineIdx + 1, Column: i + 1, Char: ch}
			}

			m := Move{Face: face}
			consumed := 0
			if i+1 < len(runes) && runes[i+1] == '\'' {
				m.Prime = true
				i++
				consumed++
			}
			if i+1 < len(runes) && runes[i+1] == '2' {
				m.Double = true
				i++
				consumed++
				if consumed < 2 && i+1 < len(runes) && runes[i+1] == '\'' {
					m.Prime = true
					i++
				}
			}

			moves = append(moves, m)
		}
	}

	return moves, nil
}

// ParseMove parses a single move token such as R, u', M2 or x2'.
func ParseMove(s string) (Move, error) {
	moves, err := ParseMoves(s)
	if err != nil {
		return Move{}, err
	}
	if len(moves) != 1 {
		return Move{}, ErrInvalidNotation
	}
	return moves[0], nil
}

// MustParseMoves is like ParseMoves but panics on invalid input.
// It is intended for package-level algorithm literals and tests.
func MustParseMoves(text string) []Move {
	moves, err := ParseMoves(text)
	if err != nil {
		panic(err)
	}
	return moves
}
