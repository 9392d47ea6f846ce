//
// Xiangqi - Chinese Chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package xqtypes

// Color identifies which side a piece or the move belongs to.
type Color int8

const (
	Red Color = iota
	Black
	ColorNone
)

// Flip returns the opposite color. Flipping ColorNone is undefined.
func (c Color) Flip() Color {
	return c ^ 1
}

// Direction returns -1 for Red and +1 for Black, matching the
// board-coordinate convention that Red advances toward row 0.
func (c Color) Direction() int {
	if c == Red {
		return -1
	}
	return 1
}

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// PieceType is the closed, seven-member enumeration of Xiangqi piece
// kinds. Dispatch over PieceType is always a tagged switch, never a
// virtual call - see DESIGN.md's note on C4.
type PieceType int8

const (
	King PieceType = iota
	Advisor
	Elephant
	Rook
	Horse
	Cannon
	Pawn
	PieceTypeNone
	PieceTypeLength = int(Pawn) + 1
)

func (pt PieceType) String() string {
	switch pt {
	case King:
		return "K"
	case Advisor:
		return "A"
	case Elephant:
		return "E"
	case Rook:
		return "R"
	case Horse:
		return "H"
	case Cannon:
		return "C"
	case Pawn:
		return "P"
	default:
		return "."
	}
}

// PieceValues are the material worth of each kind.
var PieceValues = [PieceTypeLength]int16{
	King:     10000,
	Advisor:  200,
	Elephant: 200,
	Rook:     900,
	Horse:    450,
	Cannon:   450,
	Pawn:     100,
}

// PhaseWeights are the per-kind contributions to the game-phase
// scalar.
var PhaseWeights = [PieceTypeLength]int{
	King:     0,
	Advisor:  1,
	Elephant: 1,
	Rook:     5,
	Horse:    3,
	Cannon:   3,
	Pawn:     0,
}

// TotalPhase normalizes the running phase sum into the 0-256 range
// Score.Tapered expects; it is fixed rather than derived from the
// starting position so mid/end blending stays stable across variants
// with non-standard setups.
const TotalPhase = 28

// Piece is a (kind, side) pair. The zero value is King/Red, so callers
// must use PieceNone, not the zero value, to mean "no piece".
type Piece struct {
	Type PieceType
	Side Color
}

// PieceNone represents an empty board cell.
var PieceNone = Piece{Type: PieceTypeNone, Side: ColorNone}

// IsNone reports whether this Piece value represents an empty cell.
func (p Piece) IsNone() bool {
	return p.Type == PieceTypeNone
}

func (p Piece) String() string {
	if p.IsNone() {
		return "."
	}
	if p.Side == Red {
		return p.Type.String()
	}
	// Black pieces print lower-case, matching common Xiangqi notation.
	s := p.Type.String()
	return string(s[0] + 32)
}
