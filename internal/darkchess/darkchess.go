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

// Package darkchess implements Banqi (暗棋/dark chess), the
// hidden-information sibling of Xiangqi played on a 4x8 board with all
// pieces starting face down. It reuses xqtypes.PieceType as the
// capture-rank ordering (King strongest down to Pawn weakest) and
// xqtypes.Color for sides, but owns its own board, move generator and
// expectimax search since neither the 10x9 geometry nor the
// perfect-information search skeleton of internal/board/internal/search
// applies once pieces can be unrevealed.
package darkchess

import (
	"fmt"

	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

// Board geometry: 4 ranks by 8 files, 32 intersections, matching the
// standard Banqi layout.
const (
	NumRows    = 4
	NumCols    = 8
	NumSquares = NumRows * NumCols
)

// Square is a row/column pair packed row-major, mirroring
// xqtypes.Square's convention at a smaller board size.
type Square int8

// SquareNone marks the absence of a square.
const SquareNone Square = -1

// NewSquare packs a row/column pair into a Square.
func NewSquare(row, col int) Square {
	return Square(row*NumCols + col)
}

// Row and Col unpack a Square back into board coordinates.
func (s Square) Row() int { return int(s) / NumCols }
func (s Square) Col() int { return int(s) % NumCols }

// IsValid reports whether s addresses a square on the board.
func (s Square) IsValid() bool {
	return s >= 0 && int(s) < NumSquares
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col(), s.Row()+1)
}

// onBoard reports whether a raw (row, col) pair lies within the grid,
// used while walking rays before packing into a Square.
func onBoard(row, col int) bool {
	return row >= 0 && row < NumRows && col >= 0 && col < NumCols
}

// Piece is a (kind, side) pair. Kind reuses xqtypes.PieceType purely
// as a strength ranking; Banqi has no palace, river or elephant-eye
// geometry, only the capture-order those seven values already encode.
type Piece struct {
	Kind xqtypes.PieceType
	Side xqtypes.Color
}

// PieceNone is the empty-cell sentinel.
var PieceNone = Piece{Kind: xqtypes.PieceTypeNone, Side: xqtypes.ColorNone}

// IsNone reports whether p denotes an empty square.
func (p Piece) IsNone() bool {
	return p.Kind == xqtypes.PieceTypeNone
}

func (p Piece) String() string {
	if p.IsNone() {
		return "."
	}
	if p.Side == xqtypes.Red {
		return p.Kind.String()
	}
	return string(rune(p.Kind.String()[0] + 32))
}

// inventory is the fixed per-side piece count at the start of a game:
// one king, two of each of advisor/elephant/rook/horse/cannon, and
// five pawns - sixteen pieces a side, thirty-two total, one per
// square.
var inventory = map[xqtypes.PieceType]int{
	xqtypes.King:     1,
	xqtypes.Advisor:  2,
	xqtypes.Elephant: 2,
	xqtypes.Rook:     2,
	xqtypes.Horse:    2,
	xqtypes.Cannon:   2,
	xqtypes.Pawn:     5,
}

// PieceValues are the material weights used by the evaluator and by
// MVV-minus-attacker move ordering. Banqi has no river or palace to
// weight positionally, so only raw strength matters; the values
// descend in capture-rank order (king highest, pawn lowest), unlike
// xqtypes.PieceValues, and the king is not assigned an unbounded value
// since it is a normal capture target here, not a checkmate condition.
var PieceValues = [xqtypes.PieceTypeLength]int{
	xqtypes.King:     60,
	xqtypes.Advisor:  30,
	xqtypes.Elephant: 25,
	xqtypes.Rook:     20,
	xqtypes.Horse:    15,
	xqtypes.Cannon:   15,
	xqtypes.Pawn:     10,
}

// canCapture reports whether a revealed attacker may capture a
// revealed defender under the non-cannon rank rule: equal or weaker
// rank normally, with the sole exception that a pawn captures a king
// and a king may never capture a pawn.
func canCapture(attacker, defender Piece) bool {
	if attacker.Kind == xqtypes.Pawn && defender.Kind == xqtypes.King {
		return true
	}
	if attacker.Kind == xqtypes.King && defender.Kind == xqtypes.Pawn {
		return false
	}
	return attacker.Kind <= defender.Kind
}
