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

package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

// StartFen is the standard Xiangqi starting position in this engine's
// own FEN-like notation: ten ranks separated by '/', read top (Black's
// back rank, row 0) to bottom (Red's back rank, row 9), piece letters
// matching xqtypes.PieceType.String() (uppercase Red, lowercase
// Black), digits for runs of empty squares, then the side to move as
// "r" or "b". Unlike international-chess FEN there are no castling,
// en passant or move-count fields since Xiangqi has none of those.
const StartFen = "rheakaehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR r"

// NewBoardFromFen parses fen into a Board. It returns an error if fen
// does not describe exactly 10 ranks of 9 columns each, names an
// unknown piece letter or side to move, or gives a side more pieces of
// one kind than the starting layout does (so a second king is
// rejected).
func NewBoardFromFen(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, fmt.Errorf("board: fen %q missing side-to-move field", fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != xqtypes.NumRows {
		return nil, fmt.Errorf("board: fen %q has %d ranks, want %d", fen, len(ranks), xqtypes.NumRows)
	}

	b := newEmptyBoard()

	for row, rank := range ranks {
		col := 0
		for _, ch := range rank {
			if col >= xqtypes.NumCols {
				return nil, fmt.Errorf("board: fen %q rank %d overruns the board", fen, row)
			}
			if n, err := strconv.Atoi(string(ch)); err == nil {
				col += n
				continue
			}
			p, err := pieceFromLetter(ch)
			if err != nil {
				return nil, fmt.Errorf("board: fen %q: %w", fen, err)
			}
			b.putPiece(p, xqtypes.NewSquare(row, col))
			col++
		}
		if col != xqtypes.NumCols {
			return nil, fmt.Errorf("board: fen %q rank %d covers %d columns, want %d", fen, row, col, xqtypes.NumCols)
		}
	}

	switch fields[1] {
	case "r", "R":
		b.nextPlayer = xqtypes.Red
	case "b", "B":
		b.nextPlayer = xqtypes.Black
	default:
		return nil, fmt.Errorf("board: fen %q has unknown side to move %q", fen, fields[1])
	}

	var limit [2][xqtypes.PieceTypeLength]int
	for _, p := range xqtypes.InitialLayout {
		limit[p.Piece.Side][p.Piece.Type]++
	}
	for side := range limit {
		for pt := range limit[side] {
			if b.pieceCounts[side][pt] > limit[side][pt] {
				return nil, fmt.Errorf("board: fen %q has more pieces of one kind than a side starts with", fen)
			}
		}
	}

	return b, nil
}

func pieceFromLetter(ch rune) (xqtypes.Piece, error) {
	side := xqtypes.Red
	letter := ch
	if ch >= 'a' && ch <= 'z' {
		side = xqtypes.Black
		letter = ch - 32
	}
	var pt xqtypes.PieceType
	switch letter {
	case 'K':
		pt = xqtypes.King
	case 'A':
		pt = xqtypes.Advisor
	case 'E':
		pt = xqtypes.Elephant
	case 'R':
		pt = xqtypes.Rook
	case 'H':
		pt = xqtypes.Horse
	case 'C':
		pt = xqtypes.Cannon
	case 'P':
		pt = xqtypes.Pawn
	default:
		return xqtypes.PieceNone, fmt.Errorf("unknown piece letter %q", ch)
	}
	return xqtypes.Piece{Type: pt, Side: side}, nil
}

// StringFen renders the board back into NewBoardFromFen's notation.
func (b *Board) StringFen() string {
	var sb strings.Builder
	for row := 0; row < xqtypes.NumRows; row++ {
		empty := 0
		for col := 0; col < xqtypes.NumCols; col++ {
			p := b.grid[row][col]
			if p.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < xqtypes.NumRows-1 {
			sb.WriteByte('/')
		}
	}
	if b.nextPlayer == xqtypes.Red {
		sb.WriteString(" r")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}
