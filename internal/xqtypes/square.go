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

// Package xqtypes contains the small, closed enumerations and geometry
// constants shared by every other package of the engine: squares,
// colors, piece kinds, pieces and moves. It has no dependency on the
// board or search packages so it can be imported everywhere.
package xqtypes

import "fmt"

// Board geometry. Xiangqi is played on a 10x9 grid of intersections
// (not cells): 10 rows (ranks) and 9 columns (files).
const (
	NumRows = 10
	NumCols = 9
	NumSquares = NumRows * NumCols
)

// Square is a row/column pair packed into a single small integer,
// row-major: Square(r,c) = r*NumCols + c. Values outside [0, NumSquares)
// are not on the board.
type Square int8

// SquareNone marks the absence of a square, e.g. a missing king cache.
const SquareNone Square = -1

// NewSquare builds a Square from a row/column pair.
func NewSquare(row, col int) Square {
	return Square(row*NumCols + col)
}

// Row returns the 0-based row (0 = Black's back rank, 9 = Red's back rank).
func (s Square) Row() int {
	return int(s) / NumCols
}

// Col returns the 0-based column.
func (s Square) Col() int {
	return int(s) % NumCols
}

// IsValid reports whether the square lies on the 10x9 board.
func (s Square) IsValid() bool {
	return s >= 0 && int(s) < NumSquares
}

// OnBoard reports whether the given row/col pair lies on the 10x9 board.
func OnBoard(row, col int) bool {
	return row >= 0 && row < NumRows && col >= 0 && col < NumCols
}

// String renders the square as "(row,col)" for logs and test failures.
func (s Square) String() string {
	if !s.IsValid() {
		return "(-,-)"
	}
	return fmt.Sprintf("(%d,%d)", s.Row(), s.Col())
}

// ManhattanDistance returns |dr| + |dc| between two squares.
func ManhattanDistance(a, b Square) int {
	dr := a.Row() - b.Row()
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col() - b.Col()
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Palace rows/cols, per side. Red occupies the bottom of the board
// (higher row numbers), Black the top.
const (
	PalaceColMin = 3
	PalaceColMax = 5

	RedPalaceRowMin   = 7
	RedPalaceRowMax   = 9
	BlackPalaceRowMin = 0
	BlackPalaceRowMax = 2
)

// InPalace reports whether (row,col) lies in the given side's palace.
func InPalace(side Color, row, col int) bool {
	if col < PalaceColMin || col > PalaceColMax {
		return false
	}
	if side == Red {
		return row >= RedPalaceRowMin && row <= RedPalaceRowMax
	}
	return row >= BlackPalaceRowMin && row <= BlackPalaceRowMax
}

// River: the dividing line at the row/col midpoint. A side's pieces
// start on "their" half; crossing flips pawn behavior and bars elephants.
const RiverRedMax = 4   // red has crossed the river when row <= RiverRedMax
const RiverBlackMin = 5 // black has crossed the river when row >= RiverBlackMin

// HasCrossedRiver reports whether a pawn of the given side standing at
// row has crossed the river.
func HasCrossedRiver(side Color, row int) bool {
	if side == Red {
		return row <= RiverRedMax
	}
	return row >= RiverBlackMin
}
