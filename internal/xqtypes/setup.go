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

// InitialPlacement is one entry of the standard Xiangqi starting
// layout: a piece and the square it starts on. Row 0 is Black's back
// rank, row 9 is Red's.
type InitialPlacement struct {
	Square Square
	Piece  Piece
}

// InitialLayout is the standard Xiangqi starting position.
var InitialLayout = buildInitialLayout()

func buildInitialLayout() []InitialPlacement {
	var layout []InitialPlacement
	add := func(row, col int, pt PieceType, side Color) {
		layout = append(layout, InitialPlacement{Square: NewSquare(row, col), Piece: Piece{Type: pt, Side: side}})
	}

	backRank := []PieceType{Rook, Horse, Elephant, Advisor, King, Advisor, Elephant, Horse, Rook}
	for col, pt := range backRank {
		add(0, col, pt, Black)
		add(9, col, pt, Red)
	}

	add(2, 1, Cannon, Black)
	add(2, 7, Cannon, Black)
	add(7, 1, Cannon, Red)
	add(7, 7, Cannon, Red)

	for _, col := range []int{0, 2, 4, 6, 8} {
		add(3, col, Pawn, Black)
		add(6, col, Pawn, Red)
	}

	return layout
}
