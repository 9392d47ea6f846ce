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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareRowColRoundTrip(t *testing.T) {
	tests := []struct {
		row, col int
	}{
		{0, 0}, {9, 8}, {4, 3}, {5, 5},
	}
	for _, tc := range tests {
		sq := NewSquare(tc.row, tc.col)
		assert.Equal(t, tc.row, sq.Row())
		assert.Equal(t, tc.col, sq.Col())
	}
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, NewSquare(0, 0).IsValid())
	assert.True(t, NewSquare(9, 8).IsValid())
	assert.False(t, SquareNone.IsValid())
	assert.False(t, Square(NumSquares).IsValid())
}

func TestOnBoard(t *testing.T) {
	assert.True(t, OnBoard(0, 0))
	assert.True(t, OnBoard(9, 8))
	assert.False(t, OnBoard(-1, 0))
	assert.False(t, OnBoard(10, 0))
	assert.False(t, OnBoard(0, 9))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "(4,3)", NewSquare(4, 3).String())
	assert.Equal(t, "(-,-)", SquareNone.String())
}

func TestManhattanDistance(t *testing.T) {
	assert.Equal(t, 0, ManhattanDistance(NewSquare(4, 4), NewSquare(4, 4)))
	assert.Equal(t, 5, ManhattanDistance(NewSquare(0, 0), NewSquare(2, 3)))
}

func TestInPalaceConfinesEachSideToItsOwnCorner(t *testing.T) {
	assert.True(t, InPalace(Red, 9, 4))
	assert.True(t, InPalace(Red, 7, 3))
	assert.False(t, InPalace(Red, 6, 4), "above the palace")
	assert.False(t, InPalace(Red, 9, 2), "left of the palace columns")

	assert.True(t, InPalace(Black, 0, 4))
	assert.False(t, InPalace(Black, 3, 4), "below black's palace")
}

func TestHasCrossedRiver(t *testing.T) {
	assert.False(t, HasCrossedRiver(Red, 5))
	assert.True(t, HasCrossedRiver(Red, 4))
	assert.False(t, HasCrossedRiver(Black, 4))
	assert.True(t, HasCrossedRiver(Black, 5))
}

func TestColorFlip(t *testing.T) {
	assert.Equal(t, Black, Red.Flip())
	assert.Equal(t, Red, Black.Flip())
}

func TestColorDirection(t *testing.T) {
	assert.Equal(t, -1, Red.Direction())
	assert.Equal(t, 1, Black.Direction())
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "Red", Red.String())
	assert.Equal(t, "Black", Black.String())
	assert.Equal(t, "None", ColorNone.String())
}

func TestPieceTypeString(t *testing.T) {
	assert.Equal(t, "K", King.String())
	assert.Equal(t, "P", Pawn.String())
	assert.Equal(t, ".", PieceTypeNone.String())
}

func TestPieceIsNone(t *testing.T) {
	assert.True(t, PieceNone.IsNone())
	assert.False(t, Piece{Type: King, Side: Red}.IsNone())
}

func TestPieceZeroValueIsNotPieceNone(t *testing.T) {
	// Piece{}'s zero value is {King, Red}, not PieceNone - board
	// constructors must explicitly fill empty squares rather than rely
	// on a bare struct literal.
	var zero Piece
	assert.False(t, zero.IsNone())
	assert.Equal(t, King, zero.Type)
	assert.Equal(t, Red, zero.Side)
}

func TestPieceStringIsLowercaseForBlack(t *testing.T) {
	assert.Equal(t, "R", Piece{Type: Rook, Side: Red}.String())
	assert.Equal(t, "r", Piece{Type: Rook, Side: Black}.String())
	assert.Equal(t, ".", PieceNone.String())
}

func TestMoveFromToRoundTrip(t *testing.T) {
	from := NewSquare(9, 4)
	to := NewSquare(8, 4)
	m := NewMove(from, to)
	assert.Equal(t, from, m.From())
	assert.Equal(t, to, m.To())
	assert.Equal(t, int16(0), m.Value())
}

func TestMoveValueDoesNotDisturbFromTo(t *testing.T) {
	from := NewSquare(2, 2)
	to := NewSquare(3, 2)
	m := NewMoveValue(from, to, -500)
	assert.Equal(t, from, m.From())
	assert.Equal(t, to, m.To())
	assert.Equal(t, int16(-500), m.Value())
}

func TestMoveOfStripsValue(t *testing.T) {
	from := NewSquare(0, 0)
	to := NewSquare(1, 0)
	m := NewMoveValue(from, to, 1234)
	assert.Equal(t, NewMove(from, to), m.MoveOf())
}

func TestMoveWithValueReplacesOnlyTheValue(t *testing.T) {
	m := NewMoveValue(NewSquare(0, 0), NewSquare(1, 0), 10)
	m2 := m.WithValue(99)
	assert.Equal(t, m.From(), m2.From())
	assert.Equal(t, m.To(), m2.To())
	assert.Equal(t, int16(99), m2.Value())
}

func TestMoveIsValid(t *testing.T) {
	assert.True(t, NewMove(NewSquare(0, 0), NewSquare(1, 0)).IsValid())
	assert.False(t, MoveNone.IsValid())
	assert.False(t, NewMove(NewSquare(0, 0), NewSquare(0, 0)).IsValid(), "from == to is never a real move")
}

func TestMoveString(t *testing.T) {
	m := NewMove(NewSquare(9, 4), NewSquare(8, 4))
	assert.Equal(t, "(9,4)-(8,4)", m.String())
	assert.Equal(t, "none", MoveNone.String())
}
