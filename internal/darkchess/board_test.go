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

package darkchess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

func newTestBoard(seed int64) *Board {
	return NewBoard(rand.New(rand.NewSource(seed)))
}

func TestNewBoardDealsFullInventoryFaceDown(t *testing.T) {
	b := newTestBoard(1)
	assert.Equal(t, xqtypes.Red, b.SideToMove())
	assert.Equal(t, 16, b.PieceCount(xqtypes.Red))
	assert.Equal(t, 16, b.PieceCount(xqtypes.Black))
	assert.Equal(t, NumSquares, b.TotalHidden())

	for sq := Square(0); sq < NumSquares; sq++ {
		p, revealed := b.Get(sq)
		assert.False(t, revealed)
		assert.False(t, p.IsNone())
	}
	assert.Equal(t, 1, b.HiddenCount(xqtypes.Red, xqtypes.King))
	assert.Equal(t, 5, b.HiddenCount(xqtypes.Red, xqtypes.Pawn))
}

func TestFlipRevealsAndUpdatesHiddenCount(t *testing.T) {
	b := newTestBoard(2)
	p, _ := b.Get(0)

	b.DoAction(Action{Kind: ActionFlip, From: 0, To: 0})
	got, revealed := b.Get(0)
	assert.True(t, revealed)
	assert.Equal(t, p, got)
	assert.Equal(t, NumSquares-1, b.TotalHidden())
	assert.Equal(t, xqtypes.Black, b.SideToMove())

	b.UndoAction()
	_, revealed = b.Get(0)
	assert.False(t, revealed)
	assert.Equal(t, NumSquares, b.TotalHidden())
	assert.Equal(t, xqtypes.Red, b.SideToMove())
}

// buildBoard places an explicit, fully revealed layout for deterministic
// rule tests, bypassing the random deal.
func buildBoard(pieces map[Square]Piece, side xqtypes.Color) *Board {
	b := newEmptyBoard(side)
	for sq, p := range pieces {
		b.grid[sq] = cell{piece: p, revealed: true}
		b.pieceCount[p.Side]++
	}
	return b
}

func TestRankCaptureRuleWithPawnKingException(t *testing.T) {
	rookSq, pawnSq, kingSq := NewSquare(0, 0), NewSquare(0, 1), NewSquare(1, 0)
	b := buildBoard(map[Square]Piece{
		rookSq: {Kind: xqtypes.Rook, Side: xqtypes.Red},
		pawnSq: {Kind: xqtypes.Pawn, Side: xqtypes.Black},
		kingSq: {Kind: xqtypes.King, Side: xqtypes.Black},
	}, xqtypes.Red)

	assert.True(t, canCapture(Piece{Kind: xqtypes.Rook, Side: xqtypes.Red}, Piece{Kind: xqtypes.Pawn, Side: xqtypes.Black}))
	assert.False(t, canCapture(Piece{Kind: xqtypes.Pawn, Side: xqtypes.Black}, Piece{Kind: xqtypes.Rook, Side: xqtypes.Red}))
	assert.True(t, canCapture(Piece{Kind: xqtypes.Pawn, Side: xqtypes.Black}, Piece{Kind: xqtypes.King, Side: xqtypes.Red}))
	assert.False(t, canCapture(Piece{Kind: xqtypes.King, Side: xqtypes.Red}, Piece{Kind: xqtypes.Pawn, Side: xqtypes.Black}))

	actions := LegalActions(b, xqtypes.Red)
	found := false
	for _, a := range actions {
		if a.Kind == ActionCapture && a.From == rookSq && a.To == pawnSq {
			found = true
		}
	}
	assert.True(t, found, "rook must be able to capture the weaker pawn")
}

func TestCannonJumpsExactlyOneScreenAtAnyDistance(t *testing.T) {
	cannonSq := NewSquare(0, 0)
	screenSq := NewSquare(0, 2)
	targetSq := NewSquare(0, 5)
	b := buildBoard(map[Square]Piece{
		cannonSq: {Kind: xqtypes.Cannon, Side: xqtypes.Red},
		screenSq: {Kind: xqtypes.King, Side: xqtypes.Red},
		targetSq: {Kind: xqtypes.King, Side: xqtypes.Black},
	}, xqtypes.Red)

	actions := LegalActions(b, xqtypes.Red)
	found := false
	for _, a := range actions {
		if a.Kind == ActionCapture && a.From == cannonSq && a.To == targetSq {
			found = true
		}
	}
	assert.True(t, found, "cannon must capture beyond its single screen regardless of rank")
}

func TestCannonCannotCaptureWithoutAScreen(t *testing.T) {
	cannonSq := NewSquare(0, 0)
	targetSq := NewSquare(0, 5)
	b := buildBoard(map[Square]Piece{
		cannonSq: {Kind: xqtypes.Cannon, Side: xqtypes.Red},
		targetSq: {Kind: xqtypes.King, Side: xqtypes.Black},
	}, xqtypes.Red)

	for _, a := range LegalActions(b, xqtypes.Red) {
		assert.False(t, a.Kind == ActionCapture && a.To == targetSq)
	}
}

func TestDoActionCaptureAndUndoRestoresHiddenTarget(t *testing.T) {
	attackerSq, targetSq := NewSquare(0, 0), NewSquare(0, 1)
	b := newEmptyBoard(xqtypes.Red)
	b.grid[attackerSq] = cell{piece: Piece{Kind: xqtypes.Rook, Side: xqtypes.Red}, revealed: true}
	b.grid[targetSq] = cell{piece: Piece{Kind: xqtypes.Pawn, Side: xqtypes.Black}, revealed: false}
	b.hiddenCount[xqtypes.Black][xqtypes.Pawn] = 1
	b.totalHidden = 1
	b.pieceCount[xqtypes.Red] = 1
	b.pieceCount[xqtypes.Black] = 1

	b.DoAction(Action{Kind: ActionCapture, From: attackerSq, To: targetSq})
	assert.Equal(t, 0, b.PieceCount(xqtypes.Black))
	assert.Equal(t, 0, b.TotalHidden())

	b.UndoAction()
	assert.Equal(t, 1, b.PieceCount(xqtypes.Black))
	assert.Equal(t, 1, b.TotalHidden())
	got, revealed := b.Get(targetSq)
	require.False(t, revealed)
	assert.Equal(t, xqtypes.Pawn, got.Kind)
}

func TestGameStatusWinLossAndDraw(t *testing.T) {
	b := buildBoard(map[Square]Piece{
		NewSquare(0, 0): {Kind: xqtypes.King, Side: xqtypes.Red},
	}, xqtypes.Red)
	b.pieceCount[xqtypes.Black] = 0
	assert.Equal(t, Win, b.GameStatus())

	b2 := buildBoard(map[Square]Piece{
		NewSquare(0, 0): {Kind: xqtypes.King, Side: xqtypes.Black},
	}, xqtypes.Red)
	b2.pieceCount[xqtypes.Black] = 1
	assert.Equal(t, Loss, b2.GameStatus())

	b3 := buildBoard(map[Square]Piece{
		NewSquare(0, 0): {Kind: xqtypes.King, Side: xqtypes.Red},
		NewSquare(3, 7): {Kind: xqtypes.King, Side: xqtypes.Black},
	}, xqtypes.Red)
	b3.actionsSinceCapture = DrawActionLimit
	assert.Equal(t, Draw, b3.GameStatus())
}
