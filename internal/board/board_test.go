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
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestNewBoardStartPosition(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, xqtypes.Red, b.NextPlayer())
	assert.Equal(t, xqtypes.NewSquare(9, 4), b.KingSquare(xqtypes.Red))
	assert.Equal(t, xqtypes.NewSquare(0, 4), b.KingSquare(xqtypes.Black))
	assert.Equal(t, 5, b.PieceCount(xqtypes.Red, xqtypes.Pawn))
	assert.Equal(t, 2, b.PieceCount(xqtypes.Black, xqtypes.Cannon))
	assert.Equal(t, StartFen, b.StringFen())
}

func TestFenRoundTrip(t *testing.T) {
	b, err := NewBoardFromFen(StartFen)
	require.NoError(t, err)
	assert.Equal(t, StartFen, b.StringFen())
	assert.Equal(t, NewBoard().ZobristKey(), b.ZobristKey())
}

func TestFenRejectsMalformedInput(t *testing.T) {
	_, err := NewBoardFromFen("9/9/9/9/9/9/9/9/9 r")
	assert.Error(t, err)

	_, err = NewBoardFromFen(StartFen[:len(StartFen)-2] + " x")
	assert.Error(t, err)
}

func TestDoMoveUndoMoveRoundTrip(t *testing.T) {
	b := NewBoard()
	before := b.ZobristKey()

	m := xqtypes.NewMove(xqtypes.NewSquare(6, 4), xqtypes.NewSquare(5, 4))
	b.DoMove(m)
	assert.Equal(t, xqtypes.Black, b.NextPlayer())
	assert.NotEqual(t, before, b.ZobristKey())

	b.UndoMove()
	assert.Equal(t, xqtypes.Red, b.NextPlayer())
	assert.Equal(t, before, b.ZobristKey())
	assert.Equal(t, xqtypes.Piece{Type: xqtypes.Pawn, Side: xqtypes.Red}, b.Get(xqtypes.NewSquare(6, 4)))
	assert.True(t, b.Get(xqtypes.NewSquare(5, 4)).IsNone())
}

func TestDoMoveCapture(t *testing.T) {
	b, err := NewBoardFromFen("4k4/9/9/9/9/9/9/9/9/4RK3 r")
	require.NoError(t, err)

	m := xqtypes.NewMove(xqtypes.NewSquare(9, 4), xqtypes.NewSquare(0, 4))
	captured := b.Get(m.To())
	assert.False(t, captured.IsNone())

	b.DoMove(m)
	assert.Equal(t, 0, b.PieceCount(xqtypes.Black, xqtypes.King))
	b.UndoMove()
	assert.Equal(t, 1, b.PieceCount(xqtypes.Black, xqtypes.King))
}

func TestDoNullMoveUndoNullMove(t *testing.T) {
	b := NewBoard()
	before := b.ZobristKey()
	b.DoNullMove()
	assert.Equal(t, xqtypes.Black, b.NextPlayer())
	assert.NotEqual(t, before, b.ZobristKey())
	b.UndoNullMove()
	assert.Equal(t, xqtypes.Red, b.NextPlayer())
	assert.Equal(t, before, b.ZobristKey())
}

func TestCheckRepetitions(t *testing.T) {
	b := NewBoard()
	horseBack := xqtypes.NewMove(xqtypes.NewSquare(9, 1), xqtypes.NewSquare(7, 2))
	horseForth := xqtypes.NewMove(xqtypes.NewSquare(7, 2), xqtypes.NewSquare(9, 1))
	blackHorseOut := xqtypes.NewMove(xqtypes.NewSquare(0, 1), xqtypes.NewSquare(2, 2))
	blackHorseBack := xqtypes.NewMove(xqtypes.NewSquare(2, 2), xqtypes.NewSquare(0, 1))

	assert.False(t, b.CheckRepetitions(2))
	for i := 0; i < 2; i++ {
		b.DoMove(horseBack)
		b.DoMove(blackHorseOut)
		b.DoMove(horseForth)
		b.DoMove(blackHorseBack)
	}
	assert.True(t, b.CheckRepetitions(2))
}

func TestCachedCheckTriState(t *testing.T) {
	b := NewBoard()
	known, _ := b.CachedCheck()
	assert.False(t, known)

	b.SetCachedCheck(true)
	known, inCheck := b.CachedCheck()
	assert.True(t, known)
	assert.True(t, inCheck)

	b.DoMove(xqtypes.NewMove(xqtypes.NewSquare(6, 4), xqtypes.NewSquare(5, 4)))
	known, _ = b.CachedCheck()
	assert.False(t, known, "DoMove must invalidate the cached check flag")
}

func TestMaterialAndGamePhaseTrackIncrementally(t *testing.T) {
	b := NewBoard()
	redMaterial := b.Material(xqtypes.Red)
	phase := b.GamePhase()

	m := xqtypes.NewMove(xqtypes.NewSquare(7, 1), xqtypes.NewSquare(0, 1))
	b.DoMove(m)
	assert.Greater(t, b.Material(xqtypes.Black), 0)
	assert.NotEqual(t, phase, b.GamePhase())

	b.UndoMove()
	assert.Equal(t, redMaterial, b.Material(xqtypes.Red))
	assert.Equal(t, phase, b.GamePhase())
}
