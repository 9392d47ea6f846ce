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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/xiangqi/internal/board"
	"github.com/frankkopp/xiangqi/internal/config"
	"github.com/frankkopp/xiangqi/internal/movegen"
	"github.com/frankkopp/xiangqi/internal/moveslice"
	"github.com/frankkopp/xiangqi/internal/transpositiontable"
	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

func Test_savePV(t *testing.T) {
	src := moveslice.NewMoveSlice(10)
	dest := moveslice.NewMoveSlice(10)

	src.PushBack(xqtypes.Move(1234))
	src.PushBack(xqtypes.Move(2345))

	savePV(xqtypes.Move(9999), src, dest)

	assert.EqualValues(t, 3, dest.Len())
	assert.EqualValues(t, 9999, dest.At(0))
	assert.EqualValues(t, 2345, dest.At(2))
}

func TestRootSearchFindsMateInOne(t *testing.T) {
	b, err := board.NewBoardFromFen("4k4/3R5/9/9/9/9/9/9/3K5/8R r")
	require.NoError(t, err)

	s := newTestSearch()
	s.rootMoves = s.mg[0].GenerateLegalMoves(b, movegen.GenAll)

	value := s.rootSearch(b, 3, ValueMin, ValueMax)
	assert.GreaterOrEqual(t, value, ValueCheckMateThreshold)

	s.rootMoves.Sort()
	assert.Equal(t, xqtypes.NewMove(xqtypes.NewSquare(9, 8), xqtypes.NewSquare(0, 8)), s.rootMoves.At(0).MoveOf())
}

func TestSearchReturnsLossValueOnCheckmate(t *testing.T) {
	b, err := board.NewBoardFromFen("4k3R/9/9/9/9/9/9/3K5/9/4R4 b")
	require.NoError(t, err)

	s := newTestSearch()
	value := s.search(b, 2, 1, ValueMin, ValueMax, true, true)
	assert.Equal(t, -ValueCheckMate+1, value)
	assert.EqualValues(t, 1, s.statistics.Checkmates)
}

func TestQsearchStandPatAboveBeta(t *testing.T) {
	b := board.NewBoard()
	s := newTestSearch()
	value := s.qsearch(b, s.qDepth, 0, ValueMin, ValueMin+1)
	assert.GreaterOrEqual(t, value, ValueMin+1)
}

func TestQsearchDisabledReturnsStaticEval(t *testing.T) {
	config.Settings.Search.UseQuiescence = false
	defer func() { config.Settings.Search.UseQuiescence = true }()

	b := board.NewBoard()
	s := newTestSearch()
	value := s.qsearch(b, s.qDepth, 0, ValueMin, ValueMax)
	assert.Equal(t, s.evaluate(b, 0), value)
}

func TestStoreTTClassifiesBounds(t *testing.T) {
	s := newTestSearch()
	b := board.NewBoard()
	m := xqtypes.NewMove(xqtypes.NewSquare(6, 4), xqtypes.NewSquare(5, 4))

	s.storeTT(b, 4, 0, m, Value(10), Value(50), Value(100))
	e := s.tt.Probe(b.ZobristKey())
	require.NotNil(t, e)
	assert.Equal(t, transpositiontable.Upper, e.ValueType())

	s.storeTT(b, 4, 0, m, Value(150), Value(50), Value(100))
	e = s.tt.Probe(b.ZobristKey())
	require.NotNil(t, e)
	assert.Equal(t, transpositiontable.Lower, e.ValueType())

	s.storeTT(b, 4, 0, m, Value(75), Value(50), Value(100))
	e = s.tt.Probe(b.ZobristKey())
	require.NotNil(t, e)
	assert.Equal(t, transpositiontable.Exact, e.ValueType())
}
