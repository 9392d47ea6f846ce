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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

func TestUpdateAccumulatesDepthSquaredBonus(t *testing.T) {
	h := NewHistory()
	m := xqtypes.NewMove(xqtypes.NewSquare(9, 1), xqtypes.NewSquare(7, 2))

	h.Update(xqtypes.Red, m, 3)
	assert.Equal(t, uint32(9), h.Value(xqtypes.Red, m))

	h.Update(xqtypes.Red, m, 4)
	assert.Equal(t, uint32(9+16), h.Value(xqtypes.Red, m))
}

func TestUpdateSaturatesAtMaxSaturation(t *testing.T) {
	h := NewHistory()
	m := xqtypes.NewMove(xqtypes.NewSquare(0, 0), xqtypes.NewSquare(1, 0))

	for i := 0; i < 50; i++ {
		h.Update(xqtypes.Black, m, 100)
	}
	assert.Equal(t, uint32(maxSaturation), h.Value(xqtypes.Black, m))
}

func TestHistoryIsKeyedBySideIndependently(t *testing.T) {
	h := NewHistory()
	m := xqtypes.NewMove(xqtypes.NewSquare(2, 2), xqtypes.NewSquare(3, 2))

	h.Update(xqtypes.Red, m, 2)
	assert.Equal(t, uint32(4), h.Value(xqtypes.Red, m))
	assert.Zero(t, h.Value(xqtypes.Black, m))
}

func TestStoreKillerKeepsTwoMostRecentDistinctMoves(t *testing.T) {
	h := NewHistory()
	m1 := xqtypes.NewMove(xqtypes.NewSquare(0, 0), xqtypes.NewSquare(0, 1))
	m2 := xqtypes.NewMove(xqtypes.NewSquare(1, 0), xqtypes.NewSquare(1, 1))
	m3 := xqtypes.NewMove(xqtypes.NewSquare(2, 0), xqtypes.NewSquare(2, 1))

	h.StoreKiller(5, m1)
	k1, k2 := h.KillersAt(5)
	assert.Equal(t, m1, k1)
	assert.Equal(t, xqtypes.MoveNone, k2)

	h.StoreKiller(5, m2)
	k1, k2 = h.KillersAt(5)
	assert.Equal(t, m2, k1)
	assert.Equal(t, m1, k2)

	h.StoreKiller(5, m3)
	k1, k2 = h.KillersAt(5)
	assert.Equal(t, m3, k1)
	assert.Equal(t, m2, k2)
}

func TestStoreKillerIgnoresARepeatOfTheNewestKiller(t *testing.T) {
	h := NewHistory()
	m1 := xqtypes.NewMove(xqtypes.NewSquare(0, 0), xqtypes.NewSquare(0, 1))
	m2 := xqtypes.NewMove(xqtypes.NewSquare(1, 0), xqtypes.NewSquare(1, 1))

	h.StoreKiller(3, m1)
	h.StoreKiller(3, m2)
	h.StoreKiller(3, m2)

	k1, k2 := h.KillersAt(3)
	assert.Equal(t, m2, k1)
	assert.Equal(t, m1, k2)
}

func TestKillersAtOutOfRangePlyReturnsNone(t *testing.T) {
	h := NewHistory()
	k1, k2 := h.KillersAt(-1)
	assert.Equal(t, xqtypes.MoveNone, k1)
	assert.Equal(t, xqtypes.MoveNone, k2)

	k1, k2 = h.KillersAt(maxPly)
	assert.Equal(t, xqtypes.MoveNone, k1)
	assert.Equal(t, xqtypes.MoveNone, k2)
}

func TestStoreKillerOutOfRangePlyIsANoOp(t *testing.T) {
	h := NewHistory()
	m := xqtypes.NewMove(xqtypes.NewSquare(0, 0), xqtypes.NewSquare(0, 1))
	h.StoreKiller(maxPly, m)
	h.StoreKiller(-1, m)
}

func TestClearResetsCountersAndKillers(t *testing.T) {
	h := NewHistory()
	m := xqtypes.NewMove(xqtypes.NewSquare(0, 0), xqtypes.NewSquare(0, 1))
	h.Update(xqtypes.Red, m, 4)
	h.StoreKiller(0, m)

	h.Clear()

	assert.Zero(t, h.Value(xqtypes.Red, m))
	k1, k2 := h.KillersAt(0)
	assert.Equal(t, xqtypes.MoveNone, k1)
	assert.Equal(t, xqtypes.MoveNone, k2)
}
