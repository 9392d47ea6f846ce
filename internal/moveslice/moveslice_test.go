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

package moveslice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

var (
	r9h8 = xqtypes.NewMoveValue(xqtypes.NewSquare(9, 1), xqtypes.NewSquare(7, 2), 111)
	r0h1 = xqtypes.NewMoveValue(xqtypes.NewSquare(0, 1), xqtypes.NewSquare(2, 2), 222)
	c7c4 = xqtypes.NewMoveValue(xqtypes.NewSquare(7, 1), xqtypes.NewSquare(7, 4), 333)
	p6p5 = xqtypes.NewMoveValue(xqtypes.NewSquare(6, 0), xqtypes.NewSquare(5, 0), 444)
	k9k8 = xqtypes.NewMoveValue(xqtypes.NewSquare(9, 4), xqtypes.NewSquare(8, 4), 555)
)

func fill(ms *MoveSlice) {
	ms.PushBack(r9h8)
	ms.PushBack(r0h1)
	ms.PushBack(c7c4)
	ms.PushBack(p6p5)
	ms.PushBack(k9k8)
}

func TestNewMoveSliceStartsEmptyWithRequestedCapacity(t *testing.T) {
	ms := NewMoveSlice(64)
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 64, cap(*ms))
}

func TestPushBackGrowsPastInitialCapacity(t *testing.T) {
	ms := NewMoveSlice(4)
	for i := 0; i < 1000; i++ {
		ms.PushBack(r9h8)
	}
	assert.Equal(t, 1000, ms.Len())
}

func TestAtAndSet(t *testing.T) {
	ms := NewMoveSlice(8)
	fill(ms)
	assert.Equal(t, 5, ms.Len())
	assert.Equal(t, r9h8, ms.At(0))
	assert.Equal(t, k9k8, ms.At(4))

	ms.Set(0, k9k8)
	assert.Equal(t, k9k8, ms.At(0))
}

func TestClearRetainsBackingArray(t *testing.T) {
	ms := NewMoveSlice(8)
	fill(ms)
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 8, cap(*ms))
}

func TestString(t *testing.T) {
	ms := NewMoveSlice(8)
	fill(ms)
	s := ms.String()
	assert.Contains(t, s, "[5]")
	assert.Contains(t, s, r9h8.String())
	assert.Contains(t, s, k9k8.String())
}

func TestSortOrdersHighestValueFirst(t *testing.T) {
	ms := NewMoveSlice(8)
	fill(ms)
	ms.Sort()
	for i := 1; i < ms.Len(); i++ {
		assert.GreaterOrEqual(t, ms.At(i-1).Value(), ms.At(i).Value())
	}
	assert.Equal(t, k9k8, ms.At(0))
}

func TestSortOfRandomMovesIsStableOrdered(t *testing.T) {
	ms := NewMoveSlice(1000)
	for i := 0; i < 1000; i++ {
		ms.PushBack(xqtypes.Move(rand.Int31()))
	}
	ms.Sort()
	for i := 1; i < ms.Len(); i++ {
		assert.GreaterOrEqual(t, ms.At(i-1).Value(), ms.At(i).Value())
	}
}

func TestFilterCopyLeavesSourceUntouched(t *testing.T) {
	ms := NewMoveSlice(8)
	fill(ms)

	dest := NewMoveSlice(cap(*ms))
	ms.FilterCopy(dest, func(i int) bool {
		return ms.At(i) != c7c4
	})

	assert.Equal(t, 5, ms.Len(), "source slice is unmodified")
	assert.Equal(t, 4, dest.Len())
	dest.ForEach(func(i int) {
		assert.NotEqual(t, c7c4, dest.At(i))
	})
}

func TestForEachVisitsEveryIndexInOrder(t *testing.T) {
	ms := NewMoveSlice(8)
	fill(ms)

	var visited []int
	ms.ForEach(func(i int) {
		visited = append(visited, i)
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, visited)
}
