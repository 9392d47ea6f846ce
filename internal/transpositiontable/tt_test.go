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

package transpositiontable

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/xiangqi/internal/xqtypes"
	"github.com/frankkopp/xiangqi/internal/zobrist"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestPutAndProbe(t *testing.T) {
	tt := NewTable(10)
	key := zobrist.Key(12345)
	m := xqtypes.NewMove(xqtypes.NewSquare(9, 4), xqtypes.NewSquare(8, 4))

	assert.Nil(t, tt.Probe(key))

	tt.Put(key, m, 5, 123, Exact, 100, 0)
	e := tt.Probe(key)
	assert.NotNil(t, e)
	assert.Equal(t, m.MoveOf(), e.Move())
	assert.EqualValues(t, 123, e.Value())
	assert.Equal(t, Exact, e.ValueType())
	assert.EqualValues(t, 5, e.Depth())
}

func TestCollisionReplacesOnHigherDepth(t *testing.T) {
	tt := NewTable(1) // 2 slots, forces a collision
	m := xqtypes.NewMove(xqtypes.NewSquare(9, 4), xqtypes.NewSquare(8, 4))

	tt.Put(zobrist.Key(4), m, 3, 10, Exact, 10, 0)
	tt.Put(zobrist.Key(2), m, 8, 20, Exact, 20, 0) // same slot (mask=1), higher depth
	e := tt.Probe(zobrist.Key(2))
	assert.NotNil(t, e)
	assert.EqualValues(t, 20, e.Value())
}

func TestValueToFromTTRoundTrip(t *testing.T) {
	mate := int16(MateValue - 3)
	stored := ValueToTT(mate, 2)
	assert.NotEqual(t, mate, stored)
	back := ValueFromTT(stored, 2)
	assert.Equal(t, mate, back)
}

func TestNonMateValueUnaffected(t *testing.T) {
	v := int16(250)
	assert.Equal(t, v, ValueToTT(v, 7))
	assert.Equal(t, v, ValueFromTT(v, 7))
}

func TestClear(t *testing.T) {
	tt := NewTable(8)
	tt.Put(zobrist.Key(1), xqtypes.MoveNone, 1, 1, Exact, 1, 0)
	assert.Equal(t, uint64(1), tt.Len())
	tt.Clear()
	assert.Equal(t, uint64(0), tt.Len())
	assert.Nil(t, tt.Probe(zobrist.Key(1)))
}
