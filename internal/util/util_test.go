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

package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 0, Abs(0))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, -5, Min(-5, -3))
	assert.Equal(t, -3, Max(-5, -3))
	assert.Equal(t, 3, Min(3, 3))
}

func TestNpsComputesNodesPerSecond(t *testing.T) {
	// duration.Nanoseconds() is bumped by one to tolerate a zero duration,
	// so the result lands just under the exact rate rather than on it.
	assert.Equal(t, uint64(999), Nps(1000, time.Second))
	assert.Equal(t, uint64(1999), Nps(1000, 500*time.Millisecond))
}

func TestNpsToleratesZeroDuration(t *testing.T) {
	assert.NotPanics(t, func() {
		Nps(100, 0)
	})
}

func TestMemStatReportsAllocationFields(t *testing.T) {
	s := MemStat()
	assert.True(t, strings.Contains(s, "Alloc"))
	assert.True(t, strings.Contains(s, "NumGC"))
}

func TestGcWithStatsReportsBeforeAndAfter(t *testing.T) {
	s := GcWithStats()
	assert.True(t, strings.Contains(s, "GC took"))
}

var benchResult int

func BenchmarkMax(b *testing.B) {
	r := 0
	for i := 0; i < b.N; i++ {
		r = Max(i, i+2)
	}
	benchResult = r
}

func BenchmarkMin(b *testing.B) {
	r := 0
	for i := 0; i < b.N; i++ {
		r = Min(i, i+2)
	}
	benchResult = r
}
