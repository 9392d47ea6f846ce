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

import "math"

// Value is a search score in the same centipawn-like style as
// internal/search.Value, but in its own small space: Banqi has no
// mate score since winning is "opponent owns no pieces", a normal
// terminal the search already prices via ValueWin/ValueLoss.
type Value int

const (
	ValueNA   Value = math.MinInt32
	ValueDraw Value = 0
	ValueMin  Value = -2000
	ValueMax  Value = 2000

	// ValueWin/ValueLoss bound the space strictly beyond any reachable
	// material+positional score, adjusted by ply so a quicker win (or
	// a slower loss) is always preferred among otherwise-equal lines.
	ValueWin  Value = 1000
	ValueLoss Value = -1000
)

// IsValid reports whether v is a real score rather than the
// stop-the-search sentinel ValueNA.
func (v Value) IsValid() bool {
	return v != ValueNA
}
