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

import "fmt"

// Score carries a position's middlegame and endgame values separately
// so the evaluator can blend them by game phase at the very end
// (tapered evaluation).
type Score struct {
	Mid int
	End int
}

// Add adds the corresponding parts of a into the receiver.
func (s *Score) Add(a Score) {
	s.Mid += a.Mid
	s.End += a.End
}

// Sub subtracts the corresponding parts of a from the receiver.
func (s *Score) Sub(a Score) {
	s.Mid -= a.Mid
	s.End -= a.End
}

// Tapered blends Mid/End by phase, where phase is 0..256 (256 = full
// middlegame material on the board, 0 = bare endgame).
func (s Score) Tapered(phase int) int {
	return (s.Mid*phase + s.End*(256-phase)) >> 8
}

func (s Score) String() string {
	return fmt.Sprintf("{mid:%d end:%d}", s.Mid, s.End)
}
