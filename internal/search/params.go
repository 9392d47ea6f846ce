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
	"math"

	"github.com/frankkopp/xiangqi/internal/transpositiontable"
)

// Value is a search score in centipawn-like units, always expressed
// from the perspective of the side to move at the node it was computed
// for (negamax convention).
type Value int

// IsValid reports whether v is a real score rather than the
// stop-the-search sentinel ValueNA.
func (v Value) IsValid() bool {
	return v != ValueNA
}

const (
	// ValueNA is returned up the call stack once a search has been
	// asked to stop; callers must not use it as a real score.
	ValueNA Value = math.MinInt32

	ValueDraw Value = 0
	ValueMin  Value = -20000
	ValueMax  Value = 20000

	// ValueCheckMate and ValueCheckMateThreshold mirror the
	// transpositiontable package's mate encoding so scores round-trip
	// through TT storage without a second set of constants to keep in
	// sync.
	ValueCheckMate          = Value(transpositiontable.MateValue)
	ValueCheckMateThreshold = Value(transpositiontable.MateThreshold)
)

// MaxPly bounds both recursion depth and the per-ply scratch arrays
// (move generators, PV lines, killer slots). No realistic Xiangqi
// search - including quiescence extensions - reaches this deep.
const MaxPly = 128

// futilityMargin holds the margin used by forward futility pruning at
// each remaining depth; index 0 is unused since futility pruning never
// fires at depth 0 (qsearch takes over there).
var futilityMargin = [4]Value{0, 200, 450, 700}

// lmr is a precomputed reduction table in the dimensions (depth,
// moves searched), filled once at init: no reduction below depth 3 or
// before three moves have been searched, 1 ply from then on, and 2
// plies once six moves have been searched.
var lmr [32][64]int

func init() {
	for d := 0; d < 32; d++ {
		for n := 0; n < 64; n++ {
			switch {
			case d < 3 || n < 3:
				lmr[d][n] = 0
			case n < 6:
				lmr[d][n] = 1
			default:
				lmr[d][n] = 2
			}
		}
	}
}

// lmrReduction returns the depth reduction Late Move Reduction applies
// for the n-th move (0-based) searched at the given depth.
func lmrReduction(depth, movesSearched int) int {
	d, n := depth, movesSearched
	if d >= 32 {
		d = 31
	}
	if n >= 64 {
		n = 63
	}
	return lmr[d][n]
}

// nullMoveReduction returns the depth reduction for null-move pruning:
// the deeper the remaining search, the more we can afford to skip.
func nullMoveReduction(depth int) int {
	if depth > 6 {
		return 3
	}
	return 2
}
