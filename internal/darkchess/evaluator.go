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

import "github.com/frankkopp/xiangqi/internal/xqtypes"

// evaluate scores b from sideToMove's perspective: material (every
// piece counts at its true value, hidden or not - the board always
// holds ground truth, the hiddenness only constrains the search tree,
// not the static evaluator) plus a small mobility term counting
// non-flip actions. Flips do not enter the evaluation.
func evaluate(b *Board) Value {
	self := b.sideToMove
	opp := self.Flip()

	score := materialOf(b, self) - materialOf(b, opp)
	score += 2 * (mobilityOf(b, self) - mobilityOf(b, opp))

	return Value(score)
}

func materialOf(b *Board, side xqtypes.Color) int {
	sum := 0
	for sq := Square(0); sq < NumSquares; sq++ {
		p := b.grid[sq].piece
		if p.Side == side {
			sum += PieceValues[p.Kind]
		}
	}
	return sum
}

func mobilityOf(b *Board, side xqtypes.Color) int {
	count := 0
	for _, a := range LegalActions(b, side) {
		if a.Kind != ActionFlip {
			count++
		}
	}
	return count
}
