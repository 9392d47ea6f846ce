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

// orthogonal holds the four one-step directions shared by plain moves
// and by the cannon's ray walk.
var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// LegalActions enumerates every action available to side on b: flip
// any still-hidden square, step a revealed own piece onto an adjacent
// empty square, capture an adjacent enemy piece the rank rule allows,
// or jump a cannon over exactly one screen to capture beyond it.
func LegalActions(b *Board, side xqtypes.Color) []Action {
	var actions []Action

	for sq := Square(0); sq < NumSquares; sq++ {
		c := b.grid[sq]
		if c.piece.IsNone() {
			continue
		}
		if !c.revealed {
			actions = append(actions, Action{Kind: ActionFlip, From: sq, To: sq})
			continue
		}
		if c.piece.Side != side {
			continue
		}
		if c.piece.Kind == xqtypes.Cannon {
			actions = append(actions, cannonActions(b, sq, side)...)
			continue
		}
		row, col := sq.Row(), sq.Col()
		for _, d := range orthogonal {
			r, cl := row+d[0], col+d[1]
			if !onBoard(r, cl) {
				continue
			}
			to := NewSquare(r, cl)
			target := b.grid[to]
			switch {
			case target.piece.IsNone():
				actions = append(actions, Action{Kind: ActionMove, From: sq, To: to})
			case target.revealed && target.piece.Side != side && canCapture(c.piece, target.piece):
				actions = append(actions, Action{Kind: ActionCapture, From: sq, To: to})
			}
		}
	}
	return actions
}

// cannonActions returns a cannon's moves: an adjacent step onto an
// empty square like any other piece, plus a capture of the first
// non-empty square beyond exactly one screen piece along each of the
// four rays, at any distance, unless that square holds a revealed piece
// of the cannon's own side. The screen and the captured piece may each
// be revealed or still face down - jumping blind is part of the rule,
// not a bug (see DESIGN.md).
func cannonActions(b *Board, sq Square, side xqtypes.Color) []Action {
	var actions []Action
	row, col := sq.Row(), sq.Col()

	for _, d := range orthogonal {
		r, cl := row+d[0], col+d[1]
		if onBoard(r, cl) {
			to := NewSquare(r, cl)
			if b.grid[to].piece.IsNone() {
				actions = append(actions, Action{Kind: ActionMove, From: sq, To: to})
			}
		}

		r, cl = row+d[0], col+d[1]
		screenFound := false
		for onBoard(r, cl) {
			cur := NewSquare(r, cl)
			target := b.grid[cur]
			if !screenFound {
				if !target.piece.IsNone() {
					screenFound = true
				}
			} else if !target.piece.IsNone() {
				if !target.revealed || target.piece.Side != side {
					actions = append(actions, Action{Kind: ActionCapture, From: sq, To: cur})
				}
				break
			}
			r, cl = r+d[0], cl+d[1]
		}
	}
	return actions
}
