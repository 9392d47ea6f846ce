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

import (
	"sort"

	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

// captureActions filters LegalActions down to the captures only, the
// set quiescence restricts itself to.
func captureActions(b *Board, side xqtypes.Color) []Action {
	all := LegalActions(b, side)
	captures := all[:0:0]
	for _, a := range all {
		if a.Kind == ActionCapture {
			captures = append(captures, a)
		}
	}
	return captures
}

// sortByMVVLVA orders captures by victim value minus attacker value,
// descending, the same MVV/LVA idiom internal/search's move ordering
// uses for its captures.
func sortByMVVLVA(b *Board, captures []Action) {
	score := func(a Action) int {
		attacker, _ := b.Get(a.From)
		victim, _ := b.Get(a.To)
		return PieceValues[victim.Kind]*10 - PieceValues[attacker.Kind]
	}
	sort.SliceStable(captures, func(i, j int) bool { return score(captures[i]) > score(captures[j]) })
}

// threatenedSquares collects every square side's opponent could
// capture on next turn, used to bias move ordering toward escaping
// threatened pieces.
func threatenedSquares(b *Board, side xqtypes.Color) map[Square]bool {
	threatened := make(map[Square]bool)
	for _, a := range LegalActions(b, side.Flip()) {
		if a.Kind == ActionCapture {
			threatened[a.To] = true
		}
	}
	return threatened
}

// safeFlipScore ranks a flip by how few adjacent enemy pieces already
// threaten the square being turned over - fewer is safer, preferring
// flips that don't immediately hand the opponent a favorable capture.
func safeFlipScore(b *Board, side xqtypes.Color, sq Square) int {
	row, col := sq.Row(), sq.Col()
	adjacentEnemies := 0
	for _, d := range orthogonal {
		r, c := row+d[0], col+d[1]
		if !onBoard(r, c) {
			continue
		}
		p := b.grid[NewSquare(r, c)].piece
		if !p.IsNone() && p.Side != side {
			adjacentEnemies++
		}
	}
	return -adjacentEnemies
}

// orderedActions generates and ranks side's legal actions for use as a
// search node's move loop: captures by MVV/LVA first, then escapes
// from threatened squares, then the ply's two killers, then by history
// score, and finally flips ordered by safety - the emptiest-risk flip
// first.
func orderedActions(b *Board, side xqtypes.Color, s *Search, ply int) []Action {
	actions := LegalActions(b, side)
	threatened := threatenedSquares(b, side)
	killer0, killer1 := Action{}, Action{}
	if ply >= 0 && ply < maxPly {
		killer0, killer1 = s.killers[ply][0], s.killers[ply][1]
	}

	weight := func(a Action) int {
		switch a.Kind {
		case ActionCapture:
			attacker, _ := b.Get(a.From)
			victim, _ := b.Get(a.To)
			return 1_000_000 + PieceValues[victim.Kind]*10 - PieceValues[attacker.Kind]
		case ActionMove:
			base := 0
			if threatened[a.From] {
				base += 50_000
			}
			if a == killer0 {
				base += 20_000
			} else if a == killer1 {
				base += 10_000
			}
			return base + s.history[[2]Square{a.From, a.To}]
		default: // ActionFlip
			return safeFlipScore(b, side, a.From)
		}
	}

	type scored struct {
		a Action
		s int
	}
	ranked := make([]scored, len(actions))
	for i, a := range actions {
		ranked[i] = scored{a, weight(a)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].s > ranked[j].s })
	for i := range ranked {
		actions[i] = ranked[i].a
	}
	return actions
}
