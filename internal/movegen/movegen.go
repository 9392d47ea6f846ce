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

// Package movegen generates pseudo-legal and legal moves for a Xiangqi
// board: one generator function per piece kind, a targeted
// IsSquareAttacked used both for check detection and legality
// filtering, and the kings-facing rule that is unique to Xiangqi.
package movegen

import (
	"github.com/frankkopp/xiangqi/internal/board"
	"github.com/frankkopp/xiangqi/internal/history"
	"github.com/frankkopp/xiangqi/internal/moveslice"
	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

// GenMode selects which subset of moves to generate, mirroring the
// capturing/non-capturing split the search's quiescence phase needs.
type GenMode int

const (
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// Movegen holds reusable move buffers so repeated calls during search
// do not allocate on every ply.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
	killers          [2]xqtypes.Move
	pvMove           xqtypes.Move
	hist             *history.History
}

// maxMoves bounds a single ply's move list generously; Xiangqi
// positions rarely exceed 40 pseudo-legal moves.
const maxMoves = 128

// Move-ordering value bands, highest first since moveslice.Sort is
// highest-first: the TT/PV move leads, then captures ranked by
// MVV/LVA, then the two killers, then quiets ranked by history score.
// Bands never overlap so a capture is always tried before any killer
// or quiet, and a killer is always tried before any non-killer quiet.
const (
	valuePvMove      = 32000
	valueCaptureBase = 20000
	valueKiller0     = 10001
	valueKiller1     = 10000
	// valueHistoryMax keeps the clamped history score strictly below
	// the killer band.
	valueHistoryMax = 9999
)

// mvvLvaRank orders piece kinds by how valuable they are to capture
// (victim) or how cheap it is to risk losing them (attacker), without
// reusing xqtypes.PieceValues - those are scaled for evaluation and a
// captured king's 10000 would overflow the move's 16-bit value field.
var mvvLvaRank = [xqtypes.PieceTypeLength]int16{
	xqtypes.King:     6,
	xqtypes.Rook:     5,
	xqtypes.Horse:    4,
	xqtypes.Cannon:   4,
	xqtypes.Advisor:  2,
	xqtypes.Elephant: 2,
	xqtypes.Pawn:     1,
}

// mvvLvaValue scores a capture by victim*10 - attacker, so the
// juiciest victims sort first and, among equal victims, the cheapest
// attacker does.
func mvvLvaValue(victim, attacker xqtypes.PieceType) int16 {
	return valueCaptureBase + mvvLvaRank[victim]*10 - mvvLvaRank[attacker]
}

// NewMoveGen creates a move generator with its scratch buffers
// allocated.
func NewMoveGen() *Movegen {
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(maxMoves),
		legalMoves:       moveslice.NewMoveSlice(maxMoves),
		killers:          [2]xqtypes.Move{xqtypes.MoveNone, xqtypes.MoveNone},
		pvMove:           xqtypes.MoveNone,
	}
}

// SetPvMove marks a move to be sorted to the front of the next
// generation call.
func (mg *Movegen) SetPvMove(m xqtypes.Move) {
	mg.pvMove = m.MoveOf()
}

// SetKillers records the two killer moves for the current ply.
func (mg *Movegen) SetKillers(k1, k2 xqtypes.Move) {
	mg.killers[0] = k1
	mg.killers[1] = k2
}

// SetHistory wires the search's history table into move ordering so
// quiet, non-killer moves are ranked by how often they have caused a
// beta cutoff. Never calling this leaves quiet moves unordered (all
// Value() == 0), which is fine for generators used outside search
// (e.g. the UI's legal-move listing).
func (mg *Movegen) SetHistory(hist *history.History) {
	mg.hist = hist
}

// GeneratePseudoLegalMoves returns every move for the side to move
// that does not yet account for leaving its own king in check or
// facing the enemy king across an open file.
func (mg *Movegen) GeneratePseudoLegalMoves(b *board.Board, mode GenMode) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	side := b.NextPlayer()
	for row := 0; row < xqtypes.NumRows; row++ {
		for col := 0; col < xqtypes.NumCols; col++ {
			sq := xqtypes.NewSquare(row, col)
			p := b.Get(sq)
			if p.IsNone() || p.Side != side {
				continue
			}
			switch p.Type {
			case xqtypes.King:
				mg.genKing(b, sq, side, mode)
			case xqtypes.Advisor:
				mg.genAdvisor(b, sq, side, mode)
			case xqtypes.Elephant:
				mg.genElephant(b, sq, side, mode)
			case xqtypes.Rook:
				mg.genRook(b, sq, side, mode)
			case xqtypes.Horse:
				mg.genHorse(b, sq, side, mode)
			case xqtypes.Cannon:
				mg.genCannon(b, sq, side, mode)
			case xqtypes.Pawn:
				mg.genPawn(b, sq, side, mode)
			}
		}
	}

	mg.pseudoLegalMoves.ForEach(func(i int) {
		m := mg.pseudoLegalMoves.At(i)
		switch {
		case m.MoveOf() == mg.pvMove:
			mg.pseudoLegalMoves.Set(i, m.WithValue(valuePvMove))
		case !b.Get(m.To()).IsNone():
			victim := b.Get(m.To()).Type
			attacker := b.Get(m.From()).Type
			mg.pseudoLegalMoves.Set(i, m.WithValue(mvvLvaValue(victim, attacker)))
		case m.MoveOf() == mg.killers[0]:
			mg.pseudoLegalMoves.Set(i, m.WithValue(valueKiller0))
		case m.MoveOf() == mg.killers[1]:
			mg.pseudoLegalMoves.Set(i, m.WithValue(valueKiller1))
		case mg.hist != nil:
			hv := mg.hist.Value(side, m)
			if hv > valueHistoryMax {
				hv = valueHistoryMax
			}
			mg.pseudoLegalMoves.Set(i, m.WithValue(int16(hv)))
		}
	})
	mg.pseudoLegalMoves.Sort()
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves filters GeneratePseudoLegalMoves down to moves
// that do not leave the mover's own king in check or facing the
// enemy king (the kings-facing rule).
func (mg *Movegen) GenerateLegalMoves(b *board.Board, mode GenMode) *moveslice.MoveSlice {
	mg.legalMoves.Clear()
	mg.GeneratePseudoLegalMoves(b, mode)
	side := b.NextPlayer()
	mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
		return IsLegalMove(b, mg.pseudoLegalMoves.At(i), side)
	})
	return mg.legalMoves
}

// HasCheck reports whether the side to move is currently in check,
// using the board's cached check flag so repeated calls within the
// same node (TT probe, move extension, qsearch stand-pat) only pay
// for the attack scan once.
func HasCheck(b *board.Board) bool {
	if known, inCheck := b.CachedCheck(); known {
		return inCheck
	}
	side := b.NextPlayer()
	inCheck := IsSquareAttacked(b, b.KingSquare(side), side.Flip())
	b.SetCachedCheck(inCheck)
	return inCheck
}

// IsCapturingMove reports whether m captures a piece on the current
// board (must be called before the move is made).
func IsCapturingMove(b *board.Board, m xqtypes.Move) bool {
	return !b.Get(m.To()).IsNone()
}

// GivesCheck reports whether m puts the opponent in check. The move
// must already have been made on b (the board's cached check flag is
// computed from the post-move, opponent-to-move position).
func GivesCheck(b *board.Board) bool {
	return HasCheck(b)
}

// IsLegalMove makes the move, checks that it does not leave the
// mover's own king attacked or the two kings facing each other on an
// open file, then unmakes it.
func IsLegalMove(b *board.Board, m xqtypes.Move, side xqtypes.Color) bool {
	b.DoMove(m)
	legal := !IsSquareAttacked(b, b.KingSquare(side), side.Flip()) && !KingsFacing(b)
	b.UndoMove()
	return legal
}

func (mg *Movegen) addMove(b *board.Board, from, to xqtypes.Square, side xqtypes.Color, mode GenMode) {
	target := b.Get(to)
	if target.IsNone() {
		if mode&GenNonCap != 0 {
			mg.pseudoLegalMoves.PushBack(xqtypes.NewMove(from, to))
		}
		return
	}
	if target.Side != side && mode&GenCap != 0 {
		mg.pseudoLegalMoves.PushBack(xqtypes.NewMove(from, to))
	}
}

func (mg *Movegen) genKing(b *board.Board, sq xqtypes.Square, side xqtypes.Color, mode GenMode) {
	row, col := sq.Row(), sq.Col()
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		if !xqtypes.InPalace(side, r, c) {
			continue
		}
		mg.addMove(b, sq, xqtypes.NewSquare(r, c), side, mode)
	}
}

func (mg *Movegen) genAdvisor(b *board.Board, sq xqtypes.Square, side xqtypes.Color, mode GenMode) {
	row, col := sq.Row(), sq.Col()
	for _, d := range [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		r, c := row+d[0], col+d[1]
		if !xqtypes.InPalace(side, r, c) {
			continue
		}
		mg.addMove(b, sq, xqtypes.NewSquare(r, c), side, mode)
	}
}

func (mg *Movegen) genElephant(b *board.Board, sq xqtypes.Square, side xqtypes.Color, mode GenMode) {
	row, col := sq.Row(), sq.Col()
	for _, d := range [4][2]int{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}} {
		r, c := row+d[0], col+d[1]
		if !xqtypes.OnBoard(r, c) {
			continue
		}
		if xqtypes.HasCrossedRiver(side, r) {
			continue
		}
		eyeRow, eyeCol := row+d[0]/2, col+d[1]/2
		if !b.Get(xqtypes.NewSquare(eyeRow, eyeCol)).IsNone() {
			continue
		}
		mg.addMove(b, sq, xqtypes.NewSquare(r, c), side, mode)
	}
}

func (mg *Movegen) genRook(b *board.Board, sq xqtypes.Square, side xqtypes.Color, mode GenMode) {
	row, col := sq.Row(), sq.Col()
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		for xqtypes.OnBoard(r, c) {
			to := xqtypes.NewSquare(r, c)
			target := b.Get(to)
			if target.IsNone() {
				if mode&GenNonCap != 0 {
					mg.pseudoLegalMoves.PushBack(xqtypes.NewMove(sq, to))
				}
			} else {
				if target.Side != side && mode&GenCap != 0 {
					mg.pseudoLegalMoves.PushBack(xqtypes.NewMove(sq, to))
				}
				break
			}
			r, c = r+d[0], c+d[1]
		}
	}
}

// horseMoves maps each of the horse's 8 destinations to the leg
// square that must be empty for the move to be legal (no "hobbling
// the horse's leg").
var horseMoves = [8][2][2]int{
	{{-2, -1}, {-1, 0}},
	{{-2, 1}, {-1, 0}},
	{{2, -1}, {1, 0}},
	{{2, 1}, {1, 0}},
	{{-1, -2}, {0, -1}},
	{{1, -2}, {0, -1}},
	{{-1, 2}, {0, 1}},
	{{1, 2}, {0, 1}},
}

func (mg *Movegen) genHorse(b *board.Board, sq xqtypes.Square, side xqtypes.Color, mode GenMode) {
	row, col := sq.Row(), sq.Col()
	for _, hm := range horseMoves {
		r, c := row+hm[0][0], col+hm[0][1]
		if !xqtypes.OnBoard(r, c) {
			continue
		}
		legRow, legCol := row+hm[1][0], col+hm[1][1]
		if !b.Get(xqtypes.NewSquare(legRow, legCol)).IsNone() {
			continue
		}
		mg.addMove(b, sq, xqtypes.NewSquare(r, c), side, mode)
	}
}

func (mg *Movegen) genCannon(b *board.Board, sq xqtypes.Square, side xqtypes.Color, mode GenMode) {
	row, col := sq.Row(), sq.Col()
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		jumped := false
		for xqtypes.OnBoard(r, c) {
			to := xqtypes.NewSquare(r, c)
			target := b.Get(to)
			if !jumped {
				if target.IsNone() {
					if mode&GenNonCap != 0 {
						mg.pseudoLegalMoves.PushBack(xqtypes.NewMove(sq, to))
					}
				} else {
					jumped = true
				}
			} else {
				if !target.IsNone() {
					if target.Side != side && mode&GenCap != 0 {
						mg.pseudoLegalMoves.PushBack(xqtypes.NewMove(sq, to))
					}
					break
				}
			}
			r, c = r+d[0], c+d[1]
		}
	}
}

func (mg *Movegen) genPawn(b *board.Board, sq xqtypes.Square, side xqtypes.Color, mode GenMode) {
	row, col := sq.Row(), sq.Col()
	forward := row + side.Direction()
	if xqtypes.OnBoard(forward, col) {
		mg.addMove(b, sq, xqtypes.NewSquare(forward, col), side, mode)
	}
	if xqtypes.HasCrossedRiver(side, row) {
		for _, dc := range [2]int{-1, 1} {
			c := col + dc
			if xqtypes.OnBoard(row, c) {
				mg.addMove(b, sq, xqtypes.NewSquare(row, c), side, mode)
			}
		}
	}
}

// IsSquareAttacked reports whether sq is attacked by a piece of the
// given side, by reversing each attacker's move pattern from sq - the
// same reverse-attack idiom as a western-chess engine's IsAttacked,
// adapted piece by piece to Xiangqi's geometry.
func IsSquareAttacked(b *board.Board, sq xqtypes.Square, by xqtypes.Color) bool {
	if !sq.IsValid() {
		return false
	}
	row, col := sq.Row(), sq.Col()

	// king: adjacent in the palace
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		if xqtypes.OnBoard(r, c) {
			p := b.Get(xqtypes.NewSquare(r, c))
			if p.Side == by && p.Type == xqtypes.King {
				return true
			}
		}
	}

	// horse: reverse of horseMoves - if a horse sits at one of the 8
	// destinations and its leg (relative to that horse) is clear, it
	// attacks sq.
	for _, hm := range horseMoves {
		hr, hc := row-hm[0][0], col-hm[0][1]
		if !xqtypes.OnBoard(hr, hc) {
			continue
		}
		p := b.Get(xqtypes.NewSquare(hr, hc))
		if p.IsNone() || p.Side != by || p.Type != xqtypes.Horse {
			continue
		}
		legRow, legCol := hr+hm[1][0], hc+hm[1][1]
		if b.Get(xqtypes.NewSquare(legRow, legCol)).IsNone() {
			return true
		}
	}

	// pawn: a pawn of `by` attacks sq if sq is one step in its forward
	// direction, or sideways once it has crossed the river.
	pawnRow := row - by.Direction()
	if xqtypes.OnBoard(pawnRow, col) {
		p := b.Get(xqtypes.NewSquare(pawnRow, col))
		if p.Side == by && p.Type == xqtypes.Pawn {
			return true
		}
	}
	if xqtypes.OnBoard(row, col-1) {
		p := b.Get(xqtypes.NewSquare(row, col-1))
		if p.Side == by && p.Type == xqtypes.Pawn && xqtypes.HasCrossedRiver(by, row) {
			return true
		}
	}
	if xqtypes.OnBoard(row, col+1) {
		p := b.Get(xqtypes.NewSquare(row, col+1))
		if p.Side == by && p.Type == xqtypes.Pawn && xqtypes.HasCrossedRiver(by, row) {
			return true
		}
	}

	// rook and cannon: ray-scan the four directions, classifying by the
	// first and second blocker encountered.
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		blockers := 0
		for xqtypes.OnBoard(r, c) {
			p := b.Get(xqtypes.NewSquare(r, c))
			if !p.IsNone() {
				blockers++
				if blockers == 1 && p.Side == by && p.Type == xqtypes.Rook {
					return true
				}
				if blockers == 2 && p.Side == by && p.Type == xqtypes.Cannon {
					return true
				}
				if blockers > 2 {
					break
				}
			}
			r, c = r+d[0], c+d[1]
		}
	}

	return false
}

// KingsFacing reports whether the two kings stand on the same file
// with no piece between them - an illegal position in Xiangqi, so any
// move producing it is rejected by the legality filter.
func KingsFacing(b *board.Board) bool {
	redK := b.KingSquare(xqtypes.Red)
	blackK := b.KingSquare(xqtypes.Black)
	if !redK.IsValid() || !blackK.IsValid() || redK.Col() != blackK.Col() {
		return false
	}
	col := redK.Col()
	for row := blackK.Row() + 1; row < redK.Row(); row++ {
		if !b.Get(xqtypes.NewSquare(row, col)).IsNone() {
			return false
		}
	}
	return true
}
