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
	"github.com/frankkopp/xiangqi/internal/board"
	"github.com/frankkopp/xiangqi/internal/config"
	"github.com/frankkopp/xiangqi/internal/movegen"
	"github.com/frankkopp/xiangqi/internal/transpositiontable"
	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

// rootSearch drives the PVS move loop over the pre-generated,
// legality-filtered root move list. It is a thin specialization of
// search: every move is already known legal, so there is no need to
// check for an illegal king-exposing move after DoMove as nested plies
// would.
func (s *Search) rootSearch(b *board.Board, depth int, alpha, beta Value) Value {
	myMg := s.mg[0]
	if s.pv[0].Len() > 0 {
		myMg.SetPvMove(s.pv[0].At(0).MoveOf())
	} else {
		myMg.SetPvMove(xqtypes.MoveNone)
	}

	bestValue := ValueNA
	var bestMove xqtypes.Move
	origAlpha := alpha
	movesSearched := 0

	for i := 0; i < s.rootMoves.Len(); i++ {
		move := s.rootMoves.At(i).MoveOf()

		b.DoMove(move)
		s.nodesVisited++

		var value Value
		if b.CheckRepetitions(2) {
			value = ValueDraw
		} else if movesSearched == 0 {
			value = -s.search(b, depth-1, 1, -beta, -alpha, true, true)
		} else {
			value = -s.search(b, depth-1, 1, -alpha-1, -alpha, false, true)
			if value > alpha && value < beta && !s.stopConditions() {
				value = -s.search(b, depth-1, 1, -beta, -alpha, true, true)
			}
		}

		b.UndoMove()
		movesSearched++

		if s.stopConditions() {
			return ValueNA
		}

		s.rootMoves.Set(i, move.WithValue(int16(value)))

		if value > bestValue {
			bestValue = value
			bestMove = move
			if value > alpha {
				savePV(move.WithValue(int16(value)), s.pv[1], s.pv[0])
				alpha = value
			}
		}
	}

	if config.Settings.Search.UseTT && bestValue.IsValid() {
		s.storeTT(b, depth, 0, bestMove, bestValue, origAlpha, beta)
	}
	return bestValue
}

// search is the recursive negamax/PVS core. ply counts half-moves from
// the search root (root itself is ply 0, handled by rootSearch).
func (s *Search) search(b *board.Board, depth, ply int, alpha, beta Value, isPV, doNull bool) Value {
	if depth <= 0 {
		return s.qsearch(b, s.qDepth, ply, alpha, beta)
	}
	if ply >= MaxPly-1 {
		return s.evaluate(b, ply)
	}

	us := b.NextPlayer()
	hasCheck := movegen.HasCheck(b)

	// Check extension: a side in check is searched one ply deeper.
	if hasCheck && ply < s.maxDepth+6 {
		depth++
	}

	// Mate Distance Pruning: a shorter mate already found upstream
	// makes searching this node pointless once alpha/beta have been
	// narrowed past what any move here could improve on.
	if config.Settings.Search.UseMDP {
		matingValue := ValueCheckMate - Value(ply)
		if matingValue < beta {
			beta = matingValue
			if alpha >= beta {
				return beta
			}
		}
		matedValue := -ValueCheckMate + Value(ply)
		if matedValue > alpha {
			alpha = matedValue
			if alpha >= beta {
				return alpha
			}
		}
	}

	var ttMove xqtypes.Move
	if config.Settings.Search.UseTT {
		s.statistics.TTProbes++
		if e := s.tt.Probe(b.ZobristKey()); e != nil {
			ttMove = e.Move()
			if int(e.Depth()) >= depth {
				s.statistics.TTHits++
				ttValue := Value(transpositiontable.ValueFromTT(e.Value(), ply))
				cut := false
				switch e.ValueType() {
				case transpositiontable.Exact:
					cut = true
				case transpositiontable.Upper:
					cut = ttValue <= alpha
				case transpositiontable.Lower:
					cut = ttValue >= beta
				}
				if cut {
					s.statistics.TTCuts++
					return ttValue
				}
			}
		}
	}

	// Null Move Pruning: skip our move entirely and see if the
	// resulting position is still so good for us that the opponent
	// would never let us reach it - if so, this node fails high
	// without searching any real move. Skipped in the endgame (10 or
	// fewer pieces on the board).
	pieces := 0
	for _, c := range [2]xqtypes.Color{xqtypes.Red, xqtypes.Black} {
		for pt := xqtypes.King; pt <= xqtypes.Pawn; pt++ {
			pieces += b.PieceCount(c, pt)
		}
	}
	if config.Settings.Search.UseNullMove &&
		doNull && !isPV && !hasCheck && depth >= 3 && pieces > 10 &&
		b.Material(us) > int(xqtypes.PieceValues[xqtypes.King]) {

		r := nullMoveReduction(depth)
		newDepth := depth - r - 1
		if newDepth < 0 {
			newDepth = 0
		}
		b.DoNullMove()
		s.nodesVisited++
		nullValue := -s.search(b, newDepth, ply+1, -beta, -beta+1, false, false)
		b.UndoNullMove()

		if s.stopConditions() {
			return ValueNA
		}
		if nullValue >= beta {
			s.statistics.NullMoveCuts++
			return beta
		}
	}

	myMg := s.mg[ply]
	myMg.SetPvMove(ttMove)
	k1, k2 := xqtypes.MoveNone, xqtypes.MoveNone
	if config.Settings.Search.UseKiller {
		k1, k2 = s.hist.KillersAt(ply)
	}
	myMg.SetKillers(k1, k2)

	legalMoves := myMg.GenerateLegalMoves(b, movegen.GenAll)
	s.pv[ply].Clear()

	if legalMoves.Len() == 0 {
		// no legal move: both mate and stalemate are a loss for the
		// side to move, unlike a western-chess stalemate draw.
		if hasCheck {
			s.statistics.Checkmates++
		} else {
			s.statistics.Stalemates++
		}
		value := -ValueCheckMate + Value(ply)
		if config.Settings.Search.UseTT {
			s.tt.Put(b.ZobristKey(), xqtypes.MoveNone, int8(depth), int16(value), transpositiontable.Exact, int16(value), ply)
		}
		return value
	}

	bestValue := ValueNA
	var bestMove xqtypes.Move
	origAlpha := alpha
	movesSearched := 0

	for i := 0; i < legalMoves.Len(); i++ {
		move := legalMoves.At(i).MoveOf()
		isCapture := movegen.IsCapturingMove(b, move)

		newDepth := depth - 1
		lmrDepth := newDepth

		if config.Settings.Search.UseFp &&
			!isPV && !hasCheck && depth <= 3 &&
			!isCapture && move != ttMove && move != k1 && move != k2 {

			materialEval := s.evaluate(b, ply)
			margin := futilityMargin[depth]
			if materialEval+margin <= alpha {
				s.statistics.FutilityPrunes++
				if materialEval > bestValue {
					bestValue = materialEval
				}
				continue
			}
		}

		if config.Settings.Search.UseLmr &&
			depth >= 3 && movesSearched >= 3 &&
			!isPV && !isCapture && !hasCheck {
			lmrDepth -= lmrReduction(depth, movesSearched)
			if lmrDepth < 0 {
				lmrDepth = 0
			}
			s.statistics.LmrReductions++
		}

		b.DoMove(move)
		s.nodesVisited++
		if lmrDepth < newDepth && movegen.HasCheck(b) {
			lmrDepth = newDepth // a move that gives check is not reduced
		}

		var value Value
		if b.CheckRepetitions(2) {
			value = ValueDraw
		} else if movesSearched == 0 {
			value = -s.search(b, newDepth, ply+1, -beta, -alpha, isPV, true)
		} else {
			value = -s.search(b, lmrDepth, ply+1, -alpha-1, -alpha, false, true)
			if value > alpha && !s.stopConditions() {
				if lmrDepth < newDepth {
					s.statistics.LmrResearches++
					value = -s.search(b, newDepth, ply+1, -alpha-1, -alpha, false, true)
					if value > alpha && value < beta && !s.stopConditions() {
						value = -s.search(b, newDepth, ply+1, -beta, -alpha, true, true)
					}
				} else if value < beta {
					value = -s.search(b, newDepth, ply+1, -beta, -alpha, true, true)
				}
			}
		}

		b.UndoMove()
		movesSearched++

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestValue {
			bestValue = value
			bestMove = move
			if value > alpha {
				savePV(move.WithValue(int16(value)), s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if config.Settings.Search.UseKiller && !isCapture {
						s.hist.StoreKiller(ply, move)
					}
					if config.Settings.Search.UseHistory && !isCapture {
						s.hist.Update(us, move, depth)
					}
					alpha = beta
					break
				}
				alpha = value
			}
		}
	}

	if config.Settings.Search.UseTT {
		s.storeTT(b, depth, ply, bestMove, bestValue, origAlpha, beta)
	}
	return bestValue
}

// qsearch extends the search along captures only (or, when in check,
// every legal move, since a check must always be answered) until the
// position is quiet enough that the static evaluation is trustworthy,
// or depth - the configured difficulty's qDepth, counting down only
// along the capture-only branch - runs out. This is what lets a
// depth-limited search avoid the horizon effect of stopping mid-
// capture-sequence, while bounding how far it can chase captures.
// Outside check, a stand-pat score at or above beta returns beta, a
// stand-pat that a rook capture plus 200 could not lift to alpha
// returns alpha, and a capture whose victim value plus 200 cannot lift
// the stand-pat above alpha is skipped (delta pruning).
func (s *Search) qsearch(b *board.Board, depth, ply int, alpha, beta Value) Value {
	s.statistics.QNodes++

	if ply >= MaxPly-1 {
		return s.evaluate(b, ply)
	}
	if !config.Settings.Search.UseQuiescence {
		return s.evaluate(b, ply)
	}

	hasCheck := movegen.HasCheck(b)
	bestValue := ValueNA
	var staticEval Value

	if !hasCheck {
		staticEval = s.evaluate(b, ply)
		if staticEval >= beta {
			return beta
		}
		if staticEval+Value(xqtypes.PieceValues[xqtypes.Rook])+200 < alpha {
			return alpha
		}
		if staticEval > alpha {
			alpha = staticEval
		}
		bestValue = staticEval

		if depth <= 0 {
			return bestValue
		}
	}

	myMg := s.mg[ply]
	myMg.SetPvMove(xqtypes.MoveNone)
	myMg.SetKillers(xqtypes.MoveNone, xqtypes.MoveNone)
	mode := movegen.GenCap
	if hasCheck {
		mode = movegen.GenAll
	}
	moves := myMg.GenerateLegalMoves(b, mode)
	s.pv[ply].Clear()

	for i := 0; i < moves.Len(); i++ {
		move := moves.At(i).MoveOf()
		if victim := b.Get(move.To()); !hasCheck && !victim.IsNone() &&
			staticEval+Value(xqtypes.PieceValues[victim.Type])+200 <= alpha {
			continue
		}

		b.DoMove(move)
		s.nodesVisited++

		var value Value
		if hasCheck && b.CheckRepetitions(2) {
			value = ValueDraw
		} else if hasCheck {
			value = -s.qsearch(b, depth, ply+1, -beta, -alpha)
		} else {
			value = -s.qsearch(b, depth-1, ply+1, -beta, -alpha)
		}

		b.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestValue {
			bestValue = value
			if value > alpha {
				savePV(move.WithValue(int16(value)), s.pv[ply+1], s.pv[ply])
				if value >= beta {
					return value
				}
				alpha = value
			}
		}
	}

	if hasCheck && moves.Len() == 0 {
		return -ValueCheckMate + Value(ply)
	}
	return bestValue
}

// storeTT classifies the search result against the original alpha/beta
// window and stores it, adjusting mate scores to be distance-from-node
// before they hit the table.
func (s *Search) storeTT(b *board.Board, depth, ply int, move xqtypes.Move, value, alpha, beta Value) {
	if !value.IsValid() {
		return
	}
	vt := transpositiontable.Exact
	switch {
	case value <= alpha:
		vt = transpositiontable.Upper
	case value >= beta:
		vt = transpositiontable.Lower
	}
	s.tt.Put(b.ZobristKey(), move, int8(depth), int16(value), vt, int16(value), ply)
}
