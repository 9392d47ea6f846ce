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

// Package search implements iterative deepening principal variation
// search over internal/board positions: negamax with a transposition
// table, null-move pruning, late move reductions, futility pruning,
// quiescence search and aspiration windows, ordered by the killer and
// history tables of internal/history.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/xiangqi/internal/board"
	"github.com/frankkopp/xiangqi/internal/config"
	"github.com/frankkopp/xiangqi/internal/evaluator"
	"github.com/frankkopp/xiangqi/internal/history"
	myLogging "github.com/frankkopp/xiangqi/internal/logging"
	"github.com/frankkopp/xiangqi/internal/movegen"
	"github.com/frankkopp/xiangqi/internal/moveslice"
	"github.com/frankkopp/xiangqi/internal/transpositiontable"
	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

var out = message.NewPrinter(language.German)

// checkInterval is how often, in visited nodes, the search checks its
// clock. Checking every node would dominate runtime; checking too
// rarely overruns the time budget.
const checkInterval = 4096

// Search drives iterative deepening PVS over a board. It is not safe
// for concurrent use by multiple goroutines; StartSearch/WaitWhileSearching
// guard a single in-flight search with a semaphore the way a UCI engine
// guards its "go"/"stop" commands.
type Search struct {
	log *logging.Logger

	tt   *transpositiontable.Table
	hist *history.History
	eval *evaluator.Evaluator

	mg [MaxPly]*movegen.Movegen
	pv [MaxPly]*moveslice.MoveSlice

	rootMoves *moveslice.MoveSlice

	nodesVisited uint64
	statistics   Statistics

	startTime time.Time
	timeLimit time.Duration
	stopFlag  int32

	randomness int
	maxDepth   int
	qDepth     int

	isRunning *semaphore.Weighted

	// OnInfo, if set, is called once per completed iteration.
	OnInfo func(Info)

	lastResult Result
}

// NewSearch creates a Search wired to a shared transposition table
// (callers typically keep one table alive across an entire game so it
// is not cleared between moves).
func NewSearch(tt *transpositiontable.Table) *Search {
	s := &Search{
		log:       myLogging.GetSearchLog(),
		tt:        tt,
		hist:      history.NewHistory(),
		eval:      evaluator.NewEvaluator(),
		isRunning: semaphore.NewWeighted(1),
		maxDepth:  MaxPly - 1,
		qDepth:    config.DifficultyTable[config.Master].QDepth,
	}
	for i := range s.mg {
		s.mg[i] = movegen.NewMoveGen()
		s.mg[i].SetHistory(s.hist)
	}
	for i := range s.pv {
		s.pv[i] = moveslice.NewMoveSlice(MaxPly)
	}
	return s
}

// SetDifficulty applies one of the compiled-in search profiles from
// config.DifficultyTable: a depth cap, a time budget and an amount of
// evaluation jitter used to make weaker levels less than perfectly
// consistent.
func (s *Search) SetDifficulty(d config.Difficulty) {
	settings := config.DifficultyTable[d]
	s.maxDepth = settings.Depth
	s.randomness = settings.Randomness
	s.qDepth = settings.QDepth
}

// NewGame clears all state that must not leak between unrelated games:
// the transposition table, history counters and killer moves.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.hist.Clear()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if s.isRunning.TryAcquire(1) {
		s.isRunning.Release(1)
		return false
	}
	return true
}

// StartSearch begins searching b in a new goroutine according to sl
// and returns immediately. Call WaitWhileSearching to block for the
// result, or StopSearch to cut it short.
func (s *Search) StartSearch(b *board.Board, sl Limits) {
	if err := s.isRunning.Acquire(context.Background(), 1); err != nil {
		return
	}
	go s.run(b, sl)
}

// StopSearch signals a running search to stop at its next checkpoint
// and blocks until it has actually returned.
func (s *Search) StopSearch() {
	atomic.StoreInt32(&s.stopFlag, 1)
	s.WaitWhileSearching()
}

// WaitWhileSearching blocks until no search is in flight.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// LastSearchResult returns the result of the most recently completed
// search.
func (s *Search) LastSearchResult() Result {
	return s.lastResult
}

// NodesVisited returns the total node count of the most recent search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns a pointer to the live counters of the current (or
// most recently finished) search.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

// run performs the actual search and releases the running semaphore
// when done, whether the search finished naturally or was stopped.
func (s *Search) run(b *board.Board, sl Limits) {
	defer s.isRunning.Release(1)

	s.statistics.Clear()
	s.hist.Clear()
	s.nodesVisited = 0
	atomic.StoreInt32(&s.stopFlag, 0)
	s.startTime = time.Now()
	s.timeLimit = s.setupTimeControl(sl)
	s.tt.AgeEntries()

	maxDepth := s.maxDepth
	if sl.Depth > 0 && sl.Depth < maxDepth {
		maxDepth = sl.Depth
	}

	result := s.iterativeDeepening(b, maxDepth)
	result.SearchTime = time.Since(s.startTime)
	result.Nodes = s.nodesVisited
	s.lastResult = *result
	s.log.Info(out.Sprintf("search finished: depth=%d nodes=%d time=%s move=%s value=%d",
		result.SearchDepth, result.Nodes, result.SearchTime, result.BestMove, result.BestValue))
}

// setupTimeControl derives a wall-clock budget for this move. A zero
// duration means no time limit (the search stops only on depth or an
// explicit StopSearch).
func (s *Search) setupTimeControl(sl Limits) time.Duration {
	if sl.Infinite {
		return 0
	}
	if sl.MoveTime > 0 {
		return sl.MoveTime
	}
	if sl.HasDifficulty {
		if budget, ok := config.DifficultyTable[sl.Difficulty]; ok {
			return budget.TimeBudget
		}
	}
	if sl.WhiteTime > 0 || sl.BlackTime > 0 {
		// crude clock management: a thirtieth of the larger remaining
		// clock plus the increment, never less than a second.
		remaining := sl.WhiteTime
		if sl.BlackTime > remaining {
			remaining = sl.BlackTime
		}
		budget := remaining/30 + sl.WhiteInc
		if budget < time.Second {
			budget = time.Second
		}
		return budget
	}
	if sl.Depth > 0 {
		return 0
	}
	return 5 * time.Second
}

// timeIsUp reports whether the current time budget has been spent.
func (s *Search) timeIsUp() bool {
	if s.timeLimit <= 0 {
		return false
	}
	return time.Since(s.startTime) >= s.timeLimit
}

// stopConditions reports whether the search must unwind now. It only
// touches the clock every checkInterval nodes to keep time.Since off
// the hot path.
func (s *Search) stopConditions() bool {
	if atomic.LoadInt32(&s.stopFlag) != 0 {
		return true
	}
	if s.nodesVisited&(checkInterval-1) == 0 && s.timeIsUp() {
		atomic.StoreInt32(&s.stopFlag, 1)
		return true
	}
	return false
}

// evaluate scores b from the side to move's perspective. The search
// tree itself always sees the true static evaluation so tactics are
// never missed because of randomness; jitter for weaker difficulties
// is applied separately, after the fact, by rootJitterPass.
func (s *Search) evaluate(b *board.Board, ply int) Value {
	return Value(s.eval.Evaluate(b))
}

// rootJitterPass implements the depth-1 randomness rule used by the
// beginner/easy difficulties: every root move is made, re-scored at a
// shallow depth with the configured jitter amplitude, and unmade, and
// the move with the best perturbed score is returned. EvaluateWithJitter
// scores from the perspective of the side to move on the post-move
// board, i.e. the opponent, so the sign is flipped to get back to the
// root mover's perspective. Only called when randomness > 0 and more
// than one root move exists.
func (s *Search) rootJitterPass(b *board.Board) xqtypes.Move {
	best := s.rootMoves.At(0).MoveOf()
	bestScore := ValueMin
	for i := 0; i < s.rootMoves.Len(); i++ {
		move := s.rootMoves.At(i).MoveOf()
		b.DoMove(move)
		score := -Value(s.eval.EvaluateWithJitter(b, s.randomness))
		b.UndoMove()
		if score > bestScore {
			bestScore = score
			best = move
		}
	}
	return best
}

// savePV prepends move to childPV and stores the result in parentPV,
// the standard way a negamax search propagates the principal variation
// up from a cutting node.
func savePV(move xqtypes.Move, childPV, parentPV *moveslice.MoveSlice) {
	parentPV.Clear()
	parentPV.PushBack(move)
	childPV.ForEach(func(i int) {
		parentPV.PushBack(childPV.At(i))
	})
}

// iterativeDeepening repeatedly searches b at increasing depth, each
// iteration reusing the previous one's best move as move-ordering
// input, until maxDepth is reached, the time budget runs out, or more
// than 60% of the budget is spent when an iteration completes. The
// best and ponder moves come from the last completed iteration; an
// interrupted one is discarded.
func (s *Search) iterativeDeepening(b *board.Board, maxDepth int) *Result {
	s.rootMoves = s.mg[0].GenerateLegalMoves(b, movegen.GenAll)

	if s.rootMoves.Len() == 0 {
		if movegen.HasCheck(b) {
			s.statistics.Checkmates++
			return &Result{BestValue: -ValueCheckMate}
		}
		s.statistics.Stalemates++
		return &Result{BestValue: -ValueCheckMate}
	}

	if maxDepth <= 0 || maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}

	bestValue := ValueDraw
	var depthReached int
	var bestMove, ponderMove xqtypes.Move

	for depth := 1; depth <= maxDepth; depth++ {
		s.statistics.CurrentIterationDepth = depth
		s.statistics.CurrentSearchDepth = depth

		var value Value
		if config.Settings.Search.UseAspiration && depth > 3 {
			value = s.aspirationSearch(b, depth, bestValue)
		} else {
			value = s.rootSearch(b, depth, ValueMin, ValueMax)
		}

		if !value.IsValid() {
			break
		}
		bestValue = value
		depthReached = depth
		if s.pv[0].Len() > 0 {
			bestMove = s.pv[0].At(0).MoveOf()
			ponderMove = xqtypes.MoveNone
			if s.pv[0].Len() > 1 {
				ponderMove = s.pv[0].At(1).MoveOf()
			}
		}

		s.rootMoves.Sort()
		s.reportIteration(depth)

		if s.stopConditions() {
			break
		}
		if s.timeLimit > 0 && time.Since(s.startTime) > s.timeLimit*6/10 {
			break
		}
		if s.rootMoves.Len() == 1 {
			break
		}
		if bestValue >= ValueCheckMateThreshold || bestValue <= -ValueCheckMateThreshold {
			break
		}
	}

	result := &Result{
		BestValue:   bestValue,
		SearchDepth: depthReached,
	}
	result.BestMove = bestMove
	if bestMove == xqtypes.MoveNone {
		result.BestMove = s.rootMoves.At(0).MoveOf()
	}
	if s.randomness > 0 && s.rootMoves.Len() > 1 {
		result.BestMove = s.rootJitterPass(b)
	}
	result.PonderMove = ponderMove
	return result
}

// aspirationSearch searches with a window of 50 either side of the
// previous iteration's value and, on a fail-high or fail-low, searches
// once more with the full window. A previous value at or beyond ±9000
// skips the narrow window and searches full width straight away.
func (s *Search) aspirationSearch(b *board.Board, depth int, prevValue Value) Value {
	if prevValue <= -9000 || prevValue >= 9000 {
		return s.rootSearch(b, depth, ValueMin, ValueMax)
	}
	window := Value(50)
	alpha := prevValue - window
	beta := prevValue + window

	value := s.rootSearch(b, depth, alpha, beta)
	if s.stopConditions() {
		return value
	}
	if value > alpha && value < beta {
		return value
	}

	s.statistics.AspirationResearches++
	return s.rootSearch(b, depth, ValueMin, ValueMax)
}

func (s *Search) reportIteration(depth int) {
	if s.OnInfo == nil || s.pv[0].Len() == 0 {
		return
	}
	pv := make([]xqtypes.Move, s.pv[0].Len())
	for i := range pv {
		pv[i] = s.pv[0].At(i).MoveOf()
	}
	elapsed := time.Since(s.startTime)
	info := Info{
		Depth:    depth,
		SelDepth: s.statistics.CurrentSearchDepth,
		Value:    Value(s.pv[0].At(0).Value()),
		Nodes:    s.nodesVisited,
		Elapsed:  elapsed,
		PV:       pv,
	}
	if elapsed > 0 {
		info.Nps = uint64(float64(s.nodesVisited) / elapsed.Seconds())
	}
	if info.Value >= ValueCheckMateThreshold || info.Value <= -ValueCheckMateThreshold {
		info.Mate = true
	}
	s.OnInfo(info)
}
