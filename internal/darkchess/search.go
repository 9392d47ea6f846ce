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

// Package darkchess's search mirrors internal/search's iterative
// deepening negamax skeleton - a node counter, a periodic clock check,
// a StartSearch/WaitWhileSearching/StopSearch API guarded by a
// semaphore - but interior nodes come in two flavours instead of one:
// ordinary move/capture nodes resolved by plain negamax, and flip
// nodes resolved by expectimax over the unrevealed population still on
// the board.
package darkchess

import (
	"context"
	"math/rand"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/xiangqi/internal/config"
	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

// checkInterval is how often, in visited nodes, the search checks its
// clock, the same interval internal/search uses for the same reason.
const checkInterval = 4096

// maxPly bounds the killer-move table.
const maxPly = 64

// Limits controls how long and how deep a search may run, mirroring
// internal/search.Limits at dark-chess scale.
type Limits struct {
	Infinite      bool
	Depth         int
	MoveTime      time.Duration
	Difficulty    config.DarkDifficulty
	HasDifficulty bool
}

// Result is returned once a search has finished or been stopped.
type Result struct {
	BestAction  Action
	BestValue   Value
	SearchDepth int
	Nodes       uint64
	SearchTime  time.Duration
}

// Info is reported to the registered callback at the end of each
// completed iteration.
type Info struct {
	Depth   int
	Value   Value
	Nodes   uint64
	Elapsed time.Duration
}

// Search drives iterative deepening negamax-with-expectimax-flip-nodes
// over a Board. Not safe for concurrent use by multiple goroutines.
type Search struct {
	rng *rand.Rand

	maxDepth      int
	qDepth        int
	useMonteCarlo bool
	mcSimulations int

	killers [maxPly][2]Action
	history map[[2]Square]int

	nodesVisited uint64
	startTime    time.Time
	timeLimit    time.Duration
	stopFlag     int32

	isRunning *semaphore.Weighted

	// OnInfo, if set, is called once per completed iteration.
	OnInfo func(Info)

	lastResult Result
}

// NewSearch creates a Search seeded from rng, which also supplies the
// Monte-Carlo flip-node sampling and the board shuffle used by
// NewBoard.
func NewSearch(rng *rand.Rand) *Search {
	return &Search{
		rng:       rng,
		maxDepth:  6,
		qDepth:    4,
		history:   make(map[[2]Square]int),
		isRunning: semaphore.NewWeighted(1),
	}
}

// SetDifficulty applies one of the compiled-in profiles from
// config.DarkDifficultyTable.
func (s *Search) SetDifficulty(d config.DarkDifficulty) {
	settings := config.DarkDifficultyTable[d]
	s.maxDepth = settings.Depth
	s.qDepth = settings.QDepth
	s.useMonteCarlo = settings.UseMonteCarlo
	s.mcSimulations = settings.MCSimulations
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if s.isRunning.TryAcquire(1) {
		s.isRunning.Release(1)
		return false
	}
	return true
}

// StartSearch begins searching b in a new goroutine and returns
// immediately.
func (s *Search) StartSearch(b *Board, sl Limits) {
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

func (s *Search) run(b *Board, sl Limits) {
	defer s.isRunning.Release(1)

	s.nodesVisited = 0
	atomic.StoreInt32(&s.stopFlag, 0)
	s.startTime = time.Now()
	s.timeLimit = s.setupTimeControl(sl)
	for i := range s.killers {
		s.killers[i] = [2]Action{}
	}
	s.history = make(map[[2]Square]int)

	maxDepth := s.maxDepth
	if sl.Depth > 0 && sl.Depth < maxDepth {
		maxDepth = sl.Depth
	}

	result := s.iterativeDeepening(b, maxDepth)
	result.SearchTime = time.Since(s.startTime)
	result.Nodes = s.nodesVisited
	s.lastResult = *result
}

func (s *Search) setupTimeControl(sl Limits) time.Duration {
	if sl.Infinite {
		return 0
	}
	if sl.MoveTime > 0 {
		return sl.MoveTime
	}
	if sl.HasDifficulty {
		if budget, ok := config.DarkDifficultyTable[sl.Difficulty]; ok {
			return budget.TimeBudget
		}
	}
	if sl.Depth > 0 {
		return 0
	}
	return 3 * time.Second
}

func (s *Search) timeIsUp() bool {
	if s.timeLimit <= 0 {
		return false
	}
	return time.Since(s.startTime) >= s.timeLimit
}

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

// iterativeDeepening repeatedly searches b at increasing depth until
// maxDepth is reached or the time budget runs out, keeping the last
// fully completed iteration's result.
func (s *Search) iterativeDeepening(b *Board, maxDepth int) *Result {
	actions := orderedActions(b, b.SideToMove(), s, 0)
	if len(actions) == 0 {
		// Caller is expected to check GameStatus before searching; an
		// empty root action list means the game is already decided.
		return &Result{}
	}
	if maxDepth <= 0 || maxDepth > maxPly-1 {
		maxDepth = maxPly - 1
	}

	best := Result{BestAction: actions[0]}

	for depth := 1; depth <= maxDepth; depth++ {
		value, action, ok := s.rootSearch(b, depth, actions)
		if !ok {
			break
		}
		best.BestValue = value
		best.BestAction = action
		best.SearchDepth = depth

		if s.OnInfo != nil {
			s.OnInfo(Info{Depth: depth, Value: value, Nodes: s.nodesVisited, Elapsed: time.Since(s.startTime)})
		}
		if s.stopConditions() {
			break
		}
		if len(actions) == 1 {
			break
		}
		if value >= ValueWin || value <= ValueLoss {
			break
		}
	}
	return &best
}

// rootSearch evaluates every action at the root with a full-window
// negamax call and returns the best one, reordering actions in place
// by the score just found so the next (deeper) iteration searches the
// strongest line first.
func (s *Search) rootSearch(b *Board, depth int, actions []Action) (Value, Action, bool) {
	alpha, beta := ValueMin, ValueMax
	bestValue := ValueMin - 1
	bestAction := actions[0]
	scores := make([]Value, len(actions))

	for i, a := range actions {
		value, ok := s.applyAndSearch(b, a, depth, 1, alpha, beta)
		scores[i] = value
		if !ok {
			return 0, Action{}, false
		}
		if value > bestValue {
			bestValue = value
			bestAction = a
			if value > alpha {
				alpha = value
			}
		}
	}

	order := make([]int, len(actions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return scores[order[i]] > scores[order[j]] })
	sorted := make([]Action, len(actions))
	for i, k := range order {
		sorted[i] = actions[k]
	}
	copy(actions, sorted)
	return bestValue, bestAction, true
}

// applyAndSearch performs one root or interior action, recurses, and
// undoes it, reporting ok=false if the search was aborted mid-recursion
// (ValueNA propagating up).
func (s *Search) applyAndSearch(b *Board, a Action, depth, ply int, alpha, beta Value) (Value, bool) {
	if a.Kind == ActionFlip {
		v := s.expectimaxFlip(b, a.From, depth, ply, alpha, beta)
		return v, v.IsValid()
	}
	b.DoAction(a)
	v := -s.search(b, depth-1, ply+1, -beta, -alpha)
	b.UndoAction()
	return v, v.IsValid()
}

// search is the interior negamax node: terminal and quiescence base
// cases, then a full move loop over ordered actions with flip actions
// resolved as expectimax chance nodes inline.
func (s *Search) search(b *Board, depth, ply int, alpha, beta Value) Value {
	s.nodesVisited++
	if s.stopConditions() {
		return ValueNA
	}

	switch b.GameStatus() {
	case Win:
		return ValueWin - Value(ply)
	case Loss:
		return ValueLoss + Value(ply)
	case Draw:
		return ValueDraw
	}

	if depth <= 0 {
		return s.qsearch(b, s.qDepth, ply, alpha, beta)
	}

	actions := orderedActions(b, b.SideToMove(), s, ply)
	best := ValueMin - 1

	for _, a := range actions {
		value, ok := s.applyAndSearch(b, a, depth, ply, alpha, beta)
		if !ok {
			return ValueNA
		}
		if value > best {
			best = value
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			if a.Kind != ActionCapture {
				s.storeKiller(ply, a)
				s.history[[2]Square{a.From, a.To}] += depth * depth
			}
			break
		}
	}
	return best
}

// qsearch extends the search with captures only, stand-pat bounded by
// a static evaluation, the same delta-pruning and MVV-LVA-ordered
// shape internal/search's quiescence uses.
func (s *Search) qsearch(b *Board, depth, ply int, alpha, beta Value) Value {
	s.nodesVisited++
	if s.stopConditions() {
		return ValueNA
	}

	standPat := evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if depth <= 0 {
		return alpha
	}

	captures := captureActions(b, b.SideToMove())
	sortByMVVLVA(b, captures)

	for _, a := range captures {
		victimValue := Value(PieceValues[victimOf(b, a).Kind])
		if standPat+victimValue < alpha-Value(PieceValues[xqtypes.Rook]) {
			continue // delta pruning: even winning the richest plausible capture can't raise alpha
		}
		b.DoAction(a)
		value := -s.qsearch(b, depth-1, ply+1, -beta, -alpha)
		b.UndoAction()
		if !value.IsValid() {
			return ValueNA
		}
		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}

func victimOf(b *Board, a Action) Piece {
	p, _ := b.Get(a.To)
	return p
}

// expectimaxFlip resolves a Flip action as a chance node: enumerate
// the distinct (kind, side) identities still unrevealed, weight each
// by its share of the hidden pool (or Monte-Carlo sample that
// distribution for higher difficulties), substitute the hypothesis
// into the flipped square, recurse, and average. Chance nodes are not
// alpha-beta pruned - each hypothesis is searched with a full window,
// a deliberate simplification over "star"-style pruned expectiminimax
// (see DESIGN.md).
func (s *Search) expectimaxFlip(b *Board, sq Square, depth, ply int, alpha, beta Value) Value {
	type hypothesis struct {
		piece  Piece
		weight float64
	}
	var pool []hypothesis
	total := b.totalHidden
	if total == 0 {
		return ValueDraw
	}
	for side := xqtypes.Red; side <= xqtypes.Black; side++ {
		for kind := xqtypes.King; kind < xqtypes.PieceTypeNone; kind++ {
			n := b.hiddenCount[side][kind]
			if n > 0 {
				pool = append(pool, hypothesis{piece: Piece{Kind: kind, Side: side}, weight: float64(n) / float64(total)})
			}
		}
	}
	if len(pool) == 0 {
		return ValueDraw
	}

	trueCell := b.grid[sq]
	evalOne := func(p Piece) Value {
		b.hiddenCount[p.Side][p.Kind]--
		b.totalHidden--
		b.grid[sq] = cell{piece: p, revealed: true}
		b.sideToMove = b.sideToMove.Flip()

		v := -s.search(b, depth-1, ply+1, -beta, -alpha)

		b.sideToMove = b.sideToMove.Flip()
		b.grid[sq] = trueCell
		b.hiddenCount[p.Side][p.Kind]++
		b.totalHidden++
		return v
	}

	if s.useMonteCarlo && s.mcSimulations > 0 && len(pool) > 1 {
		sum := 0.0
		for i := 0; i < s.mcSimulations; i++ {
			r := s.rng.Float64()
			acc := 0.0
			chosen := pool[len(pool)-1].piece
			for _, h := range pool {
				acc += h.weight
				if r <= acc {
					chosen = h.piece
					break
				}
			}
			v := evalOne(chosen)
			if !v.IsValid() {
				return ValueNA
			}
			sum += float64(v)
		}
		return Value(sum / float64(s.mcSimulations))
	}

	sum := 0.0
	for _, h := range pool {
		v := evalOne(h.piece)
		if !v.IsValid() {
			return ValueNA
		}
		sum += h.weight * float64(v)
	}
	return Value(sum)
}

func (s *Search) storeKiller(ply int, a Action) {
	if ply < 0 || ply >= maxPly {
		return
	}
	if s.killers[ply][0] == a {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = a
}
