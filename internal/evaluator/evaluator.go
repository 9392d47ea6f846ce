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

// Package evaluator scores a Xiangqi position from the view of the
// side to move, blending several heuristics tapered across the game
// phase: material, piece-square tables, king safety, piece activity,
// king tropism, pawn structure, rook-on-open-file, cannon screens,
// horse mobility and king exposure, plus a small randomness jitter at
// shallow search depths.
package evaluator

import (
	"math/rand"

	"github.com/op/go-logging"

	"github.com/frankkopp/xiangqi/internal/board"
	"github.com/frankkopp/xiangqi/internal/config"
	myLogging "github.com/frankkopp/xiangqi/internal/logging"
	"github.com/frankkopp/xiangqi/internal/movegen"
	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

// Evaluator holds the scratch state reused across Evaluate calls.
type Evaluator struct {
	log *logging.Logger

	b    *board.Board
	us   xqtypes.Color
	them xqtypes.Color

	score xqtypes.Score
}

// NewEvaluator creates an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// Evaluate scores b from the perspective of the side to move. Higher
// is better for b.NextPlayer().
func (e *Evaluator) Evaluate(b *board.Board) int {
	e.b = b
	e.us = b.NextPlayer()
	e.them = e.us.Flip()
	e.score = xqtypes.Score{}

	e.material()
	e.pst()
	if config.Settings.Eval.UseCheckBonus {
		e.checkBonus()
	}
	if config.Settings.Eval.UseKingSafety {
		e.kingSafety()
	}
	if config.Settings.Eval.UseActivity {
		e.activity()
	}
	if config.Settings.Eval.UseTropism {
		e.tropism()
	}
	if config.Settings.Eval.UsePawnStructure {
		e.pawnStructure()
	}
	if config.Settings.Eval.UseRookOpenFile {
		e.rookOpenFile()
	}
	if config.Settings.Eval.UseCannonScreens {
		e.cannonScreens()
	}
	if config.Settings.Eval.UseHorseMobility {
		e.horseMobility()
	}
	if config.Settings.Eval.UseKingExposure {
		e.kingExposure()
	}

	value := e.score.Tapered(b.GamePhase() * 256 / xqtypes.TotalPhase)
	return value
}

// EvaluateWithJitter adds a small random jitter to the static
// evaluation, used only at shallow search depths to vary play between
// otherwise equally-scored moves (the depth-1 randomness knob).
func (e *Evaluator) EvaluateWithJitter(b *board.Board, amplitude int) int {
	v := e.Evaluate(b)
	if amplitude <= 0 {
		return v
	}
	return v + rand.Intn(2*amplitude+1) - amplitude
}

func (e *Evaluator) material() {
	e.score.Mid += e.b.Material(e.us) - e.b.Material(e.them)
	e.score.End += e.b.Material(e.us) - e.b.Material(e.them)
}

func (e *Evaluator) pst() {
	e.score.Mid += e.b.PsqMid(e.us) - e.b.PsqMid(e.them)
	e.score.End += e.b.PsqEnd(e.us) - e.b.PsqEnd(e.them)
}

func (e *Evaluator) checkBonus() {
	bonus := int(config.Settings.Eval.CheckBonus)
	if movegen.IsSquareAttacked(e.b, e.b.KingSquare(e.them), e.us) {
		e.score.Add(xqtypes.Score{Mid: bonus, End: bonus})
	}
	if movegen.IsSquareAttacked(e.b, e.b.KingSquare(e.us), e.them) {
		e.score.Sub(xqtypes.Score{Mid: bonus, End: bonus})
	}
}

// kingSafety rewards an intact defensive screen of advisors and
// elephants and penalizes a side that has lost them.
func (e *Evaluator) kingSafety() {
	for _, side := range [2]xqtypes.Color{e.us, e.them} {
		sign := 1
		if side == e.them {
			sign = -1
		}
		advisors := e.b.PieceCount(side, xqtypes.Advisor)
		elephants := e.b.PieceCount(side, xqtypes.Elephant)
		v := 0
		if advisors >= 1 {
			v += int(config.Settings.Eval.AdvisorPresentBonus)
		} else {
			v -= int(config.Settings.Eval.MissingAdvisorMalus)
		}
		if advisors >= 2 {
			v += int(config.Settings.Eval.BothAdvisorsBonus)
		}
		if elephants >= 1 {
			v += int(config.Settings.Eval.ElephantPresentBonus)
		} else {
			v -= int(config.Settings.Eval.MissingElephantMalus)
		}
		if elephants >= 2 {
			v += int(config.Settings.Eval.BothElephantsBonus)
		}
		e.score.Add(xqtypes.Score{Mid: sign * v, End: sign * v})
	}
}

// activity rewards rooks, horses and cannons that have advanced past
// the river, where they threaten the opponent's camp.
func (e *Evaluator) activity() {
	for row := 0; row < xqtypes.NumRows; row++ {
		for col := 0; col < xqtypes.NumCols; col++ {
			p := e.b.Get(xqtypes.NewSquare(row, col))
			if p.IsNone() || !xqtypes.HasCrossedRiver(p.Side, row) {
				continue
			}
			var bonus int
			switch p.Type {
			case xqtypes.Rook:
				bonus = int(config.Settings.Eval.RookActivity)
			case xqtypes.Horse:
				bonus = int(config.Settings.Eval.HorseActivity)
			case xqtypes.Cannon:
				bonus = int(config.Settings.Eval.CannonActivity)
			default:
				continue
			}
			sign := 1
			if p.Side != e.us {
				sign = -1
			}
			e.score.Add(xqtypes.Score{Mid: sign * bonus, End: sign * bonus})
		}
	}
}

// tropism rewards attacking pieces standing close to the enemy king.
func (e *Evaluator) tropism() {
	maxDist := config.Settings.Eval.TropismMaxDist
	for row := 0; row < xqtypes.NumRows; row++ {
		for col := 0; col < xqtypes.NumCols; col++ {
			sq := xqtypes.NewSquare(row, col)
			p := e.b.Get(sq)
			if p.IsNone() || p.Type == xqtypes.King || p.Type == xqtypes.Advisor || p.Type == xqtypes.Elephant {
				continue
			}
			enemyKing := e.b.KingSquare(p.Side.Flip())
			if !enemyKing.IsValid() {
				continue
			}
			dist := xqtypes.ManhattanDistance(sq, enemyKing)
			if dist > maxDist {
				continue
			}
			bonus := maxDist - dist
			sign := 1
			if p.Side != e.us {
				sign = -1
			}
			e.score.Add(xqtypes.Score{Mid: sign * bonus, End: sign * bonus})
		}
	}
}

// pawnStructure rewards pawns that stand beside another friendly pawn
// on an adjacent file, since isolated pawns fall more easily.
func (e *Evaluator) pawnStructure() {
	bonus := int(config.Settings.Eval.ConnectedPawnBonus)
	for row := 0; row < xqtypes.NumRows; row++ {
		for col := 0; col < xqtypes.NumCols; col++ {
			p := e.b.Get(xqtypes.NewSquare(row, col))
			if p.IsNone() || p.Type != xqtypes.Pawn {
				continue
			}
			connected := false
			for _, dc := range [2]int{-1, 1} {
				if !xqtypes.OnBoard(row, col+dc) {
					continue
				}
				n := e.b.Get(xqtypes.NewSquare(row, col+dc))
				if !n.IsNone() && n.Type == xqtypes.Pawn && n.Side == p.Side {
					connected = true
				}
			}
			if !connected {
				continue
			}
			sign := 1
			if p.Side != e.us {
				sign = -1
			}
			e.score.Add(xqtypes.Score{Mid: sign * bonus, End: sign * bonus})
		}
	}
}

// rookOpenFile rewards a rook standing on a file with no pawns of
// either side on it.
func (e *Evaluator) rookOpenFile() {
	bonus := int(config.Settings.Eval.RookOpenFileBonus)
	for col := 0; col < xqtypes.NumCols; col++ {
		open := true
		for row := 0; row < xqtypes.NumRows; row++ {
			p := e.b.Get(xqtypes.NewSquare(row, col))
			if !p.IsNone() && p.Type == xqtypes.Pawn {
				open = false
				break
			}
		}
		if !open {
			continue
		}
		for row := 0; row < xqtypes.NumRows; row++ {
			p := e.b.Get(xqtypes.NewSquare(row, col))
			if p.IsNone() || p.Type != xqtypes.Rook {
				continue
			}
			sign := 1
			if p.Side != e.us {
				sign = -1
			}
			e.score.Add(xqtypes.Score{Mid: sign * bonus, End: sign * bonus})
		}
	}
}

// cannonScreens rewards a cannon that has several potential screens
// available on its own file/rank, a rough proxy for attacking
// potential since a cannon is useless without a screen to jump.
func (e *Evaluator) cannonScreens() {
	maxCount := config.Settings.Eval.CannonScreenCountMax
	bonus := int(config.Settings.Eval.CannonScreenBonus)
	for row := 0; row < xqtypes.NumRows; row++ {
		for col := 0; col < xqtypes.NumCols; col++ {
			p := e.b.Get(xqtypes.NewSquare(row, col))
			if p.IsNone() || p.Type != xqtypes.Cannon {
				continue
			}
			count := 0
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				r, c := row+d[0], col+d[1]
				for xqtypes.OnBoard(r, c) {
					if !e.b.Get(xqtypes.NewSquare(r, c)).IsNone() {
						count++
						break
					}
					r, c = r+d[0], c+d[1]
				}
			}
			if count > maxCount {
				count = maxCount
			}
			v := count * bonus
			sign := 1
			if p.Side != e.us {
				sign = -1
			}
			e.score.Add(xqtypes.Score{Mid: sign * v, End: sign * v})
		}
	}
}

// horseMobility rewards a horse for each of its four orthogonal leg
// squares that is empty and penalizes it for each one that is occupied;
// leg squares off the board count neither way.
func (e *Evaluator) horseMobility() {
	base := int(config.Settings.Eval.HorseMobilityBase)
	malus := int(config.Settings.Eval.HorseBlockedLegMalus)
	for row := 0; row < xqtypes.NumRows; row++ {
		for col := 0; col < xqtypes.NumCols; col++ {
			p := e.b.Get(xqtypes.NewSquare(row, col))
			if p.IsNone() || p.Type != xqtypes.Horse {
				continue
			}
			free := 0
			blocked := 0
			for _, leg := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				lr, lc := row+leg[0], col+leg[1]
				if !xqtypes.OnBoard(lr, lc) {
					continue
				}
				if e.b.Get(xqtypes.NewSquare(lr, lc)).IsNone() {
					free++
				} else {
					blocked++
				}
			}
			v := free*base - blocked*malus
			sign := 1
			if p.Side != e.us {
				sign = -1
			}
			e.score.Add(xqtypes.Score{Mid: sign * v, End: sign * v})
		}
	}
}

// kingExposure penalizes a king that an enemy rook or cannon could
// reach along a clear file, walking forward from the king (toward row 0
// for Red, toward row 9 for Black).
func (e *Evaluator) kingExposure() {
	rookMalus := int(config.Settings.Eval.KingExposureRookMalus)
	cannonMalus := int(config.Settings.Eval.KingExposureCannonMalus)
	for _, side := range [2]xqtypes.Color{e.us, e.them} {
		king := e.b.KingSquare(side)
		if !king.IsValid() {
			continue
		}
		sign := -1
		if side == e.them {
			sign = 1
		}
		col := king.Col()
		step := side.Direction()
		blockers := 0
		for row := king.Row() + step; row >= 0 && row < xqtypes.NumRows; row += step {
			p := e.b.Get(xqtypes.NewSquare(row, col))
			if p.IsNone() {
				continue
			}
			blockers++
			if blockers == 1 && p.Side != side && p.Type == xqtypes.Rook {
				e.score.Add(xqtypes.Score{Mid: sign * rookMalus, End: sign * rookMalus})
			}
			if blockers == 2 && p.Side != side && p.Type == xqtypes.Cannon {
				e.score.Add(xqtypes.Score{Mid: sign * cannonMalus, End: sign * cannonMalus})
			}
			if blockers > 2 {
				break
			}
		}
	}
}
