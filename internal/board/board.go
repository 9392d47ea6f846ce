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

// Package board represents the Xiangqi board and its position: a plain
// 10x9 grid (no bitboards), a zobrist key updated incrementally with
// every piece placement and removal, cached king squares, tapered
// material/positional value counters and a fixed-size history array
// for make/unmake and repetition detection.
//
// Create a new instance with NewBoard() for the standard starting
// position.
package board

import (
	"fmt"
	"strings"

	"github.com/frankkopp/xiangqi/internal/assert"
	"github.com/frankkopp/xiangqi/internal/xqtypes"
	"github.com/frankkopp/xiangqi/internal/zobrist"
)

// maxHistory bounds the fixed-size undo array. A Xiangqi game that
// exceeds this many half-moves is vanishingly unlikely; the array is
// sized generously rather than backed by a growable slice.
const maxHistory = 1024

// state flags for the cached check flag.
const (
	flagTBD   int = 0
	flagFalse int = 1
	flagTrue  int = 2
)

// historyState captures everything DoMove needs to undo a move plus
// whatever cached flags must be restored with it.
type historyState struct {
	zobristKey    zobrist.Key
	move          xqtypes.Move
	fromPiece     xqtypes.Piece
	capturedPiece xqtypes.Piece
	hasCheckFlag  int
}

// Board represents one Xiangqi position.
type Board struct {
	zobristKey zobrist.Key

	grid       [xqtypes.NumRows][xqtypes.NumCols]xqtypes.Piece
	nextPlayer xqtypes.Color

	kingSquare [2]xqtypes.Square

	historyCounter int
	history        [maxHistory]historyState

	material    [2]int
	psqMid      [2]int
	psqEnd      [2]int
	gamePhase   int
	pieceCounts [2][xqtypes.PieceTypeLength]int

	hasCheckFlag int
}

// newEmptyBoard returns a Board with every square explicitly marked
// empty. Piece's zero value is not PieceNone (xqtypes.King is the
// zero PieceType), so every constructor must populate the grid rather
// than rely on a bare &Board{}.
func newEmptyBoard() *Board {
	b := &Board{}
	for row := range b.grid {
		for col := range b.grid[row] {
			b.grid[row][col] = xqtypes.PieceNone
		}
	}
	b.kingSquare[xqtypes.Red] = xqtypes.SquareNone
	b.kingSquare[xqtypes.Black] = xqtypes.SquareNone
	b.hasCheckFlag = flagTBD
	return b
}

// NewBoard returns a Board set up in the standard Xiangqi starting
// position.
func NewBoard() *Board {
	b := newEmptyBoard()
	for _, p := range xqtypes.InitialLayout {
		b.putPiece(p.Piece, p.Square)
	}
	b.nextPlayer = xqtypes.Red
	return b
}

// Get returns the piece on the given square, or PieceNone if empty.
func (b *Board) Get(sq xqtypes.Square) xqtypes.Piece {
	return b.grid[sq.Row()][sq.Col()]
}

// NextPlayer returns the side to move.
func (b *Board) NextPlayer() xqtypes.Color {
	return b.nextPlayer
}

// ZobristKey returns the incrementally maintained hash of the current
// position (board contents and side to move).
func (b *Board) ZobristKey() zobrist.Key {
	return b.zobristKey
}

// KingSquare returns the square of the given side's king, or
// SquareNone if it has somehow been removed from the board.
func (b *Board) KingSquare(c xqtypes.Color) xqtypes.Square {
	return b.kingSquare[c]
}

// Material returns the raw piece-value sum for a side (no positional
// component).
func (b *Board) Material(c xqtypes.Color) int {
	return b.material[c]
}

// PsqMid and PsqEnd return the accumulated piece-square values for a
// side at each taper end.
func (b *Board) PsqMid(c xqtypes.Color) int { return b.psqMid[c] }
func (b *Board) PsqEnd(c xqtypes.Color) int { return b.psqEnd[c] }

// GamePhase returns the current game-phase scalar: the sum of
// xqtypes.PhaseWeights over the pieces on the board, capped at
// xqtypes.TotalPhase.
func (b *Board) GamePhase() int {
	phase := 0
	for side := range b.pieceCounts {
		for pt, n := range b.pieceCounts[side] {
			phase += n * xqtypes.PhaseWeights[pt]
		}
	}
	if phase > xqtypes.TotalPhase {
		phase = xqtypes.TotalPhase
	}
	return phase
}

// PieceCount returns how many pieces of the given kind and side remain
// on the board.
func (b *Board) PieceCount(c xqtypes.Color, pt xqtypes.PieceType) int {
	return b.pieceCounts[c][pt]
}

// CachedCheck returns the tri-state cached check flag: known reports
// whether a prior call to SetCachedCheck has already settled it for
// the current position, and inCheck is only meaningful when known is
// true. The movegen package owns computing the actual value; the
// board only stores it so repeated HasCheck queries within the same
// node don't re-scan the board.
func (b *Board) CachedCheck() (known, inCheck bool) {
	switch b.hasCheckFlag {
	case flagTrue:
		return true, true
	case flagFalse:
		return true, false
	default:
		return false, false
	}
}

// SetCachedCheck records the result of a check computation for the
// current position so later calls this node can skip recomputing it.
func (b *Board) SetCachedCheck(inCheck bool) {
	if inCheck {
		b.hasCheckFlag = flagTrue
	} else {
		b.hasCheckFlag = flagFalse
	}
}

// LastMove returns the most recently made move, or MoveNone if no move
// has been made yet.
func (b *Board) LastMove() xqtypes.Move {
	if b.historyCounter == 0 {
		return xqtypes.MoveNone
	}
	return b.history[b.historyCounter-1].move
}

// DoMove commits a move to the board. The move is assumed pseudo-legal
// already - legality (king safety, kings-facing) is the movegen
// package's concern, not the board's.
func (b *Board) DoMove(m xqtypes.Move) {
	fromSq := m.From()
	toSq := m.To()
	fromPc := b.Get(fromSq)
	targetPc := b.Get(toSq)

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Board DoMove: invalid move %s", m.String())
		assert.Assert(!fromPc.IsNone(), "Board DoMove: no piece on %s for move %s", fromSq.String(), m.String())
		assert.Assert(fromPc.Side == b.nextPlayer, "Board DoMove: piece to move does not belong to side to move")
		assert.Assert(targetPc.IsNone() || targetPc.Type != xqtypes.King, "Board DoMove: king cannot be captured")
	}

	h := &b.history[b.historyCounter]
	h.zobristKey = b.zobristKey
	h.move = m
	h.fromPiece = fromPc
	h.capturedPiece = targetPc
	h.hasCheckFlag = b.hasCheckFlag
	b.historyCounter++

	if !targetPc.IsNone() {
		b.removePiece(toSq)
	}
	b.removePiece(fromSq)
	b.putPiece(fromPc, toSq)

	b.hasCheckFlag = flagTBD
	b.nextPlayer = b.nextPlayer.Flip()
	b.zobristKey ^= zobrist.SideKey
}

// UndoMove reverts the most recent DoMove.
func (b *Board) UndoMove() {
	if assert.DEBUG {
		assert.Assert(b.historyCounter > 0, "Board UndoMove: no move to undo")
	}
	b.historyCounter--
	h := &b.history[b.historyCounter]

	b.removePiece(h.move.To())
	b.putPiece(h.fromPiece, h.move.From())
	if !h.capturedPiece.IsNone() {
		b.putPiece(h.capturedPiece, h.move.To())
	}

	b.nextPlayer = b.nextPlayer.Flip()
	b.hasCheckFlag = h.hasCheckFlag
	b.zobristKey = h.zobristKey
}

// DoNullMove flips the side to move without changing the board,
// recorded to history so UndoNullMove can restore it. Used by the
// search's null-move pruning.
func (b *Board) DoNullMove() {
	h := &b.history[b.historyCounter]
	h.zobristKey = b.zobristKey
	h.move = xqtypes.MoveNone
	h.fromPiece = xqtypes.PieceNone
	h.capturedPiece = xqtypes.PieceNone
	h.hasCheckFlag = b.hasCheckFlag
	b.historyCounter++

	b.hasCheckFlag = flagTBD
	b.nextPlayer = b.nextPlayer.Flip()
	b.zobristKey ^= zobrist.SideKey
}

// UndoNullMove reverts DoNullMove.
func (b *Board) UndoNullMove() {
	b.historyCounter--
	h := &b.history[b.historyCounter]
	b.nextPlayer = b.nextPlayer.Flip()
	b.hasCheckFlag = h.hasCheckFlag
	b.zobristKey = h.zobristKey
}

func (b *Board) putPiece(p xqtypes.Piece, sq xqtypes.Square) {
	if assert.DEBUG {
		assert.Assert(b.Get(sq).IsNone(), "Board putPiece: square %s already occupied", sq.String())
	}
	b.grid[sq.Row()][sq.Col()] = p
	if p.Type == xqtypes.King {
		b.kingSquare[p.Side] = sq
	}
	b.pieceCounts[p.Side][p.Type]++
	b.zobristKey ^= zobrist.KeyOf(p, sq)
	b.gamePhase += xqtypes.PhaseWeights[p.Type]
	if b.gamePhase > xqtypes.TotalPhase {
		b.gamePhase = xqtypes.TotalPhase
	}
	b.material[p.Side] += int(xqtypes.PieceValues[p.Type])
	row, col := sq.Row(), sq.Col()
	if p.Side == xqtypes.Black {
		row = xqtypes.MirrorRow(row)
	}
	b.psqMid[p.Side] += int(xqtypes.PstMid[p.Type][row][col])
	b.psqEnd[p.Side] += int(xqtypes.PstEnd[p.Type][row][col])
}

func (b *Board) removePiece(sq xqtypes.Square) xqtypes.Piece {
	p := b.Get(sq)
	if assert.DEBUG {
		assert.Assert(!p.IsNone(), "Board removePiece: square %s already empty", sq.String())
	}
	b.grid[sq.Row()][sq.Col()] = xqtypes.PieceNone
	if p.Type == xqtypes.King {
		b.kingSquare[p.Side] = xqtypes.SquareNone
	}
	b.pieceCounts[p.Side][p.Type]--
	b.zobristKey ^= zobrist.KeyOf(p, sq)
	b.gamePhase -= xqtypes.PhaseWeights[p.Type]
	if b.gamePhase < 0 {
		b.gamePhase = 0
	}
	b.material[p.Side] -= int(xqtypes.PieceValues[p.Type])
	row, col := sq.Row(), sq.Col()
	if p.Side == xqtypes.Black {
		row = xqtypes.MirrorRow(row)
	}
	b.psqMid[p.Side] -= int(xqtypes.PstMid[p.Type][row][col])
	b.psqEnd[p.Side] -= int(xqtypes.PstEnd[p.Type][row][col])
	return p
}

// CheckRepetitions returns true if the current position has occurred
// at least reps times before, scanning the fixed-size history array
// backwards two half-moves at a time (only a side's own prior turns
// can repeat the current position).
func (b *Board) CheckRepetitions(reps int) bool {
	counter := 0
	for i := b.historyCounter - 2; i >= 0; i -= 2 {
		if b.history[i].zobristKey == b.zobristKey {
			counter++
			if counter >= reps {
				return true
			}
		}
	}
	return false
}

// String renders the board as a 10x9 ASCII grid, Red pieces uppercase
// and Black lowercase, matching xqtypes.Piece.String.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < xqtypes.NumRows; row++ {
		for col := 0; col < xqtypes.NumCols; col++ {
			p := b.grid[row][col]
			if p.IsNone() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%s ", p.String()))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
