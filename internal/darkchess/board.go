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
	"math/rand"
	"strings"

	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

// maxHistory bounds the fixed-size undo array, mirroring
// internal/board's sizing rationale: a Banqi game running this long
// is vanishingly unlikely.
const maxHistory = 1024

// DrawActionLimit is the number of actions without a capture after
// which the game is declared a draw.
const DrawActionLimit = 50

// cell is one of the 32 board squares.
type cell struct {
	piece    Piece
	revealed bool
}

// ActionKind distinguishes the three action shapes a turn can take.
type ActionKind int8

const (
	ActionFlip ActionKind = iota
	ActionMove
	ActionCapture
)

func (k ActionKind) String() string {
	switch k {
	case ActionFlip:
		return "flip"
	case ActionMove:
		return "move"
	case ActionCapture:
		return "capture"
	default:
		return "?"
	}
}

// Action is one legal turn: a flip (From == To, the unrevealed square
// to turn over), a move to an empty square, or a capture of an enemy
// revealed (or, for a cannon jump, still-hidden) piece.
type Action struct {
	Kind     ActionKind
	From, To Square
}

func (a Action) String() string {
	if a.Kind == ActionFlip {
		return "flip " + a.From.String()
	}
	return a.Kind.String() + " " + a.From.String() + a.To.String()
}

// actionRecord captures everything DoAction needs to undo an action.
type actionRecord struct {
	action              Action
	capturedPiece       Piece
	capturedWasRevealed bool
	actionsSinceCapture int
}

// Board is one Banqi position: the 32-cell grid, whose turn it is, how
// many pieces of each hidden kind remain face down (for expectimax
// enumeration), and a fixed-size undo history.
type Board struct {
	grid       [NumSquares]cell
	sideToMove xqtypes.Color

	pieceCount  [2]int
	hiddenCount [2][xqtypes.PieceTypeLength]int
	totalHidden int

	actionsSinceCapture int

	historyCounter int
	history        [maxHistory]actionRecord
}

// newEmptyBoard returns a Board with every square explicitly marked
// empty. Piece's zero value is not PieceNone (xqtypes.King is the
// zero PieceType), so every constructor must populate the grid rather
// than rely on a bare &Board{} - the same discipline internal/board
// follows for xqtypes.Piece.
func newEmptyBoard(side xqtypes.Color) *Board {
	b := &Board{sideToMove: side}
	for sq := range b.grid {
		b.grid[sq] = cell{piece: PieceNone}
	}
	return b
}

// NewBoard deals a freshly shuffled Banqi position using rng for the
// initial face-down order. Red moves first, as in Xiangqi.
func NewBoard(rng *rand.Rand) *Board {
	b := newEmptyBoard(xqtypes.Red)

	var bag []Piece
	for _, side := range [2]xqtypes.Color{xqtypes.Red, xqtypes.Black} {
		for kind, count := range inventory {
			for i := 0; i < count; i++ {
				bag = append(bag, Piece{Kind: kind, Side: side})
			}
			b.hiddenCount[side][kind] = count
			b.pieceCount[side] += count
		}
	}
	b.totalHidden = len(bag)

	rng.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })
	for sq, p := range bag {
		b.grid[sq] = cell{piece: p, revealed: false}
	}
	return b
}

// Get returns the piece occupying sq (PieceNone if empty) and whether
// it is currently revealed.
func (b *Board) Get(sq Square) (Piece, bool) {
	c := b.grid[sq]
	return c.piece, c.revealed
}

// SideToMove returns whose turn it is.
func (b *Board) SideToMove() xqtypes.Color {
	return b.sideToMove
}

// PieceCount returns how many pieces (revealed or not) a side still
// has on the board.
func (b *Board) PieceCount(side xqtypes.Color) int {
	return b.pieceCount[side]
}

// ActionsSinceCapture returns the running count toward DrawActionLimit.
func (b *Board) ActionsSinceCapture() int {
	return b.actionsSinceCapture
}

// HiddenCount returns how many unrevealed pieces of the given kind and
// side remain on the board, used by the search's expectimax flip-node
// enumeration.
func (b *Board) HiddenCount(side xqtypes.Color, kind xqtypes.PieceType) int {
	return b.hiddenCount[side][kind]
}

// TotalHidden returns how many squares are still face down.
func (b *Board) TotalHidden() int {
	return b.totalHidden
}

// DoAction commits an action to the board. The action is assumed
// legal already - callers must filter through LegalActions first.
func (b *Board) DoAction(a Action) {
	h := &b.history[b.historyCounter]
	h.action = a
	h.actionsSinceCapture = b.actionsSinceCapture
	h.capturedPiece = PieceNone
	b.historyCounter++

	switch a.Kind {
	case ActionFlip:
		c := &b.grid[a.From]
		c.revealed = true
		b.hiddenCount[c.piece.Side][c.piece.Kind]--
		b.totalHidden--
		b.actionsSinceCapture++
	case ActionMove:
		b.grid[a.To] = b.grid[a.From]
		b.grid[a.From] = cell{piece: PieceNone}
		b.actionsSinceCapture++
	case ActionCapture:
		target := b.grid[a.To]
		h.capturedPiece = target.piece
		h.capturedWasRevealed = target.revealed
		if !target.revealed {
			b.hiddenCount[target.piece.Side][target.piece.Kind]--
			b.totalHidden--
		}
		b.pieceCount[target.piece.Side]--
		b.grid[a.To] = b.grid[a.From]
		b.grid[a.From] = cell{piece: PieceNone}
		b.actionsSinceCapture = 0
	}

	b.sideToMove = b.sideToMove.Flip()
}

// UndoAction reverts the most recent DoAction.
func (b *Board) UndoAction() {
	b.historyCounter--
	h := &b.history[b.historyCounter]
	a := h.action

	b.sideToMove = b.sideToMove.Flip()

	switch a.Kind {
	case ActionFlip:
		c := &b.grid[a.From]
		c.revealed = false
		b.hiddenCount[c.piece.Side][c.piece.Kind]++
		b.totalHidden++
	case ActionMove:
		b.grid[a.From] = b.grid[a.To]
		b.grid[a.To] = cell{piece: PieceNone}
	case ActionCapture:
		b.grid[a.From] = b.grid[a.To]
		b.grid[a.To] = cell{piece: h.capturedPiece, revealed: h.capturedWasRevealed}
		if !h.capturedWasRevealed {
			b.hiddenCount[h.capturedPiece.Side][h.capturedPiece.Kind]++
			b.totalHidden++
		}
		b.pieceCount[h.capturedPiece.Side]++
	}

	b.actionsSinceCapture = h.actionsSinceCapture
}

// Status reports the game's outcome from sideToMove's point of view.
type Status int

const (
	Playing Status = iota
	Win
	Loss
	Draw
)

// GameStatus reports whether the game has ended for the side whose
// turn it currently is: it loses immediately if it owns no pieces,
// wins if the opponent owns none, loses if it has no legal action,
// and the game is a draw once DrawActionLimit actions have passed
// without a capture.
func (b *Board) GameStatus() Status {
	opp := b.sideToMove.Flip()
	if b.pieceCount[opp] == 0 {
		return Win
	}
	if b.pieceCount[b.sideToMove] == 0 {
		return Loss
	}
	if b.actionsSinceCapture >= DrawActionLimit {
		return Draw
	}
	if len(LegalActions(b, b.sideToMove)) == 0 {
		return Loss
	}
	return Playing
}

// String renders the board as a 4x8 ASCII grid, capital letters for
// Red, lowercase for Black, '?' for a still face-down piece and '.'
// for an empty square.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			c := b.grid[NewSquare(row, col)]
			switch {
			case c.piece.IsNone():
				sb.WriteByte('.')
			case !c.revealed:
				sb.WriteByte('?')
			default:
				sb.WriteString(c.piece.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
