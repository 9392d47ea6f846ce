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

package xqtypes

import "fmt"

// Move is a packed (from, to, sort value) triple. Xiangqi has no
// castling, en passant or promotion, so unlike a western-chess move
// encoding the payload is just two 7-bit squares (0-89) plus a 16-bit
// signed sort value used only during move ordering, never persisted.
//
//  BITMAP 32-bit
//  |-value ------------------------|----------|-from--|--to---|
//  3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 | 1 1 1 1 1 1 1 1 1 1 0 0 0 0 0 0 0
//  1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 | 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
type Move uint32

const (
	toShift    = 0
	toMask     = 0x7F
	fromShift  = 7
	fromMask   = 0x7F << fromShift
	valueShift = 16
	valueMask  = 0xFFFF << valueShift
	moveMask   = toMask | fromMask
)

// MoveNone is the zero value: an empty, invalid move.
const MoveNone Move = 0

// NewMove encodes a from/to pair with no sort value.
func NewMove(from, to Square) Move {
	return Move(to)<<toShift | Move(from)<<fromShift
}

// NewMoveValue encodes a from/to pair together with a sort value used
// only for move ordering; it is shifted so it can be stored unsigned.
func NewMoveValue(from, to Square, value int16) Move {
	return Move(uint16(value))<<valueShift | Move(to)<<toShift | Move(from)<<fromShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// MoveOf strips the sort value, leaving only from/to.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// Value returns the encoded sort value.
func (m Move) Value() int16 {
	return int16((m & valueMask) >> valueShift)
}

// WithValue returns a copy of m with the sort value replaced.
func (m Move) WithValue(v int16) Move {
	return m.MoveOf() | Move(uint16(v))<<valueShift
}

// IsValid reports whether from/to are both on-board and distinct.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

func (m Move) String() string {
	if m == MoveNone {
		return "none"
	}
	return fmt.Sprintf("%s-%s", m.From(), m.To())
}
