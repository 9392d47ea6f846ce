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

package transpositiontable

import (
	"github.com/frankkopp/xiangqi/internal/xqtypes"
	"github.com/frankkopp/xiangqi/internal/zobrist"
)

// ValueType classifies how a stored value relates to the true
// minimax value of the node it was computed for.
type ValueType uint8

const (
	// ValueNone marks an empty or not-yet-classified entry.
	ValueNone ValueType = iota
	// Exact means value is the node's true minimax value.
	Exact
	// Upper means the true value is at most value (a fail-low / all-node).
	Upper
	// Lower means the true value is at least value (a fail-high / cut-node).
	Lower
)

// TtEntry is one transposition table slot, bit-packed to 16 bytes.
type TtEntry struct {
	key   zobrist.Key
	move  uint32 // xqtypes.Move minus its sort-value bits
	value int16
	eval  int16
	vmeta uint16 // depth:7 vtype:2 age:7
}

const (
	ageMask    = uint16(0b0000_0000_0111_1111)
	vtypeMask  = uint16(0b0000_0001_1000_0000)
	vtypeShift = uint16(7)
	depthMask  = uint16(0b1111_1110_0000_0000)
	depthShift = uint16(9)
)

func (e *TtEntry) Key() zobrist.Key { return e.key }

func (e *TtEntry) Move() xqtypes.Move { return xqtypes.Move(e.move) }

func (e *TtEntry) Value() int16 { return e.value }

func (e *TtEntry) Eval() int16 { return e.eval }

func (e *TtEntry) Depth() int8 { return int8((e.vmeta & depthMask) >> depthShift) }

func (e *TtEntry) Age() int8 { return int8(e.vmeta & ageMask) }

func (e *TtEntry) ValueType() ValueType { return ValueType((e.vmeta & vtypeMask) >> vtypeShift) }

func (e *TtEntry) increaseAge() {
	if e.Age() < 127 {
		e.vmeta++
	}
}

func (e *TtEntry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}
