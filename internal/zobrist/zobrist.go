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

// Package zobrist produces the deterministic per-(kind,side,square)
// hash keys used to maintain a Board's incremental Zobrist hash. Keys
// are generated once, at process start, from a fixed seed so that two
// processes (or two runs) always agree on the same key table.
package zobrist

import . "github.com/frankkopp/xiangqi/internal/xqtypes"

// Key is a 32-bit Zobrist hash value. 32 bits keeps collisions rare
// enough for a single engine instance's transposition table without
// the extra bookkeeping of a 64-bit key.
type Key uint32

// seed is the fixed 32-bit constant every process starts the PRNG
// from. Never change this without accepting that saved/replayed
// hashes from older binaries become meaningless.
const seed uint32 = 0x5EED_CAFE

// mulberry32 generates the key table: add 0x6D2B79F5, two
// odd-multiply mixes, final xorshift. Pinned bit-for-bit so
// independent builds of this engine produce identical key tables.
type mulberry32 struct {
	state uint32
}

func newMulberry32(seed uint32) *mulberry32 {
	return &mulberry32{state: seed}
}

func (m *mulberry32) next() uint32 {
	m.state += 0x6D2B79F5
	z := m.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return z ^ (z >> 14)
}

// PieceKey holds one key per (kind, side, row, col).
var PieceKey [PieceTypeLength][2][NumRows][NumCols]Key

// SideKey is XORed into the hash once per ply (on every move/unmake).
var SideKey Key

func init() {
	r := newMulberry32(seed)
	for pt := 0; pt < PieceTypeLength; pt++ {
		for side := 0; side < 2; side++ {
			for row := 0; row < NumRows; row++ {
				for col := 0; col < NumCols; col++ {
					PieceKey[pt][side][row][col] = Key(r.next())
				}
			}
		}
	}
	SideKey = Key(r.next())
}

// KeyOf returns the Zobrist key for a piece standing on a square.
// Callers must not call this for PieceNone.
func KeyOf(p Piece, sq Square) Key {
	return PieceKey[p.Type][p.Side][sq.Row()][sq.Col()]
}
