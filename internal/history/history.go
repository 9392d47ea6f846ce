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

// Package history provides move-ordering tables updated during search:
// a from/to history counter used to break ties between quiet moves,
// and per-ply killer moves.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

var out = message.NewPrinter(language.German)

const maxSaturation = 500_000

// maxPly bounds the killer-move table; a Xiangqi search is never
// meaningfully deeper than this.
const maxPly = 128

// History tracks, per side and per from/to square pair, how often a
// quiet move has caused a beta cutoff, plus the two most recent killer
// moves at each ply.
type History struct {
	Count   [2][xqtypes.NumSquares][xqtypes.NumSquares]uint32
	Killers [maxPly][2]xqtypes.Move
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Update records a beta cutoff at the given depth, adding depth^2 to
// the counter and saturating at maxSaturation so a few very deep
// cutoffs cannot permanently dominate move ordering.
func (h *History) Update(side xqtypes.Color, m xqtypes.Move, depth int) {
	bonus := uint32(depth * depth)
	from, to := m.From(), m.To()
	v := h.Count[side][from][to]
	if v+bonus > maxSaturation {
		h.Count[side][from][to] = maxSaturation
	} else {
		h.Count[side][from][to] = v + bonus
	}
}

// Value returns the current history count for a move, used as a
// move-ordering tiebreaker among non-killer quiet moves.
func (h *History) Value(side xqtypes.Color, m xqtypes.Move) uint32 {
	return h.Count[side][m.From()][m.To()]
}

// StoreKiller records m as the newest killer at ply, shifting the
// previous newest into the second slot (unless m is already stored).
func (h *History) StoreKiller(ply int, m xqtypes.Move) {
	if ply < 0 || ply >= maxPly {
		return
	}
	if h.Killers[ply][0] == m {
		return
	}
	h.Killers[ply][1] = h.Killers[ply][0]
	h.Killers[ply][0] = m
}

// KillersAt returns the two killer moves stored for ply.
func (h *History) KillersAt(ply int) (xqtypes.Move, xqtypes.Move) {
	if ply < 0 || ply >= maxPly {
		return xqtypes.MoveNone, xqtypes.MoveNone
	}
	return h.Killers[ply][0], h.Killers[ply][1]
}

// Clear resets every counter and killer slot, run between searches of
// unrelated positions.
func (h *History) Clear() {
	*h = History{}
}

func (h *History) String() string {
	var sb strings.Builder
	for side := 0; side < 2; side++ {
		for from := 0; from < xqtypes.NumSquares; from++ {
			for to := 0; to < xqtypes.NumSquares; to++ {
				if h.Count[side][from][to] == 0 {
					continue
				}
				sb.WriteString(out.Sprintf("side=%d %d-%d: %d\n", side, from, to, h.Count[side][from][to]))
			}
		}
	}
	return sb.String()
}
