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

import "fmt"

// Statistics accumulates counters for one search run, useful in tests
// and for diagnosing why a given move was chosen.
type Statistics struct {
	Nodes  uint64
	QNodes uint64

	TTProbes uint64
	TTHits   uint64
	TTCuts   uint64

	NullMoveCuts   uint64
	FutilityPrunes uint64
	LmrReductions  uint64
	LmrResearches  uint64

	BetaCuts    uint64
	BetaCuts1st uint64

	Checkmates uint64
	Stalemates uint64

	AspirationResearches uint64

	CurrentIterationDepth int
	CurrentSearchDepth    int
}

// Clear resets every counter, run at the start of each new search.
func (st *Statistics) Clear() {
	*st = Statistics{}
}

func (st *Statistics) String() string {
	return fmt.Sprintf(
		"nodes=%d qnodes=%d ttHits=%d ttCuts=%d nullMoveCuts=%d fp=%d lmr=%d betaCuts=%d (1st=%d) mates=%d stalemates=%d",
		st.Nodes, st.QNodes, st.TTHits, st.TTCuts, st.NullMoveCuts, st.FutilityPrunes,
		st.LmrReductions, st.BetaCuts, st.BetaCuts1st, st.Checkmates, st.Stalemates)
}
