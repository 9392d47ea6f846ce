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

import (
	"time"

	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

// Result is returned by StartSearch/WaitWhileSearching once a search
// has finished or been stopped.
type Result struct {
	BestMove    xqtypes.Move
	PonderMove  xqtypes.Move
	BestValue   Value
	SearchDepth int
	ExtraDepth  int
	Nodes       uint64
	SearchTime  time.Duration
}

// Info is reported to the registered callback at the end of each
// completed iteration, taking the place of a UCI info line since this
// engine has no network-facing protocol.
type Info struct {
	Depth    int
	SelDepth int
	Value    Value
	Mate     bool
	Nodes    uint64
	Nps      uint64
	Elapsed  time.Duration
	PV       []xqtypes.Move
}
