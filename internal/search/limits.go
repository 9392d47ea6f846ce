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

	"github.com/frankkopp/xiangqi/internal/config"
)

// Limits controls how long and how deep a search may run. Only one of
// Depth, MoveTime or the WhiteTime/BlackTime clocks needs to be set;
// StartSearch figures out a time budget from whichever is present.
type Limits struct {
	// Infinite disables all time and depth bounds; the caller must
	// stop the search explicitly.
	Infinite bool

	// Depth caps the iterative deepening loop; 0 means no cap.
	Depth int

	// MoveTime, if set, is a fixed budget for this move alone.
	MoveTime time.Duration

	// WhiteTime/BlackTime/WhiteInc/BlackInc describe a game clock;
	// used to derive a per-move budget when MoveTime is not set.
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration

	// Difficulty, when MoveTime is zero, supplies the time budget from
	// config.DifficultyTable. The profile's depth cap, quiescence depth
	// and randomness are not read from Limits; Search.SetDifficulty
	// applies them.
	Difficulty    config.Difficulty
	HasDifficulty bool
}

// NewLimits returns an empty Limits value.
func NewLimits() *Limits {
	return &Limits{}
}
