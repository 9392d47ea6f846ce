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

package config

import "time"

// searchConfiguration holds ambient, config-file-overridable search
// toggles. The per-difficulty depth/time/randomness numbers are NOT
// here - they are the compiled-in DifficultyTable below.
type searchConfiguration struct {
	UseTT  bool
	TTBits int // log2 of TT slot count; spec pins 20 but tests may shrink it

	UseNullMove bool
	UseLmr      bool
	UseFp       bool
	UseKiller   bool
	UseHistory  bool

	UseAspiration bool
	UseQuiescence bool
	UseMDP        bool
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UseTT = true
	Settings.Search.TTBits = 20

	Settings.Search.UseNullMove = true
	Settings.Search.UseLmr = true
	Settings.Search.UseFp = true
	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true

	Settings.Search.UseAspiration = true
	Settings.Search.UseQuiescence = true
	Settings.Search.UseMDP = true
}

// Difficulty selects one of the five fixed Xiangqi search profiles.
type Difficulty int

const (
	Beginner Difficulty = iota
	Easy
	Medium
	Hard
	Master
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Master:
		return "master"
	default:
		return "unknown"
	}
}

// DifficultySettings is one row of the per-difficulty table.
type DifficultySettings struct {
	Depth      int
	QDepth     int
	Randomness int
	TimeBudget time.Duration
}

// DifficultyTable is the compiled-in difficulty lookup table - never
// overridden by the TOML config file.
var DifficultyTable = map[Difficulty]DifficultySettings{
	Beginner: {Depth: 3, QDepth: 2, Randomness: 150, TimeBudget: 1 * time.Second},
	Easy:     {Depth: 4, QDepth: 3, Randomness: 30, TimeBudget: 2 * time.Second},
	Medium:   {Depth: 5, QDepth: 4, Randomness: 0, TimeBudget: 3 * time.Second},
	Hard:     {Depth: 6, QDepth: 5, Randomness: 0, TimeBudget: 5 * time.Second},
	Master:   {Depth: 8, QDepth: 6, Randomness: 0, TimeBudget: 10 * time.Second},
}

// DarkDifficulty selects one of the four fixed dark-chess search
// profiles.
type DarkDifficulty int

const (
	DarkBeginner DarkDifficulty = iota
	DarkEasy
	DarkMedium
	DarkHard
)

// DarkDifficultySettings is one row of the dark-chess difficulty
// table: search depth and Monte-Carlo sampling parameters for flip
// nodes.
type DarkDifficultySettings struct {
	Depth         int
	QDepth        int
	UseMonteCarlo bool
	MCSimulations int
	TimeBudget    time.Duration
}

var DarkDifficultyTable = map[DarkDifficulty]DarkDifficultySettings{
	DarkBeginner: {Depth: 2, QDepth: 2, UseMonteCarlo: false, MCSimulations: 0, TimeBudget: 1 * time.Second},
	DarkEasy:     {Depth: 3, QDepth: 2, UseMonteCarlo: false, MCSimulations: 0, TimeBudget: 2 * time.Second},
	DarkMedium:   {Depth: 4, QDepth: 3, UseMonteCarlo: true, MCSimulations: 40, TimeBudget: 3 * time.Second},
	DarkHard:     {Depth: 5, QDepth: 4, UseMonteCarlo: true, MCSimulations: 100, TimeBudget: 5 * time.Second},
}
