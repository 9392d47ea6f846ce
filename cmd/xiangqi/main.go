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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/xiangqi/internal/board"
	"github.com/frankkopp/xiangqi/internal/config"
	"github.com/frankkopp/xiangqi/internal/darkchess"
	"github.com/frankkopp/xiangqi/internal/logging"
	"github.com/frankkopp/xiangqi/internal/movegen"
	"github.com/frankkopp/xiangqi/internal/search"
	"github.com/frankkopp/xiangqi/internal/transpositiontable"
	"github.com/frankkopp/xiangqi/internal/util"
	"github.com/frankkopp/xiangqi/internal/xqtypes"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.Int("loglvl", 4, "standard log level (0=critical .. 5=debug)")
	variant := flag.String("variant", "xiangqi", "which game to play\n(xiangqi|darkchess)")
	difficulty := flag.String("difficulty", "medium", "difficulty profile\nxiangqi: beginner|easy|medium|hard|master\ndarkchess: beginner|easy|medium|hard")
	plies := flag.Int("plies", 0, "number of plies to self-play before exiting\n0 means play until the game ends")
	interactive := flag.Bool("interactive", false, "read moves for the side to move from stdin instead of self-play\n(xiangqi moves as \"fromRow,fromCol-toRow,toCol\", darkchess as \"a1-b1\" or \"flip a1\")")
	ttBits := flag.Int("ttbits", 20, "log2 of the transposition table slot count (xiangqi only)")
	seed := flag.Int64("seed", 1, "seed for the darkchess initial shuffle")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile (cpu.pprof) for the run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	config.Settings.Log.Level = *logLvl
	logging.GetLog()

	ttBitsSet := false
	flag.Visit(func(f *flag.Flag) { ttBitsSet = ttBitsSet || f.Name == "ttbits" })
	if !ttBitsSet {
		*ttBits = config.Settings.Search.TTBits
	}

	switch *variant {
	case "darkchess":
		playDarkchess(*difficulty, *plies, *interactive, *seed)
	default:
		playXiangqi(*difficulty, *plies, *interactive, *ttBits)
	}
}

func printVersionInfo() {
	out.Println("Xiangqi engine")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}

var xiangqiDifficulties = map[string]config.Difficulty{
	"beginner": config.Beginner,
	"easy":     config.Easy,
	"medium":   config.Medium,
	"hard":     config.Hard,
	"master":   config.Master,
}

func playXiangqi(difficulty string, plies int, interactive bool, ttBits int) {
	d, found := xiangqiDifficulties[strings.ToLower(difficulty)]
	if !found {
		d = config.Medium
	}

	b := board.NewBoard()
	tt := transpositiontable.NewTable(ttBits)
	s := search.NewSearch(tt)
	s.SetDifficulty(d)
	s.OnInfo = func(info search.Info) {
		out.Printf("depth %2d  value %6d  nodes %10d  %v\n", info.Depth, info.Value, info.Nodes, info.Elapsed)
	}

	var stdin *bufio.Scanner
	if interactive {
		stdin = bufio.NewScanner(os.Stdin)
	}

	for ply := 0; plies == 0 || ply < plies; ply++ {
		fmt.Println(b.String())
		mg := movegen.NewMoveGen()
		legal := mg.GenerateLegalMoves(b, movegen.GenAll)
		if legal.Len() == 0 {
			out.Printf("%v has no legal moves, game over\n", b.NextPlayer())
			return
		}

		var mv xqtypes.Move
		if interactive && stdin.Scan() {
			parsed, ok := parseXiangqiMove(stdin.Text())
			if !ok {
				out.Println("could not parse move, expected fromRow,fromCol-toRow,toCol")
				ply--
				continue
			}
			mv = parsed
		} else {
			s.StartSearch(b, search.Limits{Difficulty: d, HasDifficulty: true})
			s.WaitWhileSearching()
			result := s.LastSearchResult()
			mv = result.BestMove
			out.Printf("%v plays %v  (%d nps)\n", b.NextPlayer(), mv, util.Nps(result.Nodes, result.SearchTime))
		}
		b.DoMove(mv)
	}
	fmt.Println(b.String())
}

func parseXiangqiMove(line string) (xqtypes.Move, bool) {
	parts := strings.Split(strings.TrimSpace(line), "-")
	if len(parts) != 2 {
		return 0, false
	}
	from, ok := parseRowCol(parts[0])
	if !ok {
		return 0, false
	}
	to, ok := parseRowCol(parts[1])
	if !ok {
		return 0, false
	}
	return xqtypes.NewMove(from, to), true
}

func parseRowCol(s string) (xqtypes.Square, bool) {
	var row, col int
	if _, err := fmt.Sscanf(s, "%d,%d", &row, &col); err != nil {
		return xqtypes.SquareNone, false
	}
	if !xqtypes.OnBoard(row, col) {
		return xqtypes.SquareNone, false
	}
	return xqtypes.NewSquare(row, col), true
}

var darkDifficulties = map[string]config.DarkDifficulty{
	"beginner": config.DarkBeginner,
	"easy":     config.DarkEasy,
	"medium":   config.DarkMedium,
	"hard":     config.DarkHard,
}

func playDarkchess(difficulty string, plies int, interactive bool, seed int64) {
	d, found := darkDifficulties[strings.ToLower(difficulty)]
	if !found {
		d = config.DarkMedium
	}

	rng := rand.New(rand.NewSource(seed))
	b := darkchess.NewBoard(rng)
	s := darkchess.NewSearch(rng)
	s.SetDifficulty(d)
	s.OnInfo = func(info darkchess.Info) {
		out.Printf("depth %2d  value %6d  nodes %10d  %v\n", info.Depth, info.Value, info.Nodes, info.Elapsed)
	}

	var stdin *bufio.Scanner
	if interactive {
		stdin = bufio.NewScanner(os.Stdin)
	}

	for ply := 0; plies == 0 || ply < plies; ply++ {
		fmt.Println(b.String())
		status := b.GameStatus()
		if status != darkchess.Playing {
			out.Printf("game over: %v\n", gameStatusString(status))
			return
		}

		var action darkchess.Action
		if interactive && stdin.Scan() {
			parsed, ok := parseDarkAction(stdin.Text())
			if !ok {
				out.Println("could not parse action, expected \"flip a1\" or \"a1-b1\"")
				ply--
				continue
			}
			action = parsed
		} else {
			s.StartSearch(b, darkchess.Limits{Difficulty: d, HasDifficulty: true})
			s.WaitWhileSearching()
			result := s.LastSearchResult()
			action = result.BestAction
			out.Printf("%v plays %v  (%d nps)\n", b.SideToMove(), action, util.Nps(result.Nodes, result.SearchTime))
		}
		b.DoAction(action)
	}
	fmt.Println(b.String())
}

func gameStatusString(status darkchess.Status) string {
	switch status {
	case darkchess.Win:
		return "win"
	case darkchess.Loss:
		return "loss"
	case darkchess.Draw:
		return "draw"
	default:
		return "playing"
	}
}

// parseDarkAction accepts "flip a1" or "a1-b1", matching darkchess.Square's
// own "%c%d" String() format.
func parseDarkAction(line string) (darkchess.Action, bool) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(strings.ToLower(line), "flip ") {
		sq, ok := parseDarkSquare(strings.TrimSpace(line[len("flip "):]))
		if !ok {
			return darkchess.Action{}, false
		}
		return darkchess.Action{Kind: darkchess.ActionFlip, From: sq, To: sq}, true
	}
	parts := strings.Split(line, "-")
	if len(parts) != 2 {
		return darkchess.Action{}, false
	}
	from, ok := parseDarkSquare(parts[0])
	if !ok {
		return darkchess.Action{}, false
	}
	to, ok := parseDarkSquare(parts[1])
	if !ok {
		return darkchess.Action{}, false
	}
	return darkchess.Action{Kind: darkchess.ActionMove, From: from, To: to}, true
}

func parseDarkSquare(s string) (darkchess.Square, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 2 {
		return darkchess.SquareNone, false
	}
	col := int(s[0] - 'a')
	var row int
	if _, err := fmt.Sscanf(s[1:], "%d", &row); err != nil {
		return darkchess.SquareNone, false
	}
	row--
	if row < 0 || row >= darkchess.NumRows || col < 0 || col >= darkchess.NumCols {
		return darkchess.SquareNone, false
	}
	return darkchess.NewSquare(row, col), true
}
