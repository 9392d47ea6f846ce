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

// Package logging wires up the engine's named loggers on top of
// op/go-logging: one for general engine lifecycle/config events, one
// for per-iteration search reporting, and one for test diagnostics.
package logging

import (
	"os"

	"github.com/op/go-logging"

	"github.com/frankkopp/xiangqi/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger
)

var standardFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{shortfunc} %{level:.4s} %{color:reset} %{message}`,
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
}

func newBackend(level int) logging.Backend {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}

// GetLog returns the general-purpose logger, leveled from
// config.Settings.Log.Level.
func GetLog() *logging.Logger {
	standardLog.SetBackend(newBackend(config.Settings.Log.Level))
	return standardLog
}

// GetSearchLog returns the logger used for per-iteration search
// reporting (depth, score, nodes, nps, PV).
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(newBackend(config.Settings.Log.SearchLevel))
	return searchLog
}

// GetTestLog returns the logger used from _test.go files that want
// structured diagnostic output instead of t.Log.
func GetTestLog() *logging.Logger {
	testLog.SetBackend(newBackend(config.Settings.Log.TestLevel))
	return testLog
}
